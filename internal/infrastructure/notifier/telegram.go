package notifier

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/value"
)

// StakeCallbackPrefix callback-данные кнопок: stake:<strategy>:<ref>.
const StakeCallbackPrefix = "stake:"

type messageSender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

// Telegram рассылает карточки в чаты по tier. Нулевой chat id пропускается.
type Telegram struct {
	bot       messageSender
	chats     map[value.Tier]int64
	threshold float64
	buttons   bool
}

func NewTelegram(bot messageSender, chats map[value.Tier]int64, threshold float64) *Telegram {
	return &Telegram{
		bot:       bot,
		chats:     chats,
		threshold: threshold,
	}
}

// WithStakeButtons включает кнопки журнала ставок (нужна база).
func (t *Telegram) WithStakeButtons(enabled bool) *Telegram {
	t.buttons = enabled
	return t
}

func (t *Telegram) Notify(ctx context.Context, tier value.Tier, rec entity.Recommendation) error {
	chatID := t.chats[tier]
	if chatID == 0 {
		return nil
	}

	msg := tu.Message(tu.ID(chatID), NewCard(tier, rec, t.threshold).HTML()).
		WithParseMode(telego.ModeHTML)

	if t.buttons {
		msg = msg.WithReplyMarkup(StakeKeyboard(rec))
	}

	if _, err := t.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("telegram send to %d: %w", chatID, err)
	}

	return nil
}

func (t *Telegram) NotifyText(ctx context.Context, tier value.Tier, text string) error {
	chatID := t.chats[tier]
	if chatID == 0 {
		return nil
	}

	if _, err := t.bot.SendMessage(ctx, tu.Message(tu.ID(chatID), text)); err != nil {
		return fmt.Errorf("telegram send to %d: %w", chatID, err)
	}

	return nil
}

func StakeKeyboard(rec entity.Recommendation) *telego.InlineKeyboardMarkup {
	buttons := make([]telego.InlineKeyboardButton, 0, len(value.Strategies))

	for _, s := range value.Strategies {
		buttons = append(buttons, tu.InlineKeyboardButton(s.Label()).
			WithCallbackData(StakeCallbackPrefix+s.String()+":"+rec.Ref()))
	}

	return tu.InlineKeyboard(tu.InlineKeyboardRow(buttons...))
}
