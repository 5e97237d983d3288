package notifier

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/value"
)

// пустое имя поля Discord не принимает
const zeroWidthSpace = "\u200b"

type channelSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Discord рассылает embed-карточки в каналы по tier. Пустой channel id пропускается.
type Discord struct {
	session   channelSender
	channels  map[value.Tier]string
	threshold float64
}

func NewDiscordSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discordgo.New: %w", err)
	}

	return session, nil
}

func NewDiscord(session channelSender, channels map[value.Tier]string, threshold float64) *Discord {
	return &Discord{
		session:   session,
		channels:  channels,
		threshold: threshold,
	}
}

func (d *Discord) Notify(ctx context.Context, tier value.Tier, rec entity.Recommendation) error {
	channelID := d.channels[tier]
	if channelID == "" {
		return nil
	}

	return d.send(ctx, channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{Embed(NewCard(tier, rec, d.threshold))},
	})
}

func (d *Discord) NotifyText(ctx context.Context, tier value.Tier, text string) error {
	channelID := d.channels[tier]
	if channelID == "" {
		return nil
	}

	return d.send(ctx, channelID, &discordgo.MessageSend{Content: text})
}

func (d *Discord) send(ctx context.Context, channelID string, msg *discordgo.MessageSend) error {
	if _, err := d.session.ChannelMessageSendComplex(channelID, msg, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord send to %s: %w", channelID, err)
	}

	return nil
}

func Embed(c Card) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: zeroWidthSpace, Value: "**" + c.Headline() + "**"},
		{Name: "Match", Value: c.Rec.Match},
		{Name: "Pick", Value: c.PickLine()},
		{Name: "Bookmaker", Value: c.Rec.Bookmaker},
		{Name: "Consensus %", Value: fmt.Sprintf("%.2f%%", c.Rec.ConsensusPct), Inline: true},
		{Name: "Implied %", Value: fmt.Sprintf("%.2f%%", c.Rec.ImpliedPct), Inline: true},
		{Name: "Edge", Value: fmt.Sprintf("%.2f%%", c.Rec.EdgePct), Inline: true},
		{Name: "Time", Value: c.StartLine()},
	}

	for _, s := range value.Strategies {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  s.Label() + " Stake",
			Value: c.StakeLine(s),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       c.Title,
		Description: c.Label,
		Color:       c.Color(),
		Fields:      fields,
	}
}
