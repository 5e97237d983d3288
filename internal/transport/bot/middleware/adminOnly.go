package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// AdminOnly пропускает дальше только апдейты от adminID. adminID == 0 закрывает группу для всех.
func AdminOnly(adminID int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if adminID != 0 && IsFrom(update, adminID) {
			return ctx.Next(update)
		}

		return nil
	}
}

func IsFrom(update telego.Update, userID int64) bool {
	switch {
	case update.Message != nil && update.Message.From != nil:
		return update.Message.From.ID == userID
	case update.CallbackQuery != nil:
		return update.CallbackQuery.From.ID == userID
	default:
		return false
	}
}
