package handler

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"valuebets/pkg/contextx"
	"valuebets/pkg/logx"
)

// OnStakeCallback кнопки Conservative / Smart / Aggressive под карточкой.
func (h *Handler) OnStakeCallback(ctx *th.Context, query telego.CallbackQuery) error {
	userID := contextx.UserID(query.From.ID)

	reqCtx := contextx.WithUserID(ctx, userID)
	reqCtx = contextx.WithLogger(reqCtx, logger(ctx).With(logx.Stringer(logx.FieldUserID, userID)))

	text, ok := h.stakeReply(reqCtx, query.From.ID, query.From.Username, query.Data)

	params := tu.CallbackQuery(query.ID).WithText(text)
	if !ok {
		params = params.WithShowAlert()
	}

	return ctx.Bot().AnswerCallbackQuery(ctx, params)
}
