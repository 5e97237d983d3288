package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"valuebets/internal/infrastructure/notifier"
	"valuebets/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	bh.HandleMessage(h.OnStart, th.CommandEqual("start"))
	bh.HandleMessage(h.OnPing, th.CommandEqual("ping"))
	bh.HandleMessage(h.OnROI, th.CommandEqual("roi"))
	bh.HandleMessage(h.OnStats, th.CommandEqual("stats"))
	bh.HandleMessage(h.OnStatus, th.CommandEqual("status"))
	bh.HandleMessage(h.OnBooks, th.CommandEqual("books"))

	bh.HandleCallbackQuery(h.OnStakeCallback, th.CallbackDataPrefix(notifier.StakeCallbackPrefix))

	// Всё, что ниже, только для администратора.
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnFetchBets, th.CommandEqual("fetchbets"))
	adminGroup.HandleMessage(h.OnStartScan, th.CommandEqual("startscan"))
	adminGroup.HandleMessage(h.OnStopScan, th.CommandEqual("stopscan"))
	adminGroup.HandleMessage(h.OnAddBook, th.CommandEqual("addbook"))
	adminGroup.HandleMessage(h.OnRemoveBook, th.CommandEqual("removebook"))
	adminGroup.HandleMessage(h.OnSetBooks, th.CommandEqual("setbooks"))
}
