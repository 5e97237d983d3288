package handler

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"valuebets/internal/transport/bot/view"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnPing(ctx *th.Context, msg telego.Message) error {
	return h.send(ctx, msg.Chat.ID, view.Pong)
}

// OnROI /roi [best|quick|long]
func (h *Handler) OnROI(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, h.roiReply(ctx, commandArgs(msg.Text)))
}

func (h *Handler) OnStats(ctx *th.Context, msg telego.Message) error {
	if msg.From == nil {
		return nil
	}
	return h.sendHTML(ctx, msg.Chat.ID, h.statsReply(ctx, msg.From.ID))
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, h.statusReply())
}

// OnFetchBets запускает цикл вне расписания.
func (h *Handler) OnFetchBets(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, h.fetchReply(ctx))
}

func (h *Handler) OnStartScan(ctx *th.Context, msg telego.Message) error {
	return h.send(ctx, msg.Chat.ID, h.startScanReply())
}

func (h *Handler) OnStopScan(ctx *th.Context, msg telego.Message) error {
	return h.send(ctx, msg.Chat.ID, h.stopScanReply())
}

func (h *Handler) OnBooks(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.Books(h.books.Snapshot()))
}

// OnAddBook /addbook pinnacle
func (h *Handler) OnAddBook(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, h.addBookReply(commandArgs(msg.Text)))
}

func (h *Handler) OnRemoveBook(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, h.removeBookReply(commandArgs(msg.Text)))
}

// OnSetBooks заменяет список целиком: /setbooks pinnacle betfair_ex_uk
func (h *Handler) OnSetBooks(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, h.setBooksReply(commandArgs(msg.Text)))
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})
	return err
}

func (h *Handler) send(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID: telego.ChatID{ID: chatID},
		Text:   text,
	})
	return err
}
