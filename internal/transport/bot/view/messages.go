package view

import (
	"fmt"
	"html"
	"strings"
	"time"

	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/service/cycle"
	"valuebets/internal/domain/service/roi"
)

const (
	StartMessage = "👋 <b>Value bets</b>\n\n" +
		"I compare bookmaker prices against the market consensus and post bets with positive edge.\n\n" +
		"/roi [best|quick|long] expected ROI of posted bets\n" +
		"/stats your logged bets\n" +
		"/status scanner state\n" +
		"/books bookmaker allow-list\n" +
		"/ping latency check"

	Pong = "🏓 Pong!"

	FetchBusy   = "Another fetch is running—try again shortly."
	FetchFailed = "❌ Fetch failed, see logs."

	NoDatabaseROI   = "📦 Database not configured; ROI unavailable."
	NoDatabaseStats = "📦 Database not configured; no personal stats available."
	NoDatabaseBet   = "📦 Database not configured; couldn’t save this bet."

	ROIFailed   = "❌ ROI failed, see logs."
	StatsFailed = "❌ Stats failed, see logs."
	BetFailed   = "❌ Couldn’t save this bet."
	BetExpired  = "⌛ This bet is no longer available."
	BadStrategy = "❌ Unknown strategy."
	NoStats     = "You haven't logged any bets yet. Tap the buttons on a card to log one!"

	ScanAlreadyRunning = "⚠️ Scanner is already running."
	ScanNotRunning     = "⚠️ Scanner is not running."
	ScanStarted        = "🟢 Scanner started."
	ScanStopped        = "🔴 Scanner stopped."

	AddBookUsage    = "❌ Usage: /addbook <code>key</code>"
	RemoveBookUsage = "❌ Usage: /removebook <code>key</code>"
	SetBooksUsage   = "❌ Usage: /setbooks <code>key1</code> <code>key2</code> ..."
)

func ROI(report roi.Report) string {
	suffix := ""
	if report.Category != "" && report.Category != "all" {
		suffix = fmt.Sprintf(" for <b>%s</b>", report.Category)
	}

	return fmt.Sprintf("📈 Expected ROI%s: <b>%.2f%%</b> (from <b>%d</b> posted bets).", suffix, report.ROI, report.Bets)
}

func Stats(stats entity.UserStats) string {
	if stats.Bets == 0 {
		return NoStats
	}

	return fmt.Sprintf(
		"🧾 <b>Your stats:</b>\n• Bets logged: <b>%d</b>\n• Units staked: <b>%.2fu</b>\n• Most-used strategy share: <b>%.0f%%</b>",
		stats.Bets, stats.Staked, stats.TopStrategyShare*100,
	)
}

func FetchResult(res cycle.Result) string {
	if res.SourceFailed {
		return "⚠️ Odds source unavailable, nothing posted."
	}

	return fmt.Sprintf(
		"Fetched %d candidate bets and posted qualifying ones (best %d, quick %d, long %d, value %d).",
		res.Candidates, res.Best, res.Quick, res.Long, res.Value,
	)
}

func Status(running, busy bool, books int, last *cycle.Result) string {
	var sb strings.Builder

	sb.WriteString("📊 <b>Status</b>\n\n")
	sb.WriteString("🔍 <b>Scanner:</b> " + onOff(running, "🟢 running", "🔴 stopped") + "\n")
	sb.WriteString("⏳ <b>Cycle:</b> " + onOff(busy, "in progress", "idle") + "\n")
	sb.WriteString(fmt.Sprintf("📚 <b>Bookmakers:</b> %d allowed\n", books))

	if last != nil {
		sb.WriteString(fmt.Sprintf(
			"🕒 <b>Last cycle:</b> %s, %d candidates, %d posted\n",
			last.StartedAt.UTC().Format(time.RFC3339),
			last.Candidates,
			last.Best+last.Quick+last.Long+last.Value,
		))
	}

	return sb.String()
}

func Books(ids []string) string {
	if len(ids) == 0 {
		return "📋 <b>Allow-list is empty</b>\n\nNo bookmaker qualifies. Add one: /addbook <code>key</code>"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 <b>Allowed bookmakers (%d):</b>\n\n", len(ids)))

	for i, id := range ids {
		sb.WriteString(fmt.Sprintf("%d. <code>%s</code>\n", i+1, html.EscapeString(id)))
	}

	return sb.String()
}

func BookAdded(id string, added bool) string {
	if !added {
		return fmt.Sprintf("⚠️ <code>%s</code> is already allowed", html.EscapeString(id))
	}
	return fmt.Sprintf("✅ <code>%s</code> added", html.EscapeString(id))
}

func BookRemoved(id string, removed bool) string {
	if !removed {
		return fmt.Sprintf("⚠️ <code>%s</code> is not in the list", html.EscapeString(id))
	}
	return fmt.Sprintf("✅ <code>%s</code> removed", html.EscapeString(id))
}

// BetLogged ответ на нажатие кнопки ставки. Показывается всплывающим уведомлением, без HTML.
func BetLogged(bet entity.UserBet) string {
	return fmt.Sprintf("✅ Logged your %s bet (%gu).", bet.Strategy, bet.StakeUnits)
}

func onOff(flag bool, on, off string) string {
	if flag {
		return on
	}
	return off
}
