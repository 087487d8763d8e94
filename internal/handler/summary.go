package handler

import (
	"context"
	"fmt"
	"strings"

	"receiptor-bot/internal/service"
	"receiptor-bot/pkg/compliance"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (h *Handler) showSummary(ctx context.Context, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	year, err := parseYear(args, h.dashboardService.Today().Year)
	if err != nil {
		h.sendText(chatID, "❌ "+err.Error()+"\nExample: /summary 2024")
		return
	}

	summary, err := h.dashboardService.Summary(ctx, chatID, year)
	if err != nil {
		h.sendError(chatID, "Failed to compute summary", err)
		return
	}

	h.sendText(chatID, service.FormatSummary(summary))
}

func (h *Handler) showMonths(ctx context.Context, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	year, err := parseYear(args, h.dashboardService.Today().Year)
	if err != nil {
		h.sendText(chatID, "❌ "+err.Error()+"\nExample: /months 2024")
		return
	}

	details, err := h.dashboardService.Details(ctx, chatID, year)
	if err != nil {
		h.sendError(chatID, "Failed to compute breakdown", err)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "```\n"+service.FormatMonths(details)+"\n```")
	msg.ParseMode = tgbotapi.ModeMarkdown
	h.client.Bot.Send(msg)
}

// sendReport sends the yearly report as a text file
func (h *Handler) sendReport(ctx context.Context, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	year, err := parseYear(args, h.dashboardService.Today().Year)
	if err != nil {
		h.sendText(chatID, "❌ "+err.Error()+"\nExample: /report 2024")
		return
	}

	report, err := h.reportService.Render(ctx, chatID, year)
	if err != nil {
		h.sendError(chatID, "Failed to build report", err)
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("compliance-report-%d.txt", year),
		Bytes: []byte(report),
	})
	doc.Caption = fmt.Sprintf("📄 Compliance report %d", year)

	if _, err := h.client.Bot.Send(doc); err != nil {
		logrus.WithError(err).WithField("chat_id", chatID).Error("Failed to send report")
		h.sendText(chatID, "❌ Failed to send the report file.")
	}
}

func (h *Handler) checkDay(ctx context.Context, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	today := h.dashboardService.Today()
	date := today
	if strings.TrimSpace(args) != "" {
		t, err := parseDate(args, today.Time())
		if err != nil {
			h.sendText(chatID, "❌ "+err.Error()+"\nExample: /checkday 2024-05-01")
			return
		}
		date = compliance.DateOf(t)
	}

	check, err := h.dashboardService.CheckDay(ctx, chatID, date)
	if err != nil {
		h.sendError(chatID, "Failed to check day", err)
		return
	}

	h.sendText(chatID, service.FormatDayCheck(check))
}
