package handler

import (
	"strings"
	"time"

	"receiptor-bot/internal/models"
	"receiptor-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// parseCaption splits a receipt caption into an optional leading date and notes.
func parseCaption(caption string, today time.Time) (*time.Time, string) {
	fields, rest := splitArgs(caption, 1)
	if len(fields) == 0 {
		return nil, ""
	}

	date, err := parseDate(fields[0], today)
	if err != nil {
		return nil, strings.TrimSpace(caption)
	}
	return &date, rest
}

// addPhotoReceipt stores a receipt photo. The caption may carry the date.
func (h *Handler) addPhotoReceipt(message *tgbotapi.Message, fileID string) {
	chatID := message.Chat.ID

	user, ok := h.currentUser(chatID)
	if !ok {
		return
	}

	date, notes := parseCaption(message.Caption, h.dashboardService.Today().Time())

	receipt, err := h.receiptService.AddPhoto(user.ID, fileID, date, notes)
	if err != nil {
		h.sendError(chatID, "Failed to save receipt", err)
		return
	}

	if !receipt.HasDate() {
		h.sendText(chatID, "📷 Receipt saved without a date, so it does not count yet.\nSet the date with:\n/setreceiptdate "+receipt.ID+" YYYY-MM-DD")
		return
	}

	h.sendText(chatID, "✅ Receipt saved for "+receipt.FormatDate()+".\nID: "+receipt.ID)
}

// addReceipt records a proof typed in by the user
func (h *Handler) addReceipt(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.currentUser(chatID)
	if !ok {
		return
	}

	fields, notes := splitArgs(args, 1)
	if len(fields) == 0 {
		h.sendText(chatID, "❌ Specify the receipt date.\nExample: /receipt 2024-03-15 lunch in Luxembourg\nOr send a photo of the receipt with the date as caption.")
		return
	}

	date, err := parseDate(fields[0], h.dashboardService.Today().Time())
	if err != nil {
		h.sendText(chatID, "❌ "+err.Error())
		return
	}

	receipt, err := h.receiptService.AddManual(user.ID, date, notes)
	if err != nil {
		h.sendError(chatID, "Failed to save receipt", err)
		return
	}

	h.sendText(chatID, "✅ Receipt saved for "+receipt.FormatDate()+".\nID: "+receipt.ID)
}

func (h *Handler) showReceipts(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.currentUser(chatID)
	if !ok {
		return
	}

	year, err := parseYear(args, h.dashboardService.Today().Year)
	if err != nil {
		h.sendText(chatID, "❌ "+err.Error()+"\nExample: /receipts 2024")
		return
	}

	receipts, err := h.receiptService.ListReceipts(user.ID, year)
	if err != nil {
		h.sendError(chatID, "Failed to load receipts", err)
		return
	}

	undated, err := h.receiptService.Undated(user.ID)
	if err != nil {
		h.sendError(chatID, "Failed to load receipts", err)
		return
	}

	h.sendText(chatID, service.FormatReceipts(receipts, undated, year))
}

func (h *Handler) setReceiptDate(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.currentUser(chatID)
	if !ok {
		return
	}

	parts := strings.Fields(args)
	if len(parts) != 2 {
		h.sendText(chatID, "❌ Specify the receipt ID and the date.\nExample: /setreceiptdate <id> 2024-03-15")
		return
	}

	date, err := parseDate(parts[1], h.dashboardService.Today().Time())
	if err != nil {
		h.sendText(chatID, "❌ "+err.Error())
		return
	}

	receipt, err := h.receiptService.SetDate(user.ID, parts[0], date)
	if err != nil {
		h.sendError(chatID, "Failed to set receipt date", err)
		return
	}

	h.sendText(chatID, "✅ Receipt date set to "+receipt.FormatDate()+".")
}

func (h *Handler) deleteReceipt(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.currentUser(chatID)
	if !ok {
		return
	}

	id := strings.TrimSpace(args)
	if id == "" {
		h.sendText(chatID, "❌ Specify the receipt ID from /receipts.\nExample: /deletereceipt <id>")
		return
	}

	if err := h.receiptService.DeleteReceipt(user.ID, id); err != nil {
		h.sendError(chatID, "Failed to delete receipt", err)
		return
	}

	h.sendText(chatID, "✅ Receipt deleted.")
}

// showReceipt sends one receipt back, with its photo when there is one.
func (h *Handler) showReceipt(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.currentUser(chatID)
	if !ok {
		return
	}

	receipt, err := h.receiptService.GetReceipt(user.ID, args)
	if err != nil {
		h.sendError(chatID, "Failed to load receipt", err)
		return
	}

	h.sendReceiptPhoto(chatID, receipt)
}

func (h *Handler) sendReceiptPhoto(chatID int64, receipt *models.Receipt) {
	caption := receipt.FormatDate() + " (" + receipt.OCRStatus + ")"
	if receipt.Notes != "" {
		caption += "\n" + receipt.Notes
	}

	if receipt.FileID == "" {
		h.sendText(chatID, "🧾 "+caption)
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(receipt.FileID))
	photo.Caption = caption
	if _, err := h.client.Bot.Send(photo); err != nil {
		logrus.WithError(err).WithField("receipt_id", receipt.ID).Error("Failed to send receipt photo")
		h.sendText(chatID, "🧾 "+caption)
	}
}
