package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"receiptor-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// showAllUsers lists every user (admins only)
func (h *Handler) showAllUsers(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !h.requireAdmin(chatID) {
		return
	}

	allUsers, err := h.userService.FormatAllUsers()
	if err != nil {
		h.sendError(chatID, "Failed to list users", err)
		return
	}

	h.sendText(chatID, allUsers)
}

// showStats shows bot statistics (admins only)
func (h *Handler) showStats(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !h.requireAdmin(chatID) {
		return
	}

	total, admins, err := h.userService.GetStats()
	if err != nil {
		h.sendError(chatID, "Failed to get statistics", err)
		return
	}

	text := fmt.Sprintf(`📊 Bot statistics:

👥 Users: %d
👑 Administrators: %d
👤 Clients: %d
💾 Storage: %s`,
		total, admins, total-admins, h.config.DatabaseURL)

	h.sendText(chatID, text)
}

// showAdmins lists the administrators (admins only)
func (h *Handler) showAdmins(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !h.requireAdmin(chatID) {
		return
	}

	admins, err := h.userService.GetAdmins()
	if err != nil {
		h.sendError(chatID, "Failed to list administrators", err)
		return
	}

	if len(admins) == 0 {
		h.sendText(chatID, "👑 No administrators.")
		return
	}

	lines := []string{"👑 Administrators:", ""}
	for i, admin := range admins {
		adminInfo := fmt.Sprintf("%d. ", i+1)
		if admin.FirstName != "" {
			adminInfo += admin.FirstName + " "
		}
		if admin.LastName != "" {
			adminInfo += admin.LastName + " "
		}
		if admin.Username != "" {
			adminInfo += fmt.Sprintf("(@%s) ", admin.Username)
		}
		adminInfo += fmt.Sprintf("- ID: %d", admin.ChatID)
		lines = append(lines, adminInfo)
	}

	h.sendText(chatID, strings.Join(lines, "\n"))
}

func (h *Handler) promoteToAdmin(message *tgbotapi.Message, args string) {
	h.changeRole(message.Chat.ID, args, models.Role(models.RoleAdmin), "/promote 123456789")
}

func (h *Handler) demoteToClient(message *tgbotapi.Message, args string) {
	h.changeRole(message.Chat.ID, args, models.Role(models.RoleClient), "/demote 123456789")
}

// setUserRole sets the role given as the second argument
func (h *Handler) setUserRole(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	parts := strings.Fields(args)
	if len(parts) != 2 {
		h.sendText(chatID, "❌ Wrong format.\nExample: /setrole 123456789 admin\nRoles: admin, client")
		return
	}

	switch role := strings.ToLower(parts[1]); role {
	case models.RoleAdmin, models.RoleClient:
		h.changeRole(chatID, parts[0], models.Role(role), "/setrole 123456789 admin")
	default:
		h.sendText(chatID, "❌ Unknown role.\nRoles: admin, client")
	}
}

func (h *Handler) changeRole(chatID int64, rawTarget string, role models.Role, example string) {
	if !h.requireAdmin(chatID) {
		return
	}

	rawTarget = strings.TrimSpace(rawTarget)
	if rawTarget == "" {
		h.sendText(chatID, "❌ Specify the user ID.\nExample: "+example)
		return
	}

	targetChatID, err := strconv.ParseInt(rawTarget, 10, 64)
	if err != nil {
		h.sendText(chatID, "❌ Wrong ID format.\nThe ID must be a number.")
		return
	}

	// the administrator from the configuration keeps the role
	if string(role) == models.RoleClient && h.config.BaseAdminChatID != 0 && targetChatID == h.config.BaseAdminChatID {
		h.sendText(chatID, "❌ The main administrator from the configuration cannot be demoted!")
		return
	}

	if err := h.userService.UpdateRole(chatID, targetChatID, role); err != nil {
		h.sendError(chatID, "Failed to change role", err)
		return
	}

	h.sendText(chatID, fmt.Sprintf("✅ User %d is now %s!", targetChatID, role))
}

// syncHolidays refreshes the public holiday cache on demand (admins only)
func (h *Handler) syncHolidays(ctx context.Context, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID
	if !h.requireAdmin(chatID) {
		return
	}

	year, err := parseYear(args, h.dashboardService.Today().Year)
	if err != nil {
		h.sendText(chatID, "❌ "+err.Error()+"\nExample: /syncholidays 2025")
		return
	}

	result, err := h.syncJob.SyncYears(ctx, year)
	if err != nil {
		logrus.WithError(err).WithField("year", year).Warn("Manual holiday sync finished with errors")
		if len(result.Failed) == 0 {
			h.sendError(chatID, "Holiday sync failed", err)
			return
		}
	}

	text := fmt.Sprintf("🔄 Holiday sync %d: %d countries refreshed, %d holidays stored.", year, result.Refreshed, result.Holidays)
	if len(result.Failed) > 0 {
		text += "\n⚠️ Failed: " + strings.Join(result.Failed, ", ")
	}
	h.sendText(chatID, text)
}
