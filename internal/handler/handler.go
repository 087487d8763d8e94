package handler

import (
	"context"
	"errors"
	"strings"
	"time"

	"receiptor-bot/internal/config"
	"receiptor-bot/internal/models"
	"receiptor-bot/internal/service"
	"receiptor-bot/pkg/nager"
	"receiptor-bot/pkg/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

const requestTimeout = 30 * time.Second

type Handler struct {
	client               *telegram.Client
	userService          *service.UserService
	scheduleService      *service.ScheduleService
	holidayService       *service.HolidayService
	publicHolidayService *service.PublicHolidayService
	receiptService       *service.ReceiptService
	dashboardService     *service.DashboardService
	reportService        *service.ReportService
	syncJob              *service.HolidaySyncJob
	userStates           map[int64]string
	config               *config.BotConfig
}

// Services groups what the handler talks to.
type Services struct {
	Users          *service.UserService
	Schedules      *service.ScheduleService
	Holidays       *service.HolidayService
	PublicHolidays *service.PublicHolidayService
	Receipts       *service.ReceiptService
	Dashboard      *service.DashboardService
	Reports        *service.ReportService
	Sync           *service.HolidaySyncJob
}

func NewHandler(client *telegram.Client, services Services, cfg *config.BotConfig) *Handler {
	return &Handler{
		client:               client,
		userService:          services.Users,
		scheduleService:      services.Schedules,
		holidayService:       services.Holidays,
		publicHolidayService: services.PublicHolidays,
		receiptService:       services.Receipts,
		dashboardService:     services.Dashboard,
		reportService:        services.Reports,
		syncJob:              services.Sync,
		userStates:           make(map[int64]string),
		config:               cfg,
	}
}

// HandleUpdates processes updates one at a time until the channel is closed
// or ctx is done.
func (h *Handler) HandleUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	if update.CallbackQuery != nil {
		h.handleCallbackQuery(update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}

	h.handleMessage(ctx, update.Message)
}

// handleCallbackQuery handles the inline confirmation buttons
func (h *Handler) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID
	data := callback.Data

	editMsg := tgbotapi.NewEditMessageReplyMarkup(chatID, callback.Message.MessageID, tgbotapi.NewInlineKeyboardMarkup())
	h.client.Bot.Send(editMsg)

	switch {
	case strings.HasPrefix(data, "confirm_delete_schedule_") || data == "cancel_delete_schedule":
		h.handleScheduleCallback(chatID, data)

	case data == "confirm_delete":
		if err := h.userService.DeleteUser(chatID); err != nil {
			h.sendError(chatID, "Failed to delete profile", err)
		} else {
			h.sendText(chatID, "✅ Your profile and all its data were deleted.")
		}

	case data == "cancel_delete":
		h.sendText(chatID, "❌ Profile deletion cancelled.")
	}

	callbackConfig := tgbotapi.NewCallback(callback.ID, "")
	h.client.Bot.Request(callbackConfig)
}

func (h *Handler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From != nil {
		logrus.Infof("[%s] %s", message.From.UserName, message.Text)
	}

	chatID := message.Chat.ID

	if state, exists := h.userStates[chatID]; exists && !message.IsCommand() {
		h.handleProfileState(message, state)
		return
	}
	// any command aborts a pending profile dialog
	delete(h.userStates, chatID)

	if message.IsCommand() {
		h.handleCommand(ctx, message)
		return
	}

	if fileID := imageFileID(message); fileID != "" {
		h.addPhotoReceipt(message, fileID)
		return
	}

	h.sendText(chatID, "🤔 Send a receipt photo or a command. Use /help for the list of commands.")
}

func (h *Handler) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.client.Bot.Send(msg); err != nil {
		logrus.WithError(err).WithField("chat_id", chatID).Error("Failed to send message")
	}
}

// sendError reports err to the user. Known domain errors are shown as they
// are, anything else is logged and hidden.
func (h *Handler) sendError(chatID int64, action string, err error) {
	h.sendText(chatID, "❌ "+action+": "+userMessage(err))
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return "profile not found. Use /createprofile first."
	case errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrAccessDenied),
		errors.Is(err, service.ErrInvalidCountryCode),
		errors.Is(err, service.ErrInvalidThreshold),
		errors.Is(err, service.ErrInvalidWeekdays),
		errors.Is(err, service.ErrInvalidPeriod),
		errors.Is(err, service.ErrScheduleNotFound),
		errors.Is(err, service.ErrHolidayNotFound),
		errors.Is(err, service.ErrReceiptNotFound):
		return err.Error()
	case errors.Is(err, nager.ErrNoData):
		return "no public holiday data for this country and year."
	case errors.Is(err, context.DeadlineExceeded):
		return "the holiday service did not answer in time, try again later."
	}

	logrus.WithError(err).Error("Request failed")
	return "internal error, try again later."
}

// currentUser loads the profile of the chat, telling the user when there is none.
func (h *Handler) currentUser(chatID int64) (*models.User, bool) {
	user, err := h.userService.GetUser(chatID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			h.sendText(chatID, "❌ Profile not found.\nUse /createprofile to create one.")
		} else {
			h.sendError(chatID, "Failed to load profile", err)
		}
		return nil, false
	}
	return user, true
}

func (h *Handler) requireAdmin(chatID int64) bool {
	isAdmin, err := h.userService.IsAdmin(chatID)
	if err != nil {
		h.sendError(chatID, "Failed to check access", err)
		return false
	}

	if !isAdmin {
		logrus.WithField("chat_id", chatID).Warn("Unauthorized access to admin command")
		h.sendText(chatID, "❌ Access denied. This command is for administrators only.")
		return false
	}
	return true
}

// imageFileID returns the Telegram file of a photo or an image sent as a file.
func imageFileID(message *tgbotapi.Message) string {
	if n := len(message.Photo); n > 0 {
		// sizes are ordered, the last one is the original
		return message.Photo[n-1].FileID
	}
	if message.Document != nil && strings.HasPrefix(message.Document.MimeType, "image/") {
		return message.Document.FileID
	}
	return ""
}
