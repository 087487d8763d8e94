package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"receiptor-bot/internal/models"
	"receiptor-bot/internal/service"
	"receiptor-bot/pkg/compliance"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

const scheduleUsage = `📝 Schedule period

Format:
/addschedule START END DAYS [description]

END "-" keeps the period open, DAYS "-" means full leave.
Days are numbers 0 (Mon) to 6 (Sun) or mon..sun.

Examples:
/addschedule 2024-05-01 2024-08-31 0,1,2 part time
/addschedule 01.09.2024 - 0,1,2,3 four day week
/addschedule 2024-10-01 2024-12-31 - parental leave`

// parsePeriodInput reads "START END|- DAYS|- [description]".
func parsePeriodInput(args string, today time.Time) (service.PeriodInput, error) {
	fields, description := splitArgs(args, 3)
	if len(fields) < 3 {
		return service.PeriodInput{}, errors.New("start, end and days are required")
	}

	start, err := parseDate(fields[0], today)
	if err != nil {
		return service.PeriodInput{}, err
	}

	var end *time.Time
	if fields[1] != "-" {
		e, err := parseDate(fields[1], today)
		if err != nil {
			return service.PeriodInput{}, err
		}
		end = &e
	}

	days, err := parseWeekdayList(fields[2])
	if err != nil {
		return service.PeriodInput{}, err
	}

	return service.PeriodInput{
		Start:       start,
		End:         end,
		WorkingDays: days,
		Description: description,
	}, nil
}

func (h *Handler) showSchedule(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	user, ok := h.currentUser(chatID)
	if !ok {
		return
	}

	periods, err := h.scheduleService.ListPeriods(user.ID)
	if err != nil {
		h.sendError(chatID, "Failed to load schedule", err)
		return
	}

	fallback, _ := compliance.ParseWeekdays(user.Settings().WorkingDays)
	text := service.FormatPeriods(periods)
	text += "\n\nOutside these periods: " + fallback.String()
	h.sendText(chatID, text)
}

// addSchedule adds a schedule period
func (h *Handler) addSchedule(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.currentUser(chatID)
	if !ok {
		return
	}

	if strings.TrimSpace(args) == "" {
		h.sendText(chatID, scheduleUsage)
		return
	}

	in, err := parsePeriodInput(args, h.dashboardService.Today().Time())
	if err != nil {
		h.sendText(chatID, "❌ "+err.Error()+"\n\n"+scheduleUsage)
		return
	}

	period, err := h.scheduleService.AddPeriod(user.ID, in)
	if err != nil {
		h.sendError(chatID, "Failed to add schedule period", err)
		return
	}

	h.sendText(chatID, "✅ Schedule period added!\n\n"+service.FormatPeriods([]*models.WorkSchedulePeriod{period}))
}

// updateSchedule replaces a schedule period
func (h *Handler) updateSchedule(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.currentUser(chatID)
	if !ok {
		return
	}

	fields, rest := splitArgs(args, 1)
	if len(fields) == 0 {
		h.sendText(chatID, "❌ Specify the period ID.\nExample: /updateschedule 3 2024-05-01 2024-09-30 0,1,2")
		return
	}

	id, err := parseID(fields[0])
	if err != nil {
		h.sendText(chatID, "❌ "+err.Error())
		return
	}

	in, err := parsePeriodInput(rest, h.dashboardService.Today().Time())
	if err != nil {
		h.sendText(chatID, "❌ "+err.Error()+"\n\n"+scheduleUsage)
		return
	}

	period, err := h.scheduleService.UpdatePeriod(user.ID, id, in)
	if err != nil {
		h.sendError(chatID, "Failed to update schedule period", err)
		return
	}

	h.sendText(chatID, "✅ Schedule period updated!\n\n"+service.FormatPeriods([]*models.WorkSchedulePeriod{period}))
}

// deleteSchedule asks for confirmation before deleting a period
func (h *Handler) deleteSchedule(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if _, ok := h.currentUser(chatID); !ok {
		return
	}

	id, err := parseID(args)
	if err != nil {
		h.sendText(chatID, "❌ Specify the period ID from /schedule.\nExample: /deleteschedule 3")
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Yes, delete", fmt.Sprintf("confirm_delete_schedule_%d", id)),
			tgbotapi.NewInlineKeyboardButtonData("❌ No, cancel", "cancel_delete_schedule"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("⚠️ Delete schedule period #%d?", id))
	msg.ReplyMarkup = keyboard
	h.client.Bot.Send(msg)
}

// handleScheduleCallback handles the schedule deletion buttons
func (h *Handler) handleScheduleCallback(chatID int64, data string) {
	if data == "cancel_delete_schedule" {
		h.sendText(chatID, "❌ Deletion cancelled.")
		return
	}

	id, err := strconv.ParseUint(strings.TrimPrefix(data, "confirm_delete_schedule_"), 10, 32)
	if err != nil {
		h.sendText(chatID, "❌ Invalid period ID")
		return
	}

	user, ok := h.currentUser(chatID)
	if !ok {
		return
	}

	if err := h.scheduleService.DeletePeriod(user.ID, uint(id)); err != nil {
		logrus.WithError(err).Warn("Failed to delete schedule period via callback")
		h.sendError(chatID, "Failed to delete schedule period", err)
		return
	}

	h.sendText(chatID, fmt.Sprintf("✅ Schedule period #%d deleted.", id))
}
