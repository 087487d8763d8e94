package handler

import (
	"context"
	"errors"
	"strings"
	"time"

	"receiptor-bot/internal/models"
	"receiptor-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const holidayUsage = `📝 Holiday period

Format:
/addholiday START END [description]

Examples:
/addholiday 2024-07-01 2024-07-14 summer
/addholiday 24.12 31.12`

// parseHolidayInput reads "START END [description]".
func parseHolidayInput(args string, today time.Time) (start, end time.Time, description string, err error) {
	fields, description := splitArgs(args, 2)
	if len(fields) < 2 {
		return time.Time{}, time.Time{}, "", errors.New("start and end are required")
	}

	if start, err = parseDate(fields[0], today); err != nil {
		return time.Time{}, time.Time{}, "", err
	}
	if end, err = parseDate(fields[1], today); err != nil {
		return time.Time{}, time.Time{}, "", err
	}
	return start, end, description, nil
}

func (h *Handler) showHolidays(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.currentUser(chatID)
	if !ok {
		return
	}

	year, err := parseYear(args, h.dashboardService.Today().Year)
	if err != nil {
		h.sendText(chatID, "❌ "+err.Error()+"\nExample: /holidays 2024")
		return
	}

	holidays, err := h.holidayService.ListHolidays(user.ID, year)
	if err != nil {
		h.sendError(chatID, "Failed to load holidays", err)
		return
	}

	h.sendText(chatID, service.FormatHolidays(holidays, year))
}

func (h *Handler) addHoliday(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.currentUser(chatID)
	if !ok {
		return
	}

	if strings.TrimSpace(args) == "" {
		h.sendText(chatID, holidayUsage)
		return
	}

	start, end, description, err := parseHolidayInput(args, h.dashboardService.Today().Time())
	if err != nil {
		h.sendText(chatID, "❌ "+err.Error()+"\n\n"+holidayUsage)
		return
	}

	holiday, err := h.holidayService.AddHoliday(user.ID, start, end, description)
	if err != nil {
		h.sendError(chatID, "Failed to add holiday", err)
		return
	}

	h.sendText(chatID, "✅ Holiday added!\n\n"+service.FormatHolidays([]models.UserHoliday{*holiday}, start.Year()))
}

func (h *Handler) updateHoliday(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.currentUser(chatID)
	if !ok {
		return
	}

	fields, rest := splitArgs(args, 1)
	if len(fields) == 0 {
		h.sendText(chatID, "❌ Specify the holiday ID.\nExample: /updateholiday 2 2024-07-01 2024-07-21")
		return
	}

	id, err := parseID(fields[0])
	if err != nil {
		h.sendText(chatID, "❌ "+err.Error())
		return
	}

	start, end, description, err := parseHolidayInput(rest, h.dashboardService.Today().Time())
	if err != nil {
		h.sendText(chatID, "❌ "+err.Error()+"\n\n"+holidayUsage)
		return
	}

	holiday, err := h.holidayService.UpdateHoliday(user.ID, id, start, end, description)
	if err != nil {
		h.sendError(chatID, "Failed to update holiday", err)
		return
	}

	h.sendText(chatID, "✅ Holiday updated!\n\n"+service.FormatHolidays([]models.UserHoliday{*holiday}, start.Year()))
}

func (h *Handler) deleteHoliday(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.currentUser(chatID)
	if !ok {
		return
	}

	id, err := parseID(args)
	if err != nil {
		h.sendText(chatID, "❌ Specify the holiday ID from /holidays.\nExample: /deleteholiday 2")
		return
	}

	if err := h.holidayService.DeleteHoliday(user.ID, id); err != nil {
		h.sendError(chatID, "Failed to delete holiday", err)
		return
	}

	h.sendText(chatID, "✅ Holiday deleted.")
}

// showPublicHolidays accepts the year and the country in any order.
func (h *Handler) showPublicHolidays(ctx context.Context, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	settings, err := h.userService.Settings(chatID)
	if err != nil {
		h.sendError(chatID, "Failed to load settings", err)
		return
	}

	year := h.dashboardService.Today().Year
	countryCode := settings.WorkingCountryCode

	for _, arg := range strings.Fields(args) {
		if len(arg) == 2 {
			countryCode = strings.ToUpper(arg)
			continue
		}
		if year, err = parseYear(arg, year); err != nil {
			h.sendText(chatID, "❌ "+err.Error()+"\nExample: /publicholidays 2024 LU")
			return
		}
	}

	holidays, err := h.publicHolidayService.Holidays(ctx, year, countryCode)
	if err != nil {
		h.sendError(chatID, "Failed to load public holidays", err)
		return
	}

	h.sendText(chatID, service.FormatPublicHolidays(holidays, year, countryCode))
}

func (h *Handler) showCountries(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	countries, err := h.publicHolidayService.Countries(ctx)
	if err != nil {
		h.sendError(chatID, "Failed to load countries", err)
		return
	}

	h.sendText(chatID, service.FormatCountries(countries))
}
