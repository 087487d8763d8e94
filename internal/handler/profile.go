package handler

import (
	"fmt"
	"strconv"
	"strings"

	"receiptor-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	stateAwaitingFirstName = "awaiting_first_name"
	stateAwaitingLastName  = "awaiting_last_name:"
	stateAwaitingUpdate    = "awaiting_update"
)

// startProfileCreation starts the profile creation dialog
func (h *Handler) startProfileCreation(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	user, err := h.userService.GetUser(chatID)
	if err == nil && user != nil {
		h.sendText(chatID, "❌ You already have a profile!\nUse /myprofile to see it or /updateprofile to change it.")
		return
	}

	h.userStates[chatID] = stateAwaitingFirstName

	h.sendText(chatID, `👤 Profile creation

Step 1 of 2:
✏️ Please send your first name:`)
}

// handleProfileState continues a profile dialog
func (h *Handler) handleProfileState(message *tgbotapi.Message, state string) {
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	username := ""
	if message.From != nil {
		username = message.From.UserName
	}

	switch {
	case state == stateAwaitingFirstName:
		if text == "" {
			h.sendText(chatID, "✏️ Please send your first name as text:")
			return
		}
		h.userStates[chatID] = stateAwaitingLastName + text

		h.sendText(chatID, fmt.Sprintf(`Step 2 of 2:
✅ First name saved: %s
✏️ Now send your last name (send "-" to skip):`, text))

	case strings.HasPrefix(state, stateAwaitingLastName):
		delete(h.userStates, chatID)

		firstName := strings.TrimPrefix(state, stateAwaitingLastName)
		lastName := text
		if lastName == "-" {
			lastName = ""
		}

		user, err := h.userService.CreateUser(chatID, username, firstName, lastName)
		if err != nil {
			h.sendError(chatID, "Failed to create profile", err)
			return
		}

		h.sendText(chatID, fmt.Sprintf(`🎉 Profile created!

%s

Default settings apply until you change them:
%s

Use /help to see what you can do next.`,
			h.userService.FormatUserInfo(user), service.FormatSettings(user.Settings())))

	case state == stateAwaitingUpdate:
		delete(h.userStates, chatID)

		parts := strings.Fields(text)
		if len(parts) < 1 {
			h.sendText(chatID, "❌ Wrong format. Please send your first and last name.")
			return
		}

		firstName := parts[0]
		lastName := strings.Join(parts[1:], " ")

		user, err := h.userService.UpdateUser(chatID, username, firstName, lastName)
		if err != nil {
			h.sendError(chatID, "Failed to update profile", err)
			return
		}

		h.sendText(chatID, "✅ Profile updated!\n\n"+h.userService.FormatUserInfo(user))

	default:
		delete(h.userStates, chatID)
	}
}

// showProfile shows the user's profile
func (h *Handler) showProfile(message *tgbotapi.Message) {
	user, ok := h.currentUser(message.Chat.ID)
	if !ok {
		return
	}

	h.sendText(message.Chat.ID, h.userService.FormatUserInfo(user))
}

// startProfileUpdate starts the profile update dialog
func (h *Handler) startProfileUpdate(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if _, ok := h.currentUser(chatID); !ok {
		return
	}

	h.sendText(chatID, `✏️ Profile update

Send the new data as:
FirstName LastName

For example: John Smith
Or just: John (to change only the first name)`)

	h.userStates[chatID] = stateAwaitingUpdate
}

// deleteProfile asks for confirmation before deleting the profile
func (h *Handler) deleteProfile(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if _, ok := h.currentUser(chatID); !ok {
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Yes, delete", "confirm_delete"),
			tgbotapi.NewInlineKeyboardButtonData("❌ No, cancel", "cancel_delete"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, "⚠️ Delete your profile together with its schedule, holidays and receipts?\nThis cannot be undone.")
	msg.ReplyMarkup = keyboard
	h.client.Bot.Send(msg)
}

func (h *Handler) showSettings(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	settings, err := h.userService.Settings(chatID)
	if err != nil {
		h.sendError(chatID, "Failed to load settings", err)
		return
	}

	h.sendText(chatID, service.FormatSettings(settings))
}

func (h *Handler) setCountry(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	parts := strings.Fields(args)
	if len(parts) < 1 || len(parts) > 2 {
		h.sendText(chatID, "❌ Specify the working country and optionally the residence country.\nExample: /setcountry LU BE")
		return
	}

	upd := service.SettingsUpdate{WorkingCountryCode: &parts[0]}
	if len(parts) == 2 {
		upd.ResidenceCountryCode = &parts[1]
	}

	h.applySettings(chatID, upd)
}

func (h *Handler) setThreshold(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	threshold, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		h.sendText(chatID, "❌ Specify the number of allowed home-working days.\nExample: /setthreshold 34")
		return
	}

	h.applySettings(chatID, service.SettingsUpdate{HomeworkingThreshold: &threshold})
}

func (h *Handler) setDays(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	days, err := parseWeekdayList(args)
	if err != nil {
		h.sendText(chatID, "❌ "+err.Error()+"\nExample: /setdays 0,1,2,3,4 (0 = Mon ... 6 = Sun)")
		return
	}

	h.applySettings(chatID, service.SettingsUpdate{WorkingDays: days})
}

func (h *Handler) applySettings(chatID int64, upd service.SettingsUpdate) {
	settings, err := h.userService.UpdateSettings(chatID, upd)
	if err != nil {
		h.sendError(chatID, "Failed to update settings", err)
		return
	}

	h.sendText(chatID, "✅ Settings updated!\n\n"+service.FormatSettings(settings))
}
