package handler

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	switch command {
	case "start":
		h.sendStartMessage(message)
	case "help":
		h.sendHelpMessage(message)
	case "helpadmin":
		h.sendAdminHelpMessage(message)

	// profile and settings
	case "createprofile":
		h.startProfileCreation(message)
	case "myprofile":
		h.showProfile(message)
	case "updateprofile":
		h.startProfileUpdate(message)
	case "deleteprofile":
		h.deleteProfile(message)
	case "settings":
		h.showSettings(message)
	case "setcountry":
		h.setCountry(message, args)
	case "setthreshold":
		h.setThreshold(message, args)
	case "setdays":
		h.setDays(message, args)

	// schedule periods
	case "schedule":
		h.showSchedule(message)
	case "addschedule":
		h.addSchedule(message, args)
	case "updateschedule":
		h.updateSchedule(message, args)
	case "deleteschedule":
		h.deleteSchedule(message, args)

	// holidays
	case "holidays":
		h.showHolidays(message, args)
	case "addholiday":
		h.addHoliday(message, args)
	case "updateholiday":
		h.updateHoliday(message, args)
	case "deleteholiday":
		h.deleteHoliday(message, args)
	case "publicholidays":
		h.showPublicHolidays(ctx, message, args)
	case "countries":
		h.showCountries(ctx, message)

	// receipts
	case "receipt":
		h.addReceipt(message, args)
	case "receipts":
		h.showReceipts(message, args)
	case "showreceipt":
		h.showReceipt(message, args)
	case "setreceiptdate":
		h.setReceiptDate(message, args)
	case "deletereceipt":
		h.deleteReceipt(message, args)

	// compliance
	case "summary":
		h.showSummary(ctx, message, args)
	case "months":
		h.showMonths(ctx, message, args)
	case "report":
		h.sendReport(ctx, message, args)
	case "checkday":
		h.checkDay(ctx, message, args)

	// admin
	case "allusers":
		h.showAllUsers(message)
	case "stats":
		h.showStats(message)
	case "admins":
		h.showAdmins(message)
	case "promote":
		h.promoteToAdmin(message, args)
	case "demote":
		h.demoteToClient(message, args)
	case "setrole":
		h.setUserRole(message, args)
	case "syncholidays":
		h.syncHolidays(ctx, message, args)

	default:
		h.sendUnknownCommand(message)
	}
}

func (h *Handler) sendUnknownCommand(message *tgbotapi.Message) {
	h.sendText(message.Chat.ID, "❌ Unknown command. Use /help for the list of commands.")
}

func (h *Handler) sendStartMessage(message *tgbotapi.Message) {
	text := `👋 Welcome!

This bot tracks how many days you work from home in your country of residence
and warns you before you cross the yearly limit of your working country.

Every working day without a proof of presence in the working country counts as a
home-working day. Send a photo of a receipt (with the date as caption) or use
/receipt to record such a proof.

1. Create your profile with /createprofile
2. Check your settings with /settings
3. Add holidays and schedule changes
4. Watch your forecast with /summary

Use /help for all commands.`

	h.sendText(message.Chat.ID, text)
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	text := `📋 Commands:

👤 Profile:
/createprofile - Create a profile
/myprofile - Show my profile
/updateprofile - Change my name
/deleteprofile - Delete my profile and data

⚙️ Settings:
/settings - Show my compliance settings
/setcountry CC [RESIDENCE] - Working (and residence) country, e.g. /setcountry LU BE
/setthreshold N - Allowed home-working days per year
/setdays 0,1,2,3,4 - Default working days (0 = Mon ... 6 = Sun)

📅 Schedule periods:
/schedule - List periods
/addschedule START END|- DAYS|- [description]
    Example: /addschedule 2024-05-01 2024-08-31 0,1,2 part time
    END "-" = ongoing, DAYS "-" = full leave
/updateschedule ID START END|- DAYS|- [description]
/deleteschedule ID

🏖️ Holidays:
/holidays [year] - My holiday periods
/addholiday START END [description]
/updateholiday ID START END [description]
/deleteholiday ID
/publicholidays [year] [CC] - Public holidays
/countries - Supported countries

🧾 Receipts:
Send a photo with the date as caption, e.g. 2024-03-15 lunch
/receipt DATE [notes] - Add a receipt without photo
/receipts [year] - List receipts
/showreceipt ID - Show a receipt with its photo
/setreceiptdate ID DATE - Set or fix a receipt date
/deletereceipt ID

📊 Compliance:
/summary [year] - Forecast and status
/months [year] - Monthly breakdown
/report [year] - Full report as a file
/checkday [DATE] - How a date is counted

Dates: YYYY-MM-DD, DD.MM.YYYY or DD.MM (current year).`

	h.sendText(message.Chat.ID, text)
}

func (h *Handler) sendAdminHelpMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !h.requireAdmin(chatID) {
		return
	}

	text := `👑 Administration:
/allusers - All users
/stats - Bot statistics
/admins - Administrators
/promote ID - Make a user administrator
/demote ID - Make an administrator a client
/setrole ID ROLE - Set role (admin, client)
/syncholidays [year] - Refresh the public holiday cache now`

	if h.config.BaseAdminChatID != 0 {
		text += fmt.Sprintf("\n\n🔧 Main administrator ID: %d", h.config.BaseAdminChatID)
	}

	h.sendText(chatID, text)
}
