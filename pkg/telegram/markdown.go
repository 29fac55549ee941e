package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"rosterbot/internal/domain/entities"
)

// ParseMode is the Telegram parse mode the Renderer produces.
const ParseMode = tgbotapi.ModeMarkdownV2

// MessageLimit is Telegram's maximum message length.
const MessageLimit = 4096

// Renderer renders replies as Telegram MarkdownV2.
type Renderer struct{}

func (Renderer) Escape(text string) string {
	return tgbotapi.EscapeText(ParseMode, text)
}

// Reference links to t.me/<handle> when the participant has a public
// handle, otherwise to the user id.
func (r Renderer) Reference(ref entities.Reference) string {
	return "[" + r.Escape(ref.Label()) + "](" + ReferenceURL(ref) + ")"
}

func ReferenceURL(ref entities.Reference) string {
	if ref.ByHandle() {
		return "https://t.me/" + ref.Handle
	}
	return "tg://user?id=" + strconv.FormatInt(ref.Identity, 10)
}
