package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func commandMessage(text string, length int, from *tgbotapi.User) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text:     text,
		From:     from,
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}},
	}
}

func TestCommandFromMessage(t *testing.T) {
	from := &tgbotapi.User{ID: 100, FirstName: "Ann", LastName: "Lee", UserName: "ann", LanguageCode: "ru"}

	cmd, ok := CommandFromMessage(commandMessage("/set_variant 5", len("/set_variant"), from))
	if !ok {
		t.Fatal("expected a command")
	}
	if cmd.Name != "set_variant" || cmd.Args != "5" {
		t.Errorf("name/args = %q/%q", cmd.Name, cmd.Args)
	}
	if cmd.Identity != 100 || cmd.Locale != "ru" {
		t.Errorf("identity/locale = %d/%q", cmd.Identity, cmd.Locale)
	}
	if cmd.Profile.FirstName != "Ann" || cmd.Profile.LastName != "Lee" || cmd.Profile.Handle != "ann" {
		t.Errorf("profile = %+v", cmd.Profile)
	}

	cmd, ok = CommandFromMessage(commandMessage("/list_all@RosterBot", len("/list_all@RosterBot"), from))
	if !ok || cmd.Name != "list_all" || cmd.Args != "" {
		t.Errorf("mention command = %+v, %v", cmd, ok)
	}
}

func TestCommandFromMessageIgnoresNonCommands(t *testing.T) {
	from := &tgbotapi.User{ID: 1}
	tests := []*tgbotapi.Message{
		nil,
		{Text: "hello", From: from},
		commandMessage("/start", len("/start"), nil),
	}
	for i, msg := range tests {
		if _, ok := CommandFromMessage(msg); ok {
			t.Errorf("case %d: expected no command", i)
		}
	}
}
