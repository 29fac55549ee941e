package telegram

import (
	"context"
	"fmt"
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"rosterbot/internal/adapters/chat"
	"rosterbot/internal/domain/entities"
	pkgtelegram "rosterbot/pkg/telegram"
)

// Bot is the Telegram adapter. It long-polls updates and handles each
// command on its own goroutine.
type Bot struct {
	api        *tgbotapi.BotAPI
	dispatcher *chat.Dispatcher
	renderer   pkgtelegram.Renderer
	inflight   sync.WaitGroup
}

func NewBot(token string, dispatcher *chat.Dispatcher) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot api: %w", err)
	}
	log.Printf("✅ Telegram bot authorized as @%s", api.Self.UserName)
	return &Bot{api: api, dispatcher: dispatcher}, nil
}

// Start polls updates until ctx is cancelled, then waits for the commands
// already being handled.
func (b *Bot) Start(ctx context.Context) error {
	b.publishCommands()

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	log.Println("🤖 Telegram bot online, polling updates.")
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.inflight.Wait()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				b.inflight.Wait()
				return nil
			}
			cmd, ok := CommandFromMessage(update.Message)
			if !ok {
				continue
			}
			b.inflight.Add(1)
			go func(msg *tgbotapi.Message) {
				defer b.inflight.Done()
				// Let a started command finish even when shutdown begins.
				b.handle(context.WithoutCancel(ctx), msg, cmd)
			}(update.Message)
		}
	}
}

func (b *Bot) handle(ctx context.Context, msg *tgbotapi.Message, cmd chat.Command) {
	reply := b.dispatcher.Handle(ctx, cmd, b.renderer)
	for i, chunk := range chat.Sendable(chat.SplitMessage(reply, pkgtelegram.MessageLimit)) {
		out := tgbotapi.NewMessage(msg.Chat.ID, chunk)
		out.ParseMode = pkgtelegram.ParseMode
		out.DisableWebPagePreview = true
		if i == 0 {
			out.ReplyToMessageID = msg.MessageID
		}
		if _, err := b.api.Send(out); err != nil {
			log.Printf("❌ telegram send /%s reply to %d: %v", cmd.Name, cmd.Identity, err)
			return
		}
	}
}

// publishCommands fills the client-side command menu.
func (b *Bot) publishCommands() {
	specs := chat.Specs()
	commands := make([]tgbotapi.BotCommand, 0, len(specs))
	for _, s := range specs {
		commands = append(commands, tgbotapi.BotCommand{Command: s.Name, Description: s.Description})
	}
	if _, err := b.api.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		log.Printf("⚠️ telegram: could not publish commands: %v", err)
	}
}

// CommandFromMessage extracts a chat command from a Telegram message. It
// reports false for anything that is not a command from a user.
func CommandFromMessage(msg *tgbotapi.Message) (chat.Command, bool) {
	if msg == nil || msg.From == nil || !msg.IsCommand() {
		return chat.Command{}, false
	}
	return chat.Command{
		Name:     msg.Command(),
		Identity: msg.From.ID,
		Profile: entities.Profile{
			FirstName: msg.From.FirstName,
			LastName:  msg.From.LastName,
			Handle:    msg.From.UserName,
		},
		Args:   msg.CommandArguments(),
		Locale: msg.From.LanguageCode,
	}, true
}
