package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"rosterbot/internal/adapters/chat"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	guildID string
	handler *Handler
}

// NewBot creates a Bot whose slash commands are served by dispatcher.
// An empty guildID registers the commands globally.
func NewBot(token, guildID string, dispatcher *chat.Dispatcher) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		session: s,
		guildID: guildID,
		handler: NewHandler(dispatcher),
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	b.handler.HandleCommand(s, i)
}

// Start opens the gateway, publishes the slash commands and blocks until
// ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range applicationCommands() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.guildID, cmd); err != nil {
			log.Printf("⚠️ Could not register command %s: %v", cmd.Name, err)
		}
	}

	log.Println("🤖 Discord bot online.")
	<-ctx.Done()
	return ctx.Err()
}
