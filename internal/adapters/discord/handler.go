package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"rosterbot/internal/adapters/chat"
	"rosterbot/internal/domain/entities"
	pkgdiscord "rosterbot/pkg/discord"
)

// Handler handles Discord interactions through the chat dispatcher.
type Handler struct {
	dispatcher *chat.Dispatcher
	renderer   pkgdiscord.Renderer
}

// NewHandler creates a Handler.
func NewHandler(dispatcher *chat.Dispatcher) *Handler {
	return &Handler{dispatcher: dispatcher}
}

// HandleCommand answers one slash command. discordgo runs each handler on
// its own goroutine.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	cmd, err := commandFromInteraction(i)
	if err != nil {
		log.Printf("❌ discord: %v", err)
		return
	}
	if err := h.answer(context.Background(), s, i.Interaction, cmd); err != nil {
		log.Printf("❌ discord /%s for %d: %v", cmd.Name, cmd.Identity, err)
	}
}

// answer acknowledges the interaction before touching the roster, so slow
// storage still ends in a visible reply.
func (h *Handler) answer(ctx context.Context, rs responder, i *discordgo.Interaction, cmd chat.Command) error {
	if err := acknowledge(rs, i); err != nil {
		return fmt.Errorf("acknowledge: %w", err)
	}
	reply := h.dispatcher.Handle(ctx, cmd, h.renderer)
	if err := editReply(rs, i, chat.Sendable(chat.SplitMessage(reply, pkgdiscord.MessageLimit))); err != nil {
		return fmt.Errorf("reply: %w", err)
	}
	return nil
}

func commandFromInteraction(i *discordgo.InteractionCreate) (chat.Command, error) {
	if i == nil || i.Interaction == nil || i.Type != discordgo.InteractionApplicationCommand {
		return chat.Command{}, fmt.Errorf("not an application command")
	}
	user := interactionUser(i.Interaction)
	if user == nil {
		return chat.Command{}, fmt.Errorf("interaction without user")
	}
	identity, err := pkgdiscord.ParseUserID(user.ID)
	if err != nil {
		return chat.Command{}, err
	}

	data := i.ApplicationCommandData()
	return chat.Command{
		Name:     data.Name,
		Identity: identity,
		Profile: entities.Profile{
			FirstName: resolveDisplayName(i.Member, user),
			Handle:    user.Username,
		},
		Args:   pkgdiscord.ExtractOption(data, "variant"),
		Locale: string(i.Locale),
	}, nil
}
