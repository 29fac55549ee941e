package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// responder is the part of *discordgo.Session used to answer interactions.
type responder interface {
	InteractionRespond(i *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(i *discordgo.Interaction, edit *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(i *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ responder = (*discordgo.Session)(nil)

// interactionUser returns the caller: Member.User in guilds, User in DMs.
func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// Nick > GlobalName > Username
func resolveDisplayName(member *discordgo.Member, user *discordgo.User) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// acknowledge answers within Discord's 3s window; the real reply follows
// through editReply.
func acknowledge(rs responder, i *discordgo.Interaction) error {
	return rs.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

// editReply replaces the deferred placeholder with the first chunk and posts
// the rest as follow-ups.
func editReply(rs responder, i *discordgo.Interaction, chunks []string) error {
	if len(chunks) == 0 {
		return errors.New("empty reply")
	}
	noPings := &discordgo.MessageAllowedMentions{}
	first := chunks[0]
	if _, err := rs.InteractionResponseEdit(i, &discordgo.WebhookEdit{
		Content:         &first,
		AllowedMentions: noPings,
	}); err != nil {
		return err
	}
	for _, chunk := range chunks[1:] {
		if _, err := rs.FollowupMessageCreate(i, false, &discordgo.WebhookParams{
			Content:         chunk,
			AllowedMentions: noPings,
		}); err != nil {
			return err
		}
	}
	return nil
}
