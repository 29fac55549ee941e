package discord

import (
	"github.com/bwmarrin/discordgo"

	"rosterbot/internal/adapters/chat"
)

// applicationCommands builds the slash commands from the chat command specs.
// The argument is a string option so that validation stays in the roster
// service and bad input gets the same reply as on other transports.
func applicationCommands() []*discordgo.ApplicationCommand {
	specs := chat.Specs()
	out := make([]*discordgo.ApplicationCommand, 0, len(specs))
	for _, s := range specs {
		cmd := &discordgo.ApplicationCommand{Name: s.Name, Description: s.Description}
		if s.ArgName != "" {
			cmd.Options = []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        s.ArgName,
				Description: s.ArgDescription,
				Required:    false,
			}}
		}
		out = append(out, cmd)
	}
	return out
}
