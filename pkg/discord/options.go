package discord

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// Mention formats a user mention for a numeric user id.
func Mention(identity int64) string {
	return fmt.Sprintf("<@%d>", identity)
}

// ParseUserID converts a Discord snowflake into an identity.
func ParseUserID(id string) (int64, error) {
	v, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("discord: invalid user id %q: %w", id, err)
	}
	return v, nil
}

// ExtractOption returns the raw text of the named option, or "" when the
// option was not supplied.
func ExtractOption(data discordgo.ApplicationCommandInteractionData, name string) string {
	for _, opt := range data.Options {
		if opt == nil || opt.Name != name {
			continue
		}
		if opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
		return fmt.Sprint(opt.Value)
	}
	return ""
}
