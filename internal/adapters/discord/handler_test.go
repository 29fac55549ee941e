package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func slashCommand(member *discordgo.Member, user *discordgo.User, name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:   discordgo.InteractionApplicationCommand,
		Member: member,
		User:   user,
		Locale: discordgo.Russian,
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    name,
			Options: opts,
		},
	}}
}

func TestCommandFromInteraction_Guild(t *testing.T) {
	member := &discordgo.Member{
		Nick: "Annie",
		User: &discordgo.User{ID: "80351110224678912", Username: "ann", GlobalName: "Ann"},
	}
	i := slashCommand(member, nil, "set_variant", &discordgo.ApplicationCommandInteractionDataOption{
		Name: "variant", Type: discordgo.ApplicationCommandOptionString, Value: "12",
	})

	cmd, err := commandFromInteraction(i)
	if err != nil {
		t.Fatalf("commandFromInteraction: %v", err)
	}
	if cmd.Name != "set_variant" || cmd.Args != "12" {
		t.Errorf("name/args = %q/%q", cmd.Name, cmd.Args)
	}
	if cmd.Identity != 80351110224678912 {
		t.Errorf("identity = %d", cmd.Identity)
	}
	if cmd.Profile.FirstName != "Annie" || cmd.Profile.Handle != "ann" {
		t.Errorf("profile = %+v", cmd.Profile)
	}
	if cmd.Locale != "ru" {
		t.Errorf("locale = %q, want ru", cmd.Locale)
	}
}

func TestCommandFromInteraction_DM(t *testing.T) {
	user := &discordgo.User{ID: "42", Username: "bo"}
	cmd, err := commandFromInteraction(slashCommand(nil, user, "list_all"))
	if err != nil {
		t.Fatalf("commandFromInteraction: %v", err)
	}
	if cmd.Identity != 42 || cmd.Profile.FirstName != "bo" || cmd.Args != "" {
		t.Errorf("cmd = %+v", cmd)
	}
}

func TestCommandFromInteraction_Rejects(t *testing.T) {
	if _, err := commandFromInteraction(slashCommand(nil, nil, "list_all")); err == nil {
		t.Error("expected error without user")
	}
	bad := slashCommand(nil, &discordgo.User{ID: "not-a-snowflake"}, "list_all")
	if _, err := commandFromInteraction(bad); err == nil {
		t.Error("expected error for bad user id")
	}
	other := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{Type: discordgo.InteractionPing}}
	if _, err := commandFromInteraction(other); err == nil {
		t.Error("expected error for non-command interaction")
	}
}

func TestApplicationCommands(t *testing.T) {
	cmds := applicationCommands()
	if len(cmds) != 5 {
		t.Fatalf("commands = %d, want 5", len(cmds))
	}
	for _, c := range cmds {
		if c.Name == "set_variant" {
			if len(c.Options) != 1 || c.Options[0].Name != "variant" || c.Options[0].Required {
				t.Errorf("set_variant options = %+v", c.Options)
			}
		} else if len(c.Options) != 0 {
			t.Errorf("%s has options", c.Name)
		}
	}
}
