package chat

import (
	"strings"

	"rosterbot/internal/domain/entities"
)

// Command names as typed by users. Telegram and Discord share them.
const (
	CommandStart         = "start"
	CommandRegister      = "register"
	CommandHelp          = "help"
	CommandSetVariant    = "set_variant"
	CommandChangeVariant = "change_variant"
	CommandListAll       = "list_all"
	CommandListMyVariant = "list_my_variant"
)

// Command is one inbound request, already parsed by a transport.
type Command struct {
	Name     string
	Identity int64
	Profile  entities.Profile
	Args     string
	Locale   string
}

// Spec describes a command for transports that publish a command menu.
type Spec struct {
	Name        string
	Description string
	// ArgName is set when the command takes one argument.
	ArgName        string
	ArgDescription string
}

// Specs lists the published commands. Aliases are accepted but not listed.
func Specs() []Spec {
	return []Spec{
		{Name: CommandRegister, Description: "Register in the roster"},
		{Name: CommandSetVariant, Description: "Set your variant number (1-30)", ArgName: "variant", ArgDescription: "Variant number from 1 to 30"},
		{Name: CommandListAll, Description: "Show all participants"},
		{Name: CommandListMyVariant, Description: "Show the participants of your variant"},
		{Name: CommandHelp, Description: "List the commands"},
	}
}

// canonicalName lower-cases name, drops a leading slash and maps Discord
// style hyphens and legacy aliases onto the canonical command names.
func canonicalName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "/")
	name = strings.ReplaceAll(name, "-", "_")
	if name == CommandChangeVariant {
		return CommandSetVariant
	}
	return name
}
