package discord

import (
	"strings"

	"rosterbot/internal/domain/entities"
)

// MessageLimit is Discord's maximum message length.
const MessageLimit = 2000

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"~", `\~`,
	"`", "\\`",
	"|", `\|`,
	">", `\>`,
	"[", `\[`,
	"]", `\]`,
	"(", `\(`,
	")", `\)`,
)

// Renderer renders replies as Discord markdown.
type Renderer struct{}

func (Renderer) Escape(text string) string {
	return markdownEscaper.Replace(text)
}

// Reference shows the public handle when there is one, otherwise a user
// mention built from the id.
func (r Renderer) Reference(ref entities.Reference) string {
	label := "**" + r.Escape(ref.Label()) + "**"
	if ref.ByHandle() {
		return label + " (@" + r.Escape(ref.Handle) + ")"
	}
	return label + " (" + Mention(ref.Identity) + ")"
}
