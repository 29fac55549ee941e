package chat

import (
	"context"
	"log"
	"strings"

	"rosterbot/internal/domain"
	"rosterbot/internal/domain/entities"
	"rosterbot/internal/ports/input"
	"rosterbot/internal/ports/output"
)

// Renderer turns plain text and participant references into the markup of
// one chat platform.
type Renderer interface {
	Escape(text string) string
	Reference(ref entities.Reference) string
}

// Dispatcher routes commands to the roster use cases and renders the
// outcome as reply text.
type Dispatcher struct {
	roster input.RosterUseCase
	tr     output.T
}

func NewDispatcher(roster input.RosterUseCase, tr output.T) *Dispatcher {
	return &Dispatcher{roster: roster, tr: tr}
}

// Handle executes cmd and returns the reply. A failure, even a panic, only
// affects this command's reply.
func (d *Dispatcher) Handle(ctx context.Context, cmd Command, r Renderer) (reply string) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("❌ panic while handling /%s for %d: %v", cmd.Name, cmd.Identity, rec)
			reply = d.text(cmd, r, "error.unavailable", nil)
		}
	}()

	switch canonicalName(cmd.Name) {
	case CommandStart:
		greeting := d.text(cmd, r, "start.greeting", nil)
		return greeting + "\n\n" + d.register(ctx, cmd, r)
	case CommandRegister:
		return d.register(ctx, cmd, r)
	case CommandHelp:
		return d.text(cmd, r, "help.text", nil)
	case CommandSetVariant:
		res, err := d.roster.SetVariant(ctx, cmd.Identity, cmd.Profile, cmd.Args)
		if err != nil {
			return d.failure(cmd, r, err)
		}
		key := "set_variant.changed"
		if res.Kind == domain.ResultVariantSet {
			key = "set_variant.created"
		}
		return d.text(cmd, r, key, map[string]any{"Variant": res.Variant})
	case CommandListAll:
		res, err := d.roster.ListAll(ctx)
		if err != nil {
			return d.failure(cmd, r, err)
		}
		if res.Kind == domain.ResultRosterEmpty {
			return d.text(cmd, r, "list_all.empty", nil)
		}
		return d.rosterText(cmd, r, res.Participants)
	case CommandListMyVariant:
		res, err := d.roster.ListMyVariant(ctx, cmd.Identity)
		if err != nil {
			return d.failure(cmd, r, err)
		}
		data := map[string]any{"Variant": res.Variant}
		if res.Kind == domain.ResultVariantEmpty {
			return d.text(cmd, r, "list_my_variant.empty", data)
		}
		return d.peersText(cmd, r, data, res.Participants)
	default:
		return d.text(cmd, r, "command.unknown", nil)
	}
}

func (d *Dispatcher) register(ctx context.Context, cmd Command, r Renderer) string {
	res, err := d.roster.Register(ctx, cmd.Identity, cmd.Profile)
	if err != nil {
		return d.failure(cmd, r, err)
	}
	if res.Kind == domain.ResultRegistered {
		log.Printf("✅ registered participant %d", cmd.Identity)
		return d.text(cmd, r, "register.created", nil)
	}
	return d.text(cmd, r, "register.existing", nil)
}

func (d *Dispatcher) rosterText(cmd Command, r Renderer, participants []entities.Participant) string {
	var b strings.Builder
	b.WriteString(d.text(cmd, r, "list_all.header", nil))
	for i := range participants {
		p := &participants[i]
		b.WriteString("\n")
		b.WriteString(r.Reference(p.Reference()))
		b.WriteString(d.text(cmd, r, "list_all.line", map[string]any{"Variant": p.Variant}))
	}
	return b.String()
}

func (d *Dispatcher) peersText(cmd Command, r Renderer, data map[string]any, participants []entities.Participant) string {
	var b strings.Builder
	b.WriteString(d.text(cmd, r, "list_my_variant.header", data))
	for i := range participants {
		b.WriteString("\n")
		b.WriteString(r.Reference(participants[i].Reference()))
	}
	return b.String()
}

// failure maps an error to its reply. Anything that is not a caller mistake
// is logged and answered with the generic retry text.
func (d *Dispatcher) failure(cmd Command, r Renderer, err error) string {
	switch domain.Code(err) {
	case "variant_missing":
		return d.text(cmd, r, "set_variant.missing", nil)
	case "variant_invalid":
		return d.text(cmd, r, "set_variant.invalid", map[string]any{
			"Min": domain.MinVariant,
			"Max": domain.MaxVariant,
		})
	case "not_registered":
		return d.text(cmd, r, "list_my_variant.not_registered", nil)
	default:
		log.Printf("❌ /%s for %d failed: %v", canonicalName(cmd.Name), cmd.Identity, err)
		return d.text(cmd, r, "error.unavailable", nil)
	}
}

func (d *Dispatcher) text(cmd Command, r Renderer, key string, data map[string]any) string {
	return r.Escape(d.tr.T(cmd.Locale, key, data))
}
