package entities

import (
	"strconv"
	"strings"
	"time"
)

// Participant is a roster member, keyed by the identity the chat platform
// gives us.
type Participant struct {
	Identity  int64
	FirstName string
	LastName  string // empty = absent
	Handle    string // empty = absent
	Variant   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile is the caller snapshot a transport attaches to each command.
type Profile struct {
	FirstName string
	LastName  string
	Handle    string
}

// NewParticipant builds an unsaved participant from a profile snapshot.
func NewParticipant(identity int64, profile Profile, variant int) *Participant {
	return &Participant{
		Identity:  identity,
		FirstName: strings.TrimSpace(profile.FirstName),
		LastName:  strings.TrimSpace(profile.LastName),
		Handle:    strings.TrimPrefix(strings.TrimSpace(profile.Handle), "@"),
		Variant:   variant,
	}
}

// DisplayName is the given name, followed by the family name when present.
func (p *Participant) DisplayName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	if p.FirstName == "" {
		return p.LastName
	}
	return p.FirstName + " " + p.LastName
}

// Reference returns what a transport needs to render a clickable name.
func (p *Participant) Reference() Reference {
	return Reference{
		Name:     p.DisplayName(),
		Handle:   p.Handle,
		Identity: p.Identity,
	}
}

// Reference points either at a public handle or, lacking one, at the raw
// identity.
type Reference struct {
	Name     string
	Handle   string
	Identity int64
}

// ByHandle reports whether the reference targets the public handle.
func (r Reference) ByHandle() bool {
	return r.Handle != ""
}

// Label is the visible text of the reference.
func (r Reference) Label() string {
	switch {
	case r.Name != "":
		return r.Name
	case r.Handle != "":
		return "@" + r.Handle
	default:
		return strconv.FormatInt(r.Identity, 10)
	}
}
