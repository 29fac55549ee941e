package domain

import "rosterbot/internal/domain/entities"

// ResultKind discriminates the successful outcomes of roster operations.
type ResultKind string

const (
	ResultRegistered        ResultKind = "registered"
	ResultAlreadyRegistered ResultKind = "already_registered"
	ResultVariantSet        ResultKind = "variant_set"
	ResultVariantChanged    ResultKind = "variant_changed"
	ResultRoster            ResultKind = "roster"
	ResultRosterEmpty       ResultKind = "roster_empty"
	ResultVariantPeers      ResultKind = "variant_peers"
	ResultVariantEmpty      ResultKind = "variant_empty"
)

// Result is what the roster service hands back to a transport.
type Result struct {
	Kind         ResultKind
	Participant  *entities.Participant
	Participants []entities.Participant
	// Variant is the confirmed variant for set-variant and the caller's
	// variant for list-my-variant.
	Variant int
}

// Summary counts participants per variant.
type Summary struct {
	Total     int
	ByVariant map[int]int
}
