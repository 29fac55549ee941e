package domain

import (
	"strconv"
	"strings"
)

const (
	// VariantUnassigned is the variant every participant starts with.
	VariantUnassigned = 0
	MinVariant        = 1
	MaxVariant        = 30
)

// ParseVariant validates the raw argument of a set-variant command.
// Surrounding whitespace is ignored; anything else that is not an integer
// in [MinVariant, MaxVariant] is rejected.
func ParseVariant(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrVariantMissing
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < MinVariant || v > MaxVariant {
		return 0, ErrVariantInvalid
	}
	return v, nil
}

// IsStorableVariant reports whether v may be persisted.
func IsStorableVariant(v int) bool {
	return v == VariantUnassigned || (v >= MinVariant && v <= MaxVariant)
}
