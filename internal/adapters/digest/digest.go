package digest

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"rosterbot/internal/domain"
	"rosterbot/internal/ports/input"
)

// Job returns a scheduler job that logs the roster size per variant.
func Job(roster input.RosterUseCase, timeout time.Duration) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		summary, err := roster.Summary(ctx)
		if err != nil {
			log.Printf("❌ roster digest: %v", err)
			return
		}
		log.Printf("📊 %s", Format(summary))
	}
}

// Format renders a summary as "roster: 5 participants (unassigned: 1, 2: 3, 7: 1)".
func Format(s domain.Summary) string {
	if s.Total == 0 {
		return "roster: empty"
	}
	variants := make([]int, 0, len(s.ByVariant))
	for v := range s.ByVariant {
		variants = append(variants, v)
	}
	sort.Ints(variants)

	parts := make([]string, 0, len(variants))
	for _, v := range variants {
		label := fmt.Sprint(v)
		if v == domain.VariantUnassigned {
			label = "unassigned"
		}
		parts = append(parts, fmt.Sprintf("%s: %d", label, s.ByVariant[v]))
	}
	return fmt.Sprintf("roster: %d participants (%s)", s.Total, strings.Join(parts, ", "))
}
