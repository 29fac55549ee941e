package digest

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
	"time"

	"rosterbot/internal/application"
	"rosterbot/internal/domain"
	"rosterbot/internal/domain/entities"
	"rosterbot/internal/infrastructure/memory"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   domain.Summary
		want string
	}{
		{domain.Summary{}, "roster: empty"},
		{
			domain.Summary{Total: 5, ByVariant: map[int]int{7: 1, 0: 1, 2: 3}},
			"roster: 5 participants (unassigned: 1, 2: 3, 7: 1)",
		},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJobLogsSummary(t *testing.T) {
	repo, err := memory.NewParticipantRepository()
	if err != nil {
		t.Fatalf("memory repo: %v", err)
	}
	svc := application.NewRosterService(repo, time.Second)
	ctx := context.Background()
	svc.Register(ctx, 1, entities.Profile{})
	svc.SetVariant(ctx, 2, entities.Profile{}, "4")

	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	Job(svc, time.Second)()

	if !strings.Contains(buf.String(), "roster: 2 participants (unassigned: 1, 4: 1)") {
		t.Errorf("log = %q", buf.String())
	}
}
