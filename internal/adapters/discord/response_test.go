package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"rosterbot/internal/adapters/chat"
	"rosterbot/internal/application"
	"rosterbot/internal/domain/entities"
	"rosterbot/internal/infrastructure/i18n"
	"rosterbot/internal/infrastructure/memory"
	pkgdiscord "rosterbot/pkg/discord"
)

// fakeResponder records interaction calls in order.
type fakeResponder struct {
	calls      []string
	edits      []string
	followups  []string
	respondErr error
}

func (f *fakeResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.calls = append(f.calls, fmt.Sprintf("respond:%d", resp.Type))
	return f.respondErr
}

func (f *fakeResponder) InteractionResponseEdit(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.calls = append(f.calls, "edit")
	f.edits = append(f.edits, *edit.Content)
	return &discordgo.Message{}, nil
}

func (f *fakeResponder) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.calls = append(f.calls, "followup")
	f.followups = append(f.followups, data.Content)
	return &discordgo.Message{}, nil
}

func newTestHandler(t *testing.T) (*Handler, *application.RosterService) {
	t.Helper()
	repo, err := memory.NewParticipantRepository()
	if err != nil {
		t.Fatalf("memory repo: %v", err)
	}
	roster := application.NewRosterService(repo, time.Second)
	return NewHandler(chat.NewDispatcher(roster, i18n.NewTranslator("en"))), roster
}

func TestAnswer_AcknowledgesBeforeReplying(t *testing.T) {
	h, roster := newTestHandler(t)
	rs := &fakeResponder{}

	cmd := chat.Command{Name: "register", Identity: 7, Profile: entities.Profile{FirstName: "Ann"}}
	if err := h.answer(context.Background(), rs, &discordgo.Interaction{}, cmd); err != nil {
		t.Fatalf("answer: %v", err)
	}

	want := []string{fmt.Sprintf("respond:%d", discordgo.InteractionResponseDeferredChannelMessageWithSource), "edit"}
	if strings.Join(rs.calls, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v", rs.calls, want)
	}
	if len(rs.edits) != 1 || rs.edits[0] == "" {
		t.Errorf("edits = %q", rs.edits)
	}
	all, err := roster.ListAll(context.Background())
	if err != nil || len(all.Participants) != 1 {
		t.Errorf("roster after register = %+v, %v", all, err)
	}
}

func TestAnswer_AcknowledgeFailureSkipsRoster(t *testing.T) {
	h, roster := newTestHandler(t)
	rs := &fakeResponder{respondErr: errors.New("unknown interaction")}

	cmd := chat.Command{Name: "register", Identity: 7, Profile: entities.Profile{FirstName: "Ann"}}
	if err := h.answer(context.Background(), rs, &discordgo.Interaction{}, cmd); err == nil {
		t.Fatal("expected error when acknowledge fails")
	}
	if len(rs.edits) != 0 || len(rs.followups) != 0 {
		t.Errorf("unexpected replies: %v", rs.calls)
	}
	all, err := roster.ListAll(context.Background())
	if err != nil || len(all.Participants) != 0 {
		t.Errorf("roster = %+v, %v, want empty", all, err)
	}
}

func TestAnswer_LongReplyUsesFollowups(t *testing.T) {
	h, roster := newTestHandler(t)
	ctx := context.Background()
	for id := int64(1); id <= 120; id++ {
		profile := entities.Profile{FirstName: fmt.Sprintf("Participant number %03d", id)}
		if _, err := roster.Register(ctx, id, profile); err != nil {
			t.Fatalf("register %d: %v", id, err)
		}
	}

	rs := &fakeResponder{}
	if err := h.answer(ctx, rs, &discordgo.Interaction{}, chat.Command{Name: "list_all", Identity: 1}); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if len(rs.edits) != 1 || len(rs.followups) == 0 {
		t.Fatalf("edits=%d followups=%d, want 1 and >0", len(rs.edits), len(rs.followups))
	}
	if rs.calls[0] != fmt.Sprintf("respond:%d", discordgo.InteractionResponseDeferredChannelMessageWithSource) || rs.calls[1] != "edit" {
		t.Errorf("calls = %v", rs.calls)
	}
	for _, c := range append(rs.edits, rs.followups...) {
		if n := len([]rune(c)); n > pkgdiscord.MessageLimit {
			t.Errorf("chunk of %d runes over limit", n)
		}
	}
	joined := strings.Join(append(rs.edits, rs.followups...), "\n")
	if !strings.Contains(joined, "001") || !strings.Contains(joined, "120") {
		t.Error("roster lines missing from reply")
	}
}
