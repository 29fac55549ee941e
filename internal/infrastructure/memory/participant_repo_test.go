package memory

import (
	"context"
	"errors"
	"testing"

	"rosterbot/internal/domain"
	"rosterbot/internal/domain/entities"
)

func newRepo(t *testing.T) *ParticipantRepository {
	t.Helper()
	repo, err := NewParticipantRepository()
	if err != nil {
		t.Fatalf("NewParticipantRepository: %v", err)
	}
	return repo
}

func TestInsertRejectsDuplicateIdentity(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	if err := repo.Insert(ctx, entities.NewParticipant(1, entities.Profile{FirstName: "A"}, 0)); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	err := repo.Insert(ctx, entities.NewParticipant(1, entities.Profile{FirstName: "B"}, 4))
	if !errors.Is(err, domain.ErrDuplicateIdentity) {
		t.Fatalf("err = %v, want ErrDuplicateIdentity", err)
	}
	got, err := repo.FindByIdentity(ctx, 1)
	if err != nil {
		t.Fatalf("FindByIdentity: %v", err)
	}
	if got.FirstName != "A" || got.Variant != 0 {
		t.Errorf("got %+v, want original record", got)
	}
}

func TestInsertRejectsOutOfDomainVariant(t *testing.T) {
	repo := newRepo(t)
	for _, v := range []int{-1, 31, 100} {
		err := repo.Insert(context.Background(), entities.NewParticipant(int64(v), entities.Profile{}, v))
		if !errors.Is(err, domain.ErrInvalidVariant) {
			t.Errorf("Insert variant %d err = %v, want ErrInvalidVariant", v, err)
		}
	}
	all, _ := repo.ListAll(context.Background())
	if len(all) != 0 {
		t.Errorf("stored %d participants, want 0", len(all))
	}
}

func TestUpdateVariantDoesNotLeakIntoOldSnapshots(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	if err := repo.Insert(ctx, entities.NewParticipant(1, entities.Profile{FirstName: "A"}, 0)); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	before, _ := repo.FindByIdentity(ctx, 1)
	after, err := repo.UpdateVariant(ctx, 1, 9)
	if err != nil {
		t.Fatalf("UpdateVariant: %v", err)
	}
	if before.Variant != 0 || after.Variant != 9 {
		t.Errorf("before = %d, after = %d", before.Variant, after.Variant)
	}
	if zero, _ := repo.ListByVariant(ctx, 0); len(zero) != 0 {
		t.Errorf("variant index still lists %d participants under 0", len(zero))
	}
	if _, err := repo.UpdateVariant(ctx, 2, 9); !errors.Is(err, domain.ErrParticipantNotFound) {
		t.Errorf("unknown identity err = %v, want ErrParticipantNotFound", err)
	}
}

func TestListsKeepInsertionOrder(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	for _, id := range []int64{900, 5, 42, 17} {
		if err := repo.Insert(ctx, entities.NewParticipant(id, entities.Profile{}, 3)); err != nil {
			t.Fatalf("Insert %d: %v", id, err)
		}
	}
	want := []int64{900, 5, 42, 17}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	peers, err := repo.ListByVariant(ctx, 3)
	if err != nil {
		t.Fatalf("ListByVariant: %v", err)
	}
	for name, got := range map[string][]entities.Participant{"ListAll": all, "ListByVariant": peers} {
		if len(got) != len(want) {
			t.Fatalf("%s len = %d, want %d", name, len(got), len(want))
		}
		for i := range want {
			if got[i].Identity != want[i] {
				t.Errorf("%s[%d] = %d, want %d", name, i, got[i].Identity, want[i])
			}
		}
	}

	counts, err := repo.CountByVariant(ctx)
	if err != nil {
		t.Fatalf("CountByVariant: %v", err)
	}
	if counts[3] != 4 || len(counts) != 1 {
		t.Errorf("counts = %v, want map[3:4]", counts)
	}
}

func TestCanceledContext(t *testing.T) {
	repo := newRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := repo.Insert(ctx, entities.NewParticipant(1, entities.Profile{}, 0)); !errors.Is(err, context.Canceled) {
		t.Errorf("Insert err = %v, want context.Canceled", err)
	}
	if _, err := repo.ListAll(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("ListAll err = %v, want context.Canceled", err)
	}
}
