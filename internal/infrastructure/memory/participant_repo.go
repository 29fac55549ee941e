package memory

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-memdb"

	"rosterbot/internal/domain"
	"rosterbot/internal/domain/entities"
	"rosterbot/internal/ports/output"
)

const participantsTable = "participants"

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

// participantRecord is the stored row; seq keeps insertion order because
// memdb iterates in index order.
type participantRecord struct {
	Seq         uint64
	Identity    int64
	Variant     int
	Participant entities.Participant
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			participantsTable: {
				Name: participantsTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "Identity"},
					},
					"variant": {
						Name:    "variant",
						Indexer: &memdb.IntFieldIndex{Field: "Variant"},
					},
				},
			},
		},
	}
}

// ParticipantRepository implements output.ParticipantRepository in memory
// using go-memdb write transactions as units of work.
type ParticipantRepository struct {
	db  *memdb.MemDB
	seq atomic.Uint64
	now func() time.Time
}

// NewParticipantRepository creates an empty in-memory repository.
func NewParticipantRepository() (*ParticipantRepository, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("memdb init: %w", err)
	}
	return &ParticipantRepository{db: db, now: time.Now}, nil
}

func (r *ParticipantRepository) FindByIdentity(ctx context.Context, identity int64) (*entities.Participant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	txn := r.db.Txn(false)
	defer txn.Abort()
	raw, err := txn.First(participantsTable, "id", identity)
	if err != nil {
		return nil, fmt.Errorf("get participant by identity: %w", err)
	}
	if raw == nil {
		return nil, domain.ErrParticipantNotFound
	}
	p := raw.(*participantRecord).Participant
	return &p, nil
}

func (r *ParticipantRepository) Insert(ctx context.Context, participant *entities.Participant) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !domain.IsStorableVariant(participant.Variant) {
		return domain.ErrInvalidVariant
	}
	txn := r.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(participantsTable, "id", participant.Identity)
	if err != nil {
		return fmt.Errorf("insert participant: %w", err)
	}
	if existing != nil {
		return domain.ErrDuplicateIdentity
	}

	now := r.now()
	stored := *participant
	stored.CreatedAt = now
	stored.UpdatedAt = now
	rec := &participantRecord{
		Seq:         r.seq.Add(1),
		Identity:    stored.Identity,
		Variant:     stored.Variant,
		Participant: stored,
	}
	if err := txn.Insert(participantsTable, rec); err != nil {
		return fmt.Errorf("insert participant: %w", err)
	}
	txn.Commit()

	participant.CreatedAt = now
	participant.UpdatedAt = now
	return nil
}

func (r *ParticipantRepository) UpdateVariant(ctx context.Context, identity int64, variant int) (*entities.Participant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !domain.IsStorableVariant(variant) {
		return nil, domain.ErrInvalidVariant
	}
	txn := r.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(participantsTable, "id", identity)
	if err != nil {
		return nil, fmt.Errorf("update participant variant: %w", err)
	}
	if raw == nil {
		return nil, domain.ErrParticipantNotFound
	}

	// Stored objects are shared with readers; replace, never mutate.
	rec := *raw.(*participantRecord)
	rec.Variant = variant
	rec.Participant.Variant = variant
	rec.Participant.UpdatedAt = r.now()
	if err := txn.Insert(participantsTable, &rec); err != nil {
		return nil, fmt.Errorf("update participant variant: %w", err)
	}
	txn.Commit()

	p := rec.Participant
	return &p, nil
}

func (r *ParticipantRepository) ListAll(ctx context.Context) ([]entities.Participant, error) {
	return r.list(ctx, "id")
}

func (r *ParticipantRepository) ListByVariant(ctx context.Context, variant int) ([]entities.Participant, error) {
	return r.list(ctx, "variant", variant)
}

func (r *ParticipantRepository) CountByVariant(ctx context.Context) (map[int]int, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[int]int)
	for _, p := range all {
		counts[p.Variant]++
	}
	return counts, nil
}

func (r *ParticipantRepository) list(ctx context.Context, index string, args ...any) ([]entities.Participant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	txn := r.db.Txn(false)
	defer txn.Abort()
	it, err := txn.Get(participantsTable, index, args...)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	var recs []*participantRecord
	for obj := it.Next(); obj != nil; obj = it.Next() {
		recs = append(recs, obj.(*participantRecord))
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Seq < recs[j].Seq })

	out := make([]entities.Participant, len(recs))
	for i := range recs {
		out[i] = recs[i].Participant
	}
	return out, nil
}
