package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"rosterbot/internal/domain"
	"rosterbot/internal/domain/entities"
	"rosterbot/internal/infrastructure/database/sqlc_generated"
	"rosterbot/internal/ports/output"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

// DB is what the repository needs from a pool: queries plus transactions.
// *pgxpool.Pool satisfies it.
type DB interface {
	sqlc_generated.DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ParticipantRepository implements output.ParticipantRepository using sqlc + pgx.
type ParticipantRepository struct {
	db DB
	q  *sqlc_generated.Queries
}

// NewParticipantRepository creates a ParticipantRepository.
func NewParticipantRepository(db DB) *ParticipantRepository {
	return &ParticipantRepository{db: db, q: sqlc_generated.New(db)}
}

// inTx runs fn in one transaction, committed on success and rolled back on
// every other exit path.
func (r *ParticipantRepository) inTx(ctx context.Context, fn func(q *sqlc_generated.Queries) error) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return fn(r.q.WithTx(tx))
	})
}

func (r *ParticipantRepository) FindByIdentity(ctx context.Context, identity int64) (*entities.Participant, error) {
	row, err := r.q.GetParticipantByIdentity(ctx, identity)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrParticipantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get participant by identity: %w", err)
	}
	p := participantToDomain(row)
	return &p, nil
}

func (r *ParticipantRepository) Insert(ctx context.Context, participant *entities.Participant) error {
	if !domain.IsStorableVariant(participant.Variant) {
		return domain.ErrInvalidVariant
	}
	var row sqlc_generated.Participant
	err := r.inTx(ctx, func(q *sqlc_generated.Queries) error {
		var err error
		row, err = q.InsertParticipant(ctx, sqlc_generated.InsertParticipantParams{
			Identity:  participant.Identity,
			FirstName: participant.FirstName,
			LastName:  optionalText(participant.LastName),
			Handle:    optionalText(participant.Handle),
			Variant:   int32(participant.Variant),
		})
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		// ON CONFLICT DO NOTHING returned nothing: the identity is taken.
		return domain.ErrDuplicateIdentity
	}
	if err != nil {
		return fmt.Errorf("insert participant: %w", mapPgError(err))
	}
	participant.CreatedAt = pgtypeTimestamptzToTime(row.CreatedAt)
	participant.UpdatedAt = pgtypeTimestamptzToTime(row.UpdatedAt)
	return nil
}

func (r *ParticipantRepository) UpdateVariant(ctx context.Context, identity int64, variant int) (*entities.Participant, error) {
	if !domain.IsStorableVariant(variant) {
		return nil, domain.ErrInvalidVariant
	}
	var row sqlc_generated.Participant
	err := r.inTx(ctx, func(q *sqlc_generated.Queries) error {
		var err error
		row, err = q.UpdateParticipantVariant(ctx, sqlc_generated.UpdateParticipantVariantParams{
			Identity: identity,
			Variant:  int32(variant),
		})
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrParticipantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update participant variant: %w", mapPgError(err))
	}
	p := participantToDomain(row)
	return &p, nil
}

func (r *ParticipantRepository) ListAll(ctx context.Context) ([]entities.Participant, error) {
	rows, err := r.q.ListParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participantsToDomain(rows), nil
}

func (r *ParticipantRepository) ListByVariant(ctx context.Context, variant int) ([]entities.Participant, error) {
	rows, err := r.q.ListParticipantsByVariant(ctx, int32(variant))
	if err != nil {
		return nil, fmt.Errorf("list participants by variant: %w", err)
	}
	return participantsToDomain(rows), nil
}

func (r *ParticipantRepository) CountByVariant(ctx context.Context) (map[int]int, error) {
	rows, err := r.q.CountParticipantsByVariant(ctx)
	if err != nil {
		return nil, fmt.Errorf("count participants by variant: %w", err)
	}
	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[int(row.Variant)] = int(row.Total)
	}
	return counts, nil
}

// mapPgError turns constraint violations into domain errors.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return domain.ErrDuplicateIdentity
	case pgCheckViolation:
		return domain.ErrInvalidVariant
	default:
		return err
	}
}
