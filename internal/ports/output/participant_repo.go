package output

import (
	"context"

	"rosterbot/internal/domain/entities"
)

// ParticipantRepository owns persistent participant records. Every mutating
// call is a single atomic unit of work.
type ParticipantRepository interface {
	// FindByIdentity returns domain.ErrParticipantNotFound when absent.
	FindByIdentity(ctx context.Context, identity int64) (*entities.Participant, error)
	// Insert returns domain.ErrDuplicateIdentity when the identity is taken.
	Insert(ctx context.Context, participant *entities.Participant) error
	// UpdateVariant returns domain.ErrParticipantNotFound for unknown identities.
	UpdateVariant(ctx context.Context, identity int64, variant int) (*entities.Participant, error)
	// ListAll returns every participant in insertion order.
	ListAll(ctx context.Context) ([]entities.Participant, error)
	ListByVariant(ctx context.Context, variant int) ([]entities.Participant, error)
	CountByVariant(ctx context.Context) (map[int]int, error)
}
