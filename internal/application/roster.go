package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rosterbot/internal/domain"
	"rosterbot/internal/domain/entities"
	"rosterbot/internal/ports/input"
	"rosterbot/internal/ports/output"
)

var _ input.RosterUseCase = (*RosterService)(nil)

// DefaultRepoTimeout bounds each repository call when none is configured.
const DefaultRepoTimeout = 5 * time.Second

// RosterService implements the roster use cases on top of a
// ParticipantRepository. It holds no state of its own.
type RosterService struct {
	participantRepo output.ParticipantRepository
	timeout         time.Duration
}

func NewRosterService(participantRepo output.ParticipantRepository, timeout time.Duration) *RosterService {
	if timeout <= 0 {
		timeout = DefaultRepoTimeout
	}
	return &RosterService{
		participantRepo: participantRepo,
		timeout:         timeout,
	}
}

// Register creates the participant with an unassigned variant. Calling it
// again for the same identity changes nothing.
func (s *RosterService) Register(ctx context.Context, identity int64, profile entities.Profile) (domain.Result, error) {
	existing, err := s.find(ctx, identity)
	if err == nil {
		return domain.Result{Kind: domain.ResultAlreadyRegistered, Participant: existing, Variant: existing.Variant}, nil
	}
	if !errors.Is(err, domain.ErrParticipantNotFound) {
		return domain.Result{}, err
	}

	participant := entities.NewParticipant(identity, profile, domain.VariantUnassigned)
	err = s.insert(ctx, participant)
	switch {
	case err == nil:
		return domain.Result{Kind: domain.ResultRegistered, Participant: participant, Variant: participant.Variant}, nil
	case errors.Is(err, domain.ErrDuplicateIdentity):
		// Another command registered this identity between find and insert.
		winner, err := s.find(ctx, identity)
		if err != nil {
			return domain.Result{}, err
		}
		return domain.Result{Kind: domain.ResultAlreadyRegistered, Participant: winner, Variant: winner.Variant}, nil
	default:
		return domain.Result{}, err
	}
}

// SetVariant validates rawArg and stores it as the participant's variant,
// registering the participant first if needed.
func (s *RosterService) SetVariant(ctx context.Context, identity int64, profile entities.Profile, rawArg string) (domain.Result, error) {
	variant, err := domain.ParseVariant(rawArg)
	if err != nil {
		return domain.Result{}, err
	}

	_, err = s.find(ctx, identity)
	if err == nil {
		return s.overwriteVariant(ctx, identity, variant)
	}
	if !errors.Is(err, domain.ErrParticipantNotFound) {
		return domain.Result{}, err
	}

	participant := entities.NewParticipant(identity, profile, variant)
	err = s.insert(ctx, participant)
	switch {
	case err == nil:
		return domain.Result{Kind: domain.ResultVariantSet, Participant: participant, Variant: variant}, nil
	case errors.Is(err, domain.ErrDuplicateIdentity):
		return s.overwriteVariant(ctx, identity, variant)
	default:
		return domain.Result{}, err
	}
}

func (s *RosterService) overwriteVariant(ctx context.Context, identity int64, variant int) (domain.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	participant, err := s.participantRepo.UpdateVariant(ctx, identity, variant)
	if err != nil {
		return domain.Result{}, repoError("update variant", err)
	}
	return domain.Result{Kind: domain.ResultVariantChanged, Participant: participant, Variant: participant.Variant}, nil
}

// ListAll returns the whole roster in insertion order.
func (s *RosterService) ListAll(ctx context.Context) (domain.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	participants, err := s.participantRepo.ListAll(ctx)
	if err != nil {
		return domain.Result{}, repoError("list all", err)
	}
	if len(participants) == 0 {
		return domain.Result{Kind: domain.ResultRosterEmpty}, nil
	}
	return domain.Result{Kind: domain.ResultRoster, Participants: participants}, nil
}

// ListMyVariant returns everyone sharing the caller's variant, caller included.
func (s *RosterService) ListMyVariant(ctx context.Context, identity int64) (domain.Result, error) {
	caller, err := s.find(ctx, identity)
	if errors.Is(err, domain.ErrParticipantNotFound) {
		return domain.Result{}, domain.ErrNotRegistered
	}
	if err != nil {
		return domain.Result{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	peers, err := s.participantRepo.ListByVariant(ctx, caller.Variant)
	if err != nil {
		return domain.Result{}, repoError("list by variant", err)
	}
	if len(peers) == 0 {
		return domain.Result{Kind: domain.ResultVariantEmpty, Participant: caller, Variant: caller.Variant}, nil
	}
	return domain.Result{Kind: domain.ResultVariantPeers, Participant: caller, Participants: peers, Variant: caller.Variant}, nil
}

// Summary counts the roster per variant.
func (s *RosterService) Summary(ctx context.Context) (domain.Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	counts, err := s.participantRepo.CountByVariant(ctx)
	if err != nil {
		return domain.Summary{}, repoError("count by variant", err)
	}
	summary := domain.Summary{ByVariant: counts}
	for _, n := range counts {
		summary.Total += n
	}
	return summary, nil
}

func (s *RosterService) find(ctx context.Context, identity int64) (*entities.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	participant, err := s.participantRepo.FindByIdentity(ctx, identity)
	if err != nil {
		return nil, repoError("find participant", err)
	}
	return participant, nil
}

func (s *RosterService) insert(ctx context.Context, participant *entities.Participant) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return repoError("insert participant", s.participantRepo.Insert(ctx, participant))
}

// repoError keeps domain sentinels as they are and marks everything else as
// a transient failure.
func repoError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrParticipantNotFound),
		errors.Is(err, domain.ErrDuplicateIdentity),
		errors.Is(err, domain.ErrInvalidArgument):
		return err
	default:
		return fmt.Errorf("%w: %s: %w", domain.ErrUnavailable, op, err)
	}
}
