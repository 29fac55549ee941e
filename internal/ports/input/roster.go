package input

import (
	"context"

	"rosterbot/internal/domain"
	"rosterbot/internal/domain/entities"
)

type RosterUseCase interface {
	Register(ctx context.Context, identity int64, profile entities.Profile) (domain.Result, error)
	SetVariant(ctx context.Context, identity int64, profile entities.Profile, rawArg string) (domain.Result, error)
	ListAll(ctx context.Context) (domain.Result, error)
	ListMyVariant(ctx context.Context, identity int64) (domain.Result, error)
	Summary(ctx context.Context) (domain.Summary, error)
}
