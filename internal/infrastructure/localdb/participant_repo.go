package localdb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rosterbot/internal/domain"
	"rosterbot/internal/domain/entities"
	"rosterbot/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

// ParticipantRepository implements output.ParticipantRepository with gorm on SQLite.
type ParticipantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) FindByIdentity(ctx context.Context, identity int64) (*entities.Participant, error) {
	var m participantModel
	err := r.db.WithContext(ctx).Where("identity = ?", identity).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrParticipantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find participant: %w", err)
	}
	p := m.toDomain()
	return &p, nil
}

func (r *ParticipantRepository) Insert(ctx context.Context, participant *entities.Participant) error {
	if !domain.IsStorableVariant(participant.Variant) {
		return domain.ErrInvalidVariant
	}
	m := toModel(participant)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identity"}},
			DoNothing: true,
		}).Create(&m)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrDuplicateIdentity
		}
		return nil
	})
	if errors.Is(err, domain.ErrDuplicateIdentity) {
		return err
	}
	if err != nil {
		return fmt.Errorf("create participant: %w", err)
	}
	participant.CreatedAt = m.CreatedAt
	participant.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ParticipantRepository) UpdateVariant(ctx context.Context, identity int64, variant int) (*entities.Participant, error) {
	if !domain.IsStorableVariant(variant) {
		return nil, domain.ErrInvalidVariant
	}
	var m participantModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("identity = ?", identity).First(&m).Error; err != nil {
			return err
		}
		if err := tx.Model(&m).Update("variant", variant).Error; err != nil {
			return err
		}
		m.Variant = variant
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrParticipantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update participant variant: %w", err)
	}
	p := m.toDomain()
	return &p, nil
}

func (r *ParticipantRepository) ListAll(ctx context.Context) ([]entities.Participant, error) {
	var models []participantModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return toDomainList(models), nil
}

func (r *ParticipantRepository) ListByVariant(ctx context.Context, variant int) ([]entities.Participant, error) {
	var models []participantModel
	if err := r.db.WithContext(ctx).Where("variant = ?", variant).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list participants by variant: %w", err)
	}
	return toDomainList(models), nil
}

func (r *ParticipantRepository) CountByVariant(ctx context.Context) (map[int]int, error) {
	var rows []struct {
		Variant int
		Total   int
	}
	err := r.db.WithContext(ctx).Model(&participantModel{}).
		Select("variant, count(*) AS total").
		Group("variant").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count participants by variant: %w", err)
	}
	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.Variant] = row.Total
	}
	return counts, nil
}
