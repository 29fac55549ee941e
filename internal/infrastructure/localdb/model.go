package localdb

import (
	"time"

	"rosterbot/internal/domain/entities"
)

// participantModel mirrors the PostgreSQL participants table.
type participantModel struct {
	ID        uint   `gorm:"primaryKey"`
	Identity  int64  `gorm:"uniqueIndex;not null"`
	FirstName string `gorm:"not null"`
	LastName  *string
	Handle    *string
	Variant   int `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (participantModel) TableName() string { return "participants" }

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toModel(p *entities.Participant) participantModel {
	return participantModel{
		Identity:  p.Identity,
		FirstName: p.FirstName,
		LastName:  optional(p.LastName),
		Handle:    optional(p.Handle),
		Variant:   p.Variant,
	}
}

func (m participantModel) toDomain() entities.Participant {
	return entities.Participant{
		Identity:  m.Identity,
		FirstName: m.FirstName,
		LastName:  deref(m.LastName),
		Handle:    deref(m.Handle),
		Variant:   m.Variant,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDomainList(models []participantModel) []entities.Participant {
	out := make([]entities.Participant, len(models))
	for i := range models {
		out[i] = models[i].toDomain()
	}
	return out
}
