package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"rosterbot/internal/domain/entities"
	"rosterbot/internal/infrastructure/database/sqlc_generated"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// optionalText maps "" to SQL NULL.
func optionalText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func participantToDomain(p sqlc_generated.Participant) entities.Participant {
	return entities.Participant{
		Identity:  p.Identity,
		FirstName: p.FirstName,
		LastName:  p.LastName.String,
		Handle:    p.Handle.String,
		Variant:   int(p.Variant),
		CreatedAt: pgtypeTimestamptzToTime(p.CreatedAt),
		UpdatedAt: pgtypeTimestamptzToTime(p.UpdatedAt),
	}
}

func participantsToDomain(rows []sqlc_generated.Participant) []entities.Participant {
	out := make([]entities.Participant, len(rows))
	for i := range rows {
		out[i] = participantToDomain(rows[i])
	}
	return out
}
