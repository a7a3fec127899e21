package postgres

import (
	"database/sql"

	"github.com/heyemlee/quicklink-app/internal/domain"
)

// scannable is the interface satisfied by both *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// scanEvent scans a row in eventColumns order.
func scanEvent(row scannable) (*domain.Event, error) {
	var (
		e            domain.Event
		eventType    string
		platform     sql.NullString
		platformType sql.NullString
		visitorID    sql.NullString
	)

	err := row.Scan(
		&e.ID,
		&e.OwnerID,
		&eventType,
		&platform,
		&platformType,
		&visitorID,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.EventType = domain.EventType(eventType)
	if platform.Valid {
		e.Platform = &platform.String
	}
	if platformType.Valid {
		pt := domain.PlatformType(platformType.String)
		e.PlatformType = &pt
	}
	if visitorID.Valid {
		e.VisitorID = &visitorID.String
	}

	return &e, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
