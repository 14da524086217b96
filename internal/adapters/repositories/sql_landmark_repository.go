package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"landmark-route-service/internal/domain"
	"landmark-route-service/internal/platform/obs"
)

// SQL-backed implementation of the LandmarkRepository port. The query is
// portable across SQLite and Postgres.
type SQLLandmarkRepository struct{ DB *sql.DB }

func NewSQLLandmarkRepository(db *sql.DB) *SQLLandmarkRepository {
	return &SQLLandmarkRepository{DB: db}
}

// Return all landmarks stored in the database, ordered by name.
func (s *SQLLandmarkRepository) ListLandmarks(ctx context.Context) (_ []domain.LandmarkRecord, err error) {
	defer obs.Time(ctx, "landmarks.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql landmark repository: DB is nil")
	}

	query := `
	SELECT
		id,
		name,
		lat,
		lng
	FROM landmarks
	ORDER BY name, id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list landmarks: query landmarks table: %w", err)
	}
	defer rows.Close()

	landmarks := make([]domain.LandmarkRecord, 0, 32)
	for rows.Next() {
		var id, name string
		var lat, lng sql.NullFloat64
		if err := rows.Scan(&id, &name, &lat, &lng); err != nil {
			return nil, fmt.Errorf("list landmarks: scan row: %w", err)
		}

		r := domain.LandmarkRecord{ID: id, Name: name}
		if lat.Valid {
			r.Lat = &lat.Float64
		}
		if lng.Valid {
			r.Lng = &lng.Float64
		}
		landmarks = append(landmarks, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list landmarks: row iteration: %w", err)
	}

	return landmarks, nil
}
