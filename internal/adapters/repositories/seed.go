package repositories

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"landmark-route-service/internal/domain"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Dialect selects placeholder and upsert syntax.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// coordinate accepts a JSON number, a numeric string, an empty string or
// null. Anything unparsable decodes to nil and is rejected downstream.
type coordinate struct{ v *float64 }

func (c *coordinate) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		c.v = nil
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			c.v = nil
			return nil
		}
		c.v = &f
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		c.v = nil
		return nil
	}
	c.v = &f
	return nil
}

type latLng struct {
	Lat coordinate `json:"lat"`
	Lng coordinate `json:"lng"`
}

// seedLocation accepts both {"lat", "lng"} and {"coordinates": {"lat", "lng"}}.
type seedLocation struct {
	latLng
	Coordinates *latLng `json:"coordinates"`
}

// UnmarshalJSON leaves the location empty when it is not an object, so one
// odd entry never fails the whole feed.
func (l *seedLocation) UnmarshalJSON(b []byte) error {
	type plain seedLocation
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		*l = seedLocation{}
		return nil
	}
	*l = seedLocation(v)
	return nil
}

func (l *seedLocation) point() latLng {
	if l == nil {
		return latLng{}
	}
	if l.Coordinates != nil {
		return *l.Coordinates
	}
	return l.latLng
}

// LandmarkSeed is one feed entry. Coordinates may be flat or nested under
// location; flat values win when both are present.
type LandmarkSeed struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Lat      coordinate    `json:"lat"`
	Lng      coordinate    `json:"lng"`
	Location *seedLocation `json:"location"`
}

func (s LandmarkSeed) record() domain.LandmarkRecord {
	lat, lng := s.Lat.v, s.Lng.v
	if lat == nil && lng == nil {
		p := s.Location.point()
		lat, lng = p.Lat.v, p.Lng.v
	}
	return domain.LandmarkRecord{
		ID:   strings.TrimSpace(s.ID),
		Name: strings.TrimSpace(s.Name),
		Lat:  lat,
		Lng:  lng,
	}
}

// ParseLandmarks decodes a landmark feed. Records with bad coordinates or no
// name are kept; the routing graph decides what to skip.
func ParseLandmarks(data []byte) ([]domain.LandmarkRecord, error) {
	var seeds []LandmarkSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("parse landmarks: %w", err)
	}

	out := make([]domain.LandmarkRecord, 0, len(seeds))
	for _, s := range seeds {
		r := s.record()
		if r.ID == "" {
			r.ID = r.Name
		}
		out = append(out, r)
	}
	return out, nil
}

// SeedFromJSON loads the landmark feed at jsonPath into the landmarks table,
// replacing rows with the same id.
func SeedFromJSON(ctx context.Context, db *sql.DB, dialect Dialect, jsonPath string) (int, error) {
	if db == nil {
		return 0, errors.New("seed landmarks: DB is nil")
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed landmarks: read %q: %w", jsonPath, err)
	}

	rows, err := ParseLandmarks(data)
	if err != nil {
		return 0, fmt.Errorf("seed landmarks: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("seed landmarks: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO landmarks (id, name, lat, lng)
	VALUES (?, ?, ?, ?);
	`
	if dialect == Postgres {
		query = `
	INSERT INTO landmarks (id, name, lat, lng)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (id) DO UPDATE
	SET name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng;
	`
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("seed landmarks: prepare insert: %w", err)
	}
	defer stmt.Close()

	n := 0
	for _, r := range rows {
		// Rows are keyed by id and looked up by name; a nameless entry has neither.
		if r.Name == "" {
			slog.WarnContext(ctx, "skipping unnamed landmark", "id", r.ID, "path", jsonPath)
			continue
		}
		if _, err := stmt.ExecContext(ctx, r.ID, r.Name, nullFloat(r.Lat), nullFloat(r.Lng)); err != nil {
			return 0, fmt.Errorf("seed landmarks: insert id=%q: %w", r.ID, err)
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("seed landmarks: commit tx: %w", err)
	}

	return n, nil
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
