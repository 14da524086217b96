package repositories

import (
	"context"
	"fmt"
	"landmark-route-service/internal/domain"
	"os"
)

// JSONLandmarkRepository reads landmarks from a JSON feed on every call, so
// edits to the file are picked up without a restart.
type JSONLandmarkRepository struct {
	Path string
}

func NewJSONLandmarkRepository(path string) *JSONLandmarkRepository {
	return &JSONLandmarkRepository{Path: path}
}

func (j *JSONLandmarkRepository) ListLandmarks(ctx context.Context) ([]domain.LandmarkRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(j.Path)
	if err != nil {
		return nil, fmt.Errorf("list landmarks: read %q: %w", j.Path, err)
	}

	records, err := ParseLandmarks(data)
	if err != nil {
		return nil, fmt.Errorf("list landmarks: %w", err)
	}
	return records, nil
}
