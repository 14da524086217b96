package roads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"landmark-route-service/internal/domain"
	"landmark-route-service/internal/platform/obs"
	"landmark-route-service/internal/ports"
	"net/http"
	"strings"
	"time"

	"github.com/paulmach/orb/geojson"
)

// DefaultORSBaseURL is the hosted OpenRouteService API.
const DefaultORSBaseURL = "https://api.openrouteservice.org"

// ORSProvider implements RoadRouteProvider using the OpenRouteService
// directions endpoint. It requires an API key.
type ORSProvider struct {
	client
	baseURL string
	profile string
}

func NewORSProvider(apiKey, baseURL string, timeout time.Duration, maxAttempts int) (*ORSProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ORS api key is empty")
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultORSBaseURL
	}

	return &ORSProvider{
		client:  newClient(map[string]string{"Authorization": apiKey}, timeout, maxAttempts),
		baseURL: baseURL,
		profile: "driving-car",
	}, nil
}

type directionsRequest struct {
	Coordinates  [][]float64 `json:"coordinates"`
	Instructions bool        `json:"instructions"`
}

func (o *ORSProvider) Route(
	ctx context.Context,
	waypoints []domain.Coordinates,
) (_ []domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.Route")(&err)

	if len(waypoints) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 waypoints, got %d", ports.ErrRoutingUnavailable, len(waypoints))
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", o.baseURL, o.profile)

	coords := make([][]float64, 0, len(waypoints))
	for _, w := range waypoints {
		coords = append(coords, w.CoordsToList())
	}

	payload, err := json.Marshal(directionsRequest{Coordinates: coords})
	if err != nil {
		return nil, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("%w: directions request: %w", ports.ErrRoutingUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read directions response: %w", ports.ErrRoutingUnavailable, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, fmt.Errorf("%w: decode directions response: %w", ports.ErrRoutingUnavailable, err)
	}
	if len(fc.Features) == 0 || fc.Features[0].Geometry == nil {
		return nil, fmt.Errorf("%w: directions returned no features", ports.ErrRoutingUnavailable)
	}

	line, err := lineCoordinates(fc.Features[0].Geometry)
	if err != nil {
		return nil, fmt.Errorf("%w: directions: %w", ports.ErrRoutingUnavailable, err)
	}

	return line, nil
}
