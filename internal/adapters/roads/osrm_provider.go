package roads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"landmark-route-service/internal/domain"
	"landmark-route-service/internal/platform/obs"
	"landmark-route-service/internal/ports"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// DefaultOSRMBaseURL is the public OSRM demo server.
const DefaultOSRMBaseURL = "https://router.project-osrm.org"

// OSRMProvider implements RoadRouteProvider against the OSRM route service.
//
// One request covers the whole waypoint list; the first route's full
// overview geometry is returned. The provider is safe for concurrent use.
type OSRMProvider struct {
	client
	baseURL string
	profile string
}

func NewOSRMProvider(baseURL string, timeout time.Duration, maxAttempts int) (*OSRMProvider, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultOSRMBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("OSRM base url %q: %w", baseURL, err)
	}

	return &OSRMProvider{
		client:  newClient(nil, timeout, maxAttempts),
		baseURL: baseURL,
		profile: "driving",
	}, nil
}

type osrmResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64           `json:"distance"`
		Geometry *geojson.Geometry `json:"geometry"`
	} `json:"routes"`
}

func (o *OSRMProvider) Route(
	ctx context.Context,
	waypoints []domain.Coordinates,
) (_ []domain.Coordinates, err error) {
	defer obs.Time(ctx, "osrm.Route")(&err)

	if len(waypoints) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 waypoints, got %d", ports.ErrRoutingUnavailable, len(waypoints))
	}

	endpoint := o.endpoint(waypoints)

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: osrm request: %w", ports.ErrRoutingUnavailable, err)
	}
	defer resp.Body.Close()

	var parsed osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decode osrm response: %w", ports.ErrRoutingUnavailable, err)
	}

	if parsed.Code != "Ok" {
		return nil, fmt.Errorf("%w: osrm code %q: %s", ports.ErrRoutingUnavailable, parsed.Code, parsed.Message)
	}
	if len(parsed.Routes) == 0 || parsed.Routes[0].Geometry == nil {
		return nil, fmt.Errorf("%w: osrm returned no route geometry", ports.ErrRoutingUnavailable)
	}

	coords, err := lineCoordinates(parsed.Routes[0].Geometry.Geometry())
	if err != nil {
		return nil, fmt.Errorf("%w: osrm: %w", ports.ErrRoutingUnavailable, err)
	}

	return coords, nil
}

// endpoint builds the route URL; OSRM takes "lng,lat" pairs joined by ';'.
func (o *OSRMProvider) endpoint(waypoints []domain.Coordinates) string {
	pairs := make([]string, 0, len(waypoints))
	for _, w := range waypoints {
		pairs = append(pairs,
			strconv.FormatFloat(w.Lng, 'f', -1, 64)+","+strconv.FormatFloat(w.Lat, 'f', -1, 64))
	}

	q := url.Values{}
	q.Set("overview", "full")
	q.Set("geometries", "geojson")
	q.Set("steps", "false")
	q.Set("annotations", "false")
	q.Set("continue_straight", "false")

	return fmt.Sprintf("%s/route/v1/%s/%s?%s", o.baseURL, o.profile, strings.Join(pairs, ";"), q.Encode())
}

var errNotLineString = errors.New("geometry is not a LineString")

func lineCoordinates(g orb.Geometry) ([]domain.Coordinates, error) {
	switch ls := g.(type) {
	case orb.LineString:
		if len(ls) < 2 {
			return nil, fmt.Errorf("line has %d points", len(ls))
		}
		return domain.CoordinatesFromLineString(ls), nil
	case orb.MultiLineString:
		var joined orb.LineString
		for _, part := range ls {
			joined = append(joined, part...)
		}
		return lineCoordinates(joined)
	default:
		return nil, errNotLineString
	}
}
