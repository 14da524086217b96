package routing

import (
	"context"
	"landmark-route-service/internal/domain"
)

// kmPerDegreeLat is the length of one degree of latitude on the haversine sphere.
const kmPerDegreeLat = 6371.0 * 3.141592653589793 / 180.0

func northOf(c domain.Coordinates, km float64) domain.Coordinates {
	return domain.Coordinates{Lat: c.Lat + km/kmPerDegreeLat, Lng: c.Lng}
}

func landmarkAt(name string, c domain.Coordinates) domain.LandmarkRecord {
	return domain.NewLandmark(name, name, c.Lat, c.Lng)
}

func baganRecords() []domain.LandmarkRecord {
	return []domain.LandmarkRecord{
		domain.NewLandmark("ananda", "Ananda Temple", 21.170806, 94.867856),
		domain.NewLandmark("thatbyinnyu", "Thatbyinnyu Temple", 21.1665, 94.8575),
		domain.NewLandmark("gawdawpalin", "Gawdawpalin Temple", 21.173, 94.857),
		domain.NewLandmark("shwe-gu-gyi", "Shwe Gu Gyi", 21.1655, 94.861),
		domain.NewLandmark("mahazedi", "Mahazedi Pagoda", 21.164, 94.865),
		domain.NewLandmark("bupaya", "BuPaya Pagoda", 21.1763, 94.8534),
		domain.NewLandmark("dhammayangyi", "Dhammayangyi Temple", 21.1618, 94.8716),
		domain.NewLandmark("sulamani", "Sulamani Temple", 21.1609, 94.8797),
		domain.NewLandmark("manuha", "Manuha Temple", 21.1508, 94.8629),
		domain.NewLandmark("gubyaukgyi", "Gu Byauk Gyi Pagoda", 21.1521, 94.8665),
		domain.NewLandmark("sein-nyet", "Sein Nyet NyiAma Gu Phaya", 21.1432, 94.8778),
		domain.NewLandmark("pyathetgyi", "Pyathetgyi Temple", 21.1557, 94.8962),
		domain.NewLandmark("dhammayazaka", "Dhammayazaka Pagoda", 21.1468, 94.8921),
		domain.NewLandmark("shwezigon", "Shwezigon Pagoda", 21.1962, 94.8935),
		domain.NewLandmark("htilominlo", "Htilominlo Temple", 21.1797, 94.8742),
		domain.NewLandmark("alodawpyae", "Alodawpyae Pagoda", 21.1812, 94.8778),
		domain.NewLandmark("lawkananda", "Lawkananda Pagoda", 21.1283, 94.8668),
		domain.NewLandmark("thambula", "Thambula Temple", 21.1562, 94.8847),
		domain.NewLandmark("iza-gawna", "Iza Gawna Pagoda", 21.1525, 94.8915),
		{ID: "minochantha", Name: "Minochantha Stupa Group"},
	}
}

type providerFunc func(ctx context.Context, waypoints []domain.Coordinates) ([]domain.Coordinates, error)

func (f providerFunc) Route(ctx context.Context, waypoints []domain.Coordinates) ([]domain.Coordinates, error) {
	return f(ctx, waypoints)
}
