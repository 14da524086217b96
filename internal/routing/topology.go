package routing

// Topology is a hand-authored adjacency list naming which landmarks are
// directly road-connected. Pairs naming landmarks absent from the feed are
// ignored; listing a pair in one direction is enough.
type Topology map[string][]string

// BaganTopology is the curated road network between the Bagan temples.
var BaganTopology = Topology{
	// central plain
	"Ananda Temple":      {"Thatbyinnyu Temple", "Gawdawpalin Temple", "Shwe Gu Gyi", "Mahazedi Pagoda", "Dhammayangyi Temple", "Sulamani Temple"},
	"Thatbyinnyu Temple": {"Ananda Temple", "Gawdawpalin Temple", "Shwe Gu Gyi", "Mahazedi Pagoda", "Htilominlo Temple"},
	"Gawdawpalin Temple": {"Ananda Temple", "Thatbyinnyu Temple", "BuPaya Pagoda", "Shwe Gu Gyi", "Mahazedi Pagoda"},
	"Shwe Gu Gyi":        {"Ananda Temple", "Thatbyinnyu Temple", "Gawdawpalin Temple", "Mahazedi Pagoda", "Dhammayangyi Temple"},
	"Mahazedi Pagoda":    {"Ananda Temple", "Thatbyinnyu Temple", "Shwe Gu Gyi", "BuPaya Pagoda", "Dhammayangyi Temple"},
	"BuPaya Pagoda":      {"Gawdawpalin Temple", "Mahazedi Pagoda", "Lawkananda Pagoda", "Dhammayangyi Temple"},

	// east
	"Dhammayangyi Temple":       {"Ananda Temple", "Sulamani Temple", "Manuha Temple", "Gu Byauk Gyi Pagoda", "Shwe Gu Gyi", "Mahazedi Pagoda", "BuPaya Pagoda"},
	"Sulamani Temple":           {"Ananda Temple", "Dhammayangyi Temple", "Manuha Temple", "Gu Byauk Gyi Pagoda", "Pyathetgyi Temple", "Thambula Temple"},
	"Manuha Temple":             {"Dhammayangyi Temple", "Sulamani Temple", "Gu Byauk Gyi Pagoda", "Sein Nyet NyiAma Gu Phaya"},
	"Gu Byauk Gyi Pagoda":       {"Dhammayangyi Temple", "Sulamani Temple", "Manuha Temple", "Sein Nyet NyiAma Gu Phaya", "Pyathetgyi Temple"},
	"Sein Nyet NyiAma Gu Phaya": {"Gu Byauk Gyi Pagoda", "Pyathetgyi Temple", "Manuha Temple"},
	"Pyathetgyi Temple":         {"Sulamani Temple", "Sein Nyet NyiAma Gu Phaya", "Dhammayazaka Pagoda", "Gu Byauk Gyi Pagoda", "Thambula Temple"},
	"Dhammayazaka Pagoda":       {"Pyathetgyi Temple", "Lawkananda Pagoda", "Thambula Temple"},

	// north
	"Shwezigon Pagoda":  {"Htilominlo Temple", "Alodawpyae Pagoda", "Thatbyinnyu Temple"},
	"Htilominlo Temple": {"Shwezigon Pagoda", "Alodawpyae Pagoda", "Thatbyinnyu Temple"},
	"Alodawpyae Pagoda": {"Shwezigon Pagoda", "Htilominlo Temple", "Thatbyinnyu Temple"},

	// south
	"Lawkananda Pagoda": {"BuPaya Pagoda", "Dhammayazaka Pagoda", "Thambula Temple"},
	"Thambula Temple":   {"Lawkananda Pagoda", "Iza Gawna Pagoda", "Sulamani Temple", "Pyathetgyi Temple", "Dhammayazaka Pagoda"},
	"Iza Gawna Pagoda":  {"Thambula Temple"},
}
