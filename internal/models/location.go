package models

// LocationPrecision tags how a location was resolved
type LocationPrecision string

const (
	PrecisionExact    LocationPrecision = "exact"    // Direct gazetteer name match
	PrecisionFuzzy    LocationPrecision = "fuzzy"    // Edit-distance match
	PrecisionCentroid LocationPrecision = "centroid" // Country centroid fallback
)

// ResolvedLocation is the output of geo resolution
type ResolvedLocation struct {
	Name       string            `json:"name"`
	Country    string            `json:"country"` // Actor/country code, e.g. "UA"
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Precision  LocationPrecision `json:"precision"`
	Confidence float64           `json:"confidence"` // 0-1
	Strategic  bool              `json:"strategic"`  // Known strategic site
}
