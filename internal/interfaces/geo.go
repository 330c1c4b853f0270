package interfaces

import "github.com/ternarybob/argus/internal/models"

// GeoResolver resolves free text to coordinates. Returns (nil, nil) when
// nothing in the text resolves; events without a resolvable location are
// skipped, never persisted with null coordinates.
type GeoResolver interface {
	Resolve(text string) (*models.ResolvedLocation, error)
}
