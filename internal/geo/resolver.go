package geo

import (
	"strings"

	"github.com/ternarybob/argus/internal/catalog"
	"github.com/ternarybob/argus/internal/interfaces"
	"github.com/ternarybob/argus/internal/models"
)

// Resolution confidence per tier. Exact substring match beats fuzzy beats
// country centroid; the classifier folds these into frame confidence.
const (
	exactConfidence    = 0.90
	fuzzyConfidence    = 0.60
	centroidConfidence = 0.40

	// maxEditDistance bounds the fuzzy tier. Two edits absorbs common
	// transliteration drift (Odesa/Odessa) without matching unrelated names.
	maxEditDistance  = 2
	minFuzzyTokenLen = 5
)

// Resolver resolves free text to coordinates via the gazetteer:
// exact name match, then bounded edit-distance fuzzy match, then country
// centroid from the actor table.
type Resolver struct {
	places []Place
	actors []catalog.Actor
}

// NewResolver creates a gazetteer-backed resolver
func NewResolver(cat *catalog.Catalog) interfaces.GeoResolver {
	return &Resolver{
		places: builtinPlaces(),
		actors: cat.Actors,
	}
}

// Resolve returns the best location for the text, or nil when nothing in
// the text resolves at any tier.
func (r *Resolver) Resolve(text string) (*models.ResolvedLocation, error) {
	if text == "" {
		return nil, nil
	}
	lower := strings.ToLower(text)

	if loc := r.resolveExact(lower); loc != nil {
		return loc, nil
	}
	if loc := r.resolveFuzzy(lower); loc != nil {
		return loc, nil
	}
	if loc := r.resolveCentroid(lower); loc != nil {
		return loc, nil
	}

	return nil, nil
}

func (r *Resolver) resolveExact(lower string) *models.ResolvedLocation {
	for i := range r.places {
		p := &r.places[i]
		if containsWord(lower, p.Name) {
			return &models.ResolvedLocation{
				Name:       p.Name,
				Country:    p.Country,
				Lat:        p.Lat,
				Lon:        p.Lon,
				Precision:  models.PrecisionExact,
				Confidence: exactConfidence,
				Strategic:  p.Strategic,
			}
		}
	}
	return nil
}

func (r *Resolver) resolveFuzzy(lower string) *models.ResolvedLocation {
	tokens := tokenize(lower)

	var best *Place
	bestDist := maxEditDistance + 1

	for i := range r.places {
		p := &r.places[i]
		// Multi-word place names are only matched exactly
		if strings.ContainsRune(p.Name, ' ') {
			continue
		}
		for _, token := range tokens {
			if len(token) < minFuzzyTokenLen {
				continue
			}
			dist := editDistance(token, p.Name)
			if dist > 0 && dist < bestDist {
				bestDist = dist
				best = p
			}
		}
	}

	if best == nil {
		return nil
	}
	return &models.ResolvedLocation{
		Name:       best.Name,
		Country:    best.Country,
		Lat:        best.Lat,
		Lon:        best.Lon,
		Precision:  models.PrecisionFuzzy,
		Confidence: fuzzyConfidence,
		Strategic:  best.Strategic,
	}
}

func (r *Resolver) resolveCentroid(lower string) *models.ResolvedLocation {
	for i := range r.actors {
		a := &r.actors[i]
		if containsWord(lower, strings.ToLower(a.Name)) {
			return centroidLocation(a)
		}
		for _, alias := range a.Aliases {
			if containsWord(lower, alias) {
				return centroidLocation(a)
			}
		}
	}
	return nil
}

func centroidLocation(a *catalog.Actor) *models.ResolvedLocation {
	return &models.ResolvedLocation{
		Name:       a.Name,
		Country:    a.Code,
		Lat:        a.Lat,
		Lon:        a.Lon,
		Precision:  models.PrecisionCentroid,
		Confidence: centroidConfidence,
	}
}

// containsWord reports whether needle occurs in haystack on word
// boundaries. A plain substring scan would let "iran" match inside
// "tehran", so both sides of the hit are boundary-checked.
func containsWord(haystack, needle string) bool {
	idx := 0
	for {
		pos := strings.Index(haystack[idx:], needle)
		if pos < 0 {
			return false
		}
		pos += idx

		beforeOK := pos == 0 || !isWordChar(haystack[pos-1])
		afterPos := pos + len(needle)
		afterOK := afterPos >= len(haystack) || !isWordChar(haystack[afterPos])
		if beforeOK && afterOK {
			return true
		}
		idx = pos + 1
		if idx >= len(haystack) {
			return false
		}
	}
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-')
	})
}

// editDistance computes Levenshtein distance, early-exiting via the usual
// two-row rolling computation. Inputs are short (place names).
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, minInt(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
