package classifier

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ternarybob/argus/internal/catalog"
	"github.com/ternarybob/argus/internal/models"
)

var (
	killedPattern  = regexp.MustCompile(`(?i)\b(\d+)\s+(?:people\s+|soldiers\s+|civilians\s+)?(?:were\s+)?(?:killed|dead|died)\b`)
	woundedPattern = regexp.MustCompile(`(?i)\b(\d+)\s+(?:people\s+|others\s+|civilians\s+)?(?:were\s+)?(?:wounded|injured)\b`)
	civilianWords  = regexp.MustCompile(`(?i)\bcivilians?\b`)
)

// extractActors scans the text for known actors in order of appearance.
// The first actor mentioned is treated as the attacker and the second
// distinct actor as the target. Best effort: either side may be empty.
func extractActors(text string, actors []catalog.Actor) models.Actors {
	type hit struct {
		code  string
		index int
	}
	lower := strings.ToLower(text)
	var hits []hit
	for _, actor := range actors {
		best := -1
		for _, name := range append([]string{actor.Name}, actor.Aliases...) {
			idx := indexWord(lower, strings.ToLower(name))
			if idx >= 0 && (best < 0 || idx < best) {
				best = idx
			}
		}
		if best >= 0 {
			hits = append(hits, hit{code: actor.Code, index: best})
		}
	}
	// insertion sort by position: the list is short
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].index < hits[j-1].index; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	var result models.Actors
	if len(hits) > 0 {
		result.Attacker = hits[0].code
	}
	if len(hits) > 1 {
		result.Target = hits[1].code
	}
	return result
}

// extractCasualties pulls killed/wounded counts from the text. Returns
// nil when no counts are present.
func extractCasualties(text string) *models.Casualties {
	var casualties models.Casualties
	found := false
	if m := killedPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			casualties.Killed = n
			found = true
		}
	}
	if m := woundedPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			casualties.Wounded = n
			found = true
		}
	}
	if !found {
		return nil
	}
	casualties.Civilian = civilianWords.MatchString(text)
	return &casualties
}

// indexWord finds needle in haystack at a word boundary, or -1.
func indexWord(haystack, needle string) int {
	if needle == "" {
		return -1
	}
	from := 0
	for {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return -1
		}
		idx += from
		end := idx + len(needle)
		beforeOK := idx == 0 || !isLetter(haystack[idx-1])
		afterOK := end == len(haystack) || !isLetter(haystack[end])
		if beforeOK && afterOK {
			return idx
		}
		from = idx + 1
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
