package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/argus/internal/models"
)

// Catalog holds all static reference data: the signal rule set, tracked
// conflicts, alliances, scenario templates, and the actor table. Read-only
// after Load.
type Catalog struct {
	Signals   []models.SignalDefinition
	Conflicts []models.ConflictEntity
	Alliances []models.Alliance
	Scenarios []models.ScenarioTemplate
	Actors    []Actor

	signalsByCode map[string]*models.SignalDefinition
	actorsByCode  map[string]*Actor
}

// conflictOverlay is the TOML shape of a conflicts overlay file
type conflictOverlay struct {
	Conflicts []models.ConflictEntity `toml:"conflicts"`
	Alliances []models.Alliance       `toml:"alliances"`
}

// scenarioOverlay is the TOML shape of a scenarios overlay file
type scenarioOverlay struct {
	Scenarios []models.ScenarioTemplate `toml:"scenarios"`
}

// Load builds the catalog from the built-in tables plus any overlay
// directories, then validates every entry. Overlay entries with a known ID
// replace the built-in one; new IDs are appended.
func Load(conflictsDir, scenariosDir string, logger arbor.ILogger) (*Catalog, error) {
	c := &Catalog{
		Signals:   builtinSignals(),
		Conflicts: builtinConflicts(),
		Alliances: builtinAlliances(),
		Scenarios: builtinScenarios(),
		Actors:    builtinActors(),
	}

	if conflictsDir != "" {
		if err := c.loadConflictOverlays(conflictsDir, logger); err != nil {
			return nil, err
		}
	}
	if scenariosDir != "" {
		if err := c.loadScenarioOverlays(scenariosDir, logger); err != nil {
			return nil, err
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	c.buildIndexes()

	logger.Info().
		Int("signals", len(c.Signals)).
		Int("conflicts", len(c.Conflicts)).
		Int("alliances", len(c.Alliances)).
		Int("scenarios", len(c.Scenarios)).
		Msg("Catalog loaded")

	return c, nil
}

// LoadDefaults builds the catalog from built-in tables only. Used by tests
// and callers that do not configure overlay directories.
func LoadDefaults() *Catalog {
	c := &Catalog{
		Signals:   builtinSignals(),
		Conflicts: builtinConflicts(),
		Alliances: builtinAlliances(),
		Scenarios: builtinScenarios(),
		Actors:    builtinActors(),
	}
	c.buildIndexes()
	return c
}

func (c *Catalog) loadConflictOverlays(dir string, logger arbor.ILogger) error {
	files, err := tomlFiles(dir)
	if err != nil {
		return err
	}

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read conflict overlay %s: %w", path, err)
		}

		var overlay conflictOverlay
		if err := toml.Unmarshal(data, &overlay); err != nil {
			return fmt.Errorf("failed to parse conflict overlay %s: %w", path, err)
		}

		for _, conflict := range overlay.Conflicts {
			c.mergeConflict(conflict)
		}
		for _, alliance := range overlay.Alliances {
			c.mergeAlliance(alliance)
		}

		logger.Debug().
			Str("file", filepath.Base(path)).
			Int("conflicts", len(overlay.Conflicts)).
			Int("alliances", len(overlay.Alliances)).
			Msg("Conflict overlay loaded")
	}

	return nil
}

func (c *Catalog) loadScenarioOverlays(dir string, logger arbor.ILogger) error {
	files, err := tomlFiles(dir)
	if err != nil {
		return err
	}

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read scenario overlay %s: %w", path, err)
		}

		var overlay scenarioOverlay
		if err := toml.Unmarshal(data, &overlay); err != nil {
			return fmt.Errorf("failed to parse scenario overlay %s: %w", path, err)
		}

		for _, scenario := range overlay.Scenarios {
			c.mergeScenario(scenario)
		}

		logger.Debug().
			Str("file", filepath.Base(path)).
			Int("scenarios", len(overlay.Scenarios)).
			Msg("Scenario overlay loaded")
	}

	return nil
}

func (c *Catalog) mergeConflict(conflict models.ConflictEntity) {
	for i := range c.Conflicts {
		if c.Conflicts[i].ID == conflict.ID {
			c.Conflicts[i] = conflict
			return
		}
	}
	c.Conflicts = append(c.Conflicts, conflict)
}

func (c *Catalog) mergeAlliance(alliance models.Alliance) {
	for i := range c.Alliances {
		if c.Alliances[i].Code == alliance.Code {
			c.Alliances[i] = alliance
			return
		}
	}
	c.Alliances = append(c.Alliances, alliance)
}

func (c *Catalog) mergeScenario(scenario models.ScenarioTemplate) {
	for i := range c.Scenarios {
		if c.Scenarios[i].ID == scenario.ID {
			c.Scenarios[i] = scenario
			return
		}
	}
	c.Scenarios = append(c.Scenarios, scenario)
}

// validate checks every catalog entry with field-level rules. Reference
// data errors are configuration bugs; they fail startup rather than being
// skipped silently.
func (c *Catalog) validate() error {
	v := validator.New()

	for i := range c.Signals {
		if err := v.Struct(&c.Signals[i]); err != nil {
			return fmt.Errorf("invalid signal definition %q: %w", c.Signals[i].Code, err)
		}
	}
	for i := range c.Conflicts {
		if err := v.Struct(&c.Conflicts[i]); err != nil {
			return fmt.Errorf("invalid conflict %q: %w", c.Conflicts[i].ID, err)
		}
	}
	for i := range c.Alliances {
		if err := v.Struct(&c.Alliances[i]); err != nil {
			return fmt.Errorf("invalid alliance %q: %w", c.Alliances[i].Code, err)
		}
	}
	for i := range c.Scenarios {
		if err := v.Struct(&c.Scenarios[i]); err != nil {
			return fmt.Errorf("invalid scenario %q: %w", c.Scenarios[i].ID, err)
		}
	}
	for i := range c.Actors {
		if err := v.Struct(&c.Actors[i]); err != nil {
			return fmt.Errorf("invalid actor %q: %w", c.Actors[i].Code, err)
		}
	}

	return nil
}

func (c *Catalog) buildIndexes() {
	c.signalsByCode = make(map[string]*models.SignalDefinition, len(c.Signals))
	for i := range c.Signals {
		c.signalsByCode[c.Signals[i].Code] = &c.Signals[i]
	}
	c.actorsByCode = make(map[string]*Actor, len(c.Actors))
	for i := range c.Actors {
		c.actorsByCode[c.Actors[i].Code] = &c.Actors[i]
	}
}

// SignalByCode returns the definition for a signal code, or nil
func (c *Catalog) SignalByCode(code string) *models.SignalDefinition {
	return c.signalsByCode[code]
}

// ActorByCode returns the actor for a code, or nil
func (c *Catalog) ActorByCode(code string) *Actor {
	return c.actorsByCode[code]
}

// MatchConflict tests an unordered actor pair against the conflict table.
// Returns nil when no tracked conflict involves both actors.
func (c *Catalog) MatchConflict(actorA, actorB string) *models.ConflictEntity {
	if actorA == "" || actorB == "" || actorA == actorB {
		return nil
	}
	for i := range c.Conflicts {
		if c.Conflicts[i].Involves(actorA, actorB) {
			return &c.Conflicts[i]
		}
	}
	return nil
}

// Theatres returns the distinct theatre tags in conflict-definition order
func (c *Catalog) Theatres() []string {
	seen := make(map[string]bool)
	theatres := make([]string, 0)
	for i := range c.Conflicts {
		t := c.Conflicts[i].Theatre
		if !seen[t] {
			seen[t] = true
			theatres = append(theatres, t)
		}
	}
	return theatres
}

// ConflictsInTheatre returns the conflicts sharing a theatre tag
func (c *Catalog) ConflictsInTheatre(theatre string) []*models.ConflictEntity {
	conflicts := make([]*models.ConflictEntity, 0)
	for i := range c.Conflicts {
		if c.Conflicts[i].Theatre == theatre {
			conflicts = append(conflicts, &c.Conflicts[i])
		}
	}
	return conflicts
}

func tomlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read catalog directory %s: %w", dir, err)
	}

	files := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".toml") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
