package badger

import (
	"context"
	"testing"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/argus/internal/models"
)

func TestStateStorageConflictState(t *testing.T) {
	db := newTestDB(t)
	storage := NewStateStorage(db, arbor.NewLogger())
	ctx := context.Background()

	got, err := storage.GetConflictState(ctx, "ru-ua")
	if err != nil {
		t.Fatalf("GetConflictState failed: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v before first cycle, want nil", got)
	}

	state := &models.ConflictStateLive{
		ConflictID: "ru-ua",
		Tension:    0.8,
		Heat:       0.5,
		Pressure:   0.75,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := storage.SaveConflictState(ctx, state); err != nil {
		t.Fatalf("SaveConflictState failed: %v", err)
	}

	got, err = storage.GetConflictState(ctx, "ru-ua")
	if err != nil {
		t.Fatalf("GetConflictState failed: %v", err)
	}
	if got == nil || got.Tension != 0.8 {
		t.Fatalf("got %+v, want saved state", got)
	}

	// Ranks are written back separately by the theatre rollup
	if err := storage.UpdateTheatreRank(ctx, "ru-ua", 1); err != nil {
		t.Fatalf("UpdateTheatreRank failed: %v", err)
	}
	got, err = storage.GetConflictState(ctx, "ru-ua")
	if err != nil {
		t.Fatalf("GetConflictState failed: %v", err)
	}
	if got.TheatreRank != 1 {
		t.Errorf("TheatreRank = %d, want 1", got.TheatreRank)
	}
	if got.Tension != 0.8 {
		t.Errorf("Tension = %v after rank update, want 0.8 untouched", got.Tension)
	}

	// Saving again replaces the singleton row
	state.Tension = 0.4
	if err := storage.SaveConflictState(ctx, state); err != nil {
		t.Fatalf("second SaveConflictState failed: %v", err)
	}
	all, err := storage.GetAllConflictStates(ctx)
	if err != nil {
		t.Fatalf("GetAllConflictStates failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d state rows, want 1", len(all))
	}
}

func TestStateStorageTheatreAndAlliance(t *testing.T) {
	db := newTestDB(t)
	storage := NewStateStorage(db, arbor.NewLogger())
	ctx := context.Background()

	if got, err := storage.GetTheatreState(ctx, "middle_east"); err != nil || got != nil {
		t.Fatalf("GetTheatreState = (%+v, %v), want (nil, nil)", got, err)
	}

	theatre := &models.TheatreStateLive{
		Theatre:         "middle_east",
		Tension:         0.7,
		ActiveConflicts: 3,
		DominantActors:  []string{"IL", "IR"},
		UpdatedAt:       time.Now().UTC(),
	}
	if err := storage.SaveTheatreState(ctx, theatre); err != nil {
		t.Fatalf("SaveTheatreState failed: %v", err)
	}
	got, err := storage.GetTheatreState(ctx, "middle_east")
	if err != nil {
		t.Fatalf("GetTheatreState failed: %v", err)
	}
	if got == nil || got.ActiveConflicts != 3 || len(got.DominantActors) != 2 {
		t.Errorf("got %+v, want saved theatre state", got)
	}

	pressure := &models.AlliancePressureLive{
		AllianceCode:    "NATO",
		Pressure:        0.6,
		TopConflicts:    []string{"ru-ua"},
		AffectedMembers: []string{"PL"},
		UpdatedAt:       time.Now().UTC(),
	}
	if err := storage.SaveAlliancePressure(ctx, pressure); err != nil {
		t.Fatalf("SaveAlliancePressure failed: %v", err)
	}
	gotPressure, err := storage.GetAlliancePressure(ctx, "NATO")
	if err != nil {
		t.Fatalf("GetAlliancePressure failed: %v", err)
	}
	if gotPressure == nil || gotPressure.Pressure != 0.6 {
		t.Errorf("got %+v, want saved pressure", gotPressure)
	}
}

func TestScenarioStorageOverwrite(t *testing.T) {
	db := newTestDB(t)
	storage := NewScenarioStorage(db, arbor.NewLogger())
	ctx := context.Background()

	if got, err := storage.GetScore(ctx, "scn-us-iran-direct"); err != nil || got != nil {
		t.Fatalf("GetScore = (%+v, %v), want (nil, nil)", got, err)
	}

	first := &models.ScenarioScore{
		ScenarioID:    "scn-us-iran-direct",
		Probability:   0.10,
		Trend:         models.TrendStable,
		ActiveSignals: []string{"SIG_STRIKE_US_IRAN"},
		ComputedAt:    time.Now().UTC(),
	}
	if err := storage.SaveScore(ctx, first); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}

	second := &models.ScenarioScore{
		ScenarioID:  "scn-us-iran-direct",
		Probability: 0.18,
		Trend:       models.TrendRising,
		ComputedAt:  time.Now().UTC(),
	}
	if err := storage.SaveScore(ctx, second); err != nil {
		t.Fatalf("second SaveScore failed: %v", err)
	}

	got, err := storage.GetScore(ctx, "scn-us-iran-direct")
	if err != nil {
		t.Fatalf("GetScore failed: %v", err)
	}
	if got.Probability != 0.18 || got.Trend != models.TrendRising {
		t.Errorf("got %+v, want the replacing score", got)
	}

	all, err := storage.GetAllScores(ctx)
	if err != nil {
		t.Fatalf("GetAllScores failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d scores, want only the latest", len(all))
	}
}
