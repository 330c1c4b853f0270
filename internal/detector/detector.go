package detector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/argus/internal/catalog"
	"github.com/ternarybob/argus/internal/common"
	"github.com/ternarybob/argus/internal/interfaces"
	"github.com/ternarybob/argus/internal/models"
)

// expiryMultiplier converts a signal's half-life into its activation
// lifetime: after three half-lives the residual contribution is ~12%.
const expiryMultiplier = 3.0

// Detector matches event frames against the signal catalog and records
// activations. Detection is idempotent per (signal, frame) pair.
type Detector struct {
	catalog *catalog.Catalog
	storage interfaces.SignalStorage
	logger  arbor.ILogger
}

func New(cat *catalog.Catalog, storage interfaces.SignalStorage, logger arbor.ILogger) *Detector {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &Detector{
		catalog: cat,
		storage: storage,
		logger:  logger,
	}
}

// Detect evaluates every signal definition against the frame and saves an
// activation for each match not already recorded. Returns the number of
// new activations.
func (d *Detector) Detect(ctx context.Context, frame *models.EventFrame) (int, error) {
	text := strings.ToLower(frame.Evidence)
	activated := 0

	for i := range d.catalog.Signals {
		def := &d.catalog.Signals[i]
		if !matches(def, frame, text) {
			continue
		}

		existing, err := d.storage.GetActivation(ctx, def.Code, frame.ID)
		if err != nil {
			return activated, fmt.Errorf("failed to check activation %s/%s: %w", def.Code, frame.ID, err)
		}
		if existing != nil {
			continue
		}

		confidence := frame.Confidence + def.ConfidenceBoost
		if confidence > 1.0 {
			confidence = 1.0
		}

		halfLife := time.Duration(def.HalfLifeHours * float64(time.Hour))
		activation := &models.SignalActivation{
			ID:          common.NewActivationID(),
			SignalCode:  def.Code,
			FrameID:     frame.ID,
			Confidence:  confidence,
			ActivatedAt: frame.OccurredAt,
			ExpiresAt:   frame.OccurredAt.Add(expiryMultiplier * halfLife),
			Active:      true,
			Verified:    !def.RequiresVerification,
		}
		if err := d.storage.SaveActivation(ctx, activation); err != nil {
			return activated, fmt.Errorf("failed to save activation %s: %w", def.Code, err)
		}

		d.logger.Debug().
			Str("signal", def.Code).
			Str("frame_id", frame.ID).
			Float64("confidence", confidence).
			Msg("Signal activated")
		activated++
	}

	return activated, nil
}

// ExpireStale deactivates activations whose expiry has passed
func (d *Detector) ExpireStale(ctx context.Context, now time.Time) (int, error) {
	count, err := d.storage.DeactivateExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire activations: %w", err)
	}
	if count > 0 {
		d.logger.Info().Int("count", count).Msg("Expired stale signal activations")
	}
	return count, nil
}

// matches applies the definition's conditions as a conjunction: only the
// conditions the definition actually specifies participate.
func matches(def *models.SignalDefinition, frame *models.EventFrame, lowerText string) bool {
	if !def.MatchesType(frame.EventType) {
		return false
	}
	if frame.Severity < def.MinSeverity {
		return false
	}
	if len(def.Keywords) > 0 {
		hit := false
		for _, kw := range def.Keywords {
			if strings.Contains(lowerText, strings.ToLower(kw)) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}
