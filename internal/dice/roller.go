package dice

import (
	"time"

	"go.uber.org/zap"

	"github.com/sadopc/diediedice/internal/common/clock"
)

// Roller produces RollResults with strictly increasing timestamps.
// It is not safe for concurrent use.
type Roller struct {
	src    Source
	clock  clock.Clock
	logger *zap.Logger
	last   time.Time
}

// Config for dice roller
type Config struct {
	// Source overrides the random source. When nil a math/rand source
	// seeded with Seed is used.
	Source Source
	// Optional seed for reproducible sessions
	Seed   int64
	Clock  clock.Clock
	Logger *zap.Logger
}

// New creates a new dice roller
func New(cfg *Config) *Roller {
	if cfg == nil {
		cfg = &Config{}
	}

	r := &Roller{
		src:    cfg.Source,
		clock:  cfg.Clock,
		logger: cfg.Logger,
	}
	if r.src == nil {
		r.src = NewSource(cfg.Seed)
	}
	if r.clock == nil {
		r.clock = &clock.DefaultClock{}
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	return r
}

// Roll rolls diceCount dice with sideCount sides each.
func (r *Roller) Roll(diceCount, sideCount int) RollResult {
	at := r.clock.Now()
	if !r.last.IsZero() && !at.After(r.last) {
		at = r.last.Add(time.Nanosecond)
	}
	r.last = at

	result := RollWith(r.src, diceCount, sideCount, at)
	r.logger.Debug("dice roll",
		zap.String("label", result.Label),
		zap.Ints("rolls", result.Rolls),
		zap.Int("total", result.Total),
	)
	return result
}
