package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonleap/internal/presets"
	"github.com/samdwyer/dungeonleap/internal/telemetry"
	"github.com/samdwyer/dungeonleap/internal/world"
)

// Session owns the current layout and replaces it when the player exits.
// A Session is not safe for concurrent use.
type Session struct {
	base     world.Params
	registry *presets.Registry
	logger   *slog.Logger
	rng      *rand.Rand
	preset   string

	layout     *world.Layout
	state      State
	depth      int
	lastSeed   int64
	lastPreset string
}

// NewSession creates a session standing in the hub.
func NewSession(cfg Config, base world.Params, registry *presets.Registry, logger *slog.Logger) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Session{
		base:     base,
		registry: registry,
		logger:   logger,
		rng:      rand.New(rand.NewSource(seed)),
		preset:   cfg.Preset,
		layout:   world.NewHub(),
		state:    StateHub,
	}
}

// Layout returns the layout the player is in.
func (s *Session) Layout() *world.Layout { return s.layout }

// State returns the kind of layout the player is in.
func (s *Session) State() State { return s.state }

// Depth returns how many dungeon layouts have been entered.
func (s *Session) Depth() int { return s.depth }

// LastSeed returns the seed of the most recent dungeon layout.
func (s *Session) LastSeed() int64 { return s.lastSeed }

// LastPreset returns the preset ID of the most recent dungeon layout.
func (s *Session) LastPreset() string { return s.lastPreset }

// Advance checks whether the player's bounding box touches the exit. If it
// does, the current layout is discarded and the next one is built: the hub
// leads into a new dungeon and a dungeon leads back to the hub.
func (s *Session) Advance(ctx context.Context, player world.Rect) (bool, error) {
	if !s.layout.ReachedExit(player) {
		return false, nil
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.transition")
	defer span.End()

	from := s.state
	switch s.state {
	case StateHub:
		if err := s.enterDungeon(ctx); err != nil {
			span.RecordError(err)
			return false, err
		}
	default:
		s.layout = world.NewHub()
		s.state = StateHub
	}

	span.SetAttributes(
		attribute.String("session.from", from.String()),
		attribute.String("session.to", s.state.String()),
		attribute.Int("session.depth", s.depth),
		attribute.String("layout.id", s.layout.ID().String()),
	)
	s.logger.Info("layout transition",
		"from", from.String(),
		"to", s.state.String(),
		"depth", s.depth,
		"layout_id", s.layout.ID().String(),
	)
	return true, nil
}

// enterDungeon generates the next dungeon with its own derived seed.
func (s *Session) enterDungeon(ctx context.Context) error {
	def, err := s.pickPreset()
	if err != nil {
		return err
	}

	params := def.Apply(s.base)
	seed := s.rng.Int63()

	layout, err := world.GenerateSeeded(ctx, params, seed)
	if err != nil {
		return fmt.Errorf("enter dungeon with preset %s: %w", def.ID, err)
	}

	if isolated := layout.Isolated(); len(isolated) > 0 {
		s.logger.Warn("layout has unreachable rooms",
			"seed", seed,
			"preset", def.ID,
			"isolated", isolated,
		)
	}
	if layout.UsedFallback() {
		s.logger.Warn("no cell met the room minimums, using fallback room",
			"seed", seed,
			"preset", def.ID,
		)
	}

	s.layout = layout
	s.state = StateDungeon
	s.depth++
	s.lastSeed = seed
	s.lastPreset = def.ID
	return nil
}

func (s *Session) pickPreset() (*presets.PresetDef, error) {
	if s.preset != "" {
		def := s.registry.GetByID(s.preset)
		if def == nil {
			return nil, fmt.Errorf("unknown preset %q", s.preset)
		}
		return def, nil
	}

	def := s.registry.Pick(s.rng)
	if def == nil {
		return nil, errors.New("preset registry has no weighted presets")
	}
	return def, nil
}
