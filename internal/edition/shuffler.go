// Package edition runs the shuffle state machine for one edition: it checks
// that the edition can still be shuffled, gathers the current members and the
// pair history of its group and occasion, asks the generator for assignments
// and commits them in one step.
package edition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mmynk/giftshuffler/internal/models"
	"github.com/mmynk/giftshuffler/internal/shuffle"
	"github.com/mmynk/giftshuffler/internal/storage"
)

var tracer = otel.Tracer("giftshuffler.edition")

// Backend is the slice of storage the shuffler needs.
// Both storage implementations satisfy it.
type Backend interface {
	GetEdition(ctx context.Context, editionID string) (*models.Edition, error)
	GetGroupMembers(ctx context.Context, groupID string) ([]models.Person, error)
	GetForbiddenPairs(ctx context.Context, groupID, occasionID string) ([]shuffle.Pair, error)
	CommitAssignments(ctx context.Context, editionID string, pairs []shuffle.Pair) error
}

// Result is a committed shuffle.
type Result struct {
	EditionID   string
	Assignments []shuffle.Pair
	// Attempts is the number of permutations drawn.
	Attempts int
}

// Shuffler serializes shuffles per edition. Distinct editions run in parallel.
type Shuffler struct {
	backend   Backend
	generator *shuffle.Generator
	locks     *keyedMutex
}

// NewShuffler creates a Shuffler. A nil generator means shuffle.NewGenerator().
func NewShuffler(backend Backend, generator *shuffle.Generator) *Shuffler {
	if generator == nil {
		generator = shuffle.NewGenerator()
	}
	return &Shuffler{
		backend:   backend,
		generator: generator,
		locks:     newKeyedMutex(),
	}
}

// Run shuffles the edition and commits the result. Every failure is an *Error
// and leaves the edition unchanged.
func (s *Shuffler) Run(ctx context.Context, editionID string) (res *Result, err error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "edition.Shuffle",
		trace.WithAttributes(attribute.String("edition.id", editionID)),
	)
	defer func() {
		shuffleRuns.WithLabelValues(outcome(err)).Inc()
		shuffleDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(KindOf(err)))
		} else {
			span.SetAttributes(attribute.Int("shuffle.attempts", res.Attempts))
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}()

	unlock := s.locks.Lock(editionID)
	defer unlock()

	ed, err := s.backend.GetEdition(ctx, editionID)
	if err != nil {
		return nil, classify(editionID, "failed to get edition", err)
	}
	if ed.IsShuffled {
		return nil, newError(KindAlreadyShuffled, editionID, "edition already shuffled", nil)
	}

	members, err := s.backend.GetGroupMembers(ctx, ed.GroupID)
	if err != nil {
		return nil, classify(editionID, "failed to get group members", err)
	}
	if len(members) < 2 {
		return nil, newError(KindInsufficientParticipants, editionID,
			fmt.Sprintf("group has %d members, at least 2 are required", len(members)), nil)
	}

	history, err := s.backend.GetForbiddenPairs(ctx, ed.GroupID, ed.OccasionID)
	if err != nil {
		return nil, classify(editionID, "failed to get previous assignments", err)
	}
	span.SetAttributes(
		attribute.Int("shuffle.participants", len(members)),
		attribute.Int("shuffle.forbidden_pairs", len(history)),
	)

	participants := make([]string, len(members))
	for i, m := range members {
		participants[i] = m.ID
	}

	pairs, attempts, err := s.generator.Generate(participants, shuffle.NewPairSet(history...))
	if err != nil {
		if errors.Is(err, shuffle.ErrInfeasible) {
			slog.Warn("No valid assignment found",
				"edition_id", editionID,
				"participants", len(participants),
				"forbidden_pairs", len(history),
				"error", err,
			)
			return nil, newError(KindNoValidAssignment, editionID, "no valid assignment", err)
		}
		return nil, newError(KindBackendUnavailable, editionID, "invalid group membership", err)
	}

	if err := s.backend.CommitAssignments(ctx, editionID, pairs); err != nil {
		return nil, classify(editionID, "failed to commit assignments", err)
	}

	shuffleAttempts.Observe(float64(attempts))
	slog.Info("Edition shuffled",
		"edition_id", editionID,
		"participants", len(participants),
		"attempts", attempts,
	)

	return &Result{EditionID: editionID, Assignments: pairs, Attempts: attempts}, nil
}

// classify maps storage errors onto error kinds.
func classify(editionID, message string, err error) *Error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return newError(KindNotFound, editionID, "edition not found", err)
	case errors.Is(err, storage.ErrAlreadyShuffled):
		return newError(KindAlreadyShuffled, editionID, "edition already shuffled", err)
	default:
		return newError(KindBackendUnavailable, editionID, message, err)
	}
}

// IsProvenInfeasible reports whether err says no valid assignment can exist,
// as opposed to the sampling budget running out.
func IsProvenInfeasible(err error) bool {
	var ie *shuffle.InfeasibleError
	return errors.As(err, &ie) && ie.Proven
}
