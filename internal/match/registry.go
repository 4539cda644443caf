// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"errors"
	"fmt"
	"math"

	"github.com/pdiddy/findthatbook/pkg/types"
)

// weightTolerance absorbs floating-point error when summing weights.
const weightTolerance = 1e-9

// ErrInvalidRegistry reports a strategy set that cannot be used for scoring.
var ErrInvalidRegistry = errors.New("invalid strategy registry")

// Registry runs an ordered set of strategies against a record and
// aggregates their scores. It is immutable after construction.
type Registry struct {
	strategies []Strategy
	evaluator  Evaluator
}

// NewRegistry validates the strategies once: names must be unique and
// weights must sum to 1.0. Strategies run in the order given.
func NewRegistry(evaluator Evaluator, strategies ...Strategy) (*Registry, error) {
	if evaluator == nil {
		return nil, fmt.Errorf("%w: nil evaluator", ErrInvalidRegistry)
	}
	if len(strategies) == 0 {
		return nil, fmt.Errorf("%w: no strategies", ErrInvalidRegistry)
	}

	seen := make(map[string]bool, len(strategies))
	sum := 0.0
	for _, s := range strategies {
		if seen[s.Name()] {
			return nil, fmt.Errorf("%w: duplicate strategy %q", ErrInvalidRegistry, s.Name())
		}
		seen[s.Name()] = true
		sum += s.Weight()
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return nil, fmt.Errorf("%w: weights sum to %.4f, want 1.0", ErrInvalidRegistry, sum)
	}

	return &Registry{
		strategies: append([]Strategy(nil), strategies...),
		evaluator:  evaluator,
	}, nil
}

// defaultRegistry is built at package init so a bad weight table fails
// at startup rather than during scoring.
var defaultRegistry = mustRegistry(NewRegistry(ThresholdEvaluator{}, DefaultStrategies()...))

func mustRegistry(r *Registry, err error) *Registry {
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRegistry returns the registry with the title, author, year and
// keyword strategies and the threshold evaluator.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Strategies returns the registered strategies in execution order.
func (r *Registry) Strategies() []Strategy {
	return append([]Strategy(nil), r.strategies...)
}

// Evaluate scores book against intent with every strategy.
func (r *Registry) Evaluate(book types.Book, intent types.SearchIntent) Result {
	scores := make(map[string]StrategyScore, len(r.strategies))
	reasons := []string{}
	total := 0.0

	for _, s := range r.strategies {
		score := NoMatch(s.Weight())
		if s.CanEvaluate(intent) {
			score = s.Evaluate(book, intent)
			score.Score = clamp01(score.Score)
		}

		scores[s.Name()] = score
		total += score.WeightedScore()
		if score.HasMatch() && score.Reason != "" {
			reasons = append(reasons, score.Reason)
		}
	}

	return Result{
		Scores:     scores,
		TotalScore: round2(total),
		Strength:   r.evaluator.Evaluate(scores),
		Reasons:    reasons,
	}
}
