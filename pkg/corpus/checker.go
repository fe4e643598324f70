package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Normalizer is what the checker runs phrases through.
type Normalizer interface {
	Normalize(text string) string
}

// Report summarizes one check run.
type Report struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Checker normalizes every stored phrase periodically and records whether the
// output still matches the expectation.
type Checker struct {
	store    *Store
	norm     Normalizer
	logger   *slog.Logger
	interval time.Duration
}

// NewChecker creates a Checker that re-runs the corpus every interval.
func NewChecker(store *Store, norm Normalizer, logger *slog.Logger, interval time.Duration) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{store: store, norm: norm, logger: logger, interval: interval}
}

// Start runs an immediate check then repeats every interval until ctx is cancelled.
func (c *Checker) Start(ctx context.Context) {
	c.run(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.run(ctx)
		}
	}
}

func (c *Checker) run(ctx context.Context) {
	if _, err := c.CheckAll(ctx); err != nil && ctx.Err() == nil {
		c.logger.Error("corpus check failed", "error", err)
	}
}

// CheckAll normalizes every phrase and persists each result.
func (c *Checker) CheckAll(ctx context.Context) (Report, error) {
	var rep Report
	phrases, err := c.store.List()
	if err != nil {
		return rep, fmt.Errorf("corpus check: %w", err)
	}

	for _, p := range phrases {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		out := c.norm.Normalize(p.Input)
		pass := out == p.Expected
		if err := c.store.RecordCheck(p.ID, out, pass); err != nil {
			c.logger.Error("corpus check: record failed", "id", p.ID, "error", err)
		}

		rep.Total++
		if pass {
			rep.Passed++
		} else {
			rep.Failed++
			c.logger.Warn("corpus regression",
				"input", p.Input,
				"expected", p.Expected,
				"got", out,
			)
		}
	}

	c.logger.Info("corpus check complete", "total", rep.Total, "passed", rep.Passed, "failed", rep.Failed)
	return rep, nil
}
