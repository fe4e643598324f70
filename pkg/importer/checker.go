// CLAUDE:SUMMARY Availability probe for import sources: HEAD (GET fallback on 405/501) every registered URL, persist status, report unreachable IDs.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Availability is the outcome of one probe over all sources.
type Availability struct {
	Total       int      `json:"total"`
	Reachable   int      `json:"reachable"`
	Unreachable []string `json:"unreachable"`
}

// Checker probes every source URL on a fixed interval.
type Checker struct {
	sources  *SourceDB
	logger   *slog.Logger
	interval time.Duration
	client   *http.Client
}

func NewChecker(sources *SourceDB, logger *slog.Logger, interval time.Duration) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		sources:  sources,
		logger:   logger,
		interval: interval,
		client: &http.Client{
			Timeout: 30 * time.Second,
			// A redirect is an answer; the import follows it later.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Start probes immediately, then every interval until ctx is done.
func (c *Checker) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		if _, err := c.CheckAll(ctx); err != nil && ctx.Err() == nil {
			c.logger.Error("source check failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// CheckAll probes every source and records status and error. Statuses in
// 200-399 count as reachable.
func (c *Checker) CheckAll(ctx context.Context) (Availability, error) {
	av := Availability{Unreachable: []string{}}
	sources, err := c.sources.ListSources()
	if err != nil {
		return av, fmt.Errorf("source check: %w", err)
	}

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return av, err
		}
		av.Total++

		status, probeErr := c.probe(ctx, src.URL)
		msg := ""
		if probeErr != nil {
			msg = probeErr.Error()
		}
		if err := c.sources.UpdateCheck(src.ID, status, msg); err != nil {
			c.logger.Error("source check: record failed", "source", src.ID, "error", err)
		}

		if reachable(status) {
			av.Reachable++
			continue
		}
		av.Unreachable = append(av.Unreachable, src.ID)
		c.logger.Warn("source unreachable", "source", src.ID, "url", src.URL, "status", status, "error", msg)
	}

	c.logger.Info("source check complete", "total", av.Total, "reachable", av.Reachable, "unreachable", len(av.Unreachable))
	return av, nil
}

func reachable(status int) bool { return status >= 200 && status < 400 }

// probe returns the status of url, 0 on network error. Servers that refuse
// HEAD are asked for the first byte instead.
func (c *Checker) probe(ctx context.Context, url string) (int, error) {
	status, err := c.do(ctx, http.MethodHead, url)
	if err != nil || (status != http.StatusMethodNotAllowed && status != http.StatusNotImplemented) {
		return status, err
	}
	return c.do(ctx, http.MethodGet, url)
}

func (c *Checker) do(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	if method == http.MethodGet {
		req.Header.Set("Range", "bytes=0-0")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, url, err)
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}
