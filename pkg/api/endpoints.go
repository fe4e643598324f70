// CLAUDE:SUMMARY Transport-agnostic endpoints (normalize, batch, classify, lexicon, corpus) shared by the HTTP router and MCP tools.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/hazyhaar/voicenorm/pkg/corpus"
	"github.com/hazyhaar/voicenorm/pkg/kit"
	"github.com/hazyhaar/voicenorm/pkg/lexicon"
	"github.com/hazyhaar/voicenorm/pkg/voicenorm"
)

const (
	maxBatch     = 100
	batchWorkers = 8
)

var (
	errInvalid        = errors.New("invalid request")
	errCorpusDisabled = errors.New("corpus disabled")
)

// Services are the backends the API dispatches to. Corpus may be nil.
type Services struct {
	Normalizer *voicenorm.Normalizer
	Registry   *lexicon.Registry
	Corpus     *corpus.Store
	Logger     *slog.Logger
}

type normalizeReq struct {
	Text string
}

type batchReq struct {
	Texts []string
}

type classifyReq struct {
	Word string
}

type corpusReq struct {
	FailedOnly bool
}

type batchResponse struct {
	Results []voicenorm.Analysis `json:"results"`
}

type lexiconResponse struct {
	Packs        []lexicon.PackInfo `json:"packs"`
	Classes      map[string]int     `json:"classes"`
	TotalEntries int                `json:"total_entries"`
}

type corpusResponse struct {
	Phrases []corpus.Phrase `json:"phrases"`
}

type endpoints struct {
	normalize kit.Endpoint
	batch     kit.Endpoint
	classify  kit.Endpoint
	lexicon   kit.Endpoint
	corpus    kit.Endpoint
}

func newEndpoints(svc Services) endpoints {
	logger := svc.Logger
	if logger == nil {
		logger = slog.Default()
	}
	wrap := func(name string, ep kit.Endpoint) kit.Endpoint {
		return kit.Chain(kit.RequestID(), kit.Logging(logger, name))(ep)
	}
	return endpoints{
		normalize: wrap("normalize", normalizeEndpoint(svc.Normalizer)),
		batch:     wrap("normalize_batch", batchEndpoint(svc.Normalizer)),
		classify:  wrap("classify", classifyEndpoint(svc.Registry)),
		lexicon:   wrap("lexicon", lexiconEndpoint(svc.Registry)),
		corpus:    wrap("corpus", corpusEndpoint(svc.Corpus)),
	}
}

func normalizeEndpoint(n *voicenorm.Normalizer) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*normalizeReq)
		return n.Analyze(req.Text), nil
	}
}

// batchEndpoint analyzes up to maxBatch texts concurrently; results keep the
// input order.
func batchEndpoint(n *voicenorm.Normalizer) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*batchReq)
		if len(req.Texts) == 0 {
			return nil, fmt.Errorf("%w: texts array is empty", errInvalid)
		}
		if len(req.Texts) > maxBatch {
			return nil, fmt.Errorf("%w: too many texts (max %d, got %d)", errInvalid, maxBatch, len(req.Texts))
		}

		results := make([]voicenorm.Analysis, len(req.Texts))
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(batchWorkers)
		for i, text := range req.Texts {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[i] = n.Analyze(text)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return batchResponse{Results: results}, nil
	}
}

func classifyEndpoint(reg *lexicon.Registry) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*classifyReq)
		if req.Word == "" {
			return nil, fmt.Errorf("%w: missing word", errInvalid)
		}
		return reg.Classify(req.Word), nil
	}
}

func lexiconEndpoint(reg *lexicon.Registry) kit.Endpoint {
	return func(context.Context, any) (any, error) {
		return lexiconResponse{
			Packs:        reg.ListPacks(),
			Classes:      reg.ClassCounts(),
			TotalEntries: reg.TotalEntries(),
		}, nil
	}
}

func corpusEndpoint(store *corpus.Store) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		if store == nil {
			return nil, errCorpusDisabled
		}
		var (
			phrases []corpus.Phrase
			err     error
		)
		if req, _ := request.(*corpusReq); req != nil && req.FailedOnly {
			phrases, err = store.Failures()
		} else {
			phrases, err = store.List()
		}
		if err != nil {
			return nil, err
		}
		return corpusResponse{Phrases: phrases}, nil
	}
}
