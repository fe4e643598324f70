package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/hazyhaar/voicenorm/pkg/kit"
)

// RequestIDHeader carries the request ID in and out of the HTTP API.
const RequestIDHeader = "X-Request-ID"

// NewRouter returns an http.Handler with all voicenorm API routes.
func NewRouter(svc Services) http.Handler {
	mux := http.NewServeMux()
	h := &handler{eps: newEndpoints(svc), svc: svc}

	mux.HandleFunc("POST /v1/normalize", h.handleNormalize)
	mux.HandleFunc("GET /v1/normalize/batch", methodNotAllowed)
	mux.HandleFunc("POST /v1/normalize/batch", h.handleBatch)
	mux.HandleFunc("GET /v1/lexicon", h.handleLexicon)
	mux.HandleFunc("GET /v1/lexicon/{word}", h.handleClassify)
	mux.HandleFunc("GET /v1/corpus", h.handleCorpus)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
	return c.Handler(withRequestID(mux))
}

type handler struct {
	eps endpoints
	svc Services
}

// --- normalize ---

type httpNormalizeRequest struct {
	Text string `json:"text"`
}

func (h *handler) handleNormalize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)
	var req httpNormalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	h.serve(w, r, h.eps.normalize, &normalizeReq{Text: req.Text})
}

// --- batch ---

type httpBatchRequest struct {
	Texts []string `json:"texts"`
}

func (h *handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req httpBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	h.serve(w, r, h.eps.batch, &batchReq{Texts: req.Texts})
}

// --- lexicon ---

func (h *handler) handleClassify(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.eps.classify, &classifyReq{Word: r.PathValue("word")})
}

func (h *handler) handleLexicon(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.eps.lexicon, nil)
}

// --- corpus ---

func (h *handler) handleCorpus(w http.ResponseWriter, r *http.Request) {
	failed := r.URL.Query().Get("failed")
	h.serve(w, r, h.eps.corpus, &corpusReq{FailedOnly: failed == "1" || failed == "true"})
}

// --- health ---

type healthResponse struct {
	Status       string `json:"status"`
	Packs        int    `json:"packs"`
	TotalEntries int    `json:"total_entries"`
	Corpus       bool   `json:"corpus"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:       "ok",
		Packs:        h.svc.Registry.PackCount(),
		TotalEntries: h.svc.Registry.TotalEntries(),
		Corpus:       h.svc.Corpus != nil,
	})
}

// --- helpers ---

func (h *handler) serve(w http.ResponseWriter, r *http.Request, ep kit.Endpoint, req any) {
	resp, err := ep(r.Context(), req)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errCorpusDisabled):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// withRequestID tags the request context with the caller's X-Request-ID, or a
// fresh one, and echoes it in the response.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := kit.WithTransport(kit.WithRequestID(r.Context(), id), "http")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
