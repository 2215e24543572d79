package fakeapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-block-calendar/internal/logger"
	"github.com/MKhiriev/go-block-calendar/models"
)

// Request is a request received by the fake API.
type Request struct {
	Path string
	Body string
}

// Handler serves the fake API.
type Handler struct {
	store *blockStore

	mu       sync.Mutex
	failures map[string]int // date -> forced status
	requests []Request

	logger *logger.Logger
}

// NewHandler returns an empty fake API.
func NewHandler(logger *logger.Logger) *Handler {
	return &Handler{
		store:    newBlockStore(time.Now),
		failures: make(map[string]int),
		logger:   logger,
	}
}

// Init builds the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRecording)

	router.Post("/blocks/list", h.list)
	router.Post("/blocks", h.save)
	router.Post("/blocks/delete", h.delete)

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, failure("Method not allowed. Use POST."))
	})
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, failure("Route not found: "+r.URL.Path))
	})

	return router
}

// FailDate makes every request concerning date answer with status.
func (h *Handler) FailDate(date string, status int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failures[date] = status
}

// Seed stores a block directly, bypassing validation.
func (h *Handler) Seed(userID string, block models.TimeBlock) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	key := partitionKey(userID, block.Date)
	h.store.blocks[key] = append(h.store.blocks[key], block)
}

// Requests returns the requests received so far, in arrival order.
func (h *Handler) Requests() []Request {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Request(nil), h.requests...)
}

func (h *Handler) withRecording(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		h.mu.Lock()
		h.requests = append(h.requests, Request{Path: r.URL.Path, Body: string(body)})
		h.mu.Unlock()

		start := time.Now()
		next.ServeHTTP(w, r)

		h.logger.Debug().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Dur("duration", time.Since(start)).
			Send()
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var req models.ListRequest
	if !h.decode(w, r, &req) || h.injected(w, req.Date) {
		return
	}

	userID, err := validateUserAndDate(req.UserID, req.Date)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.BlocksResponse{OK: boolPtr(true), Blocks: h.store.list(userID, req.Date)})
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRequest
	if !h.decode(w, r, &req) || h.injected(w, req.Date) {
		return
	}

	if err := validateCreate(&req); err != nil {
		writeError(w, err)
		return
	}

	blocks, err := h.store.create(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.BlocksResponse{OK: boolPtr(true), Message: "Block saved", Blocks: blocks})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteRequest
	if !h.decode(w, r, &req) || h.injected(w, req.Date) {
		return
	}

	userID, err := validateUserAndDate(req.UserID, req.Date)
	if err != nil {
		writeError(w, err)
		return
	}
	req.UserID = userID
	req.BlockID = strings.TrimSpace(req.BlockID)
	if req.BlockID == "" {
		writeError(w, errBlockIDRequired)
		return
	}

	blocks, err := h.store.delete(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.BlocksResponse{OK: boolPtr(true), Message: "Deleted", Blocks: blocks})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, err)
		return false
	}
	if strings.TrimSpace(string(body)) == "" {
		return true
	}
	if err = json.Unmarshal(body, dst); err != nil {
		writeError(w, errInvalidJSON)
		return false
	}
	return true
}

func (h *Handler) injected(w http.ResponseWriter, date string) bool {
	h.mu.Lock()
	status, ok := h.failures[date]
	h.mu.Unlock()
	if !ok {
		return false
	}
	writeJSON(w, status, failure("injected failure for "+date))
	return true
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Server error: " + msg
	}
	writeJSON(w, status, failure(msg))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func failure(msg string) models.BlocksResponse {
	return models.BlocksResponse{OK: boolPtr(false), Error: msg}
}

func boolPtr(v bool) *bool {
	return &v
}
