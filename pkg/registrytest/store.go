package registrytest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/vehiclekit/pkg/vehicle"
)

// Store is an in-memory vehicle store honoring the REST contract consumed by
// pkg/registry. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	records []vehicle.Record
	nextID  int64
}

// New creates an empty store.
func New() *Store {
	return &Store{nextID: 1}
}

// Seed inserts records directly, assigning ids to any record without one.
// Intended for test setup; does not go through the HTTP surface.
func (s *Store) Seed(records ...vehicle.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		if r.ID.IsZero() {
			r.ID = s.assignID()
		}
		s.records = append(s.records, r)
	}
}

// Records returns a copy of the current record set in insertion order.
func (s *Store) Records() []vehicle.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]vehicle.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Handler returns the HTTP surface of the store.
func (s *Store) Handler() http.Handler {
	r := chi.NewRouter()
	r.Route("/vehicles", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Get("/{id}", s.handleFind)
		r.Put("/{id}", s.handleUpdate)
		r.Delete("/{id}", s.handleDelete)
	})
	return r
}

func (s *Store) assignID() vehicle.ID {
	id := vehicle.ID(strconv.FormatInt(s.nextID, 10))
	s.nextID++
	return id
}

func (s *Store) handleList(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	records := make([]vehicle.Record, len(s.records))
	copy(records, s.records)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, records)
}

// handleFind answers with a zero-or-one-element array, matching the
// collaborator contract callers destructure.
func (s *Store) handleFind(w http.ResponseWriter, r *http.Request) {
	id := vehicle.ID(chi.URLParam(r, "id"))

	s.mu.Lock()
	defer s.mu.Unlock()

	result := []vehicle.Record{}
	for _, rec := range s.records {
		if rec.ID == id {
			result = append(result, rec)
			break
		}
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Store) handleCreate(w http.ResponseWriter, r *http.Request) {
	var rec vehicle.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	rec.ID = s.assignID()
	s.records = append(s.records, rec)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, rec)
}

func (s *Store) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := vehicle.ID(chi.URLParam(r, "id"))

	var rec vehicle.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			rec.ID = id
			s.records[i] = rec
			writeJSON(w, http.StatusOK, rec)
			return
		}
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func (s *Store) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := vehicle.ID(chi.URLParam(r, "id"))

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]any{})
			return
		}
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
