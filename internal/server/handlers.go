package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pulsefeed/pulsefeed/internal/logging"
)

type Handlers struct {
	store *Store
	log   logging.Logger
}

// NewRouter wires the resource store's REST surface.
func NewRouter(store *Store, log logging.Logger) *mux.Router {
	h := &Handlers{store: store, log: log}

	r := mux.NewRouter()
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/users", h.GetUsers).Methods("GET")
	r.HandleFunc("/users", h.CreateUser).Methods("POST")
	r.HandleFunc("/posts", h.GetPosts).Methods("GET")
	return r
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "OK")
}

// GetUsers filters the user collection by the username/password query
// params; absent params are no-ops.
func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	users := h.store.FindUsers(q.Get("username"), q.Get("password"))
	h.writeJSON(w, http.StatusOK, users)
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if req.Username == "" {
		http.Error(w, "username is required", http.StatusBadRequest)
		return
	}

	created := h.store.CreateUser(req.Username, req.Password)
	h.log.Info(r.Context(), "user created", "id", created.ID, "username", created.Username)
	h.writeJSON(w, http.StatusCreated, created)
}

// GetPosts returns the entire collection; pagination is the client's job.
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.Posts())
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error(context.Background(), "encoding response failed", "error", err)
	}
}
