// Package devserver is an in-memory reference implementation of the sync
// service wire contract. It exists for local development and end-to-end
// tests; it keeps everything in process memory and forgets it on restart.
//
// The server never decrypts payloads. It only sees auth tokens, opaque
// ciphertext and the plaintext metadata needed for conflict detection.
package devserver

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/daybook-app/daybook/internal/crypto"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/models"
)

const (
	authTokenHeader  = "X-Auth-Token"
	defaultPullLimit = 500
)

type account struct {
	salt      string
	createdAt int64
	seq       int64
	// entries holds the latest envelope per entry id, tombstones included.
	entries map[string]models.SyncEntry
}

// Server is the in-memory sync service.
type Server struct {
	keychain crypto.KeyChainService
	logger   *logger.Logger

	mu       sync.Mutex
	accounts map[string]*account
}

func New(log *logger.Logger) *Server {
	return &Server{
		keychain: crypto.NewKeyChainService(),
		logger:   log,
		accounts: make(map[string]*account),
	}
}

// Handler returns the HTTP handler implementing the sync API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/accounts", s.createAccount)

		r.Group(func(r chi.Router) {
			r.Use(s.withAccount)
			r.Get("/accounts/validate", s.validateAccount)
			r.Delete("/accounts", s.deleteAccount)
			r.Post("/sync/push", s.push)
			r.Get("/sync/pull", s.pull)
			r.Post("/sync/full", s.fullSync)
		})
	})
	return r
}

type ctxKey int

const accountKey ctxKey = 0

func requestWithAccount(r *http.Request, acc *account) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), accountKey, acc))
}

func accountFrom(r *http.Request) *account {
	return r.Context().Value(accountKey).(*account)
}

// withAccount authenticates the request and stashes the account in the
// context. Missing token is 401, unknown token is 404; the client maps both
// to its own sentinels.
func (s *Server) withAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(authTokenHeader)
		if token == "" {
			http.Error(w, "missing auth token", http.StatusUnauthorized)
			return
		}

		s.mu.Lock()
		acc, ok := s.accounts[token]
		s.mu.Unlock()
		if !ok {
			http.Error(w, "unknown account", http.StatusNotFound)
			return
		}

		next.ServeHTTP(w, requestWithAccount(r, acc))
	})
}

func (s *Server) createAccount(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AuthToken == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-pairing an existing account hands back the same salt so every
	// device derives the same key.
	if acc, ok := s.accounts[req.AuthToken]; ok {
		writeJSON(w, http.StatusOK, models.CreateAccountResponse{Salt: acc.salt})
		return
	}

	rawSalt, err := s.keychain.GenerateSalt()
	if err != nil {
		http.Error(w, "salt generation failed", http.StatusInternalServerError)
		return
	}
	salt := crypto.EncodeSalt(rawSalt)

	s.accounts[req.AuthToken] = &account{
		salt:      salt,
		createdAt: time.Now().UnixMilli(),
		entries:   make(map[string]models.SyncEntry),
	}
	s.logger.Info().Msg("account created")
	writeJSON(w, http.StatusCreated, models.CreateAccountResponse{Salt: salt})
}

func (s *Server) validateAccount(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	s.mu.Lock()
	resp := models.ValidateAccountResponse{
		Valid:      true,
		EntryCount: len(acc.entries),
		CreatedAt:  acc.createdAt,
		Salt:       acc.salt,
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(authTokenHeader)

	s.mu.Lock()
	delete(s.accounts, token)
	s.mu.Unlock()

	s.logger.Info().Msg("account deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) push(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	var req models.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	resp := s.mergeLocked(acc, req.Entries)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

// mergeLocked applies uploaded envelopes with last-write-wins on the
// plaintext updatedAt. The caller holds s.mu.
func (s *Server) mergeLocked(acc *account, entries []models.SyncEntry) models.PushResponse {
	var resp models.PushResponse
	for _, entry := range entries {
		if existing, ok := acc.entries[entry.ID]; ok && existing.UpdatedAt > entry.UpdatedAt {
			resp.Conflicts = append(resp.Conflicts, models.PushConflict{
				ID:              entry.ID,
				ServerUpdatedAt: existing.UpdatedAt,
				ServerSeq:       existing.ServerSeq,
			})
			continue
		}
		acc.seq++
		entry.ServerSeq = acc.seq
		acc.entries[entry.ID] = entry
		resp.Accepted++
	}
	resp.ServerSeq = acc.seq
	return resp
}

func (s *Server) pull(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	since := queryInt64(r, "since", 0)
	limit := int(queryInt64(r, "limit", defaultPullLimit))
	if limit <= 0 {
		limit = defaultPullLimit
	}

	s.mu.Lock()
	changed := make([]models.SyncEntry, 0, len(acc.entries))
	for _, entry := range acc.entries {
		if entry.ServerSeq > since {
			changed = append(changed, entry)
		}
	}
	serverSeq := acc.seq
	s.mu.Unlock()

	sort.Slice(changed, func(i, j int) bool { return changed[i].ServerSeq < changed[j].ServerSeq })

	resp := models.PullResponse{ServerSeq: serverSeq}
	if len(changed) > limit {
		changed = changed[:limit]
		resp.HasMore = true
	}
	resp.Entries = changed

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) fullSync(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	var req models.FullSyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	pushResp := s.mergeLocked(acc, req.Entries)
	all := make([]models.SyncEntry, 0, len(acc.entries))
	for _, entry := range acc.entries {
		all = append(all, entry)
	}
	serverSeq := acc.seq
	s.mu.Unlock()

	sort.Slice(all, func(i, j int) bool { return all[i].ServerSeq < all[j].ServerSeq })

	writeJSON(w, http.StatusOK, models.FullSyncResponse{
		Entries:   all,
		ServerSeq: serverSeq,
		Merged:    pushResp.Accepted,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func queryInt64(r *http.Request, name string, fallback int64) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
