// internal/httpserver/server.go
//
// HTTP server wiring for the wordlehint backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words", "/starter",
//     "/leaderboard".
//   - Session endpoints (optional auth): POST /session/new,
//     POST /session/feedback, GET /session/{id}/suggestions.
//   - Auth + profile endpoints (require auth): /auth/*, /stats/me,
//     /sessions/mine (see routes_auth.go).
//   - Database persistence for sessions and finished-session results.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Optional auth decorates requests with user context when a valid token
//     is present; routes still run for guests (anonymous cookie).

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robquist/wordlehint/internal/history"
	"github.com/robquist/wordlehint/internal/session"
	"github.com/robquist/wordlehint/internal/solver"
	"github.com/robquist/wordlehint/internal/store"
	"github.com/robquist/wordlehint/internal/words"
)

// suggestionTimeout bounds handler time; the O(n²) scoring passes need
// more headroom than a plain CRUD route.
const suggestionTimeout = 60 * time.Second

// Server bundles router, live session store, corpus, and DB handle.
type Server struct {
	r       *chi.Mux
	store   store.Store
	db      *sql.DB
	corpus  *words.Corpus
	history *history.Store
	salt    string
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, db *sql.DB, corpus *words.Corpus) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		store:   st,
		db:      db,
		corpus:  corpus,
		history: history.NewStore(db),
		salt:    getEnv("STARTER_SALT", "local_dev_salt"),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                  // add X-Request-ID
	s.r.Use(chimw.RealIP)                     // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                  // recover from panics
	s.r.Use(chimw.Timeout(suggestionTimeout)) // bound handler time
	s.r.Use(jsonContentType)                  // default JSON responses
	s.r.Use(corsFromEnv)                      // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordlehint","endpoints":["/health","POST /session/new","POST /session/feedback","GET /session/{id}/suggestions","/starter","/leaderboard","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{
			"words":       len(s.corpus.Words),
			"frequencies": len(s.corpus.Freq),
		})
	})

	// Starter word of the day + leaderboard (public)
	s.r.Get("/starter", s.handleStarter)
	s.r.Get("/leaderboard", s.handleLeaderboard)

	// Session endpoints, optional auth (guests can use the helper)
	s.r.With(s.withOptionalAuth()).Post("/session/new", s.handleNewSession)
	s.r.With(s.withOptionalAuth()).Post("/session/feedback", s.handleFeedback)
	s.r.With(s.withOptionalAuth()).Get("/session/{id}/suggestions", s.handleSuggestions)

	// Auth + profile (require auth)
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ----------------------------- SESSIONS ------------------------------------

// newSessionReq/Res payloads for POST /session/new.
type newSessionReq struct {
	Criterion string  `json:"criterion"` // defaults to "combined"
	Lambda    float64 `json:"lambda"`    // blend weight, combined only
}
type newSessionRes struct {
	SessionID string `json:"sessionId"`
	Criterion string `json:"criterion"`
	Lambda    float64 `json:"lambda"`
}

// handleNewSession creates a new in-memory session and persists a DB
// "owner" row (either user_id or anonymous_id) for history.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	req := newSessionReq{Criterion: string(solver.CombinedLambda), Lambda: 0.5}
	_ = json.NewDecoder(r.Body).Decode(&req)

	criterion, err := solver.ParseCriterion(req.Criterion)
	if err != nil {
		writeSolverError(w, err)
		return
	}
	sess, err := session.New(criterion, req.Lambda)
	if err != nil {
		writeSolverError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		_, err := s.db.Exec(`INSERT INTO sessions (id, user_id, criterion, lambda, started_at, status, turns)
		                     VALUES (?,?,?,?,?,?,0)`, sess.ID, me.ID, string(criterion), req.Lambda, now, session.StatusSolving)
		if err != nil {
			log.Warn().Err(err).Str("sessionId", sess.ID).Msg("insert user session row")
		}
	} else {
		anon := s.ensureAnonID(w, r)
		_, err := s.db.Exec(`INSERT INTO sessions (id, anonymous_id, criterion, lambda, started_at, status, turns)
		                     VALUES (?,?,?,?,?,?,0)`, sess.ID, anon, string(criterion), req.Lambda, now, session.StatusSolving)
		if err != nil {
			log.Warn().Err(err).Str("sessionId", sess.ID).Msg("insert anon session row")
		}
	}

	_ = json.NewEncoder(w).Encode(newSessionRes{SessionID: sess.ID, Criterion: string(criterion), Lambda: req.Lambda})
}

// feedbackReq/Res payloads for POST /session/feedback.
type feedbackReq struct {
	SessionID string `json:"sessionId"`
	Guess     string `json:"guess"`
	Labels    string `json:"labels"` // five digits over 0/1/2
}
type feedbackRes struct {
	Status string `json:"status"` // "solving" | "solved" | "exhausted"
	Turn   int    `json:"turn"`
}

// handleFeedback applies reported feedback to a session, persists progress,
// and records a history row once the session finishes.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	status, err := sess.ApplyFeedback(req.Guess, req.Labels)
	if err != nil {
		writeSolverError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	// Persist counters/history (best effort, non-fatal if it fails)
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	ownerClause := `anonymous_id=?`
	ownerID := s.ensureAnonID(w, r)
	if me != nil {
		ownerClause = `user_id=?`
		ownerID = me.ID
	}

	tx, _ := s.db.Begin()
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE sessions SET turns = turns + 1 WHERE id=? AND `+ownerClause, sess.ID, ownerID); err != nil {
		log.Warn().Err(err).Msg("update turns")
	}

	if sess.Finished {
		if _, err := tx.Exec(`UPDATE sessions SET status=?, finished_at=? WHERE id=? AND `+ownerClause,
			status, time.Now().UTC().Format(time.RFC3339), sess.ID, ownerID); err != nil {
			log.Warn().Err(err).Msg("finish session")
		}
		if me != nil {
			if err := s.bumpStats(tx, me.ID, sess.Solved); err != nil {
				log.Warn().Err(err).Str("user", me.ID).Msg("bump stats")
			}
		}
	}
	_ = tx.Commit()

	if sess.Finished {
		res := history.Result{
			OwnerID:   ownerID,
			Date:      history.DateKey(time.Now()),
			Criterion: string(sess.Criterion),
			Turns:     len(sess.Guesses),
			Solved:    sess.Solved,
		}
		if err := s.history.InsertResult(r.Context(), res); err != nil {
			log.Warn().Err(err).Str("sessionId", sess.ID).Msg("insert session result")
		}
	}

	_ = json.NewEncoder(w).Encode(feedbackRes{Status: status, Turn: sess.Turn()})
}

// suggestionsRes payload for GET /session/{id}/suggestions.
type suggestionsRes struct {
	Candidates  int                  `json:"candidates"` // total before truncation
	Suggestions []solver.ScoredGuess `json:"suggestions"`
}

// handleSuggestions ranks the remaining candidates for a session.
// ?limit=n truncates the list (default 100, the classic page size).
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	progress := func(scored, total int) {
		log.Debug().Int("scored", scored).Int("total", total).Str("sessionId", sess.ID).Msg("scoring guesses")
	}
	ranked, total, err := sess.Suggest(s.corpus, limit, progress)
	if err != nil {
		writeSolverError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(suggestionsRes{Candidates: total, Suggestions: ranked})
}

// handleStarter returns the deterministic starter word for today.
func (s *Server) handleStarter(w http.ResponseWriter, r *http.Request) {
	idx := history.StarterIndex(time.Now(), s.salt, len(s.corpus.Words))
	_ = json.NewEncoder(w).Encode(map[string]string{
		"date": history.DateKey(time.Now()),
		"word": s.corpus.Words[idx],
	})
}

// handleLeaderboard lists today's (or ?date=YYYY-MM-DD's) fastest solves.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = history.DateKey(time.Now())
	}
	rows, err := s.history.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []history.LBRow{}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"date": date, "rows": rows})
}

// ------------------------------ errors -------------------------------------

// writeSolverError maps solver sentinel errors onto HTTP statuses.
func writeSolverError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, solver.ErrInvalidFeedback), errors.Is(err, solver.ErrInvalidParameter):
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
	case errors.Is(err, solver.ErrContradiction):
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusUnprocessableEntity)
	case errors.Is(err, solver.ErrMaxTurns):
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusConflict)
	case errors.Is(err, solver.ErrNoCandidates):
		http.Error(w, `{"error":"no_candidates"}`, http.StatusNotFound)
	default:
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
