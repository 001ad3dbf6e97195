// internal/httpserver/server.go
//
// HTTP server wiring for the browser client.
// Responsibilities:
//   - Router + middleware (request IDs, access logs, panic recovery, timeouts, CORS).
//   - Page + diagnostics: "/", "/health", "/debug/words".
//   - Game endpoints under /api/game: frame, key events, restart, share text,
//     and DELETE to forget the session.
//   - Session cookie handling and per-session serialization of key events.
//
// Notes:
//   - Game input never produces an error response. Malformed bodies and
//     unknown keys reply 200 with the unchanged frame.
//   - Only infrastructure failures (store, session signing) reply 5xx.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/tiles/assets"
	"github.com/robalobadob/wordle/apps/tiles/internal/game"
	"github.com/robalobadob/wordle/apps/tiles/internal/store"
)

// Options configures a Server.
type Options struct {
	ClientOrigin  string // allowed CORS origin
	SessionSecret string
	CookieName    string
	Secure        bool // production cookies (Secure, SameSite=None)
	Logger        *zerolog.Logger
}

// Server bundles router, session store and answer source.
type Server struct {
	r     *chi.Mux
	store store.Store
	words game.WordSource
	sess  *sessions
	locks keyedMutex
	index []byte
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, src game.WordSource, opts Options) (*Server, error) {
	sess, err := newSessions(opts.SessionSecret, opts.CookieName, opts.Secure)
	if err != nil {
		return nil, err
	}
	index, err := assets.IndexHTML()
	if err != nil {
		return nil, err
	}
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	s := &Server{r: chi.NewRouter(), store: st, words: src, sess: sess, index: index}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(logger))         // request-scoped logger
	s.r.Use(requestIDLog)                    // tag log lines with the request ID
	s.r.Use(accessLog)                       // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- page + diagnostics ---
	s.r.Get("/", s.handleIndex)
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		n := -1
		if l, ok := s.words.(interface{ Len() int }); ok {
			n = l.Len()
		}
		writeJSON(w, http.StatusOK, map[string]int{"answers": n})
	})

	// --- game ---
	s.r.Route("/api/game", func(r chi.Router) {
		r.Get("/", s.handleFrame)
		r.Post("/key", s.handleKey)
		r.Post("/restart", s.handleRestart)
		r.Get("/share", s.handleShare)
		r.Delete("/", s.handleForget)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s, nil
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ PAGE ---------------------------------------

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(s.index)
}

// ------------------------------ GAME ---------------------------------------

// maxKeyBody bounds POST /api/game/key bodies; a key event is a few bytes.
const maxKeyBody = 1 << 10

// keyReq is the payload for POST /api/game/key.
type keyReq struct {
	Key string `json:"key"`
}

// shareRes is the payload for GET /api/game/share.
type shareRes struct {
	Text string `json:"text"`
}

// handleFrame returns the current frame, starting a game for new sessions.
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	s.withGame(w, r, func(g game.State) game.State { return g })
}

// handleKey applies one key event.
func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxKeyBody)).Decode(&req); err != nil {
		hlog.FromRequest(r).Debug().Err(err).Msg("ignoring malformed key event")
		req = keyReq{}
	}
	s.withGame(w, r, func(g game.State) game.State { return g.HandleKey(req.Key) })
}

// handleRestart starts a new game if the current one is over.
func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	s.withGame(w, r, func(g game.State) game.State { return g.Restart(s.words) })
}

// handleShare returns the emoji summary of a finished game.
func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	_, g, release, ok := s.load(w, r)
	if !ok {
		return
	}
	release()
	writeJSON(w, http.StatusOK, shareRes{Text: game.ShareText(g)})
}

// handleForget drops the session's stored game and expires its cookie. The
// next request starts a fresh session.
func (s *Server) handleForget(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sess.identify(r)
	if ok {
		release := s.locks.lock(id)
		err := s.store.Delete(r.Context(), id)
		release()
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Str("session", id).Msg("delete game")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "delete_failed"})
			return
		}
		hlog.FromRequest(r).Info().Str("session", id).Msg("session forgotten")
	}
	s.sess.clear(w)
	w.WriteHeader(http.StatusNoContent)
}

// withGame loads the session's game, applies fn, persists the result when
// it changed, and replies with the new frame. The session lock is held for
// the whole transition.
func (s *Server) withGame(w http.ResponseWriter, r *http.Request, fn func(game.State) game.State) {
	id, g, release, ok := s.load(w, r)
	if !ok {
		return
	}
	defer release()

	next := fn(g)
	if next != g {
		if err := s.store.Save(r.Context(), id, next); err != nil {
			hlog.FromRequest(r).Error().Err(err).Str("session", id).Msg("save game")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "save_failed"})
			return
		}
		if next.Status() != g.Status() {
			hlog.FromRequest(r).Info().Str("session", id).Str("status", string(next.Status())).Msg("game status changed")
		}
	}
	writeJSON(w, http.StatusOK, next.Frame())
}

// load resolves the session, locks it and fetches its game, starting one if
// needed. On failure it has already written the error response.
func (s *Server) load(w http.ResponseWriter, r *http.Request) (string, game.State, func(), bool) {
	logger := hlog.FromRequest(r)
	id, err := s.sess.ensure(w, r)
	if err != nil {
		logger.Error().Err(err).Msg("issue session")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "session_failed"})
		return "", game.State{}, nil, false
	}

	release := s.locks.lock(id)
	g, err := s.store.Get(r.Context(), id)
	if err == nil {
		return id, g, release, true
	}
	if !errors.Is(err, store.ErrNotFound) {
		// An unreadable row is replaced rather than wedging the session.
		logger.Warn().Err(err).Str("session", id).Msg("load game; starting over")
	}
	g = game.Start(s.words)
	if err := s.store.Save(r.Context(), id, g); err != nil {
		release()
		logger.Error().Err(err).Str("session", id).Msg("save new game")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "save_failed"})
		return "", game.State{}, nil, false
	}
	logger.Info().Str("session", id).Msg("started game")
	return id, g, release, true
}

// ----------------------------- middleware ----------------------------------

// requestIDLog adds chi's request ID to the request-scoped logger.
func requestIDLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			hlog.FromRequest(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("req_id", id)
			})
		}
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one structured line per request.
var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
})

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin != "" {
				w.Header().Set("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
