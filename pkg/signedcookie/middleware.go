package signedcookie

import (
	"log/slog"
	"net/http"
	"reflect"
	"time"

	"github.com/dmitrymomot/signedcookie/pkg/cookie"
	"github.com/dmitrymomot/signedcookie/pkg/logger"
)

// MiddlewareConfig configures the signed-cookie middleware.
type MiddlewareConfig[T any] struct {
	// Codec encodes and decodes the cookie payload (required).
	Codec Codec[T]
	// CookieName is the name of the wire cookie (required).
	CookieName string
	// StateName is the key under which the State is exposed to handlers (required).
	StateName string
	// TTL is the cookie lifetime, used as the Max-Age attribute (required).
	// The codec constructors use the same value as the signature max age.
	TTL time.Duration
	// Cookies handles attribute merging on write (default: cookie.New()).
	Cookies *cookie.Manager
	// CookieOptions are per-write attribute overrides.
	CookieOptions []cookie.Option
	// ShouldWrite decides whether the outgoing cookie must be rewritten.
	// prev is nil when no valid value arrived with the request.
	// Default: write when prev is nil or the values differ structurally.
	ShouldWrite func(prev *T, next T) bool
	// Skip bypasses the middleware for selected requests.
	Skip func(r *http.Request) bool
	// DeleteInvalid issues an expiring Set-Cookie when verification fails,
	// so clients drop a cookie that can never verify again.
	DeleteInvalid bool
	// Logger receives absorbed verification failures at debug level and
	// encode failures at error level (default: discard). Cookie values and
	// secrets are never logged.
	Logger *slog.Logger
}

// Middleware creates a signed-cookie middleware with default configuration.
//
// Per request it reads the named cookie, verifies it through the codec,
// exposes the result as a *State[T] in the request context under stateName,
// runs the handler, and rewrites the cookie when the handler changed the
// value. Verification failures never reach the client; they are absorbed
// into State.Err.
func Middleware[T any](codec Codec[T], cookieName, stateName string, ttl time.Duration) (func(next http.Handler) http.Handler, error) {
	return MiddlewareWithConfig(MiddlewareConfig[T]{
		Codec:      codec,
		CookieName: cookieName,
		StateName:  stateName,
		TTL:        ttl,
	})
}

// MiddlewareWithConfig creates a signed-cookie middleware with custom
// configuration. Configuration mistakes are reported here, before any
// request is served.
func MiddlewareWithConfig[T any](cfg MiddlewareConfig[T]) (func(next http.Handler) http.Handler, error) {
	if cfg.Codec == nil {
		return nil, ErrMissingCodec
	}
	if cfg.CookieName == "" {
		return nil, ErrMissingCookieName
	}
	if cfg.StateName == "" {
		return nil, ErrMissingStateName
	}
	if cfg.TTL <= 0 {
		return nil, ErrInvalidTTL
	}

	if cfg.Cookies == nil {
		cfg.Cookies = cookie.New()
	}
	if cfg.ShouldWrite == nil {
		cfg.ShouldWrite = func(prev *T, next T) bool {
			return prev == nil || !reflect.DeepEqual(*prev, next)
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewDiscard()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			st := &State[T]{}
			var prior *T

			// Decode only when a cookie actually arrived; verification is
			// not free and an absent cookie is not a failure.
			if raw, err := cfg.Cookies.Get(r, cfg.CookieName); err == nil {
				value, derr := cfg.Codec.Decode(raw)
				if derr != nil {
					st.failure = derr
					cfg.Logger.DebugContext(r.Context(), "signed cookie rejected",
						slog.String("cookie", cfg.CookieName),
						slog.String("error", derr.Error()),
					)
				} else {
					st.value = value
					st.present = true
					snapshot := value
					prior = &snapshot
				}
			}

			ww := &cookieWriter{
				ResponseWriter: w,
				commit: func() {
					writeIfNeeded(w, r, cfg, st, prior)
				},
			}

			ctx := withState(r.Context(), cfg.StateName, st)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Handlers that never write still get their cookie decision;
			// a panicking handler never reaches this point, so no cookie is
			// written for an aborted request.
			ww.commitOnce()
		})
	}, nil
}

// writeIfNeeded runs the rewrite decision after the handler had its say.
func writeIfNeeded[T any](w http.ResponseWriter, r *http.Request, cfg MiddlewareConfig[T], st *State[T], prior *T) {
	if !st.present && !st.dirty {
		if st.failure != nil && cfg.DeleteInvalid {
			cfg.Cookies.Delete(w, cfg.CookieName)
		}
		return
	}

	if !cfg.ShouldWrite(prior, st.value) {
		return
	}

	encoded, err := cfg.Codec.Encode(st.value)
	if err != nil {
		// Unencodable payloads are a programming error; the response itself
		// must still go out, so the cookie is simply left untouched.
		cfg.Logger.ErrorContext(r.Context(), "signed cookie encode failed",
			slog.String("cookie", cfg.CookieName),
			slog.String("error", err.Error()),
		)
		return
	}

	opts := make([]cookie.Option, 0, 1+len(cfg.CookieOptions))
	opts = append(opts, cookie.WithMaxAge(int(cfg.TTL.Seconds())))
	opts = append(opts, cfg.CookieOptions...)

	if err := cfg.Cookies.Set(w, cfg.CookieName, encoded, opts...); err != nil {
		cfg.Logger.ErrorContext(r.Context(), "signed cookie write failed",
			slog.String("cookie", cfg.CookieName),
			slog.String("error", err.Error()),
		)
	}
}

// cookieWriter delays the rewrite decision until the handler commits its
// response, so the Set-Cookie header always lands before headers flush.
type cookieWriter struct {
	http.ResponseWriter
	commit    func()
	committed bool
}

func (w *cookieWriter) WriteHeader(code int) {
	w.commitOnce()
	w.ResponseWriter.WriteHeader(code)
}

func (w *cookieWriter) Write(b []byte) (int, error) {
	w.commitOnce()
	return w.ResponseWriter.Write(b)
}

func (w *cookieWriter) Flush() {
	w.commitOnce()
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap supports http.ResponseController.
func (w *cookieWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *cookieWriter) commitOnce() {
	if !w.committed {
		w.committed = true
		w.commit()
	}
}
