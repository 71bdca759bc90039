// Package signedcookie implements the signed-cookie round-trip protocol as
// net/http middleware: read the cookie from the request, verify it, expose
// the value (or the verification failure) to handlers through a
// request-scoped State, and rewrite the cookie on the way out when the
// handler changed the value.
//
// Two codecs share one contract: Simple signs an opaque string, Serialized
// signs any JSON-compatible value. Both bind their tokens to the cookie name
// so a token for one cookie never verifies for another, even with a shared
// secret.
//
// # Usage
//
//	codec, err := signedcookie.NewSimple(secret, "my_cookie", time.Minute)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mw, err := signedcookie.Middleware[string](codec, "my_cookie", "messages", time.Minute)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := chi.NewRouter()
//	r.Use(mw)
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    st := signedcookie.MustFromContext[string](r.Context(), "messages")
//	    st.Set(st.ValueOr("") + "visited;")
//	})
//
// A request without the cookie, or with a tampered, expired, or malformed
// one, still receives a normal response: the failure is only visible via
// State.Err. The cookie is rewritten only when the handler set a value that
// differs from the incoming one (policy injectable via
// MiddlewareConfig.ShouldWrite), or when it explicitly cleared the state.
package signedcookie
