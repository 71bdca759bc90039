// Package cookie handles the HTTP side of cookie management: reading the raw
// cookie value from a request and writing it back with merged attributes.
//
// It deliberately knows nothing about signing; pair it with pkg/signer (or
// the pkg/signedcookie middleware) when the value must be tamper-proof.
//
// # Usage
//
//	mgr := cookie.New(
//	    cookie.WithSecure(true),
//	    cookie.WithSameSite(http.SameSiteStrictMode),
//	)
//
//	err := mgr.Set(w, "theme", "dark", cookie.WithMaxAge(3600))
//	value, err := mgr.Get(r, "theme")
//	mgr.Delete(w, "theme")
//
// Defaults are path "/" and SameSite Lax; every attribute can be overridden
// per manager or per write. Set refuses to emit headers above 4KB since
// browsers drop oversized cookies silently.
package cookie
