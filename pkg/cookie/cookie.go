package cookie

import (
	"errors"
	"net/http"
	"time"
)

// MaxSize is the largest Set-Cookie header the manager will emit. Browsers
// cap cookies around 4KB; anything larger is silently dropped by clients,
// which is worse than an explicit error.
const MaxSize = 4096

// Manager writes and reads cookies with a fixed set of default attributes.
// Defaults follow the signed-cookie conventions: path "/", SameSite Lax, not
// Secure and not HttpOnly unless configured otherwise.
type Manager struct {
	defaults Options
}

// New creates a cookie Manager with the given attribute defaults.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{defaults: applyOptions(defaults, opts)}
}

// Get returns the raw value of the named request cookie.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Set writes a cookie using the manager defaults merged with the given
// overrides. Returns ErrTooLarge when the resulting header exceeds MaxSize.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	if name == "" {
		return ErrBlankName
	}

	options := applyOptions(m.defaults, opts)

	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}

	if len(c.String()) > MaxSize {
		return ErrTooLarge
	}

	http.SetCookie(w, c)
	return nil
}

// Delete asks the client to drop the named cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   m.defaults.Secure,
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
	})
}
