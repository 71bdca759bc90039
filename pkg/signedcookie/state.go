package signedcookie

// State is the per-request holder the middleware shares with handlers.
//
// Before the handler runs it carries the verified cookie value, or the
// verification failure when a cookie was present but rejected. The handler
// communicates back through Set and Clear; the middleware inspects the state
// after the handler returns to decide whether the cookie must be rewritten.
//
// Leaving the state untouched and explicitly clearing it are different
// things: an untouched empty state never triggers a cookie write, while
// Clear always does. State is request-scoped and must not be shared across
// requests.
type State[T any] struct {
	value   T
	present bool
	dirty   bool
	failure error
}

// Value returns the current value and whether one is set. Before the handler
// touches the state, ok is true only when a cookie was present and verified.
func (s *State[T]) Value() (T, bool) {
	return s.value, s.present
}

// ValueOr returns the current value, or fallback when none is set.
func (s *State[T]) ValueOr(fallback T) T {
	if !s.present {
		return fallback
	}
	return s.value
}

// Err reports why a present cookie was rejected. It is nil when the cookie
// was absent or verified successfully.
func (s *State[T]) Err() error {
	return s.failure
}

// Set replaces the value. The middleware will consider rewriting the cookie.
func (s *State[T]) Set(v T) {
	s.value = v
	s.present = true
	s.dirty = true
}

// Clear explicitly empties the value. Unlike leaving the state untouched,
// a cleared state still triggers a cookie rewrite with the zero value.
func (s *State[T]) Clear() {
	var zero T
	s.value = zero
	s.present = false
	s.dirty = true
}
