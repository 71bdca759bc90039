package signedcookie

import "context"

// stateKey scopes the stored state by the configured state name, so several
// middlewares with distinct names can coexist on one router.
type stateKey struct {
	name string
}

func withState[T any](ctx context.Context, name string, st *State[T]) context.Context {
	return context.WithValue(ctx, stateKey{name: name}, st)
}

// FromContext retrieves the state stored under the given name.
func FromContext[T any](ctx context.Context, name string) (*State[T], bool) {
	st, ok := ctx.Value(stateKey{name: name}).(*State[T])
	return st, ok
}

// MustFromContext retrieves the state stored under the given name or panics.
// Use it in handlers that are only ever mounted behind the middleware.
func MustFromContext[T any](ctx context.Context, name string) *State[T] {
	st, ok := FromContext[T](ctx, name)
	if !ok {
		panic("signedcookie: state " + name + " not found in context")
	}
	return st
}
