package view

import (
	"context"
	"errors"

	"shipfront/internal/apperr"
)

// Page is the outcome of one guarded fetch-and-render cycle. Every list and
// detail view resolves to exactly one of: data, an explicit empty state, or a
// visible error — never a perpetual loading state.
type Page[T any] struct {
	Data T
	// Empty is set when the fetch succeeded but the result set is empty.
	Empty bool
	// Error is the user-displayable message when the fetch failed.
	Error string
	// Unauthorized is set when the session was invalidated mid-fetch;
	// the caller must redirect to login instead of rendering.
	Unauthorized bool
}

// Load runs fetch and folds the result into a renderable page state.
func Load[T any](ctx context.Context, fetch func(context.Context) (T, error), isEmpty func(T) bool) Page[T] {
	data, err := fetch(ctx)
	if err != nil {
		if errors.Is(err, apperr.Unauthorized) {
			return Page[T]{Unauthorized: true}
		}
		return Page[T]{Error: apperr.Detail(err)}
	}
	if isEmpty != nil && isEmpty(data) {
		return Page[T]{Data: data, Empty: true}
	}
	return Page[T]{Data: data}
}

// SliceEmpty is the isEmpty predicate for list views.
func SliceEmpty[T any](list []T) bool { return len(list) == 0 }
