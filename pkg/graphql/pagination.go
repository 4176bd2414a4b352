package graphql

import (
	"context"
	"errors"
	"fmt"
)

// DefaultPageSize is the largest page most storefront connections accept.
const DefaultPageSize = 250

var (
	ErrMissingCursor     = errors.New("graphql: connection reports a next page but no cursor")
	ErrStalledPagination = errors.New("graphql: connection returned the same cursor twice")
)

type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type Edge[T any] struct {
	Cursor string `json:"cursor"`
	Node   T      `json:"node"`
}

// Connection is a relay-style cursor connection.
type Connection[T any] struct {
	PageInfo PageInfo  `json:"pageInfo"`
	Edges    []Edge[T] `json:"edges"`
}

func (c Connection[T]) Items() []T {
	items := make([]T, 0, len(c.Edges))
	for _, e := range c.Edges {
		items = append(items, e.Node)
	}
	return items
}

// nextCursor prefers pageInfo.endCursor and falls back to the last edge.
func (c Connection[T]) nextCursor() string {
	if c.PageInfo.EndCursor != "" {
		return c.PageInfo.EndCursor
	}
	if n := len(c.Edges); n > 0 {
		return c.Edges[n-1].Cursor
	}
	return ""
}

// PageFunc loads the page of at most first items following the after cursor.
type PageFunc[T any] func(ctx context.Context, after string, first int) (Connection[T], error)

// FetchAllPages walks a connection starting from an already loaded first page
// and returns every node in server order.
func FetchAllPages[T any](ctx context.Context, first Connection[T], pageSize int, next PageFunc[T]) ([]T, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	items := first.Items()
	page := first
	seen := make(map[string]struct{})

	for page.PageInfo.HasNextPage {
		cursor := page.nextCursor()
		if cursor == "" {
			return nil, ErrMissingCursor
		}
		if _, dup := seen[cursor]; dup {
			return nil, ErrStalledPagination
		}
		seen[cursor] = struct{}{}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var err error
		page, err = next(ctx, cursor, pageSize)
		if err != nil {
			return nil, fmt.Errorf("fetch page after %q: %w", cursor, err)
		}
		items = append(items, page.Items()...)
	}

	return items, nil
}
