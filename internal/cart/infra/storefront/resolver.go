package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dwikikusuma/storefront-cart/internal/cart/domain"
	"github.com/dwikikusuma/storefront-cart/pkg/graphql"
)

var ErrMutationFailed = errors.New("mutation failed due to an unknown error")

// resolveMutation unwraps data.<root> of a cart mutation response. Any
// top-level or user error fails the call; a partial cart is never returned.
func (r *CartResource) resolveMutation(ctx context.Context, root string, resp *graphql.Response) (domain.Cart, error) {
	if len(resp.Errors) > 0 {
		return domain.Cart{}, fmt.Errorf("%s: %w", root, resp.Errors)
	}

	var data map[string]json.RawMessage
	if err := resp.Decode(&data); err != nil {
		return domain.Cart{}, err
	}

	raw, ok := data[root]
	if !ok || string(raw) == "null" {
		return domain.Cart{}, fmt.Errorf("%s: %w", root, ErrMutationFailed)
	}

	var payload mutationPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: decode payload: %w", root, err)
	}

	if len(payload.UserErrors) > 0 {
		return domain.Cart{}, fmt.Errorf("%s: %w", root, toUserErrors(payload.UserErrors))
	}
	if payload.Cart == nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", root, ErrMutationFailed)
	}

	return r.expand(ctx, *payload.Cart)
}
