package storefront

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/storefront-cart/internal/cart/domain"
	"github.com/dwikikusuma/storefront-cart/pkg/graphql"
)

// Sender is the GraphQL transport the resource runs on. *graphql.Client
// satisfies it.
type Sender interface {
	Send(ctx context.Context, query string, variables map[string]any) (*graphql.Response, error)
}

type CartResource struct {
	client   Sender
	pageSize int
	log      *slog.Logger
}

type Option func(*CartResource)

// WithPageSize sets how many lines are requested per page.
func WithPageSize(n int) Option {
	return func(r *CartResource) {
		if n > 0 {
			r.pageSize = n
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(r *CartResource) { r.log = log }
}

func NewCartResource(client Sender, opts ...Option) *CartResource {
	r := &CartResource{
		client:   client,
		pageSize: graphql.DefaultPageSize,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CartResource) Fetch(ctx context.Context, id string) (domain.Cart, error) {
	resp, err := r.client.Send(ctx, cartQuery, map[string]any{
		"id":         id,
		"linesFirst": r.pageSize,
	})
	if err != nil {
		return domain.Cart{}, fmt.Errorf("fetch cart: %w", err)
	}
	if len(resp.Errors) > 0 {
		return domain.Cart{}, fmt.Errorf("fetch cart: %w", resp.Errors)
	}

	var data struct {
		Cart *cartNode `json:"cart"`
	}
	if err := resp.Decode(&data); err != nil {
		return domain.Cart{}, err
	}
	if data.Cart == nil {
		return domain.Cart{}, domain.ErrCartNotFound
	}

	return r.expand(ctx, *data.Cart)
}

func (r *CartResource) Create(ctx context.Context, input domain.CartInput) (domain.Cart, error) {
	return r.mutate(ctx, "cartCreate", cartCreateMutation, map[string]any{
		"input": toCartInput(input),
	})
}

func (r *CartResource) AddLineItems(ctx context.Context, cartID string, lines []domain.CartLineInput) (domain.Cart, error) {
	return r.mutate(ctx, "cartLinesAdd", cartLinesAddMutation, map[string]any{
		"cartId": cartID,
		"lines":  toLineInputs(lines),
	})
}

func (r *CartResource) RemoveLineItems(ctx context.Context, cartID string, lineIDs []string) (domain.Cart, error) {
	return r.mutate(ctx, "cartLinesRemove", cartLinesRemoveMutation, map[string]any{
		"cartId":  cartID,
		"lineIds": lineIDs,
	})
}

func (r *CartResource) UpdateLineItems(ctx context.Context, cartID string, lines []domain.CartLineUpdateInput) (domain.Cart, error) {
	return r.mutate(ctx, "cartLinesUpdate", cartLinesUpdateMutation, map[string]any{
		"cartId": cartID,
		"lines":  toLineUpdateInputs(lines),
	})
}

func (r *CartResource) UpdateAttributes(ctx context.Context, cartID string, attrs []domain.Attribute) (domain.Cart, error) {
	inputs := toAttributeInputs(attrs)
	if inputs == nil {
		inputs = []attributeInput{}
	}
	return r.mutate(ctx, "cartAttributesUpdate", cartAttributesUpdateMutation, map[string]any{
		"attributes": inputs,
		"cartId":     cartID,
	})
}

func (r *CartResource) UpdateBuyerIdentity(ctx context.Context, cartID string, identity domain.BuyerIdentityInput) (domain.Cart, error) {
	return r.mutate(ctx, "cartBuyerIdentityUpdate", cartBuyerIdentityUpdateMutation, map[string]any{
		"buyerIdentity": toBuyerIdentityInput(identity),
		"cartId":        cartID,
	})
}

// UpdateDiscountCodes replaces the cart's codes. An empty list clears them.
func (r *CartResource) UpdateDiscountCodes(ctx context.Context, cartID string, codes []string) (domain.Cart, error) {
	if codes == nil {
		codes = []string{}
	}
	return r.mutate(ctx, "cartDiscountCodesUpdate", cartDiscountCodesUpdateMutation, map[string]any{
		"cartId":        cartID,
		"discountCodes": codes,
	})
}

func (r *CartResource) UpdateNote(ctx context.Context, cartID string, note string) (domain.Cart, error) {
	return r.mutate(ctx, "cartNoteUpdate", cartNoteUpdateMutation, map[string]any{
		"cartId": cartID,
		"note":   note,
	})
}

func (r *CartResource) mutate(ctx context.Context, root, document string, vars map[string]any) (domain.Cart, error) {
	vars["linesFirst"] = r.pageSize

	resp, err := r.client.Send(ctx, document, vars)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", root, err)
	}

	cart, err := r.resolveMutation(ctx, root, resp)
	if err != nil {
		r.log.Warn("cart mutation failed", slog.String("mutation", root), slog.Any("err", err))
		return domain.Cart{}, err
	}
	return cart, nil
}

// expand loads any remaining line pages and flattens the cart.
func (r *CartResource) expand(ctx context.Context, node cartNode) (domain.Cart, error) {
	lines, err := graphql.FetchAllPages(ctx, node.Lines, r.pageSize, r.linesPage(node.ID))
	if err != nil {
		return domain.Cart{}, fmt.Errorf("cart %s lines: %w", node.ID, err)
	}
	return toCart(node, lines), nil
}

func (r *CartResource) linesPage(cartID string) graphql.PageFunc[cartLineNode] {
	return func(ctx context.Context, after string, first int) (graphql.Connection[cartLineNode], error) {
		resp, err := r.client.Send(ctx, cartLinesQuery, map[string]any{
			"id":         cartID,
			"linesFirst": first,
			"linesAfter": after,
		})
		if err != nil {
			return graphql.Connection[cartLineNode]{}, err
		}
		if len(resp.Errors) > 0 {
			return graphql.Connection[cartLineNode]{}, resp.Errors
		}

		var data struct {
			Cart *struct {
				Lines graphql.Connection[cartLineNode] `json:"lines"`
			} `json:"cart"`
		}
		if err := resp.Decode(&data); err != nil {
			return graphql.Connection[cartLineNode]{}, err
		}
		if data.Cart == nil {
			return graphql.Connection[cartLineNode]{}, domain.ErrCartNotFound
		}
		return data.Cart.Lines, nil
	}
}
