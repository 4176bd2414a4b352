package app

import (
	"context"

	"github.com/dwikikusuma/storefront-cart/internal/cart/domain"
)

type CartGateway interface {
	Fetch(ctx context.Context, id string) (domain.Cart, error)
	Create(ctx context.Context, input domain.CartInput) (domain.Cart, error)
	AddLineItems(ctx context.Context, cartID string, lines []domain.CartLineInput) (domain.Cart, error)
	RemoveLineItems(ctx context.Context, cartID string, lineIDs []string) (domain.Cart, error)
	UpdateLineItems(ctx context.Context, cartID string, lines []domain.CartLineUpdateInput) (domain.Cart, error)
	UpdateAttributes(ctx context.Context, cartID string, attrs []domain.Attribute) (domain.Cart, error)
	UpdateBuyerIdentity(ctx context.Context, cartID string, identity domain.BuyerIdentityInput) (domain.Cart, error)
	UpdateDiscountCodes(ctx context.Context, cartID string, codes []string) (domain.Cart, error)
	UpdateNote(ctx context.Context, cartID string, note string) (domain.Cart, error)
}
