package app

import (
	"context"
	"errors"
	"testing"

	"github.com/dwikikusuma/storefront-cart/internal/cart/domain"
)

type fakeGateway struct {
	carts   map[string]domain.Cart
	created int
	calls   []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{carts: map[string]domain.Cart{}}
}

func (f *fakeGateway) Fetch(ctx context.Context, id string) (domain.Cart, error) {
	f.calls = append(f.calls, "Fetch")
	c, ok := f.carts[id]
	if !ok {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	return c, nil
}

func (f *fakeGateway) Create(ctx context.Context, input domain.CartInput) (domain.Cart, error) {
	f.calls = append(f.calls, "Create")
	f.created++
	c := domain.Cart{ID: "new-cart", Note: input.Note}
	f.carts[c.ID] = c
	return c, nil
}

func (f *fakeGateway) AddLineItems(ctx context.Context, cartID string, lines []domain.CartLineInput) (domain.Cart, error) {
	f.calls = append(f.calls, "AddLineItems")
	return domain.Cart{ID: cartID}, nil
}

func (f *fakeGateway) RemoveLineItems(ctx context.Context, cartID string, lineIDs []string) (domain.Cart, error) {
	f.calls = append(f.calls, "RemoveLineItems")
	return domain.Cart{ID: cartID}, nil
}

func (f *fakeGateway) UpdateLineItems(ctx context.Context, cartID string, lines []domain.CartLineUpdateInput) (domain.Cart, error) {
	f.calls = append(f.calls, "UpdateLineItems")
	return domain.Cart{ID: cartID}, nil
}

func (f *fakeGateway) UpdateAttributes(ctx context.Context, cartID string, attrs []domain.Attribute) (domain.Cart, error) {
	f.calls = append(f.calls, "UpdateAttributes")
	return domain.Cart{ID: cartID, Attributes: attrs}, nil
}

func (f *fakeGateway) UpdateBuyerIdentity(ctx context.Context, cartID string, identity domain.BuyerIdentityInput) (domain.Cart, error) {
	f.calls = append(f.calls, "UpdateBuyerIdentity")
	return domain.Cart{ID: cartID}, nil
}

func (f *fakeGateway) UpdateDiscountCodes(ctx context.Context, cartID string, codes []string) (domain.Cart, error) {
	f.calls = append(f.calls, "UpdateDiscountCodes")
	return domain.Cart{ID: cartID}, nil
}

func (f *fakeGateway) UpdateNote(ctx context.Context, cartID string, note string) (domain.Cart, error) {
	f.calls = append(f.calls, "UpdateNote")
	return domain.Cart{ID: cartID, Note: note}, nil
}

func TestServiceValidation(t *testing.T) {
	ctx := context.Background()
	gw := newFakeGateway()
	svc := NewService(gw, nil)

	t.Run("blank cart id -> invalid", func(t *testing.T) {
		_, err := svc.GetCart(ctx, "   ")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("add without lines -> invalid", func(t *testing.T) {
		_, err := svc.AddItemsToCart(ctx, "c1", nil)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("add zero quantity -> invalid", func(t *testing.T) {
		_, err := svc.AddItemsToCart(ctx, "c1", []domain.CartLineInput{{MerchandiseID: "v1", Quantity: 0}})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("add blank merchandise -> invalid", func(t *testing.T) {
		_, err := svc.AddItemsToCart(ctx, "c1", []domain.CartLineInput{{Quantity: 1}})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("remove blank line id -> invalid", func(t *testing.T) {
		_, err := svc.RemoveItemsFromCart(ctx, "c1", []string{"l1", ""})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("update negative quantity -> invalid", func(t *testing.T) {
		_, err := svc.SetItemQuantities(ctx, "c1", []domain.CartLineUpdateInput{{ID: "l1", Quantity: -1}})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("blank attribute key -> invalid", func(t *testing.T) {
		_, err := svc.UpdateAttributes(ctx, "c1", []domain.Attribute{{Key: " ", Value: "x"}})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("blank discount code -> invalid", func(t *testing.T) {
		_, err := svc.UpdateDiscountCodes(ctx, "c1", []string{"SAVE10", ""})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	if len(gw.calls) != 0 {
		t.Fatalf("invalid input must not reach the gateway, got calls %v", gw.calls)
	}
}

func TestServiceDelegates(t *testing.T) {
	ctx := context.Background()
	gw := newFakeGateway()
	svc := NewService(gw, nil)

	if _, err := svc.SetItemQuantities(ctx, "c1", []domain.CartLineUpdateInput{{ID: "l1", Quantity: 0}}); err != nil {
		t.Fatalf("zero quantity update should be allowed: %v", err)
	}
	if _, err := svc.UpdateDiscountCodes(ctx, "c1", nil); err != nil {
		t.Fatalf("clearing discount codes should be allowed: %v", err)
	}
	cart, err := svc.UpdateNote(ctx, "c1", "")
	if err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}
	if cart.ID != "c1" {
		t.Fatalf("expected cart c1, got %q", cart.ID)
	}

	want := []string{"UpdateLineItems", "UpdateDiscountCodes", "UpdateNote"}
	if len(gw.calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, gw.calls)
	}
	for i := range want {
		if gw.calls[i] != want[i] {
			t.Fatalf("expected calls %v, got %v", want, gw.calls)
		}
	}
}

func TestGetOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("existing cart is returned", func(t *testing.T) {
		gw := newFakeGateway()
		gw.carts["c1"] = domain.Cart{ID: "c1"}
		svc := NewService(gw, nil)

		cart, err := svc.GetOrCreate(ctx, "c1", domain.CartInput{})
		if err != nil {
			t.Fatalf("GetOrCreate failed: %v", err)
		}
		if cart.ID != "c1" || gw.created != 0 {
			t.Fatalf("expected existing cart, got %q (created=%d)", cart.ID, gw.created)
		}
	})

	t.Run("missing cart is recreated", func(t *testing.T) {
		gw := newFakeGateway()
		svc := NewService(gw, nil)

		cart, err := svc.GetOrCreate(ctx, "expired", domain.CartInput{Note: "hi"})
		if err != nil {
			t.Fatalf("GetOrCreate failed: %v", err)
		}
		if cart.ID != "new-cart" || cart.Note != "hi" || gw.created != 1 {
			t.Fatalf("expected a new cart, got %+v (created=%d)", cart, gw.created)
		}
	})

	t.Run("no id creates", func(t *testing.T) {
		gw := newFakeGateway()
		svc := NewService(gw, nil)

		if _, err := svc.GetOrCreate(ctx, "", domain.CartInput{}); err != nil {
			t.Fatalf("GetOrCreate failed: %v", err)
		}
		if gw.created != 1 || len(gw.calls) != 1 {
			t.Fatalf("expected a single Create call, got %v", gw.calls)
		}
	})
}
