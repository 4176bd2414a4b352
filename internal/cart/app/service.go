package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dwikikusuma/storefront-cart/internal/cart/domain"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	gw  CartGateway
	log *slog.Logger
}

func NewService(gw CartGateway, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		gw:  gw,
		log: log,
	}
}

func (s *Service) GetCart(ctx context.Context, cartID string) (domain.Cart, error) {
	if err := requireID("cart id", cartID); err != nil {
		return domain.Cart{}, err
	}
	return s.gw.Fetch(ctx, cartID)
}

func (s *Service) CreateCart(ctx context.Context, input domain.CartInput) (domain.Cart, error) {
	for i, l := range input.Lines {
		if err := validateLine(l); err != nil {
			return domain.Cart{}, fmt.Errorf("line %d: %w", i, err)
		}
	}
	if err := validateAttributes(input.Attributes); err != nil {
		return domain.Cart{}, err
	}
	if err := validateCodes(input.DiscountCodes); err != nil {
		return domain.Cart{}, err
	}

	cart, err := s.gw.Create(ctx, input)
	if err != nil {
		return domain.Cart{}, err
	}
	s.log.Info("cart created", slog.String("cart_id", cart.ID), slog.Int("lines", len(cart.Lines)))
	return cart, nil
}

// GetOrCreate returns the cart with cartID when it still exists, otherwise a
// new cart built from input.
func (s *Service) GetOrCreate(ctx context.Context, cartID string, input domain.CartInput) (domain.Cart, error) {
	if strings.TrimSpace(cartID) != "" {
		cart, err := s.gw.Fetch(ctx, cartID)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, domain.ErrCartNotFound) {
			return domain.Cart{}, err
		}
		s.log.Info("cart expired, creating a new one", slog.String("cart_id", cartID))
	}
	return s.CreateCart(ctx, input)
}

func (s *Service) AddItemsToCart(ctx context.Context, cartID string, lines []domain.CartLineInput) (domain.Cart, error) {
	if err := requireID("cart id", cartID); err != nil {
		return domain.Cart{}, err
	}
	if len(lines) == 0 {
		return domain.Cart{}, fmt.Errorf("%w: no lines to add", ErrInvalidInput)
	}
	for i, l := range lines {
		if err := validateLine(l); err != nil {
			return domain.Cart{}, fmt.Errorf("line %d: %w", i, err)
		}
	}
	return s.gw.AddLineItems(ctx, cartID, lines)
}

func (s *Service) RemoveItemsFromCart(ctx context.Context, cartID string, lineIDs []string) (domain.Cart, error) {
	if err := requireID("cart id", cartID); err != nil {
		return domain.Cart{}, err
	}
	if len(lineIDs) == 0 {
		return domain.Cart{}, fmt.Errorf("%w: no lines to remove", ErrInvalidInput)
	}
	for _, id := range lineIDs {
		if err := requireID("line id", id); err != nil {
			return domain.Cart{}, err
		}
	}
	return s.gw.RemoveLineItems(ctx, cartID, lineIDs)
}

func (s *Service) SetItemQuantities(ctx context.Context, cartID string, lines []domain.CartLineUpdateInput) (domain.Cart, error) {
	if err := requireID("cart id", cartID); err != nil {
		return domain.Cart{}, err
	}
	if len(lines) == 0 {
		return domain.Cart{}, fmt.Errorf("%w: no lines to update", ErrInvalidInput)
	}
	for i, l := range lines {
		if err := requireID("line id", l.ID); err != nil {
			return domain.Cart{}, fmt.Errorf("line %d: %w", i, err)
		}
		if l.Quantity < 0 {
			return domain.Cart{}, fmt.Errorf("line %d: %w: quantity cannot be negative, got %d", i, ErrInvalidInput, l.Quantity)
		}
		if err := validateAttributes(l.Attributes); err != nil {
			return domain.Cart{}, fmt.Errorf("line %d: %w", i, err)
		}
	}
	return s.gw.UpdateLineItems(ctx, cartID, lines)
}

func (s *Service) UpdateAttributes(ctx context.Context, cartID string, attrs []domain.Attribute) (domain.Cart, error) {
	if err := requireID("cart id", cartID); err != nil {
		return domain.Cart{}, err
	}
	if err := validateAttributes(attrs); err != nil {
		return domain.Cart{}, err
	}
	return s.gw.UpdateAttributes(ctx, cartID, attrs)
}

func (s *Service) UpdateBuyerIdentity(ctx context.Context, cartID string, identity domain.BuyerIdentityInput) (domain.Cart, error) {
	if err := requireID("cart id", cartID); err != nil {
		return domain.Cart{}, err
	}
	return s.gw.UpdateBuyerIdentity(ctx, cartID, identity)
}

func (s *Service) UpdateDiscountCodes(ctx context.Context, cartID string, codes []string) (domain.Cart, error) {
	if err := requireID("cart id", cartID); err != nil {
		return domain.Cart{}, err
	}
	if err := validateCodes(codes); err != nil {
		return domain.Cart{}, err
	}
	return s.gw.UpdateDiscountCodes(ctx, cartID, codes)
}

func (s *Service) UpdateNote(ctx context.Context, cartID string, note string) (domain.Cart, error) {
	if err := requireID("cart id", cartID); err != nil {
		return domain.Cart{}, err
	}
	return s.gw.UpdateNote(ctx, cartID, note)
}

func requireID(what, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, what)
	}
	return nil
}

func validateLine(l domain.CartLineInput) error {
	if err := requireID("merchandise id", l.MerchandiseID); err != nil {
		return err
	}
	if l.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidInput, l.Quantity)
	}
	return validateAttributes(l.Attributes)
}

func validateAttributes(attrs []domain.Attribute) error {
	for _, a := range attrs {
		if strings.TrimSpace(a.Key) == "" {
			return fmt.Errorf("%w: attribute key is required", ErrInvalidInput)
		}
	}
	return nil
}

func validateCodes(codes []string) error {
	for _, c := range codes {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("%w: discount code cannot be blank", ErrInvalidInput)
		}
	}
	return nil
}
