package grpc

import (
	"context"
	"errors"
	"net"
	"net/url"

	cartv1 "github.com/dwikikusuma/storefront-cart/api/cart/v1"
	"github.com/dwikikusuma/storefront-cart/internal/cart/app"
	"github.com/dwikikusuma/storefront-cart/internal/cart/domain"
	"github.com/dwikikusuma/storefront-cart/pkg/graphql"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	cartv1.UnimplementedCartServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) GetCart(ctx context.Context, req *cartv1.GetCartRequest) (*cartv1.Cart, error) {
	cart, err := s.svc.GetCart(ctx, req.CartId)
	if err != nil {
		return nil, mapErr(err, "error getting cart")
	}
	return toProto(cart), nil
}

func (s *Server) CreateCart(ctx context.Context, req *cartv1.CreateCartRequest) (*cartv1.Cart, error) {
	cart, err := s.svc.CreateCart(ctx, toCartInput(req))
	if err != nil {
		return nil, mapErr(err, "error creating cart")
	}
	return toProto(cart), nil
}

// GetOrCreateCart returns the cart when it still exists, otherwise a new cart
// built from req.Create.
func (s *Server) GetOrCreateCart(ctx context.Context, req *cartv1.GetOrCreateCartRequest) (*cartv1.Cart, error) {
	cart, err := s.svc.GetOrCreate(ctx, req.CartId, toCartInput(req.Create))
	if err != nil {
		return nil, mapErr(err, "error getting or creating cart")
	}
	return toProto(cart), nil
}

func (s *Server) AddLines(ctx context.Context, req *cartv1.AddLinesRequest) (*cartv1.Cart, error) {
	cart, err := s.svc.AddItemsToCart(ctx, req.CartId, toLineInputs(req.Lines))
	if err != nil {
		return nil, mapErr(err, "error adding lines to cart")
	}
	return toProto(cart), nil
}

func (s *Server) RemoveLines(ctx context.Context, req *cartv1.RemoveLinesRequest) (*cartv1.Cart, error) {
	cart, err := s.svc.RemoveItemsFromCart(ctx, req.CartId, req.LineIds)
	if err != nil {
		return nil, mapErr(err, "error removing lines from cart")
	}
	return toProto(cart), nil
}

func (s *Server) UpdateLines(ctx context.Context, req *cartv1.UpdateLinesRequest) (*cartv1.Cart, error) {
	lines := make([]domain.CartLineUpdateInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		if l == nil {
			continue
		}
		lines = append(lines, domain.CartLineUpdateInput{
			ID:            l.Id,
			MerchandiseID: l.MerchandiseId,
			Quantity:      l.Quantity,
			Attributes:    toAttributes(l.Attributes),
		})
	}

	cart, err := s.svc.SetItemQuantities(ctx, req.CartId, lines)
	if err != nil {
		return nil, mapErr(err, "error updating cart lines")
	}
	return toProto(cart), nil
}

func (s *Server) UpdateAttributes(ctx context.Context, req *cartv1.UpdateAttributesRequest) (*cartv1.Cart, error) {
	cart, err := s.svc.UpdateAttributes(ctx, req.CartId, toAttributes(req.Attributes))
	if err != nil {
		return nil, mapErr(err, "error updating cart attributes")
	}
	return toProto(cart), nil
}

func (s *Server) UpdateBuyerIdentity(ctx context.Context, req *cartv1.UpdateBuyerIdentityRequest) (*cartv1.Cart, error) {
	if req.BuyerIdentity == nil {
		return nil, status.Error(codes.InvalidArgument, "buyer_identity is required")
	}
	cart, err := s.svc.UpdateBuyerIdentity(ctx, req.CartId, toBuyerIdentityInput(req.BuyerIdentity))
	if err != nil {
		return nil, mapErr(err, "error updating buyer identity")
	}
	return toProto(cart), nil
}

func (s *Server) UpdateDiscountCodes(ctx context.Context, req *cartv1.UpdateDiscountCodesRequest) (*cartv1.Cart, error) {
	cart, err := s.svc.UpdateDiscountCodes(ctx, req.CartId, req.DiscountCodes)
	if err != nil {
		return nil, mapErr(err, "error updating discount codes")
	}
	return toProto(cart), nil
}

func (s *Server) UpdateNote(ctx context.Context, req *cartv1.UpdateNoteRequest) (*cartv1.Cart, error) {
	cart, err := s.svc.UpdateNote(ctx, req.CartId, req.Note)
	if err != nil {
		return nil, mapErr(err, "error updating cart note")
	}
	return toProto(cart), nil
}

func mapErr(err error, msg string) error {
	var (
		userErrs  domain.UserErrors
		statusErr *graphql.StatusError
		urlErr    *url.Error
		netErr    net.Error
	)

	switch {
	case errors.Is(err, context.Canceled):
		return status.Errorf(codes.Canceled, "%s: %v", msg, err)
	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s: %v", msg, err)
	case errors.Is(err, app.ErrInvalidInput):
		return status.Errorf(codes.InvalidArgument, "%s: %v", msg, err)
	case errors.Is(err, domain.ErrCartNotFound):
		return status.Errorf(codes.NotFound, "%s: %v", msg, err)
	case errors.As(err, &userErrs):
		return status.Errorf(codes.FailedPrecondition, "%s: %v", msg, err)
	case errors.As(err, &statusErr):
		if statusErr.Temporary() {
			return status.Errorf(codes.Unavailable, "%s: %v", msg, err)
		}
		// rejected request or bad credentials; retrying will not help
		return status.Errorf(codes.Internal, "%s: %v", msg, err)
	case errors.As(err, &urlErr), errors.As(err, &netErr):
		return status.Errorf(codes.Unavailable, "%s: %v", msg, err)
	default:
		return status.Errorf(codes.Internal, "%s: %v", msg, err)
	}
}

func toCartInput(req *cartv1.CreateCartRequest) domain.CartInput {
	if req == nil {
		return domain.CartInput{}
	}
	input := domain.CartInput{
		Lines:         toLineInputs(req.Lines),
		Attributes:    toAttributes(req.Attributes),
		DiscountCodes: req.DiscountCodes,
		Note:          req.Note,
	}
	if req.BuyerIdentity != nil {
		bi := toBuyerIdentityInput(req.BuyerIdentity)
		input.BuyerIdentity = &bi
	}
	return input
}

func toLineInputs(in []*cartv1.LineInput) []domain.CartLineInput {
	out := make([]domain.CartLineInput, 0, len(in))
	for _, l := range in {
		if l == nil {
			continue
		}
		out = append(out, domain.CartLineInput{
			MerchandiseID: l.MerchandiseId,
			Quantity:      l.Quantity,
			Attributes:    toAttributes(l.Attributes),
			SellingPlanID: l.SellingPlanId,
		})
	}
	return out
}

func toAttributes(in []*cartv1.Attribute) []domain.Attribute {
	if in == nil {
		return nil
	}
	out := make([]domain.Attribute, 0, len(in))
	for _, a := range in {
		if a == nil {
			continue
		}
		out = append(out, domain.Attribute{Key: a.Key, Value: a.Value})
	}
	return out
}

func toBuyerIdentityInput(in *cartv1.BuyerIdentityInput) domain.BuyerIdentityInput {
	return domain.BuyerIdentityInput{
		Email:               in.Email,
		Phone:               in.Phone,
		CountryCode:         in.CountryCode,
		CustomerAccessToken: in.CustomerAccessToken,
	}
}

func toProtoMoney(m domain.Money) *cartv1.Money {
	if m.Amount == "" && m.CurrencyCode == "" {
		return nil
	}
	return &cartv1.Money{Amount: m.Amount, CurrencyCode: m.CurrencyCode}
}

func toProtoAttributes(in []domain.Attribute) []*cartv1.Attribute {
	out := make([]*cartv1.Attribute, 0, len(in))
	for _, a := range in {
		out = append(out, &cartv1.Attribute{Key: a.Key, Value: a.Value})
	}
	return out
}

func toProto(cart domain.Cart) *cartv1.Cart {
	lines := make([]*cartv1.CartLine, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, &cartv1.CartLine{
			Id:       l.ID,
			Quantity: l.Quantity,
			Merchandise: &cartv1.Merchandise{
				Id:           l.Merchandise.ID,
				Title:        l.Merchandise.Title,
				ProductId:    l.Merchandise.ProductID,
				ProductTitle: l.Merchandise.ProductTitle,
				Price:        toProtoMoney(l.Merchandise.Price),
			},
			Attributes: toProtoAttributes(l.Attributes),
			Subtotal:   toProtoMoney(l.Cost.Subtotal),
			Total:      toProtoMoney(l.Cost.Total),
		})
	}

	discounts := make([]*cartv1.DiscountCode, 0, len(cart.DiscountCodes))
	for _, d := range cart.DiscountCodes {
		discounts = append(discounts, &cartv1.DiscountCode{Code: d.Code, Applicable: d.Applicable})
	}

	out := &cartv1.Cart{
		Id:            cart.ID,
		CheckoutUrl:   cart.CheckoutURL,
		Note:          cart.Note,
		TotalQuantity: cart.TotalQuantity,
		Attributes:    toProtoAttributes(cart.Attributes),
		BuyerIdentity: &cartv1.BuyerIdentity{
			Email:       cart.BuyerIdentity.Email,
			Phone:       cart.BuyerIdentity.Phone,
			CountryCode: cart.BuyerIdentity.CountryCode,
			CustomerId:  cart.BuyerIdentity.CustomerID,
		},
		DiscountCodes: discounts,
		Cost: &cartv1.CartCost{
			Subtotal: toProtoMoney(cart.Cost.Subtotal),
			Total:    toProtoMoney(cart.Cost.Total),
			TotalTax: toProtoMoney(cart.Cost.TotalTax),
		},
		Lines: lines,
	}
	if !cart.CreatedAt.IsZero() {
		out.CreatedAtUnix = cart.CreatedAt.Unix()
	}
	if !cart.UpdatedAt.IsZero() {
		out.UpdatedAtUnix = cart.UpdatedAt.Unix()
	}
	return out
}
