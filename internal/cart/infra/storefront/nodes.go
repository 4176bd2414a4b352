package storefront

import (
	"time"

	"github.com/dwikikusuma/storefront-cart/internal/cart/domain"
	"github.com/dwikikusuma/storefront-cart/pkg/graphql"
)

// Response shapes.

type moneyNode struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type attributeNode struct {
	Key   string  `json:"key"`
	Value *string `json:"value"`
}

type merchandiseNode struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Price   moneyNode `json:"price"`
	Product struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"product"`
}

type cartLineNode struct {
	ID          string          `json:"id"`
	Quantity    int32           `json:"quantity"`
	Attributes  []attributeNode `json:"attributes"`
	Merchandise merchandiseNode `json:"merchandise"`
	Cost        struct {
		SubtotalAmount moneyNode `json:"subtotalAmount"`
		TotalAmount    moneyNode `json:"totalAmount"`
	} `json:"cost"`
}

type cartNode struct {
	ID            string          `json:"id"`
	CheckoutURL   string          `json:"checkoutUrl"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Note          *string         `json:"note"`
	TotalQuantity int32           `json:"totalQuantity"`
	Attributes    []attributeNode `json:"attributes"`
	BuyerIdentity struct {
		Email       *string `json:"email"`
		Phone       *string `json:"phone"`
		CountryCode *string `json:"countryCode"`
		Customer    *struct {
			ID string `json:"id"`
		} `json:"customer"`
	} `json:"buyerIdentity"`
	DiscountCodes []struct {
		Code       string `json:"code"`
		Applicable bool   `json:"applicable"`
	} `json:"discountCodes"`
	Cost struct {
		SubtotalAmount moneyNode  `json:"subtotalAmount"`
		TotalAmount    moneyNode  `json:"totalAmount"`
		TotalTaxAmount *moneyNode `json:"totalTaxAmount"`
	} `json:"cost"`
	Lines graphql.Connection[cartLineNode] `json:"lines"`
}

type userErrorNode struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
	Code    string   `json:"code"`
}

// mutationPayload is the common shape of every cart mutation payload.
type mutationPayload struct {
	Cart       *cartNode       `json:"cart"`
	UserErrors []userErrorNode `json:"userErrors"`
}

// Input shapes.

type attributeInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type cartLineInput struct {
	MerchandiseID string           `json:"merchandiseId"`
	Quantity      int32            `json:"quantity"`
	Attributes    []attributeInput `json:"attributes,omitempty"`
	SellingPlanID string           `json:"sellingPlanId,omitempty"`
}

type cartLineUpdateInput struct {
	ID            string           `json:"id"`
	Quantity      int32            `json:"quantity"`
	MerchandiseID string           `json:"merchandiseId,omitempty"`
	Attributes    []attributeInput `json:"attributes,omitempty"`
}

type buyerIdentityInput struct {
	Email               string `json:"email,omitempty"`
	Phone               string `json:"phone,omitempty"`
	CountryCode         string `json:"countryCode,omitempty"`
	CustomerAccessToken string `json:"customerAccessToken,omitempty"`
}

type cartInput struct {
	Lines         []cartLineInput     `json:"lines,omitempty"`
	Attributes    []attributeInput    `json:"attributes,omitempty"`
	DiscountCodes []string            `json:"discountCodes,omitempty"`
	Note          string              `json:"note,omitempty"`
	BuyerIdentity *buyerIdentityInput `json:"buyerIdentity,omitempty"`
}

func toAttributeInputs(attrs []domain.Attribute) []attributeInput {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]attributeInput, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, attributeInput{Key: a.Key, Value: a.Value})
	}
	return out
}

func toLineInputs(lines []domain.CartLineInput) []cartLineInput {
	out := make([]cartLineInput, 0, len(lines))
	for _, l := range lines {
		out = append(out, cartLineInput{
			MerchandiseID: l.MerchandiseID,
			Quantity:      l.Quantity,
			Attributes:    toAttributeInputs(l.Attributes),
			SellingPlanID: l.SellingPlanID,
		})
	}
	return out
}

func toLineUpdateInputs(lines []domain.CartLineUpdateInput) []cartLineUpdateInput {
	out := make([]cartLineUpdateInput, 0, len(lines))
	for _, l := range lines {
		out = append(out, cartLineUpdateInput{
			ID:            l.ID,
			Quantity:      l.Quantity,
			MerchandiseID: l.MerchandiseID,
			Attributes:    toAttributeInputs(l.Attributes),
		})
	}
	return out
}

func toBuyerIdentityInput(in domain.BuyerIdentityInput) buyerIdentityInput {
	return buyerIdentityInput{
		Email:               in.Email,
		Phone:               in.Phone,
		CountryCode:         in.CountryCode,
		CustomerAccessToken: in.CustomerAccessToken,
	}
}

func toCartInput(in domain.CartInput) cartInput {
	out := cartInput{
		Attributes:    toAttributeInputs(in.Attributes),
		DiscountCodes: in.DiscountCodes,
		Note:          in.Note,
	}
	if len(in.Lines) > 0 {
		out.Lines = toLineInputs(in.Lines)
	}
	if in.BuyerIdentity != nil {
		bi := toBuyerIdentityInput(*in.BuyerIdentity)
		out.BuyerIdentity = &bi
	}
	return out
}

// Mapping to the domain.

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toMoney(m moneyNode) domain.Money {
	return domain.Money{Amount: m.Amount, CurrencyCode: m.CurrencyCode}
}

func toAttributes(attrs []attributeNode) []domain.Attribute {
	out := make([]domain.Attribute, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, domain.Attribute{Key: a.Key, Value: deref(a.Value)})
	}
	return out
}

func toUserErrors(errs []userErrorNode) domain.UserErrors {
	out := make(domain.UserErrors, 0, len(errs))
	for _, e := range errs {
		out = append(out, domain.UserError{Field: e.Field, Message: e.Message, Code: e.Code})
	}
	return out
}

func toCartLine(n cartLineNode) domain.CartLine {
	return domain.CartLine{
		ID:       n.ID,
		Quantity: n.Quantity,
		Merchandise: domain.Merchandise{
			ID:           n.Merchandise.ID,
			Title:        n.Merchandise.Title,
			ProductID:    n.Merchandise.Product.ID,
			ProductTitle: n.Merchandise.Product.Title,
			Price:        toMoney(n.Merchandise.Price),
		},
		Attributes: toAttributes(n.Attributes),
		Cost: domain.CartLineCost{
			Subtotal: toMoney(n.Cost.SubtotalAmount),
			Total:    toMoney(n.Cost.TotalAmount),
		},
	}
}

// toCart flattens the node, replacing the lines connection with lines.
func toCart(n cartNode, lines []cartLineNode) domain.Cart {
	cart := domain.Cart{
		ID:            n.ID,
		CheckoutURL:   n.CheckoutURL,
		Note:          deref(n.Note),
		TotalQuantity: n.TotalQuantity,
		Attributes:    toAttributes(n.Attributes),
		BuyerIdentity: domain.BuyerIdentity{
			Email:       deref(n.BuyerIdentity.Email),
			Phone:       deref(n.BuyerIdentity.Phone),
			CountryCode: deref(n.BuyerIdentity.CountryCode),
		},
		Cost: domain.CartCost{
			Subtotal: toMoney(n.Cost.SubtotalAmount),
			Total:    toMoney(n.Cost.TotalAmount),
		},
		Lines:     make([]domain.CartLine, 0, len(lines)),
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
	if n.BuyerIdentity.Customer != nil {
		cart.BuyerIdentity.CustomerID = n.BuyerIdentity.Customer.ID
	}
	if n.Cost.TotalTaxAmount != nil {
		cart.Cost.TotalTax = toMoney(*n.Cost.TotalTaxAmount)
	}
	for _, dc := range n.DiscountCodes {
		cart.DiscountCodes = append(cart.DiscountCodes, domain.DiscountCode{Code: dc.Code, Applicable: dc.Applicable})
	}
	for _, l := range lines {
		cart.Lines = append(cart.Lines, toCartLine(l))
	}
	return cart
}
