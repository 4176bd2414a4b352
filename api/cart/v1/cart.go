// Package cartv1 holds the cart.v1 gRPC messages and service description.
// Messages travel as JSON using the codec registered in codec.go.
package cartv1

type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currency_code"`
}

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Merchandise struct {
	Id           string `json:"id"`
	Title        string `json:"title,omitempty"`
	ProductId    string `json:"product_id,omitempty"`
	ProductTitle string `json:"product_title,omitempty"`
	Price        *Money `json:"price,omitempty"`
}

type CartLine struct {
	Id          string       `json:"id"`
	Quantity    int32        `json:"quantity"`
	Merchandise *Merchandise `json:"merchandise,omitempty"`
	Attributes  []*Attribute `json:"attributes,omitempty"`
	Subtotal    *Money       `json:"subtotal,omitempty"`
	Total       *Money       `json:"total,omitempty"`
}

type DiscountCode struct {
	Code       string `json:"code"`
	Applicable bool   `json:"applicable"`
}

type BuyerIdentity struct {
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	CustomerId  string `json:"customer_id,omitempty"`
}

type CartCost struct {
	Subtotal *Money `json:"subtotal,omitempty"`
	Total    *Money `json:"total,omitempty"`
	TotalTax *Money `json:"total_tax,omitempty"`
}

type Cart struct {
	Id            string          `json:"id"`
	CheckoutUrl   string          `json:"checkout_url,omitempty"`
	Note          string          `json:"note,omitempty"`
	TotalQuantity int32           `json:"total_quantity"`
	Attributes    []*Attribute    `json:"attributes,omitempty"`
	BuyerIdentity *BuyerIdentity  `json:"buyer_identity,omitempty"`
	DiscountCodes []*DiscountCode `json:"discount_codes,omitempty"`
	Cost          *CartCost       `json:"cost,omitempty"`
	Lines         []*CartLine     `json:"lines"`
	CreatedAtUnix int64           `json:"created_at_unix,omitempty"`
	UpdatedAtUnix int64           `json:"updated_at_unix,omitempty"`
}

type LineInput struct {
	MerchandiseId string       `json:"merchandise_id"`
	Quantity      int32        `json:"quantity"`
	Attributes    []*Attribute `json:"attributes,omitempty"`
	SellingPlanId string       `json:"selling_plan_id,omitempty"`
}

type LineUpdate struct {
	Id            string       `json:"id"`
	MerchandiseId string       `json:"merchandise_id,omitempty"`
	Quantity      int32        `json:"quantity"`
	Attributes    []*Attribute `json:"attributes,omitempty"`
}

type BuyerIdentityInput struct {
	Email               string `json:"email,omitempty"`
	Phone               string `json:"phone,omitempty"`
	CountryCode         string `json:"country_code,omitempty"`
	CustomerAccessToken string `json:"customer_access_token,omitempty"`
}

type GetCartRequest struct {
	CartId string `json:"cart_id"`
}

type CreateCartRequest struct {
	Lines         []*LineInput        `json:"lines,omitempty"`
	Attributes    []*Attribute        `json:"attributes,omitempty"`
	DiscountCodes []string            `json:"discount_codes,omitempty"`
	Note          string              `json:"note,omitempty"`
	BuyerIdentity *BuyerIdentityInput `json:"buyer_identity,omitempty"`
}

// GetOrCreateCartRequest fetches CartId and falls back to creating a cart
// from Create when the id is empty or the cart has expired.
type GetOrCreateCartRequest struct {
	CartId string             `json:"cart_id,omitempty"`
	Create *CreateCartRequest `json:"create,omitempty"`
}

type AddLinesRequest struct {
	CartId string       `json:"cart_id"`
	Lines  []*LineInput `json:"lines"`
}

type RemoveLinesRequest struct {
	CartId  string   `json:"cart_id"`
	LineIds []string `json:"line_ids"`
}

type UpdateLinesRequest struct {
	CartId string        `json:"cart_id"`
	Lines  []*LineUpdate `json:"lines"`
}

type UpdateAttributesRequest struct {
	CartId     string       `json:"cart_id"`
	Attributes []*Attribute `json:"attributes"`
}

type UpdateBuyerIdentityRequest struct {
	CartId        string              `json:"cart_id"`
	BuyerIdentity *BuyerIdentityInput `json:"buyer_identity"`
}

type UpdateDiscountCodesRequest struct {
	CartId        string   `json:"cart_id"`
	DiscountCodes []string `json:"discount_codes"`
}

type UpdateNoteRequest struct {
	CartId string `json:"cart_id"`
	Note   string `json:"note"`
}
