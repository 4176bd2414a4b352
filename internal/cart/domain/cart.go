package domain

import "time"

type Money struct {
	Amount       string
	CurrencyCode string
}

type Attribute struct {
	Key   string
	Value string
}

type Merchandise struct {
	ID           string
	Title        string
	ProductID    string
	ProductTitle string
	Price        Money
}

type CartLineCost struct {
	Subtotal Money
	Total    Money
}

type CartLine struct {
	ID          string
	Quantity    int32
	Merchandise Merchandise
	Attributes  []Attribute
	Cost        CartLineCost
}

type DiscountCode struct {
	Code       string
	Applicable bool
}

type BuyerIdentity struct {
	Email       string
	Phone       string
	CountryCode string
	CustomerID  string
}

type CartCost struct {
	Subtotal Money
	Total    Money
	TotalTax Money
}

// Cart is the server-side cart with every line page already merged.
type Cart struct {
	ID            string
	CheckoutURL   string
	Note          string
	TotalQuantity int32
	Attributes    []Attribute
	BuyerIdentity BuyerIdentity
	DiscountCodes []DiscountCode
	Cost          CartCost
	Lines         []CartLine
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
