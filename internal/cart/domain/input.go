package domain

type CartLineInput struct {
	MerchandiseID string
	Quantity      int32
	Attributes    []Attribute
	SellingPlanID string
}

// CartLineUpdateInput changes an existing line. A zero Quantity removes it.
type CartLineUpdateInput struct {
	ID            string
	MerchandiseID string
	Quantity      int32
	Attributes    []Attribute
}

type BuyerIdentityInput struct {
	Email               string
	Phone               string
	CountryCode         string
	CustomerAccessToken string
}

type CartInput struct {
	Lines         []CartLineInput
	Attributes    []Attribute
	DiscountCodes []string
	Note          string
	BuyerIdentity *BuyerIdentityInput
}
