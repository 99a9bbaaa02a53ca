package checkout

// CartItem is one line of the cart. Prices are looked up server-side.
type CartItem struct {
	ID       string `json:"id"       validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1,max=1000"`
}

type Customer struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Contact string `json:"contact" validate:"required,max=20"`
	Village string `json:"village" validate:"required,max=100"`
	Address string `json:"address" validate:"required,max=500"`
}

// POSTRequest represents a cash-on-delivery checkout.
type POSTRequest struct {
	Items    []CartItem `json:"items"    validate:"required,min=1,max=100,dive"`
	Customer Customer   `json:"customer" validate:"required"`
}
