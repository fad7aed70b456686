package model

// Company is the client being billed.
type Company struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	StreetCont string `json:"street_cont"`
	City       string `json:"city"`
	Postcode   string `json:"postcode"`
}

// Payee is the person who worked the hours and receives the payment.
type Payee struct {
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Position string `json:"position"`
	Email    string `json:"email"`

	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`

	BankName    string `json:"bank_name"`
	BankAddress string `json:"bank_address"`
	HolderName  string `json:"holder_name"`
	Swift       string `json:"swift"`
	RoutingNb   string `json:"routing_nb"`
	AccountNb   string `json:"account_nb"`
}
