package dto

// ContactRequest is shared by clients, suppliers and commercials: one
// validation contract for all three contact tables.
type ContactRequest struct {
	CompanyName string  `json:"company_name" validate:"required,min=2,max=150"`
	ContactName *string `json:"contact_name" validate:"omitempty,max=100"`
	Email       string  `json:"email"        validate:"required,email"`
	Phone       *string `json:"phone"        validate:"omitempty,max=30"`
	Address     *string `json:"address"`
	TaxID       *string `json:"tax_id"       validate:"omitempty,max=40"`
}

type ContactResponse struct {
	ID          string  `json:"id"`
	CompanyName string  `json:"company_name"`
	ContactName *string `json:"contact_name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	TaxID       *string `json:"tax_id"`
	Active      bool    `json:"active"`
}
