// Package catalog provides a client for the print catalog and auth APIs.
package catalog

// Category represents a print product category.
type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ProductOption is a server-defined add-on with a per-unit surcharge.
type ProductOption struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	PriceAdd    float64 `json:"priceAdd"`
	Description string  `json:"description"`
}

// Product represents a configurable print product. A product is immutable
// once loaded; option order is the server's insertion order and is preserved
// for display.
type Product struct {
	ID          string          `json:"_id"`
	Category    Category        `json:"category"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	BasePrice   float64         `json:"basePrice"`
	Options     []ProductOption `json:"options"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// HasOptions returns true if the product has at least one add-on option.
func (p *Product) HasOptions() bool {
	return len(p.Options) > 0
}

// FindOption returns the option with the given id, or nil if not found.
func (p *Product) FindOption(id string) *ProductOption {
	for i := range p.Options {
		if p.Options[i].ID == id {
			return &p.Options[i]
		}
	}
	return nil
}

// FirstOptionID returns the id of the first option, or "" if there are none.
func (p *Product) FirstOptionID() string {
	if len(p.Options) == 0 {
		return ""
	}
	return p.Options[0].ID
}

// ============================================
// Auth Types
// ============================================

// User represents an authenticated storefront user.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin returns true if the user should be routed to the privileged area.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// LoginRequest represents the credentials sent to the auth service.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents the response from the auth service.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}
