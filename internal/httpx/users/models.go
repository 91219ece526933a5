package users

// UpdateProfileRequest is the request body for PATCH /users/me
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

// AddressRequest is the request body for creating or updating an address
// swagger:model AddressRequest
type AddressRequest struct {
	Label      string `json:"label,omitempty"`
	City       string `json:"city"`
	Street     string `json:"street"`
	Building   string `json:"building,omitempty"`
	Apartment  string `json:"apartment,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	IsDefault  bool   `json:"is_default,omitempty"`
}
