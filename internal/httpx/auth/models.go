package auth

// TokenResponse represents an access token response
// swagger:model TokenResponse
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"<JWT>"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int    `json:"expires_in" example:"900"`
	UserID      string `json:"user_id,omitempty" example:"8a0d1b7c-..."`
	Username    string `json:"username,omitempty" example:"ivan_12345"`
	IsNewUser   bool   `json:"is_new_user,omitempty"`
}

// LoginRequest represents the password login request body
// swagger:model LoginRequest
type LoginRequest struct {
	Identifier string `json:"identifier" example:"alice@example.com"`
	Password   string `json:"password" example:"Secretp@ssw0rd"`
}

// RegisterRequest represents the registration request body
// swagger:model RegisterRequest
type RegisterRequest struct {
	Identifier  string `json:"identifier" example:"alice@example.com"`
	Password    string `json:"password" example:"Secretp@ssw0rd"`
	Username    string `json:"username" example:"alice"`
	DisplayName string `json:"display_name,omitempty" example:"Alice"`
}

// TelegramLoginRequest carries the fields the Telegram login widget posts back
// swagger:model TelegramLoginRequest
type TelegramLoginRequest struct {
	ID        int64  `json:"id" example:"12345"`
	FirstName string `json:"first_name" example:"Ivan"`
	LastName  string `json:"last_name,omitempty" example:"Petrov"`
	Username  string `json:"username,omitempty" example:"ivan"`
	PhotoURL  string `json:"photo_url,omitempty" example:"https://t.me/i/userpic/320/ivan.jpg"`
	AuthDate  int64  `json:"auth_date" example:"1756600000"`
	Hash      string `json:"hash" example:"a1b2c3..."`
}
