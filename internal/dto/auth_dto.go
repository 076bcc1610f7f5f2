package dto

// MagicLinkRequestDTO asks for a login link to be mailed.
type MagicLinkRequestDTO struct {
	Email string `json:"email" binding:"required,email"`
}

// MagicLinkLoginDTO exchanges the mailed token for a session credential.
type MagicLinkLoginDTO struct {
	Token string `json:"token" binding:"required"`
}

type TokenResponseDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type MessageResponseDTO struct {
	Message string `json:"message"`
}
