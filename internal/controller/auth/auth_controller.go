package auth

import (
	"net/http"

	"careerworld/internal/dto"
	"careerworld/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	magicLinks service.MagicLinkService
}

func NewAuthController(magicLinks service.MagicLinkService) *AuthController {
	return &AuthController{magicLinks: magicLinks}
}

// RequestMagicLink godoc
// @Summary Request a magic sign-in link
// @Description Sends a single-use sign-in link to the given email. The response is the same whether or not the account exists.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.MagicLinkRequestDTO true "Email to send the link to"
// @Success 202 {object} dto.MessageResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/magic-link/request [post]
func (c *AuthController) RequestMagicLink(ctx *gin.Context) {
	var req dto.MagicLinkRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.magicLinks.Issue(ctx.Request.Context(), req.Email); err != nil {
		log.Error().Err(err).Msg("RequestMagicLink: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to process request"})
		return
	}

	// Neutral wording regardless of whether the account existed before.
	ctx.JSON(http.StatusAccepted, dto.MessageResponseDTO{
		Message: "If an account with this email exists, a magic link has been sent.",
	})
}

// Login godoc
// @Summary Exchange a magic link token for a session credential
// @Description Redeems a single-use token. Any invalid, expired, or already used token gets the same generic rejection.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.MagicLinkLoginDTO true "The token from the emailed link"
// @Success 200 {object} dto.TokenResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid or expired magic link"
// @Router /auth/magic-link/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.MagicLinkLoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid or expired magic link."})
		return
	}

	credential, err := c.magicLinks.Redeem(ctx.Request.Context(), req.Token)
	if err != nil {
		// Deliberately the same message for every failure mode.
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid or expired magic link."})
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponseDTO{
		AccessToken: credential,
		TokenType:   "bearer",
	})
}
