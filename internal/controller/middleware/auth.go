package middleware

import (
	"net/http"
	"strings"

	"careerworld/internal/dto"
	"careerworld/internal/model"
	"careerworld/internal/repository"
	"careerworld/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const userKey = "currentUser"

// RequireAuth verifies the Bearer session credential and loads the user.
// Every rejection is the same 401; the response never says whether the
// credential was malformed, expired, or unknown.
func RequireAuth(sessions service.SessionService, users repository.UserRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(ctx)
			return
		}

		email, err := sessions.Verify(parts[1])
		if err != nil {
			unauthorized(ctx)
			return
		}

		user, err := users.FindByEmail(email)
		if err != nil {
			log.Warn().Str("email", email).Msg("RequireAuth: credential valid but user missing")
			unauthorized(ctx)
			return
		}

		ctx.Set(userKey, user)
		ctx.Next()
	}
}

// CurrentUser returns the user loaded by RequireAuth, or nil outside an
// authenticated route.
func CurrentUser(ctx *gin.Context) *model.User {
	value, exists := ctx.Get(userKey)
	if !exists {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}

func unauthorized(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Could not validate credentials"})
}
