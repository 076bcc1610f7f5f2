package user

import (
	"errors"
	"io"
	"net/http"

	"careerworld/internal/controller/middleware"
	"careerworld/internal/dto"
	"careerworld/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Uploads larger than this are rejected before extraction.
const maxResumeBytes = 10 << 20

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Router /users/me [get]
func (c *UserController) Me(ctx *gin.Context) {
	current := middleware.CurrentUser(ctx)
	profile, err := c.userService.Profile(current.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", current.ID).Msg("Me: failed to load profile")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load profile"})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// UploadResume godoc
// @Summary Upload and analyze a resume
// @Description Extracts text from the uploaded document, generates an AI critique, and archives the original. Supported formats: pdf, docx, txt, md.
// @Tags User
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Resume document"
// @Success 200 {object} dto.UserResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Unsupported file type or empty document"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/me/resume [post]
func (c *UserController) UploadResume(ctx *gin.Context) {
	current := middleware.CurrentUser(ctx)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "A 'file' upload is required", Details: []string{err.Error()}})
		return
	}
	if fileHeader.Size > maxResumeBytes {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "File is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to read upload"})
		return
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to read upload"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	profile, err := c.userService.UploadResume(ctx.Request.Context(), current.ID, fileHeader.Filename, contents, mimeType)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedDocument) || errors.Is(err, service.ErrEmptyDocument) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint("userID", current.ID).Msg("UploadResume: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to process resume"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
