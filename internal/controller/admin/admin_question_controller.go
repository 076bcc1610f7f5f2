package admin

import (
	"net/http"

	"careerworld/internal/dto"
	"careerworld/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AdminQuestionController struct {
	adminQuestions service.AdminQuestionService
}

func NewAdminQuestionController(adminQuestions service.AdminQuestionService) *AdminQuestionController {
	return &AdminQuestionController{adminQuestions: adminQuestions}
}

// CreateQuestion godoc
// @Summary (Admin) Create a question with its options
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question text, category, and options"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Router /admin/questions [post]
func (c *AdminQuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestion: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.adminQuestions.CreateQuestion(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateQuestion: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Import godoc
// @Summary (Admin) Bulk import questions
// @Description Loads a batch of questions; entries whose text already exists are skipped.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param batch body dto.QuestionImportDTO true "Questions to import"
// @Success 200 {object} dto.ImportResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Router /admin/questions/import [post]
func (c *AdminQuestionController) Import(ctx *gin.Context) {
	var req dto.QuestionImportDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin Import: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.adminQuestions.Import(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin Import: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Import failed", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
