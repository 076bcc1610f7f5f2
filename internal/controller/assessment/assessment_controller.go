package assessment

import (
	"net/http"
	"strconv"

	"careerworld/internal/controller/middleware"
	"careerworld/internal/dto"
	"careerworld/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AssessmentController struct {
	questions   service.QuestionService
	assessments service.AssessmentService
}

func NewAssessmentController(questions service.QuestionService, assessments service.AssessmentService) *AssessmentController {
	return &AssessmentController{questions: questions, assessments: assessments}
}

// GetQuestions godoc
// @Summary List assessment questions
// @Description Returns the question catalog with options. Option point values are not exposed.
// @Tags Assessment
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessment/questions [get]
func (c *AssessmentController) GetQuestions(ctx *gin.Context) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}

	questions, err := c.questions.Questions(skip, limit)
	if err != nil {
		log.Error().Err(err).Msg("GetQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve questions"})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// Submit godoc
// @Summary Submit assessment answers
// @Description Scores the submission, generates AI feedback, emails the report, and stores the assessment.
// @Tags Assessment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body dto.AssessmentSubmitDTO true "The selected option per question"
// @Success 200 {object} dto.AssessmentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 500 {object} dto.ErrorResponse "Error processing submission"
// @Router /assessment/submit [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	current := middleware.CurrentUser(ctx)

	var req dto.AssessmentSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.assessments.Submit(ctx.Request.Context(), current, req)
	if err != nil {
		log.Error().Err(err).Uint("userID", current.ID).Msg("Submit: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to process submission"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// History godoc
// @Summary List the authenticated user's past assessments
// @Tags Assessment
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AssessmentSummaryDTO
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessment/history [get]
func (c *AssessmentController) History(ctx *gin.Context) {
	current := middleware.CurrentUser(ctx)

	history, err := c.assessments.History(current.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", current.ID).Msg("History: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve history"})
		return
	}
	ctx.JSON(http.StatusOK, history)
}
