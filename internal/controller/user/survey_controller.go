package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Meerkats/internal/dto"
	"github.com/lshigami/Meerkats/internal/middleware"
	"github.com/lshigami/Meerkats/internal/service"
	"github.com/rs/zerolog/log"
)

type SurveyController struct {
	userSurveyService  service.UserSurveyService
	progressionService service.ProgressionService
	answerService      service.AnswerService
}

func NewSurveyController(
	uss service.UserSurveyService,
	ps service.ProgressionService,
	as service.AnswerService,
) *SurveyController {
	return &SurveyController{
		userSurveyService:  uss,
		progressionService: ps,
		answerService:      as,
	}
}

// ListSurveys godoc
// @Summary (Respondent) List active surveys
// @Description Get all active surveys with their question counts.
// @Tags Respondent - Surveys
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SurveySummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /surveys [get]
func (c *SurveyController) ListSurveys(ctx *gin.Context) {
	surveys, err := c.userSurveyService.ListSurveys()
	if err != nil {
		log.Error().Err(err).Msg("ListSurveys: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, surveys)
}

// GetSurveyDetails godoc
// @Summary (Respondent) Get survey details
// @Description Get an active survey with its ordered questions and options.
// @Tags Respondent - Surveys
// @Produce json
// @Security BearerAuth
// @Param survey_id path int true "Survey ID"
// @Success 200 {object} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Survey ID format"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /surveys/{survey_id} [get]
func (c *SurveyController) GetSurveyDetails(ctx *gin.Context) {
	surveyID, ok := pathID(ctx, "survey_id")
	if !ok {
		return
	}
	details, err := c.userSurveyService.GetSurveyDetails(surveyID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// GetNextQuestion godoc
// @Summary (Respondent) Get the next unanswered question
// @Description Returns the lowest-order unanswered question with progress, or
// @Description the completion record once every question is answered. Starts a
// @Description survey response on first call.
// @Tags Respondent - Progression
// @Produce json
// @Security BearerAuth
// @Param survey_id path int true "Survey ID"
// @Success 200 {object} dto.NextStepDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Survey ID format"
// @Failure 404 {object} dto.ErrorResponse "Survey not found or has no questions"
// @Router /surveys/{survey_id}/next-question [get]
func (c *SurveyController) GetNextQuestion(ctx *gin.Context) {
	surveyID, ok := pathID(ctx, "survey_id")
	if !ok {
		return
	}
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	step, err := c.progressionService.GetNextQuestion(surveyID, userID)
	if err != nil {
		log.Warn().Err(err).Uint("surveyID", surveyID).Uint("userID", userID).Msg("GetNextQuestion: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, step)
}

// SubmitAnswer godoc
// @Summary (Respondent) Submit an answer
// @Description Record the chosen option for a question. Resubmitting the same
// @Description question overwrites the previous choice.
// @Tags Respondent - Progression
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param survey_id path int true "Survey ID"
// @Param answer body dto.AnswerSubmitDTO true "Question and chosen option"
// @Success 200 {object} dto.AnswerResultDTO "Answer updated"
// @Success 201 {object} dto.AnswerResultDTO "Answer created"
// @Failure 400 {object} dto.ErrorResponse "Missing ids or response already completed"
// @Failure 404 {object} dto.ErrorResponse "Survey, question or option not found"
// @Router /surveys/{survey_id}/answers [post]
func (c *SurveyController) SubmitAnswer(ctx *gin.Context) {
	surveyID, ok := pathID(ctx, "survey_id")
	if !ok {
		return
	}
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	var req dto.AnswerSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.answerService.SubmitAnswer(surveyID, userID, req.QuestionID, req.AnswerOptionID)
	if err != nil {
		log.Warn().Err(err).Uint("surveyID", surveyID).Uint("userID", userID).Msg("SubmitAnswer: service error")
		respondError(ctx, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, result)
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(value), true
}
