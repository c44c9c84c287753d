package author

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Meerkats/internal/dto"
	"github.com/lshigami/Meerkats/internal/middleware"
	"github.com/lshigami/Meerkats/internal/model"
	"github.com/lshigami/Meerkats/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthorSurveyController struct {
	authorSurveyService service.AuthorSurveyService
	statisticsService   service.StatisticsService
}

func NewAuthorSurveyController(
	ass service.AuthorSurveyService,
	ss service.StatisticsService,
) *AuthorSurveyController {
	return &AuthorSurveyController{
		authorSurveyService: ass,
		statisticsService:   ss,
	}
}

// CreateSurvey godoc
// @Summary (Author) Create a survey
// @Description Create a survey with its ordered questions and answer options
// @Description in one request. Orders must be unique within their scope.
// @Tags Author - Surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param survey body dto.SurveyCreateDTO true "Survey with nested questions and options"
// @Success 201 {object} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or duplicate orders"
// @Router /author/surveys [post]
func (c *AuthorSurveyController) CreateSurvey(ctx *gin.Context) {
	authorID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.SurveyCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	survey, err := c.authorSurveyService.CreateSurvey(authorID, req)
	if err != nil {
		log.Warn().Err(err).Uint("authorID", authorID).Msg("CreateSurvey: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, survey)
}

// ListMySurveys godoc
// @Summary (Author) List own surveys
// @Description List the author's surveys, including deactivated ones.
// @Tags Author - Surveys
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SurveySummaryDTO
// @Router /author/surveys [get]
func (c *AuthorSurveyController) ListMySurveys(ctx *gin.Context) {
	authorID, ok := currentUser(ctx)
	if !ok {
		return
	}
	surveys, err := c.authorSurveyService.ListMine(authorID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, surveys)
}

// UpdateSurvey godoc
// @Summary (Author) Update a survey
// @Description Update title or active flag. Deactivation hides the survey from
// @Description respondents without deleting response history.
// @Tags Author - Surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param survey_id path int true "Survey ID"
// @Param survey body dto.SurveyUpdateDTO true "Fields to update"
// @Success 200 {object} dto.SurveyResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Not the survey author"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /author/surveys/{survey_id} [put]
func (c *AuthorSurveyController) UpdateSurvey(ctx *gin.Context) {
	authorID, ok := currentUser(ctx)
	if !ok {
		return
	}
	surveyID, ok := pathID(ctx, "survey_id")
	if !ok {
		return
	}

	var req dto.SurveyUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	survey, err := c.authorSurveyService.UpdateSurvey(authorID, surveyID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, survey)
}

// DeleteSurvey godoc
// @Summary (Author) Delete a survey
// @Description Soft-delete a survey. Responses and answers are kept.
// @Tags Author - Surveys
// @Produce json
// @Security BearerAuth
// @Param survey_id path int true "Survey ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Not the survey author"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /author/surveys/{survey_id} [delete]
func (c *AuthorSurveyController) DeleteSurvey(ctx *gin.Context) {
	authorID, ok := currentUser(ctx)
	if !ok {
		return
	}
	surveyID, ok := pathID(ctx, "survey_id")
	if !ok {
		return
	}

	if err := c.authorSurveyService.DeleteSurvey(authorID, surveyID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Survey deleted"})
}

// GetStatistics godoc
// @Summary (Author) Get survey statistics
// @Description Aggregate report: response counts, completion rate, average
// @Description completion time and per-question option breakdowns. Author only.
// @Tags Author - Statistics
// @Produce json
// @Security BearerAuth
// @Param survey_id path int true "Survey ID"
// @Success 200 {object} dto.SurveyStatsDTO
// @Failure 403 {object} dto.ErrorResponse "Not the survey author"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /author/surveys/{survey_id}/statistics [get]
func (c *AuthorSurveyController) GetStatistics(ctx *gin.Context) {
	requesterID, ok := currentUser(ctx)
	if !ok {
		return
	}
	surveyID, ok := pathID(ctx, "survey_id")
	if !ok {
		return
	}

	stats, err := c.statisticsService.GetStatistics(surveyID, requesterID)
	if err != nil {
		log.Warn().Err(err).Uint("surveyID", surveyID).Uint("requesterID", requesterID).Msg("GetStatistics: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

func currentUser(ctx *gin.Context) (uint, bool) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return 0, false
	}
	return userID, true
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(value), true
}

func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, model.ErrForbidden):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, model.ErrSurveyNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
	}
}
