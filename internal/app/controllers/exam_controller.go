package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examscheduler/internal/app/models"
	"github.com/yigit/examscheduler/internal/app/models/dto"
	"github.com/yigit/examscheduler/internal/app/services"
	"github.com/yigit/examscheduler/internal/middleware"
	"github.com/yigit/examscheduler/internal/pkg/apperrors"
	"github.com/yigit/examscheduler/internal/pkg/logger"
)

var errMissingSearchParameter = fmt.Errorf("%w: at least one of title, faculty or moduleName is required", apperrors.ErrBadRequest)

// ExamController handles exam-related operations
type ExamController struct {
	examService services.ExamService
}

// NewExamController creates a new ExamController
func NewExamController(examService services.ExamService) *ExamController {
	return &ExamController{
		examService: examService,
	}
}

// parseExamID reads the :id path parameter, writing a 400 when it is not a number
func parseExamID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid exam ID").WithField("id")
		errorDetail = errorDetail.WithDetails("Exam ID must be a valid number")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// bindExamKey reads the composite key from the path
func bindExamKey(ctx *gin.Context) (models.ExamKey, bool) {
	var uri dto.ExamKeyURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		middleware.RespondBindingError(ctx, err)
		return models.ExamKey{}, false
	}
	return uri.ToKey(), true
}

// bindExamRequest decodes and validates the exam body
func bindExamRequest(ctx *gin.Context) (*models.Exam, bool) {
	var req dto.ExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return nil, false
	}
	return req.ToModel(), true
}

func logNotFound(err error, msg string) {
	if apperrors.Is(err, apperrors.ErrResourceNotFound) {
		logger.Warn().Msg(msg)
	}
}

// CreateExam handles exam creation
// @Summary Create a new exam
// @Description Creates a new exam. The id is assigned by the server; any id in the body is ignored.
// @Tags exams
// @Accept json
// @Produce json
// @Param request body dto.ExamRequest true "Exam information"
// @Success 201 {object} models.Exam "Exam created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "An exam with this faculty, module name and title already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	exam, ok := bindExamRequest(ctx)
	if !ok {
		return
	}
	logger.Info().Str("faculty", exam.Faculty).Str("moduleName", exam.ModuleName).Str("title", exam.Title).Msg("Received request to create exam")

	created, err := c.examService.CreateExam(ctx.Request.Context(), exam)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("examID", created.ID).Msg("Exam created")
	ctx.JSON(http.StatusCreated, created)
}

// GetAllExams retrieves all exams
// @Summary Get all exams
// @Description Retrieves every exam ordered by id
// @Tags exams
// @Produce json
// @Success 200 {array} models.Exam "Exams retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [get]
func (c *ExamController) GetAllExams(ctx *gin.Context) {
	logger.Info().Msg("Received request to get all exams")

	exams, err := c.examService.GetAllExams(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int("count", len(exams)).Msg("Retrieved exams")
	ctx.JSON(http.StatusOK, exams)
}

// GetExamByID retrieves an exam by ID
// @Summary Get exam by ID
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID" Format(int64) minimum(1)
// @Success 200 {object} models.Exam "Exam retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID format"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/{id} [get]
func (c *ExamController) GetExamByID(ctx *gin.Context) {
	id, ok := parseExamID(ctx)
	if !ok {
		return
	}
	logger.Info().Int64("examID", id).Msg("Received request to get exam")

	exam, err := c.examService.GetExamByID(ctx.Request.Context(), id)
	if err != nil {
		logNotFound(err, "Exam not found")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, exam)
}

// UpdateExam replaces an existing exam
// @Summary Update an exam
// @Description Replaces every mutable field of the exam with the given ID
// @Tags exams
// @Accept json
// @Produce json
// @Param id path int true "Exam ID" Format(int64) minimum(1)
// @Param request body dto.ExamRequest true "New exam values"
// @Success 200 {object} models.Exam "Exam updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Another exam already uses this faculty, module name and title"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/{id} [put]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	id, ok := parseExamID(ctx)
	if !ok {
		return
	}
	exam, ok := bindExamRequest(ctx)
	if !ok {
		return
	}
	logger.Info().Int64("examID", id).Msg("Received request to update exam")

	updated, err := c.examService.UpdateExam(ctx.Request.Context(), id, exam)
	if err != nil {
		logNotFound(err, "Exam to update not found")
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("examID", updated.ID).Msg("Exam updated")
	ctx.JSON(http.StatusOK, updated)
}

// DeleteExam deletes an exam by ID
// @Summary Delete an exam
// @Tags exams
// @Param id path int true "Exam ID" Format(int64) minimum(1)
// @Success 204 "Exam deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID format"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/{id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	id, ok := parseExamID(ctx)
	if !ok {
		return
	}
	logger.Info().Int64("examID", id).Msg("Received request to delete exam")

	if err := c.examService.DeleteExam(ctx.Request.Context(), id); err != nil {
		logNotFound(err, "Exam to delete not found")
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("examID", id).Msg("Exam deleted")
	ctx.Status(http.StatusNoContent)
}

// GetExamByKey retrieves an exam by its composite key
// @Summary Get exam by composite key
// @Tags exams
// @Produce json
// @Param faculty path string true "Faculty"
// @Param moduleName path string true "Module name"
// @Param title path string true "Exam title"
// @Success 200 {object} models.Exam "Exam retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/key/{faculty}/{moduleName}/{title} [get]
func (c *ExamController) GetExamByKey(ctx *gin.Context) {
	key, ok := bindExamKey(ctx)
	if !ok {
		return
	}
	logger.Info().Str("faculty", key.Faculty).Str("moduleName", key.ModuleName).Str("title", key.Title).Msg("Received request to get exam by key")

	exam, err := c.examService.GetExamByKey(ctx.Request.Context(), key)
	if err != nil {
		logNotFound(err, "Exam not found by key")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, exam)
}

// UpdateExamByKey replaces the exam addressed by its composite key
// @Summary Update an exam by composite key
// @Tags exams
// @Accept json
// @Produce json
// @Param faculty path string true "Faculty"
// @Param moduleName path string true "Module name"
// @Param title path string true "Exam title"
// @Param request body dto.ExamRequest true "New exam values"
// @Success 200 {object} models.Exam "Exam updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Another exam already uses the new key"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/key/{faculty}/{moduleName}/{title} [put]
func (c *ExamController) UpdateExamByKey(ctx *gin.Context) {
	key, ok := bindExamKey(ctx)
	if !ok {
		return
	}
	exam, ok := bindExamRequest(ctx)
	if !ok {
		return
	}
	logger.Info().Str("faculty", key.Faculty).Str("moduleName", key.ModuleName).Str("title", key.Title).Msg("Received request to update exam by key")

	updated, err := c.examService.UpdateExamByKey(ctx.Request.Context(), key, exam)
	if err != nil {
		logNotFound(err, "Exam to update not found by key")
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("examID", updated.ID).Msg("Exam updated")
	ctx.JSON(http.StatusOK, updated)
}

// DeleteExamByKey deletes the exam addressed by its composite key
// @Summary Delete an exam by composite key
// @Tags exams
// @Param faculty path string true "Faculty"
// @Param moduleName path string true "Module name"
// @Param title path string true "Exam title"
// @Success 204 "Exam deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/key/{faculty}/{moduleName}/{title} [delete]
func (c *ExamController) DeleteExamByKey(ctx *gin.Context) {
	key, ok := bindExamKey(ctx)
	if !ok {
		return
	}
	logger.Info().Str("faculty", key.Faculty).Str("moduleName", key.ModuleName).Str("title", key.Title).Msg("Received request to delete exam by key")

	if err := c.examService.DeleteExamByKey(ctx.Request.Context(), key); err != nil {
		logNotFound(err, "Exam to delete not found by key")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SearchExams searches exams by any combination of title, faculty and module name
// @Summary Search exams
// @Description Case-insensitive substring search. At least one parameter must be present; filters are AND-combined.
// @Tags exams
// @Produce json
// @Param title query string false "Title contains"
// @Param faculty query string false "Faculty contains"
// @Param moduleName query string false "Module name contains"
// @Success 200 {array} models.Exam "Matching exams, possibly empty"
// @Failure 400 {object} dto.ErrorResponse "No search parameter given"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/search [get]
func (c *ExamController) SearchExams(ctx *gin.Context) {
	_, hasTitle := ctx.GetQuery("title")
	_, hasFaculty := ctx.GetQuery("faculty")
	_, hasModule := ctx.GetQuery("moduleName")
	if !hasTitle && !hasFaculty && !hasModule {
		middleware.HandleAPIError(ctx, errMissingSearchParameter)
		return
	}

	var query dto.ExamSearchQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}
	logger.Info().Str("title", query.Title).Str("faculty", query.Faculty).Str("moduleName", query.ModuleName).Msg("Received request to search exams")

	exams, err := c.examService.SearchExams(ctx.Request.Context(), query.ToSearch())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, exams)
}

// SearchByFaculty lists exams whose faculty contains the path value
// @Summary Search exams by faculty
// @Tags exams
// @Produce json
// @Param faculty path string true "Faculty contains"
// @Success 200 {array} models.Exam "Matching exams, possibly empty"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/faculty/{faculty} [get]
func (c *ExamController) SearchByFaculty(ctx *gin.Context) {
	faculty := ctx.Param("faculty")
	logger.Info().Str("faculty", faculty).Msg("Received request to search exams by faculty")

	exams, err := c.examService.SearchByFaculty(ctx.Request.Context(), faculty)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// SearchByModuleName lists exams whose module name contains the path value
// @Summary Search exams by module name
// @Tags exams
// @Produce json
// @Param moduleName path string true "Module name contains"
// @Success 200 {array} models.Exam "Matching exams, possibly empty"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/moduleName/{moduleName} [get]
func (c *ExamController) SearchByModuleName(ctx *gin.Context) {
	moduleName := ctx.Param("moduleName")
	logger.Info().Str("moduleName", moduleName).Msg("Received request to search exams by module name")

	exams, err := c.examService.SearchByModuleName(ctx.Request.Context(), moduleName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// SearchByTitle lists exams whose title contains the path value
// @Summary Search exams by title
// @Tags exams
// @Produce json
// @Param title path string true "Title contains"
// @Success 200 {array} models.Exam "Matching exams, possibly empty"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/title/{title} [get]
func (c *ExamController) SearchByTitle(ctx *gin.Context) {
	title := ctx.Param("title")
	logger.Info().Str("title", title).Msg("Received request to search exams by title")

	exams, err := c.examService.SearchByTitle(ctx.Request.Context(), title)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exams)
}
