package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/examscheduler/internal/app/controllers"
	"github.com/yigit/examscheduler/internal/pkg/logger"
	"github.com/yigit/examscheduler/internal/pkg/validation"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, examController *controllers.ExamController) {
	if err := validation.RegisterGinValidators(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to register request validators")
	}

	// API version group
	v1 := router.Group("/api/v1")

	exams := v1.Group("/exams")
	{
		exams.POST("", examController.CreateExam)
		exams.GET("", examController.GetAllExams)

		// Search routes
		exams.GET("/search", examController.SearchExams)
		exams.GET("/faculty/:faculty", examController.SearchByFaculty)
		exams.GET("/moduleName/:moduleName", examController.SearchByModuleName)
		exams.GET("/title/:title", examController.SearchByTitle)

		// Composite key routes
		byKey := exams.Group("/key/:faculty/:moduleName/:title")
		{
			byKey.GET("", examController.GetExamByKey)
			byKey.PUT("", examController.UpdateExamByKey)
			byKey.DELETE("", examController.DeleteExamByKey)
		}

		// Surrogate id routes
		exams.GET("/:id", examController.GetExamByID)
		exams.PUT("/:id", examController.UpdateExam)
		exams.DELETE("/:id", examController.DeleteExam)
	}
}
