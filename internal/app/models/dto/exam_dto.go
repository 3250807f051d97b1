package dto

import "github.com/yigit/examscheduler/internal/app/models"

// ExamRequest is the body accepted when creating or replacing an exam.
// Any id sent by the client is ignored; ids are assigned by the store.
type ExamRequest struct {
	Faculty    string            `json:"faculty" binding:"required,notblank,max=255" example:"Engineering"`
	ModuleName string            `json:"moduleName" binding:"required,notblank,max=255" example:"CS101"`
	Title      string            `json:"title" binding:"required,notblank,max=255" example:"Midterm"`
	Date       *models.Date      `json:"date" binding:"required" swaggertype:"string" example:"01-05-2024"`
	StartTime  *models.TimeOfDay `json:"startTime" swaggertype:"string" example:"09:00"`
	EndTime    *models.TimeOfDay `json:"endTime" swaggertype:"string" example:"11:00"`
	Format     *string           `json:"format" binding:"omitempty,max=100" example:"in-person"`
}

// ToModel converts the request into an Exam without an ID.
func (r *ExamRequest) ToModel() *models.Exam {
	exam := &models.Exam{
		Faculty:    r.Faculty,
		ModuleName: r.ModuleName,
		Title:      r.Title,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Format:     r.Format,
	}
	if r.Date != nil {
		exam.Date = *r.Date
	}
	return exam
}

// ExamKeyURI binds the composite key from the request path.
type ExamKeyURI struct {
	Faculty    string `uri:"faculty" binding:"required"`
	ModuleName string `uri:"moduleName" binding:"required"`
	Title      string `uri:"title" binding:"required"`
}

// ToKey converts the path parameters into an ExamKey.
func (u ExamKeyURI) ToKey() models.ExamKey {
	return models.ExamKey{
		Faculty:    u.Faculty,
		ModuleName: u.ModuleName,
		Title:      u.Title,
	}
}

// ExamSearchQuery binds the optional search filters from the query string.
type ExamSearchQuery struct {
	Title      string `form:"title"`
	Faculty    string `form:"faculty"`
	ModuleName string `form:"moduleName"`
}

// ToSearch converts the query into an ExamSearch.
func (q ExamSearchQuery) ToSearch() models.ExamSearch {
	return models.ExamSearch{
		Title:      q.Title,
		Faculty:    q.Faculty,
		ModuleName: q.ModuleName,
	}
}
