package v1

import (
	"net/http"

	"ats-backend/internal/delivery/http/response"
	"ats-backend/internal/domain"
	"ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC   domain.CandidateUsecase
	spreadsheetUC domain.SpreadsheetUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase, spreadsheetUC domain.SpreadsheetUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC, spreadsheetUC: spreadsheetUC}

	candidates := r.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.POST("", handler.Create)
		// export before :id so the route does not shadow it
		candidates.GET("/export", handler.Export)
		candidates.GET("/:id", handler.Get)
		candidates.PUT("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)
		candidates.POST("/:id/interviews", handler.ScheduleInterview)
		candidates.POST("/:id/evaluations", handler.AddEvaluation)
	}
}

func filterFromQuery(c *gin.Context) domain.CandidateFilter {
	return domain.CandidateFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Tag:    c.Query("tag"),
		SortBy: c.DefaultQuery("sort_by", "date"),
		Order:  c.DefaultQuery("order", "desc"),
	}
}

// List godoc
// @Summary      List candidates
// @Description  List candidates with the toolbar filters: search, status, tag, sorting.
// @Tags         candidates
// @Produce      json
// @Param        search   query     string  false  "Substring match on name/email/position"
// @Param        status   query     string  false  "Status filter"  Enums(new, screening, interview, offer, rejected)
// @Param        tag      query     string  false  "Technical or experience tag"
// @Param        sort_by  query     string  false  "Sort key"  Enums(name, date, status)
// @Param        order    query     string  false  "Sort order"  Enums(asc, desc)
// @Success      200      {object}  response.Response{data=[]domain.Candidate}
// @Router       /candidates [get]
// @Security     BearerAuth
func (h *CandidateHandler) List(c *gin.Context) {
	candidates := h.candidateUC.List(filterFromQuery(c))
	response.Success(c, http.StatusOK, "Candidates", candidates)
}

// Get godoc
// @Summary      Get one candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate id"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.candidateUC.Get(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate", candidate)
}

// Create godoc
// @Summary      Add a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      domain.CandidateInput  true  "New candidate"
// @Success      201        {object}  response.Response{data=domain.Candidate}
// @Failure      400        {object}  response.Response
// @Router       /candidates [post]
// @Security     BearerAuth
func (h *CandidateHandler) Create(c *gin.Context) {
	var input domain.CandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate, err := h.candidateUC.Create(input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Candidate added", candidate)
}

// Update godoc
// @Summary      Update a candidate
// @Description  Partial update; absent fields are left untouched.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id     path      string                 true  "Candidate id"
// @Param        patch  body      domain.CandidatePatch  true  "Fields to change"
// @Success      200    {object}  response.Response{data=domain.Candidate}
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /candidates/{id} [put]
// @Security     BearerAuth
func (h *CandidateHandler) Update(c *gin.Context) {
	var patch domain.CandidatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate, err := h.candidateUC.Update(c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate updated", candidate)
}

// Delete godoc
// @Summary      Delete a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) Delete(c *gin.Context) {
	if err := h.candidateUC.Delete(c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate deleted", nil)
}

// ScheduleInterview godoc
// @Summary      Schedule an interview
// @Description  Appends an interview and moves the candidate to the interview stage.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id         path      string                 true  "Candidate id"
// @Param        interview  body      domain.InterviewInput  true  "Interview"
// @Success      201        {object}  response.Response{data=domain.Interview}
// @Failure      400        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /candidates/{id}/interviews [post]
// @Security     BearerAuth
func (h *CandidateHandler) ScheduleInterview(c *gin.Context) {
	var input domain.InterviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	interview, err := h.candidateUC.ScheduleInterview(c.Param("id"), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Interview scheduled", interview)
}

// AddEvaluation godoc
// @Summary      Record an evaluation
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id          path      string                  true  "Candidate id"
// @Param        evaluation  body      domain.EvaluationInput  true  "Scores 1-10"
// @Success      201         {object}  response.Response{data=domain.Evaluation}
// @Failure      400         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /candidates/{id}/evaluations [post]
// @Security     BearerAuth
func (h *CandidateHandler) AddEvaluation(c *gin.Context) {
	var input domain.EvaluationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	evaluation, err := h.candidateUC.AddEvaluation(c.Param("id"), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Evaluation recorded", evaluation)
}

// Export godoc
// @Summary      Export candidates to Excel
// @Description  Download the filtered candidate list as an .xlsx workbook.
// @Tags         candidates
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search  query  string  false  "Substring match on name/email/position"
// @Param        status  query  string  false  "Status filter"
// @Param        tag     query  string  false  "Technical or experience tag"
// @Success      200  {file}  binary
// @Router       /candidates/export [get]
// @Security     BearerAuth
func (h *CandidateHandler) Export(c *gin.Context) {
	data, filename, err := h.spreadsheetUC.ExportCandidates(filterFromQuery(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
