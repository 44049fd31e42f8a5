package v1

import (
	"net/http"

	"ats-backend/internal/delivery/http/response"
	"ats-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	repo domain.DataRepository
}

// NewActivityHandler exposes the activity log. The log is read-only at the
// API level; entries are written only as side effects of mutations.
func NewActivityHandler(r *gin.RouterGroup, repo domain.DataRepository) {
	handler := &ActivityHandler{repo: repo}

	r.GET("/activities", handler.List)
}

// List godoc
// @Summary      List activities
// @Description  Recent activity log, newest first, capped at 100 entries.
// @Tags         activities
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Activity}
// @Router       /activities [get]
// @Security     BearerAuth
func (h *ActivityHandler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, "Activities", h.repo.Activities())
}
