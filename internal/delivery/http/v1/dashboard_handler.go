package v1

import (
	"net/http"

	"ats-backend/internal/delivery/http/response"
	"ats-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(r *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	r.GET("/dashboard/stats", handler.Stats)
}

// Stats godoc
// @Summary      Dashboard stats
// @Description  Totals, per-status counts, today's interviews and recent activities.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.DashboardStats}
// @Router       /dashboard/stats [get]
// @Security     BearerAuth
func (h *DashboardHandler) Stats(c *gin.Context) {
	response.Success(c, http.StatusOK, "Dashboard stats", h.dashboardUC.Stats())
}
