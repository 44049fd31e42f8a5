package v1

import (
	"encoding/json"
	"io"
	"net/http"

	"ats-backend/internal/delivery/http/response"
	"ats-backend/internal/domain"
	"ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// maxBackupSize bounds import payloads (the tool's whole dataset fits well
// under this).
const maxBackupSize = 32 << 20

type BackupHandler struct {
	backupUC domain.BackupUsecase
}

func NewBackupHandler(r *gin.RouterGroup, backupUC domain.BackupUsecase) {
	handler := &BackupHandler{backupUC: backupUC}

	backup := r.Group("/backup")
	{
		backup.GET("/export", handler.Export)
		backup.POST("/import", handler.Import)
		backup.POST("/reset", handler.Reset)
	}
}

// Export godoc
// @Summary      Download a backup
// @Description  Download every collection as one JSON document.
// @Tags         backup
// @Produce      json
// @Success      200  {object}  domain.Snapshot
// @Router       /backup/export [get]
// @Security     BearerAuth
func (h *BackupHandler) Export(c *gin.Context) {
	snapshot, filename := h.backupUC.Export()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", data)
}

// Import godoc
// @Summary      Restore from a backup
// @Description  Restore collections wholesale from a backup document. Top-level keys absent from the document leave their collections untouched.
// @Tags         backup
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /backup/import [post]
// @Security     BearerAuth
func (h *BackupHandler) Import(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBackupSize))
	if err != nil {
		c.Error(apperror.BadRequest("Failed to read backup document"))
		return
	}

	if !h.backupUC.Import(data) {
		c.Error(apperror.BadRequest("Invalid backup document"))
		return
	}
	response.Success(c, http.StatusOK, "Backup restored", nil)
}

// Reset godoc
// @Summary      Reset all data
// @Description  Clear every collection and the stored copies. Irreversible.
// @Tags         backup
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /backup/reset [post]
// @Security     BearerAuth
func (h *BackupHandler) Reset(c *gin.Context) {
	h.backupUC.Reset()
	response.Success(c, http.StatusOK, "All data cleared", nil)
}
