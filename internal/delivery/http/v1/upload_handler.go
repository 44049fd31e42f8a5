package v1

import (
	"net/http"
	"path/filepath"
	"strings"

	"ats-backend/internal/delivery/http/response"
	"ats-backend/internal/domain"
	"ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// maxUploadSize bounds spreadsheet uploads.
const maxUploadSize = 16 << 20

type UploadHandler struct {
	spreadsheetUC domain.SpreadsheetUsecase
}

func NewUploadHandler(r *gin.RouterGroup, spreadsheetUC domain.SpreadsheetUsecase) {
	handler := &UploadHandler{spreadsheetUC: spreadsheetUC}

	r.POST("/upload/candidates", handler.ImportCandidates)
}

// ImportCandidates godoc
// @Summary      Bulk import candidates
// @Description  Upload an .xlsx/.xls workbook; each usable row of the first sheet becomes a candidate. Rows missing both name and email are counted as failures.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Spreadsheet (.xlsx or .xls)"
// @Success      200   {object}  response.Response{data=domain.UploadResult}
// @Failure      400   {object}  response.Response
// @Router       /upload/candidates [post]
// @Security     BearerAuth
func (h *UploadHandler) ImportCandidates(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("A spreadsheet file is required"))
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.Error(apperror.BadRequest("File too large"))
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		c.Error(apperror.BadRequest("Only .xlsx and .xls files are supported"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	result, err := h.spreadsheetUC.ImportCandidates(file)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Upload processed", result)
}
