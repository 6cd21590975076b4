package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"anoa.com/ramadhanpitstop/internal/service"
	"anoa.com/ramadhanpitstop/pkg/response"
	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	service service.ExportService
}

func NewExportHandler(svc service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

func (h *ExportHandler) Participants(c *gin.Context) {
	workbook, err := h.service.ParticipantsWorkbook(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	defer workbook.Close()

	fileName := service.ExportFileName(time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Status(http.StatusOK)

	if err := workbook.Write(c.Writer); err != nil {
		log.Printf("export write failed: %v", err)
	}
}
