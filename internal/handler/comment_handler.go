package handler

import (
	"net/http"

	"anoa.com/ramadhanpitstop/internal/service"
	"anoa.com/ramadhanpitstop/pkg/response"
	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	service service.CommentService
}

func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{service: svc}
}

// Shuffled untuk tampilan komentar anonim yang diacak tiap kali dimuat.
func (h *CommentHandler) Shuffled(c *gin.Context) {
	comments, err := h.service.Shuffled(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": comments})
}
