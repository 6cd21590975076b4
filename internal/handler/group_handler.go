package handler

import (
	"net/http"

	"anoa.com/ramadhanpitstop/internal/dto"
	"anoa.com/ramadhanpitstop/internal/service"
	"anoa.com/ramadhanpitstop/pkg/response"
	"anoa.com/ramadhanpitstop/pkg/validator"
	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	service service.GroupService
}

func NewGroupHandler(svc service.GroupService) *GroupHandler {
	return &GroupHandler{service: svc}
}

func (h *GroupHandler) Generate(c *gin.Context) {
	var req dto.GenerateGroupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	count, err := h.service.Generate(c.Request.Context(), req.GroupCount)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

func (h *GroupHandler) DeleteAll(c *gin.Context) {
	if err := h.service.DeleteAll(c.Request.Context()); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *GroupHandler) Assign(c *gin.Context) {
	var req dto.AssignGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.Assign(c.Request.Context(), req.ParticipantID, req.GroupID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.service.List(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": groups})
}
