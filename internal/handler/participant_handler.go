package handler

import (
	"net/http"

	"anoa.com/ramadhanpitstop/internal/dto"
	"anoa.com/ramadhanpitstop/internal/service"
	"anoa.com/ramadhanpitstop/pkg/response"
	"anoa.com/ramadhanpitstop/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ParticipantHandler struct {
	service service.ParticipantService
}

func NewParticipantHandler(svc service.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{service: svc}
}

// ListPublic halaman peserta publik: tanpa status check-in dan kelompok.
func (h *ParticipantHandler) ListPublic(c *gin.Context) {
	participants, err := h.service.ListPublic(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":        len(participants),
		"participants": participants,
	})
}

func (h *ParticipantHandler) ListAll(c *gin.Context) {
	participants, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": participants})
}

func (h *ParticipantHandler) CheckIn(c *gin.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	participant, err := h.service.SetCheckedIn(c.Request.Context(), req.ID, *req.IsCheckedIn)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": participant})
}

func (h *ParticipantHandler) CreateWalkIn(c *gin.Context) {
	var req dto.WalkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	participant, err := h.service.CreateWalkIn(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Peserta dadakan berhasil didaftarkan!",
		"data":    participant,
	})
}

func (h *ParticipantHandler) CleanDuplicates(c *gin.Context) {
	removed, err := h.service.CleanDuplicates(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "removed": removed})
}
