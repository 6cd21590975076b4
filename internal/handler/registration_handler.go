package handler

import (
	"net/http"
	"time"

	"anoa.com/ramadhanpitstop/internal/dto"
	"anoa.com/ramadhanpitstop/internal/service"
	"anoa.com/ramadhanpitstop/pkg/apperror"
	"anoa.com/ramadhanpitstop/pkg/response"
	"anoa.com/ramadhanpitstop/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RegistrationHandler struct {
	service     service.RegistrationService
	redisClient *redis.Client
	rateLimit   time.Duration
}

func NewRegistrationHandler(svc service.RegistrationService, redisClient *redis.Client, rateLimit time.Duration) *RegistrationHandler {
	return &RegistrationHandler{
		service:     svc,
		redisClient: redisClient,
		rateLimit:   rateLimit,
	}
}

func (h *RegistrationHandler) Register(c *gin.Context) {
	allowed, err := service.CheckAndSetRateLimit(c.Request.Context(), h.redisClient, c.ClientIP(), "register", h.rateLimit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	if !allowed {
		response.ResponseError(c, apperror.New(http.StatusTooManyRequests, "Terlalu banyak percobaan. Coba lagi sebentar lagi.", apperror.ErrRateLimitExceeded))
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	id, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
}
