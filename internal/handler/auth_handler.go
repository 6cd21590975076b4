package handler

import (
	"net/http"
	"time"

	"anoa.com/ramadhanpitstop/internal/dto"
	"anoa.com/ramadhanpitstop/internal/middleware"
	"anoa.com/ramadhanpitstop/internal/service"
	"anoa.com/ramadhanpitstop/pkg/apperror"
	"anoa.com/ramadhanpitstop/pkg/response"
	"anoa.com/ramadhanpitstop/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type AuthHandler struct {
	service      service.AuthService
	redisClient  *redis.Client
	rateLimit    time.Duration
	secureCookie bool
}

func NewAuthHandler(svc service.AuthService, redisClient *redis.Client, rateLimit time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		service:      svc,
		redisClient:  redisClient,
		rateLimit:    rateLimit,
		secureCookie: secureCookie,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	allowed, err := service.CheckAndSetRateLimit(c.Request.Context(), h.redisClient, c.ClientIP(), "login", h.rateLimit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	if !allowed {
		response.ResponseError(c, apperror.New(http.StatusTooManyRequests, "Terlalu banyak percobaan login. Coba lagi sebentar lagi.", apperror.ErrRateLimitExceeded))
		return
	}

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	// Sesi juga dipasang sebagai cookie HttpOnly untuk frontend.
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, result.AccessToken, int(h.service.SessionTTL().Seconds()), "/", "", h.secureCookie, true)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
