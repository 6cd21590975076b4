package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "testsecret"

func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	m := NewAuthMiddleware(testSecret)
	admin := router.Group("/api/admin", m.RequireAdmin())
	admin.GET("/participants", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": []string{}})
	})

	return router
}

func signTestToken(secret string, expiresIn time.Duration) string {
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	return token
}

func TestRequireAdminWithoutSession(t *testing.T) {
	router := buildTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/participants", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", resp.Code)
	}
}

func TestRequireAdminRejectsBadTokensUniformly(t *testing.T) {
	router := buildTestRouter()

	cases := map[string]string{
		"garbage token": "not-a-jwt",
		"wrong secret":  signTestToken("other-secret", time.Hour),
		"expired":       signTestToken(testSecret, -time.Hour),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/participants", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)
			if resp.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", resp.Code)
			}
		})
	}
}

func TestRequireAdminAcceptsCookieSession(t *testing.T) {
	router := buildTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/participants", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signTestToken(testSecret, 24*time.Hour)})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid cookie, got %d", resp.Code)
	}
}

func TestRequireAdminAcceptsBearerSession(t *testing.T) {
	router := buildTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/participants", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(testSecret, 24*time.Hour))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid bearer token, got %d", resp.Code)
	}
}
