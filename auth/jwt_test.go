package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/plateformprojob/backend/config"
	"github.com/plateformprojob/backend/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testJWTService() *JWTService {
	return NewJWTService(&config.Config{JWTSecret: "test-secret", JWTExpiryHours: 1})
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	svc := testJWTService()
	user := &models.UserProfile{ID: "u-1", Email: "jane@example.com", Role: models.RoleCandidate}

	token, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if claims.UserID != "u-1" || claims.Email != "jane@example.com" || claims.Role != models.RoleCandidate {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := testJWTService().GenerateToken(&models.UserProfile{ID: "u-1"})
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	other := NewJWTService(&config.Config{JWTSecret: "different-secret", JWTExpiryHours: 1})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected validation failure with wrong secret")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := testJWTService().ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected validation failure")
	}
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	svc := testJWTService()
	router := gin.New()
	router.GET("/protected", AuthMiddleware(svc), func(c *gin.Context) {
		claims := GetAuthClaims(c)
		if claims == nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, claims.UserID)
	})

	token, err := svc.GenerateToken(&models.UserProfile{ID: "u-1", Role: models.RoleRecruiter})
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"bad format", token, http.StatusUnauthorized},
		{"bad token", "Bearer garbage", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, w.Code)
		}
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	svc := testJWTService()
	router := gin.New()
	router.POST("/recruiter-only", AuthMiddleware(svc), RequireRole(models.RoleRecruiter), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recruiterToken, _ := svc.GenerateToken(&models.UserProfile{ID: "r-1", Role: models.RoleRecruiter})
	candidateToken, _ := svc.GenerateToken(&models.UserProfile{ID: "c-1", Role: models.RoleCandidate})

	req := httptest.NewRequest(http.MethodPost, "/recruiter-only", nil)
	req.Header.Set("Authorization", "Bearer "+recruiterToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for recruiter, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/recruiter-only", nil)
	req.Header.Set("Authorization", "Bearer "+candidateToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for candidate, got %d", w.Code)
	}
}

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("expected hash to differ from plaintext")
	}

	if !CheckPassword("s3cret-pass", hash) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword("wrong-pass", hash) {
		t.Fatal("expected mismatched password to fail")
	}
}
