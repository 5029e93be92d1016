package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func setupGuardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.JWTSecretKey = "test_secret_key"
	utils.JWTExpirationTime = 3600

	router := gin.New()
	router.Use(AuthMiddleware())
	router.GET("/whoami", func(c *gin.Context) {
		userID, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	router := setupGuardedRouter()

	validToken, err := services.GenerateToken("test-user-id")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	tests := []struct {
		name           string
		setupRequest   func(req *http.Request)
		expectedStatus int
		expectedUserID string
	}{
		{
			name:           "No Token",
			setupRequest:   func(req *http.Request) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "Malformed Authorization Header",
			setupRequest: func(req *http.Request) {
				req.Header.Set("Authorization", validToken) // no Bearer prefix
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "Invalid Token",
			setupRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer not-a-jwt")
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "Valid Bearer Token",
			setupRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+validToken)
			},
			expectedStatus: http.StatusOK,
			expectedUserID: "test-user-id",
		},
		{
			name: "Valid Cookie Token",
			setupRequest: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: "token", Value: validToken})
			},
			expectedStatus: http.StatusOK,
			expectedUserID: "test-user-id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/whoami", nil)
			tt.setupRequest(req)

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d, body %s", w.Code, tt.expectedStatus, w.Body.String())
			}

			var response map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to parse response: %v", err)
			}

			if tt.expectedStatus == http.StatusForbidden {
				// The body never carries the verification error, only the
				// generic message.
				if msg, ok := response["message"].(string); !ok || msg != "You are not signed in" {
					t.Errorf("expected generic rejection message, got %v", response)
				}
				return
			}

			if userID, _ := response["user_id"].(string); userID != tt.expectedUserID {
				t.Errorf("user_id = %q, want %q", userID, tt.expectedUserID)
			}
		})
	}
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	router := setupGuardedRouter()

	utils.JWTSecretKey = "another_secret"
	foreignToken, err := services.GenerateToken("test-user-id")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	utils.JWTSecretKey = "test_secret_key"

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+foreignToken)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}
