package handler

import (
	"errors"
	"log"
	"net/http"

	"main/dto"
	"main/middleware"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func SignupHandler(c *gin.Context, authService *usecase.AuthService) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// 411 for schema violations, as the legacy API did.
		c.JSON(http.StatusLengthRequired, gin.H{"message": err.Error()})
		return
	}

	_, err := authService.Signup(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateUser) {
			c.JSON(http.StatusForbidden, gin.H{"message": "User already exists with this username"})
			return
		}
		log.Printf("Signup failed for %q: %v", req.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Some problem while creating user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed up"})
}

func SigninHandler(c *gin.Context, authService *usecase.AuthService) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusLengthRequired, gin.H{"message": err.Error()})
		return
	}

	token, err := authService.Signin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusForbidden, gin.H{"message": "User not found"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid credentials"})
		case errors.Is(err, services.ErrSecretNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"message": "JWT secret not configured"})
		default:
			log.Printf("Signin failed for %q: %v", req.Username, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Some problem while signing in"})
		}
		return
	}

	if utils.TokenTransport == utils.TransportCookie {
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie("token", token, int(utils.JWTExpirationTime), "/", "", true, true)
		c.JSON(http.StatusOK, gin.H{"message": "Signed in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed in", "token": token})
}

// SignoutHandler blacklists the presented token for its remaining
// lifetime. Without a configured blacklist the call is a no-op 200.
func SignoutHandler(c *gin.Context) {
	tokenString := middleware.TokenFromRequest(c)
	if err := services.BlacklistToken(tokenString); err != nil {
		log.Printf("Signout failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Some problem while signing out"})
		return
	}

	if utils.TokenTransport == utils.TransportCookie {
		c.SetCookie("token", "", -1, "/", "", true, true)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
