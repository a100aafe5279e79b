// Package controllers implements the HTTP handlers for the API.
package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/madhannmady/Expense-tracker-application/internal/auth"
)

// MessageResponse is the body of responses that only carry a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// currentUser returns the claims of the authenticated user. Only
// valid on routes behind the auth middleware.
func currentUser(c *gin.Context) auth.Claims {
	claims := c.MustGet(auth.ContextKey)
	return claims.(auth.Claims)
}
