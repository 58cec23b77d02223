// Package response implements the wire envelope: successful responses carry
// the raw resource payload, failures carry {"error": message} with an HTTP
// status of 400/404/422 or 500.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends a 200 with the raw payload.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 for successfully created resources.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Success sends the {"success": true} flag used by reorder and delete.
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Error sends an error body with an arbitrary status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// BadRequest sends a 400 for malformed or invalid input.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 for a missing resource.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	Error(c, http.StatusNotFound, message)
}

// ValidationError sends a 422 for domain validation failures.
func ValidationError(c *gin.Context, message string) {
	Error(c, http.StatusUnprocessableEntity, message)
}

// Forbidden sends a 403.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// InternalError sends a 500.
// Note: never expose internal error details to clients.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	Error(c, http.StatusInternalServerError, message)
}
