// Package response holds the JSON envelope helpers shared by all handlers.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes a 200 response with the data envelope.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// Created writes a 201 response with the data envelope.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"data": data})
}

// BadRequest writes a 400 response with the error message.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// NotFound writes a 404 response with the error message.
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

// Conflict writes a 409 response with the error message.
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"error": msg})
}

// Error writes a 500 response with a generic message, keeping internals out
// of the body.
func Error(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
