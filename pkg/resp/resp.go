package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Failure bodies follow the client contract: {error:true, message}.

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": true, "message": msg})
}

func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
}

func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"error": true, "message": msg})
}

func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "something went wrong"})
}

func GatewayError(c *gin.Context) {
	c.JSON(http.StatusBadGateway, gin.H{"error": true, "message": "payment gateway unavailable"})
}

func AbortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
}

func AbortForbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
}

func AbortServerError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": true, "message": "something went wrong"})
}
