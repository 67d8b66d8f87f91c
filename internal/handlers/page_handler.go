package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/jobby-board/internal/views"
)

// Home is GET /, behind the session gate.
func Home(c *gin.Context) {
	c.HTML(http.StatusOK, views.TemplateHome, nil)
}

func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, views.TemplateNotFound, nil)
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
