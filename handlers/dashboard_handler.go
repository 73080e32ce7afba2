package handlers

import (
	"net/http"

	"legaldash-backend/web"

	"github.com/gin-gonic/gin"
)

// Home serves the embedded dashboard page at GET /.
func Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}
