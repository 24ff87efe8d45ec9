package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	ping := rg.Group("/ping")

	ping.GET("", pong)
}

// pong godoc
//
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /v1/ping [get]
func pong(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
