package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse is the liveness reply
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// handlePing godoc
// @Summary Liveness probe
// @Description Reports that the geo-weather server is accepting requests. Location source and weather provider are not contacted.
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}
