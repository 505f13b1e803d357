package main

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"geo-weather/internal/location"
	"geo-weather/internal/render"
	"geo-weather/internal/types"
)

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Error string       `json:"error" example:"geolocation is not supported by this host"`
	State *render.View `json:"state,omitempty"`
}

// DirectionResponse is the compass sector of a bearing
type DirectionResponse struct {
	Degrees   float64 `json:"degrees" example:"200"`
	Direction string  `json:"direction" example:"South"`
}

// handleAcquire godoc
// @Summary Acquire the current position
// @Description Ask the configured location source for the current position, then fetch the weather there
// @Tags location
// @Produce json
// @Success 200 {object} render.View
// @Failure 409 {object} ErrorResponse "no location source, or superseded by a newer request"
// @Failure 503 {object} ErrorResponse "location source failed"
// @Router /api/acquire [post]
func (app *App) handleAcquire(c *gin.Context) {
	st, err := app.session.Trigger(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, location.ErrCapabilityMissing):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, location.ErrLocationUnavailable):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
		case errors.Is(err, context.Canceled):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "superseded by a newer request"})
		default:
			app.logger.Error("failed to acquire location", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to acquire location"})
		}
		return
	}

	c.JSON(http.StatusOK, render.NewView(st))
}

// handleGetDirection godoc
// @Summary Classify a wind bearing
// @Description Map a bearing in degrees to one of eight compass sectors
// @Tags location
// @Produce json
// @Param deg query number true "Bearing in degrees" example(200)
// @Success 200 {object} DirectionResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/direction [get]
func (app *App) handleGetDirection(c *gin.Context) {
	deg, err := strconv.ParseFloat(c.Query("deg"), 64)
	if err != nil || math.IsNaN(deg) || math.IsInf(deg, 0) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "deg must be a finite number"})
		return
	}

	c.JSON(http.StatusOK, DirectionResponse{
		Degrees:   deg,
		Direction: types.ClassifyDirection(deg).String(),
	})
}
