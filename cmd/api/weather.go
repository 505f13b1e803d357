package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"geo-weather/internal/location"
	"geo-weather/internal/render"
)

// handleGetWeather godoc
// @Summary Get weather for coordinates
// @Description Build the map embed and fetch the nearest forecast sample for the given coordinates
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(51.5)
// @Param lon query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-0.12)
// @Success 200 {object} render.View
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "superseded by a newer request"
// @Failure 502 {object} ErrorResponse "weather provider failed, state carries location and map"
// @Router /api/weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	var input CoordinatesQuery

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	st, err := app.session.Show(c.Request.Context(), *input.Latitude, *input.Longitude)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrInvalidLatitude) || errors.Is(err, location.ErrInvalidLongitude):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, context.Canceled):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "superseded by a newer request"})
		default:
			app.logger.Error("failed to get weather",
				"latitude", *input.Latitude,
				"longitude", *input.Longitude,
				"error", err,
			)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get weather"})
		}
		return
	}

	v := render.NewView(st)
	if st.Weather == nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to fetch weather data", State: &v})
		return
	}

	c.JSON(http.StatusOK, v)
}

// handleGetState godoc
// @Summary Get the current state
// @Description The view of the latest completed or failed sequence
// @Tags weather
// @Produce json
// @Success 200 {object} render.View
// @Router /api/state [get]
func (app *App) handleGetState(c *gin.Context) {
	c.JSON(http.StatusOK, render.NewView(app.session.Current()))
}
