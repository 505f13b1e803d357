package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"geo-weather/internal/render"
	"geo-weather/internal/session"
	"geo-weather/internal/types"
)

// CoordinatesQuery defines the lat/lon query parameters. Pointers so that 0 is a valid value.
type CoordinatesQuery struct {
	Latitude  *float64 `form:"lat" binding:"required"` // Latitude in decimal degrees
	Longitude *float64 `form:"lon" binding:"required"` // Longitude in decimal degrees
}

// handlePage renders the page for the current state. With lat and lon in the
// query it first runs a sequence for those coordinates.
func (app *App) handlePage(c *gin.Context) {
	if c.Query("lat") != "" || c.Query("lon") != "" {
		var input CoordinatesQuery
		if err := c.ShouldBindQuery(&input); err != nil {
			app.renderPage(c, http.StatusBadRequest, render.NewView(session.State{Phase: session.PhaseFailed, Err: err}))
			return
		}

		if _, err := app.session.Show(c.Request.Context(), *input.Latitude, *input.Longitude); err != nil {
			if errors.Is(err, types.ErrInvalidLatitude) || errors.Is(err, types.ErrInvalidLongitude) {
				app.renderPage(c, http.StatusBadRequest, render.NewView(session.State{Phase: session.PhaseFailed, Err: err}))
				return
			}
			// superseded by a newer sequence, show whatever is current
		}
	}

	app.renderPage(c, http.StatusOK, render.NewView(app.session.Current()))
}

// handleAcquireForm runs a sequence from the location source and redirects back to the page
func (app *App) handleAcquireForm(c *gin.Context) {
	// Location errors are stored in the state and shown by the page
	_, _ = app.session.Trigger(c.Request.Context())
	c.Redirect(http.StatusSeeOther, "/")
}

func (app *App) renderPage(c *gin.Context, status int, v render.View) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := render.HTML(c.Writer, v); err != nil {
		app.logger.Error("failed to render page", "error", err)
	}
}
