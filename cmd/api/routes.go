package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Page
	app.router.GET("/", app.handlePage)
	app.router.POST("/acquire", app.handleAcquireForm)

	// JSON API
	api := app.router.Group("/api")
	api.GET("/weather", app.handleGetWeather)
	api.POST("/acquire", app.handleAcquire)
	api.GET("/state", app.handleGetState)
	api.GET("/direction", app.handleGetDirection)

	// Live state updates
	app.router.GET("/ws", app.handleWebSocket)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
