package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"geo-weather/internal/render"
)

const wsWriteWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// handleWebSocket streams a view of every published state, starting with the current one
func (app *App) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		app.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	updates, unsubscribe := app.session.Subscribe()
	defer unsubscribe()

	// The client never sends anything; reading only notices when it goes away
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case st, ok := <-updates:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(render.NewView(st)); err != nil {
				app.logger.Debug("websocket write failed", "error", err)
				return
			}
		}
	}
}
