package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"pendumo/internal/hangman"
)

const wsReadLimit = 1024

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// wsCommand is a client message on the game socket.
type wsCommand struct {
	Type   string `json:"type"` // "guess", "new-game", "mute" or "state"
	Letter string `json:"letter,omitempty"`
}

// wsMessage is a server message on the game socket.
type wsMessage struct {
	Type  string            `json:"type"` // "state" or "error"
	State *hangman.Snapshot `json:"state,omitempty"`
	Error string            `json:"error,omitempty"`
}

// wsHandler drives a session over a WebSocket: every command is answered
// with the resulting snapshot.
func (app *App) wsHandler(c *gin.Context) {
	ctx := c.Request.Context()
	logger := requestLogger(ctx)
	sessionID := app.getOrCreateSession(c)
	player := app.getPlayer(ctx, sessionID)

	// Carry a freshly issued session cookie into the handshake response.
	header := http.Header{}
	if cookies := c.Writer.Header().Values("Set-Cookie"); len(cookies) > 0 {
		header["Set-Cookie"] = cookies
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, header)
	if err != nil {
		logger.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(wsReadLimit)

	initial := player.Snapshot()
	if err := conn.WriteJSON(wsMessage{Type: "state", State: &initial}); err != nil {
		return
	}

	for {
		var cmd wsCommand
		if err := conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn().Err(err).Str("session", sessionID).Msg("WebSocket read error")
			}
			return
		}

		if !app.getLimiter(c.ClientIP()).Allow() {
			if err := conn.WriteJSON(wsMessage{Type: "error", Error: ErrorTooManyRequests}); err != nil {
				return
			}
			continue
		}

		msg := app.handleWSCommand(c, sessionID, player, cmd)
		if err := conn.WriteJSON(msg); err != nil {
			logger.Warn().Err(err).Str("session", sessionID).Msg("WebSocket write error")
			return
		}
	}
}

func (app *App) handleWSCommand(c *gin.Context, sessionID string, player *hangman.Controller, cmd wsCommand) wsMessage {
	ctx := c.Request.Context()
	var snap hangman.Snapshot

	switch cmd.Type {
	case "guess":
		snap = app.submitGuess(ctx, sessionID, player, cmd.Letter)
	case "new-game":
		var err error
		snap, err = app.startRound(ctx, sessionID, player)
		if err != nil {
			msg := err.Error()
			if errors.Is(err, hangman.ErrNotReady) {
				msg = ErrorNotReady
			}
			return wsMessage{Type: "error", State: &snap, Error: msg}
		}
	case "mute":
		snap = player.ToggleMute()
	case "state":
		snap = player.Snapshot()
	default:
		return wsMessage{Type: "error", Error: ErrorUnknownCommand}
	}
	return wsMessage{Type: "state", State: &snap}
}
