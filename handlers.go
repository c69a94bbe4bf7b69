package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pendumo/internal/hangman"
)

// homeHandler renders the main game page for the current session.
func (app *App) homeHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	player := app.getPlayer(c.Request.Context(), sessionID)
	c.HTML(http.StatusOK, "index.html", app.pageData(player.Snapshot()))
}

// newGameHandler replaces the session's round with a fresh one.
func (app *App) newGameHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	player := app.getPlayer(ctx, sessionID)

	snap, err := app.startRound(ctx, sessionID, player)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, hangman.ErrNotReady) {
			status = http.StatusServiceUnavailable
		}
		c.HTML(status, "index.html", app.pageData(snap))
		return
	}

	if isHTMX(c) {
		c.HTML(http.StatusOK, "game-content", app.pageData(snap))
		return
	}
	c.Redirect(http.StatusSeeOther, RouteHome)
}

// guessHandler submits one letter. Blank, multi-character and repeated
// letters are ignored and the board is re-rendered unchanged.
func (app *App) guessHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	player := app.getPlayer(ctx, sessionID)

	snap := app.submitGuess(ctx, sessionID, player, c.PostForm("letter"))
	app.renderGame(c, snap)
}

// muteHandler toggles sound for the session.
func (app *App) muteHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	player := app.getPlayer(c.Request.Context(), sessionID)

	snap := player.ToggleMute()
	requestLogger(c.Request.Context()).Debug().Str("session", sessionID).Bool("muted", snap.Muted).Msg("Mute toggled")
	app.renderGame(c, snap)
}

// gameStateHandler renders the current game board as an HTML fragment.
func (app *App) gameStateHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	player := app.getPlayer(c.Request.Context(), sessionID)
	c.HTML(http.StatusOK, "game-content", app.pageData(player.Snapshot()))
}

// apiStateHandler returns the current snapshot as JSON.
func (app *App) apiStateHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	player := app.getPlayer(c.Request.Context(), sessionID)
	c.JSON(http.StatusOK, player.Snapshot())
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	status, code := "ok", http.StatusOK
	body := gin.H{
		"env":             app.Config.envName(),
		"words_loaded":    app.Words.Len(),
		"words_ready":     app.ready(),
		"active_sessions": app.playerCount(),
		"uptime":          formatUptime(time.Since(app.StartTime)),
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	}
	if !app.ready() {
		status, code = "unavailable", http.StatusServiceUnavailable
		if app.WordsErr != nil {
			body["words_error"] = app.WordsErr.Error()
		}
	}
	body["status"] = status
	c.JSON(code, body)
}

// renderGame writes the board fragment for htmx requests and the full page
// otherwise.
func (app *App) renderGame(c *gin.Context, snap hangman.Snapshot) {
	if isHTMX(c) {
		c.HTML(http.StatusOK, "game-content", app.pageData(snap))
		return
	}
	c.HTML(http.StatusOK, "index.html", app.pageData(snap))
}

func (app *App) pageData(snap hangman.Snapshot) gin.H {
	return gin.H{
		"title":  PageTitle,
		"game":   snap,
		"ready":  app.ready(),
		"width":  hangman.CanvasWidth,
		"height": hangman.CanvasHeight,
	}
}
