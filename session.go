package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pendumo/internal/hangman"
)

// getOrCreateSession retrieves the session ID from the cookie or creates a new one.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || uuid.Validate(sessionID) != nil {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteStrictMode)
		secure := app.Config.IsProduction()
		c.SetCookie(SessionCookieName, sessionID, int(app.Config.CookieMaxAge.Seconds()), "/", "", secure, true)
		requestLogger(c.Request.Context()).Info().Str("session", sessionID).Msg("Created new session")
	}
	return sessionID
}

// getPlayer returns the controller for a session, creating it and starting
// the first round on first access.
func (app *App) getPlayer(ctx context.Context, sessionID string) *hangman.Controller {
	app.PlayerMutex.RLock()
	player, exists := app.Players[sessionID]
	app.PlayerMutex.RUnlock()
	if exists {
		return player
	}

	app.PlayerMutex.Lock()
	if player, exists = app.Players[sessionID]; exists {
		app.PlayerMutex.Unlock()
		return player
	}
	player = hangman.NewController(app.wordPicker(), app.Sounds)
	app.Players[sessionID] = player
	app.PlayerMutex.Unlock()

	app.startRound(ctx, sessionID, player)
	return player
}

// playerCount returns the number of live sessions.
func (app *App) playerCount() int {
	app.PlayerMutex.RLock()
	defer app.PlayerMutex.RUnlock()
	return len(app.Players)
}

// cleanupExpiredSessions drops controllers idle for longer than maxAge and
// returns how many were removed.
func (app *App) cleanupExpiredSessions(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	app.PlayerMutex.Lock()
	defer app.PlayerMutex.Unlock()

	removed := 0
	for id, player := range app.Players {
		if player.LastAccess().Before(cutoff) {
			delete(app.Players, id)
			removed++
		}
	}
	if removed > 0 {
		logInfo("Session cleanup completed: removed %d idle sessions, %d remaining", removed, len(app.Players))
	}
	return removed
}

// runSessionCleanup sweeps idle sessions until ctx is cancelled.
func (app *App) runSessionCleanup(ctx context.Context) {
	interval := app.Config.CleanupInterval
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.cleanupExpiredSessions(app.Config.SessionTimeout)
		}
	}
}
