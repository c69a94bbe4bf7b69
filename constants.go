package main

// Session configuration constants
const (
	SessionCookieName = "session_id"
)

// Route constants
const (
	RouteHome      = "/"
	RouteNewGame   = "/new-game"
	RouteGuess     = "/guess"
	RouteMute      = "/mute"
	RouteGameState = "/game-state"
	RouteAPIState  = "/api/state"
	RouteWebSocket = "/ws"
	RouteHealthz   = "/healthz"
)

// Page constants
const (
	PageTitle = "Pendumo - Hangman"
)

// Error message constants
const (
	ErrorNotReady        = "The word list is not available."
	ErrorTooManyRequests = "Too many requests. Please slow down."
	ErrorUnknownCommand  = "Unknown command."
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
