package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"pendumo/internal/hangman"
	"pendumo/internal/sounds"
	"pendumo/internal/words"
)

type contextKey string

// App holds process-wide server state. Each browser session gets its own
// hangman.Controller, which owns that player's round, streak and mute flag.
type App struct {
	Config Config

	Words    words.List
	WordsErr error // set when the word list failed to load
	Sounds   sounds.Library

	Players      map[string]*hangman.Controller
	PlayerMutex  sync.RWMutex
	LimiterMap   map[string]*rate.Limiter
	LimiterMutex sync.Mutex
	StartTime    time.Time
}

// newApp returns an App with no word list loaded yet.
func newApp(cfg Config) *App {
	return &App{
		Config:     cfg,
		WordsErr:   hangman.ErrNotReady,
		Sounds:     sounds.Default(cfg.SoundsPrefix),
		Players:    make(map[string]*hangman.Controller),
		LimiterMap: make(map[string]*rate.Limiter),
		StartTime:  time.Now(),
	}
}
