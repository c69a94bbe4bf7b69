package main

import (
	"context"
	"errors"

	"pendumo/internal/hangman"
	"pendumo/internal/words"
)

// loadWords performs the one blocking word-list load before the server
// accepts traffic. A failure is recorded and logged; the server keeps running
// with every game control disabled.
func (app *App) loadWords(ctx context.Context) error {
	source := app.Config.WordsSource
	logInfo("Loading words from %s", sourceLabel(source))

	list, err := words.Load(ctx, source)
	if err != nil {
		app.Words = nil
		app.WordsErr = err
		switch {
		case errors.Is(err, words.ErrEmptySource):
			logWarn("Word list %s has no usable entries, game disabled: %v", sourceLabel(source), err)
		default:
			logWarn("Word list %s could not be read, game disabled: %v", sourceLabel(source), err)
		}
		return err
	}

	app.Words = list
	app.WordsErr = nil
	logInfo("Loaded %d words", list.Len())
	return nil
}

func sourceLabel(source string) string {
	if source == "" {
		return words.Embedded
	}
	return source
}

// ready reports whether rounds can be started.
func (app *App) ready() bool {
	return app.WordsErr == nil && app.Words.Len() > 0
}

// wordPicker returns the picker for new controllers, or nil when the word
// list is unavailable.
func (app *App) wordPicker() hangman.WordPicker {
	if !app.ready() {
		return nil
	}
	return app.Words
}

// startRound begins a new round for a player and logs the outcome.
func (app *App) startRound(ctx context.Context, sessionID string, player *hangman.Controller) (hangman.Snapshot, error) {
	logger := requestLogger(ctx)
	snap, err := player.NewGame()
	if err != nil {
		logger.Warn().Err(err).Str("session", sessionID).Msg("Could not start round")
		return snap, err
	}
	logger.Info().Str("session", sessionID).Msg("New round started")
	logger.Debug().Str("session", sessionID).Str("word", player.State().Session.TargetWord).Msg("Round target selected")
	return snap, nil
}

// submitGuess applies a guess and logs round transitions.
func (app *App) submitGuess(ctx context.Context, sessionID string, player *hangman.Controller, input string) hangman.Snapshot {
	logger := requestLogger(ctx)
	before := player.State().Session
	snap := player.Guess(input)

	switch {
	case len(snap.GuessedLetters) == len(before.GuessedLetters):
		logger.Debug().Str("session", sessionID).Str("input", input).Msg("Guess ignored")
	case snap.Status == hangman.StatusWon && before.Status != hangman.StatusWon:
		logger.Info().Str("session", sessionID).Str("word", snap.TargetWord).Int("streak", snap.Streak).Msg("Player won")
	case snap.Status == hangman.StatusLost && before.Status != hangman.StatusLost:
		logger.Info().Str("session", sessionID).Str("word", snap.TargetWord).Msg("Player lost")
	default:
		logger.Debug().Str("session", sessionID).Int("incorrect", snap.Incorrect).Msg("Guess applied")
	}
	return snap
}
