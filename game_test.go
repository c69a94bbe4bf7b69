package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pendumo/internal/hangman"
	"pendumo/internal/words"
)

func writeWordsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write words file: %v", err)
	}
	return path
}

func TestLoadWordsFromFile(t *testing.T) {
	cfg := testConfig()
	cfg.WordsSource = writeWordsFile(t, "Cat\n\n dog \n")
	app := newApp(cfg)

	if app.ready() {
		t.Fatal("app should not be ready before loading")
	}
	if err := app.loadWords(testContext(t)); err != nil {
		t.Fatalf("loadWords: %v", err)
	}
	if !app.ready() || app.Words.Len() != 2 {
		t.Errorf("ready=%v len=%d, want ready with 2 words", app.ready(), app.Words.Len())
	}
	if app.Words[0] != "cat" || app.Words[1] != "dog" {
		t.Errorf("words = %v, want [cat dog]", app.Words)
	}
}

func TestLoadWordsEmbedded(t *testing.T) {
	cfg := testConfig()
	cfg.WordsSource = words.Embedded
	app := newApp(cfg)
	if err := app.loadWords(testContext(t)); err != nil {
		t.Fatalf("loadWords: %v", err)
	}
	if !app.ready() {
		t.Error("embedded list should make the app ready")
	}
}

func TestLoadWordsFailures(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   error
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.txt"), words.ErrSourceUnavailable},
		{"blank file", writeWordsFile(t, "\n  \n"), words.ErrEmptySource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.WordsSource = tc.source
			app := newApp(cfg)

			err := app.loadWords(testContext(t))
			if !errors.Is(err, tc.want) {
				t.Fatalf("loadWords error = %v, want %v", err, tc.want)
			}
			if app.ready() || app.wordPicker() != nil {
				t.Error("app should stay disabled after a failed load")
			}
			if !errors.Is(app.WordsErr, tc.want) {
				t.Errorf("WordsErr = %v, want %v", app.WordsErr, tc.want)
			}
		})
	}
}

func TestGetPlayerStartsFirstRound(t *testing.T) {
	app := newTestApp("cat")
	player := app.getPlayer(testContext(t), "11111111-1111-4111-8111-111111111111")

	st := player.State()
	if st.Session.Status != hangman.StatusInProgress || st.Session.TargetWord != "cat" {
		t.Errorf("first round not started: %+v", st.Session)
	}
	if again := app.getPlayer(testContext(t), "11111111-1111-4111-8111-111111111111"); again != player {
		t.Error("getPlayer should return the same controller for a session")
	}
}

func TestGetPlayerWithoutWordsStaysIdle(t *testing.T) {
	app := newTestApp()
	player := app.getPlayer(testContext(t), "22222222-2222-4222-8222-222222222222")
	if st := player.State(); st.Session.Status != hangman.StatusIdle {
		t.Errorf("Status = %v, want idle", st.Session.Status)
	}
	if _, err := app.startRound(testContext(t), "s", player); !errors.Is(err, hangman.ErrNotReady) {
		t.Errorf("startRound error = %v, want ErrNotReady", err)
	}
}

func TestSubmitGuessTracksStreak(t *testing.T) {
	app := newTestApp("a")
	player := app.getPlayer(testContext(t), "33333333-3333-4333-8333-333333333333")

	snap := app.submitGuess(testContext(t), "s", player, "A")
	if snap.Status != hangman.StatusWon || snap.Streak != 1 {
		t.Errorf("after winning guess: status=%v streak=%d", snap.Status, snap.Streak)
	}
	snap = app.submitGuess(testContext(t), "s", player, "b")
	if snap.Status != hangman.StatusWon || len(snap.GuessedLetters) != 1 {
		t.Error("guesses after a win should be ignored")
	}
}

func TestCleanupExpiredSessions(t *testing.T) {
	app := newTestApp("cat")
	app.getPlayer(testContext(t), "44444444-4444-4444-8444-444444444444")
	app.getPlayer(testContext(t), "55555555-5555-4555-8555-555555555555")

	if removed := app.cleanupExpiredSessions(time.Hour); removed != 0 {
		t.Errorf("removed %d fresh sessions, want 0", removed)
	}
	time.Sleep(5 * time.Millisecond)
	if removed := app.cleanupExpiredSessions(time.Millisecond); removed != 2 {
		t.Errorf("removed %d idle sessions, want 2", removed)
	}
	if app.playerCount() != 0 {
		t.Errorf("playerCount = %d, want 0", app.playerCount())
	}
}

func TestRunSessionCleanupStopsOnCancel(t *testing.T) {
	app := newTestApp("cat")
	app.Config.CleanupInterval = time.Millisecond
	app.Config.SessionTimeout = time.Millisecond
	app.getPlayer(testContext(t), "66666666-6666-4666-8666-666666666666")

	ctx, cancel := context.WithCancel(testContext(t))
	done := make(chan struct{})
	go func() {
		app.runSessionCleanup(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for app.playerCount() > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-done

	if app.playerCount() != 0 {
		t.Error("idle session was not swept")
	}
}
