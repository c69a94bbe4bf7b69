package hangman

import (
	"errors"
	"sync"
	"testing"
)

type fixedWords []string

func (f fixedWords) Pick() (string, error) {
	if len(f) == 0 {
		return "", errors.New("empty")
	}
	return f[0], nil
}

type stubSounds struct{ win, loss string }

func (s stubSounds) Clip(won bool) (string, error) {
	if won {
		return s.win, nil
	}
	return s.loss, nil
}

func TestControllerNotReady(t *testing.T) {
	c := NewController(nil, nil)
	if c.Ready() {
		t.Error("controller without words should not be ready")
	}
	snap, err := c.NewGame()
	if !errors.Is(err, ErrNotReady) {
		t.Errorf("NewGame err = %v, want ErrNotReady", err)
	}
	if snap.NewGameEnabled || snap.InputEnabled {
		t.Error("controls must stay disabled")
	}
	if snap := c.Guess("a"); len(snap.GuessedLetters) != 0 {
		t.Error("guess accepted before any round")
	}
}

func TestControllerPickError(t *testing.T) {
	c := NewController(fixedWords{}, nil)
	if _, err := c.NewGame(); err == nil {
		t.Error("expected pick error")
	}
	if c.State().Session.Status != StatusIdle {
		t.Error("failed pick must not start a round")
	}
}

func TestControllerWinPlaysSound(t *testing.T) {
	c := NewController(fixedWords{"cat"}, stubSounds{win: "/win.wav", loss: "/loss.wav"})
	if _, err := c.NewGame(); err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	c.Guess("c")
	if snap := c.Guess("a"); snap.Sound != "" {
		t.Errorf("sound on a non-final guess: %q", snap.Sound)
	}
	snap := c.Guess("t")
	if snap.Status != StatusWon || snap.Sound != "/win.wav" {
		t.Errorf("status %v sound %q", snap.Status, snap.Sound)
	}
	if c.Snapshot().Sound != "" {
		t.Error("plain re-render must not replay the sound")
	}
	if c.State().Streak != 1 {
		t.Errorf("Streak = %d", c.State().Streak)
	}
}

func TestControllerMutedLoss(t *testing.T) {
	c := NewController(fixedWords{"dog"}, stubSounds{win: "/win.wav", loss: "/loss.wav"})
	if _, err := c.NewGame(); err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if snap := c.ToggleMute(); !snap.Muted {
		t.Fatal("expected muted")
	}
	var snap Snapshot
	for _, l := range []string{"x", "q", "z", "v", "j", "k", "w", "y"} {
		snap = c.Guess(l)
	}
	if snap.Status != StatusLost {
		t.Fatalf("Status = %v", snap.Status)
	}
	if snap.Sound != "" {
		t.Errorf("muted controller emitted %q", snap.Sound)
	}
}

func TestControllerUnmutedLoss(t *testing.T) {
	c := NewController(fixedWords{"dog"}, stubSounds{win: "/win.wav", loss: "/loss.wav"})
	if _, err := c.NewGame(); err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	var snap Snapshot
	for _, l := range []string{"x", "q", "z", "v", "j", "k", "w", "y"} {
		snap = c.Guess(l)
	}
	if snap.Sound != "/loss.wav" {
		t.Errorf("Sound = %q, want /loss.wav", snap.Sound)
	}
}

func TestControllerConcurrentGuesses(t *testing.T) {
	c := NewController(fixedWords{"abcdefghijklm"}, nil)
	if _, err := c.NewGame(); err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	var wg sync.WaitGroup
	for _, l := range "abcdefghijklmnopqrstuvwxyz" {
		wg.Add(1)
		go func(letter string) {
			defer wg.Done()
			c.Guess(letter)
			c.Guess(letter)
		}(string(l))
	}
	wg.Wait()

	s := c.State()
	seen := map[string]bool{}
	for _, l := range s.Session.GuessedLetters {
		if seen[l] {
			t.Fatalf("duplicate letter %q", l)
		}
		seen[l] = true
	}
	if s.Session.IncorrectGuesses > MaxIncorrectGuesses {
		t.Errorf("IncorrectGuesses = %d", s.Session.IncorrectGuesses)
	}
}
