package hangman

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMaskWord(t *testing.T) {
	cases := []struct {
		target  string
		guessed []string
		want    string
	}{
		{"cat", nil, "_ _ _"},
		{"cat", []string{"c"}, "c _ _"},
		{"banana", []string{"a"}, "_ a _ a _ a"},
		{"cat", []string{"c", "a", "t"}, "c a t"},
		{"", nil, ""},
		{"ice cream", []string{"e"}, "_ _ e _ _ _ e _ _"},
	}
	for _, c := range cases {
		if got := MaskWord(c.target, c.guessed); got != c.want {
			t.Errorf("MaskWord(%q, %v) = %q, want %q", c.target, c.guessed, got, c.want)
		}
	}
}

func TestRenderInProgress(t *testing.T) {
	s := guessAll(started("cat"), "c", "x")
	snap := Render(s, true)
	if snap.MaskedWord != "c _ _" {
		t.Errorf("MaskedWord = %q", snap.MaskedWord)
	}
	if snap.GuessedLabel != "Guessed Letters: c, x" {
		t.Errorf("GuessedLabel = %q", snap.GuessedLabel)
	}
	if snap.Message != "" || snap.TargetWord != "" {
		t.Errorf("in-progress snapshot leaks the end state: %+v", snap)
	}
	if !snap.InputEnabled || !snap.NewGameEnabled {
		t.Error("controls should be enabled during a round")
	}
	if snap.Incorrect != 1 || len(snap.Gallows) != MaxIncorrectGuesses {
		t.Errorf("Incorrect = %d, gallows = %d", snap.Incorrect, len(snap.Gallows))
	}
}

func TestRenderWon(t *testing.T) {
	snap := Render(guessAll(started("cat"), "c", "a", "t"), true)
	if snap.Message != "Congratulations! You guessed the word!" {
		t.Errorf("Message = %q", snap.Message)
	}
	if snap.InputEnabled {
		t.Error("input should be disabled after a win")
	}
	if snap.StreakLabel != "Winstreak: 1" {
		t.Errorf("StreakLabel = %q", snap.StreakLabel)
	}
}

func TestRenderLostRevealsWord(t *testing.T) {
	snap := Render(guessAll(started("dog"), "x", "q", "z", "v", "j", "k", "w", "y"), true)
	if !strings.Contains(snap.Message, `"dog"`) {
		t.Errorf("Message = %q, want it to reveal the word", snap.Message)
	}
	if snap.Message != `Game Over! The word was "dog".` {
		t.Errorf("Message = %q", snap.Message)
	}
	if snap.TargetWord != "dog" || snap.InputEnabled {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}

func TestRenderNotReady(t *testing.T) {
	snap := Render(State{}, false)
	if snap.InputEnabled || snap.NewGameEnabled {
		t.Error("controls must stay disabled without a word source")
	}
	if snap.Status != StatusIdle || snap.GuessedLetters == nil {
		t.Errorf("unexpected idle snapshot: %+v", snap)
	}
}

func TestSnapshotJSON(t *testing.T) {
	data, err := json.Marshal(Render(guessAll(started("cat"), "c"), true))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["status"] != "in_progress" {
		t.Errorf("status = %v", decoded["status"])
	}
	if decoded["maskedWord"] != "c _ _" {
		t.Errorf("maskedWord = %v", decoded["maskedWord"])
	}
	if _, ok := decoded["targetWord"]; ok {
		t.Error("targetWord must be omitted while the round is in progress")
	}
}
