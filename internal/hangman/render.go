package hangman

import (
	"fmt"
	"slices"
	"strings"
)

// Placeholder stands in for characters that have not been guessed.
const Placeholder = "_"

const (
	messageWon  = "Congratulations! You guessed the word!"
	messageLost = "Game Over! The word was %q."
)

// MaskWord renders target with unguessed characters replaced by Placeholder,
// one space between characters.
func MaskWord(target string, guessed []string) string {
	parts := make([]string, 0, len(target))
	for _, r := range target {
		ch := string(r)
		if slices.Contains(guessed, ch) {
			parts = append(parts, ch)
		} else {
			parts = append(parts, Placeholder)
		}
	}
	return strings.Join(parts, " ")
}

// Snapshot is the render state handed to the presentation layer.
type Snapshot struct {
	Status         Status      `json:"status"`
	MaskedWord     string      `json:"maskedWord"`
	Message        string      `json:"message"`
	GuessedLetters []string    `json:"guessedLetters"`
	GuessedLabel   string      `json:"guessedLabel"`
	Streak         int         `json:"streak"`
	StreakLabel    string      `json:"streakLabel"`
	InputEnabled   bool        `json:"inputEnabled"`
	NewGameEnabled bool        `json:"newGameEnabled"`
	Muted          bool        `json:"muted"`
	Incorrect      int         `json:"incorrectGuesses"`
	MaxIncorrect   int         `json:"maxIncorrectGuesses"`
	Gallows        []Primitive `json:"gallows"`
	TargetWord     string      `json:"targetWord,omitempty"` // set once the round is over
	Sound          string      `json:"sound,omitempty"`
}

// Render derives a Snapshot from s. ready reports whether a new round can be
// started at all.
func Render(s State, ready bool) Snapshot {
	sess := s.Session
	guessed := slices.Clone(sess.GuessedLetters)
	if guessed == nil {
		guessed = []string{}
	}

	snap := Snapshot{
		Status:         sess.Status,
		MaskedWord:     MaskWord(sess.TargetWord, sess.GuessedLetters),
		GuessedLetters: guessed,
		GuessedLabel:   "Guessed Letters: " + strings.Join(guessed, ", "),
		Streak:         s.Streak,
		StreakLabel:    fmt.Sprintf("Winstreak: %d", s.Streak),
		InputEnabled:   sess.Status == StatusInProgress,
		NewGameEnabled: ready,
		Muted:          s.Muted,
		Incorrect:      sess.IncorrectGuesses,
		MaxIncorrect:   MaxIncorrectGuesses,
		Gallows:        Gallows(sess.IncorrectGuesses),
	}

	switch sess.Status {
	case StatusWon:
		snap.Message = messageWon
		snap.TargetWord = sess.TargetWord
	case StatusLost:
		snap.Message = fmt.Sprintf(messageLost, sess.TargetWord)
		snap.TargetWord = sess.TargetWord
	}
	return snap
}
