package hangman

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxIncorrectGuesses is the number of wrong guesses that ends a round.
const MaxIncorrectGuesses = 8

// Status is the lifecycle stage of a round.
type Status int

const (
	StatusIdle Status = iota // no round started yet
	StatusInProgress
	StatusWon
	StatusLost
)

// String returns the lowercase name used in templates and JSON.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "idle"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name written by MarshalText.
func (s *Status) UnmarshalText(text []byte) error {
	for _, st := range []Status{StatusIdle, StatusInProgress, StatusWon, StatusLost} {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("hangman: unknown status %q", text)
}

// Over reports whether the round has finished.
func (s Status) Over() bool {
	return s == StatusWon || s == StatusLost
}

// Outcome records what the last command did to the round.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// Session holds a single round.
type Session struct {
	TargetWord       string
	GuessedLetters   []string // guess order, no duplicates
	IncorrectGuesses int
	Status           Status
}

// State is everything the reducer needs: the current round plus the values
// that outlive it.
type State struct {
	Session Session
	Streak  int
	Muted   bool
	Outcome Outcome
}

// Command is an input to Reduce.
type Command interface {
	command()
}

// Start begins a new round with Word as the target.
type Start struct{ Word string }

// Guess submits raw user input for the current round.
type Guess struct{ Input string }

// ToggleMute flips the mute flag.
type ToggleMute struct{}

func (Start) command()      {}
func (Guess) command()      {}
func (ToggleMute) command() {}

var lower = cases.Lower(language.Und)

// NormalizeWord trims and lowercases a target word.
func NormalizeWord(word string) string {
	return lower.String(strings.TrimSpace(word))
}

// NormalizeGuess returns the lowercase letter in input and whether input is
// acceptable as a single non-blank character.
func NormalizeGuess(input string) (string, bool) {
	letter := lower.String(strings.TrimSpace(input))
	if utf8.RuneCountInString(letter) != 1 {
		return "", false
	}
	r, _ := utf8.DecodeRuneInString(letter)
	if unicode.IsSpace(r) {
		return "", false
	}
	return letter, true
}

// Reduce applies cmd to s and returns the next state. s is never modified.
func Reduce(s State, cmd Command) State {
	next := s.clone()
	next.Outcome = OutcomeNone

	switch c := cmd.(type) {
	case Start:
		word := NormalizeWord(c.Word)
		if word == "" {
			return next
		}
		next.Session = Session{
			TargetWord:     word,
			GuessedLetters: []string{},
			Status:         StatusInProgress,
		}
	case Guess:
		return applyGuess(next, c.Input)
	case ToggleMute:
		next.Muted = !next.Muted
	}
	return next
}

func (s State) clone() State {
	s.Session.GuessedLetters = slices.Clone(s.Session.GuessedLetters)
	return s
}

func applyGuess(s State, input string) State {
	if s.Session.Status != StatusInProgress {
		return s
	}
	letter, ok := NormalizeGuess(input)
	if !ok || slices.Contains(s.Session.GuessedLetters, letter) {
		return s
	}

	s.Session.GuessedLetters = append(s.Session.GuessedLetters, letter)

	if strings.Contains(s.Session.TargetWord, letter) {
		if Revealed(s.Session.TargetWord, s.Session.GuessedLetters) {
			s.Session.Status = StatusWon
			s.Streak++
			s.Outcome = OutcomeWon
		}
		return s
	}

	s.Session.IncorrectGuesses++
	if s.Session.IncorrectGuesses >= MaxIncorrectGuesses {
		s.Session.Status = StatusLost
		s.Streak = 0
		s.Outcome = OutcomeLost
	}
	return s
}

// Revealed reports whether every character of target has been guessed.
func Revealed(target string, guessed []string) bool {
	for _, r := range target {
		if !slices.Contains(guessed, string(r)) {
			return false
		}
	}
	return target != ""
}
