package hangman

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNotReady is returned when a round is requested before a word source
// is available.
var ErrNotReady = errors.New("hangman: word source not ready")

// WordPicker supplies target words for new rounds.
type WordPicker interface {
	Pick() (string, error)
}

// SoundPicker chooses the clip played when a round ends.
type SoundPicker interface {
	Clip(won bool) (string, error)
}

// Controller is the session manager for one player. It owns the round, the
// win streak and the mute flag, and serializes every command.
type Controller struct {
	mu         sync.Mutex
	words      WordPicker
	sounds     SoundPicker
	state      State
	lastAccess time.Time
	now        func() time.Time
}

// NewController returns a controller with no round started. words may be
// nil, in which case NewGame fails with ErrNotReady until the process is
// restarted with a working source.
func NewController(words WordPicker, sounds SoundPicker) *Controller {
	c := &Controller{words: words, sounds: sounds, now: time.Now}
	c.lastAccess = c.now()
	return c
}

// Ready reports whether NewGame can succeed.
func (c *Controller) Ready() bool {
	return c.words != nil
}

// NewGame picks a word and starts a round with it.
func (c *Controller) NewGame() (Snapshot, error) {
	if c.words == nil {
		return c.Snapshot(), ErrNotReady
	}
	word, err := c.words.Pick()
	if err != nil {
		return c.Snapshot(), fmt.Errorf("pick word: %w", err)
	}
	if NormalizeWord(word) == "" {
		return c.Snapshot(), fmt.Errorf("pick word: %w", ErrNotReady)
	}
	return c.dispatch(Start{Word: word}), nil
}

// Guess submits input for the current round. Invalid or duplicate input is
// ignored and the unchanged snapshot is returned.
func (c *Controller) Guess(input string) Snapshot {
	return c.dispatch(Guess{Input: input})
}

// ToggleMute flips the mute flag.
func (c *Controller) ToggleMute() Snapshot {
	return c.dispatch(ToggleMute{})
}

// Snapshot renders the current state without applying a command.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastAccess = c.now()
	return Render(c.state, c.Ready())
}

// State returns a copy of the reducer state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// LastAccess returns when the controller last handled a command or render.
func (c *Controller) LastAccess() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastAccess
}

func (c *Controller) dispatch(cmd Command) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = Reduce(c.state, cmd)
	c.lastAccess = c.now()
	snap := Render(c.state, c.Ready())

	if c.state.Outcome != OutcomeNone && !c.state.Muted && c.sounds != nil {
		// A missing clip only silences the round.
		if clip, err := c.sounds.Clip(c.state.Outcome == OutcomeWon); err == nil {
			snap.Sound = clip
		}
	}
	return snap
}
