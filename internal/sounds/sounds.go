// Package sounds holds the clips played when a round ends.
package sounds

import (
	"crypto/rand"
	"errors"
	"math/big"
	"net/url"
	"strings"
)

// ErrNoClips is returned when the requested set is empty.
var ErrNoClips = errors.New("sounds: no clips")

var (
	defaultWin  = []string{"Complete.wav", "Congratulations.wav", "Wow Incredible.wav"}
	defaultLoss = []string{"Failure.wav", "Continue.wav", "Game Over.wav"}
)

// Library is an immutable pair of clip sets. Clips resolve to URLs under a
// fixed prefix.
type Library struct {
	prefix string
	win    []string
	loss   []string
}

// New returns a library with the given clip names.
func New(prefix string, win, loss []string) Library {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return Library{
		prefix: prefix,
		win:    append([]string(nil), win...),
		loss:   append([]string(nil), loss...),
	}
}

// Default returns the stock clips served under prefix.
func Default(prefix string) Library {
	return New(prefix, defaultWin, defaultLoss)
}

// Win returns the win clip names.
func (l Library) Win() []string { return append([]string(nil), l.win...) }

// Loss returns the loss clip names.
func (l Library) Loss() []string { return append([]string(nil), l.loss...) }

// Clip picks a random clip from the win or loss set and returns its URL.
func (l Library) Clip(won bool) (string, error) {
	set := l.loss
	if won {
		set = l.win
	}
	if len(set) == 0 {
		return "", ErrNoClips
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return "", err
	}
	return l.URL(set[n.Int64()]), nil
}

// URL returns the path a clip is served from. Names may contain spaces.
func (l Library) URL(name string) string {
	return l.prefix + url.PathEscape(name)
}
