// Package words loads the list of candidate target words and picks from it.
//
// A source is one of:
//   - "" or "embedded" (the embedded default list)
//   - an http:// or https:// URL
//   - a local file path
//
// Every source is newline-delimited text, one word or phrase per line.
// Lines are trimmed and lowercased; blank lines are dropped.
package words

import (
	"bufio"
	"context"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"os"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrSourceUnavailable means the word list resource could not be read.
	ErrSourceUnavailable = errors.New("words: source unavailable")
	// ErrEmptySource means the resource was read but held no usable entries.
	ErrEmptySource = errors.New("words: source is empty")
)

// Embedded names the built-in default list.
const Embedded = "embedded"

//go:embed default_words.txt
var embeddedWords string

// List is a loaded word list.
type List []string

// Load reads the word list named by source.
func Load(ctx context.Context, source string) (List, error) {
	switch {
	case source == "", source == Embedded:
		return Parse(strings.NewReader(embeddedWords))
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return fetch(ctx, http.DefaultClient, source)
	default:
		return readFile(source)
	}
}

func readFile(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()
	return Parse(f)
}

func fetch(ctx context.Context, client *http.Client, url string) (List, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrSourceUnavailable, url, resp.Status)
	}
	return Parse(resp.Body)
}

// Parse reads newline-delimited words from r.
func Parse(r io.Reader) (List, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	lower := cases.Lower(language.Und)
	list := lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		w := lower.String(strings.TrimSpace(line))
		return w, w != ""
	})
	if len(list) == 0 {
		return nil, ErrEmptySource
	}
	return List(list), nil
}

// Pick returns a uniformly random entry.
func (l List) Pick() (string, error) {
	if len(l) == 0 {
		return "", ErrEmptySource
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l))))
	if err != nil {
		return "", fmt.Errorf("words: random index: %w", err)
	}
	return strings.TrimSpace(l[n.Int64()]), nil
}

// Len returns the number of entries.
func (l List) Len() int {
	return len(l)
}
