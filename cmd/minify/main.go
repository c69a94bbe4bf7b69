// Command minify writes minified copies of the templates and static assets.
//
//	go run ./cmd/minify -all                      # templates/ and static/ into dist/
//	go run ./cmd/minify -input=a.css -output=b.css -type=css
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

var mediaTypes = map[string]string{
	"css":  "text/css",
	"js":   "application/javascript",
	"html": "text/html",
}

func main() {
	var (
		all        = flag.Bool("all", false, "Minify templates/ and static/ into -dist")
		distDir    = flag.String("dist", "dist", "Output directory for -all")
		inputFile  = flag.String("input", "", "Input file path")
		outputFile = flag.String("output", "", "Output file path")
		fileType   = flag.String("type", "", "File type (CSS, JS, or HTML)")
	)
	flag.Parse()

	m := newMinifier()

	if *all {
		for _, dir := range []string{"templates", "static"} {
			stats, err := minifyTree(m, dir, filepath.Join(*distDir, dir))
			if err != nil {
				log.Fatal().Err(err).Str("dir", dir).Msg("Minification failed")
			}
			for _, s := range stats {
				fmt.Println(s)
			}
		}
		fmt.Printf("Minified files are in the %q directory\n", *distDir)
		return
	}

	if *inputFile == "" || *outputFile == "" || *fileType == "" {
		log.Fatal().Msg("Usage: go run ./cmd/minify -all | -input=<file> -output=<file> -type=<css|js|html>")
	}
	mediaType, ok := mediaTypes[strings.ToLower(*fileType)]
	if !ok {
		log.Fatal().Str("type", *fileType).Msg("Unsupported file type (supported: css, js, html)")
	}
	stat, err := minifyFile(m, *inputFile, *outputFile, mediaType)
	if err != nil {
		log.Fatal().Err(err).Str("input", *inputFile).Msg("Minification failed")
	}
	fmt.Println(stat)
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("application/javascript", js.Minify)
	return m
}

// minifyTree minifies every css, js and html file under src into dst and
// copies everything else unchanged.
func minifyTree(m *minify.M, src, dst string) ([]string, error) {
	var stats []string
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		out := filepath.Join(dst, rel)

		mediaType, ok := mediaTypes[strings.TrimPrefix(filepath.Ext(path), ".")]
		if !ok {
			return copyFile(path, out)
		}
		stat, err := minifyFile(m, path, out, mediaType)
		if err != nil {
			return err
		}
		stats = append(stats, stat)
		return nil
	})
	return stats, err
}

// minifyFile writes the minified form of srcPath to dstPath and returns a
// one-line size report.
func minifyFile(m *minify.M, srcPath, dstPath, mediaType string) (string, error) {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return "", err
	}

	minified, err := m.Bytes(mediaType, src)
	if err != nil {
		return "", fmt.Errorf("minify %s: %w", srcPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(dstPath, minified, 0644); err != nil {
		return "", err
	}

	ratio := 0.0
	if len(src) > 0 {
		ratio = float64(len(src)-len(minified)) / float64(len(src)) * 100
	}
	return fmt.Sprintf("%s: %d bytes -> %d bytes (%.1f%% reduction)", srcPath, len(src), len(minified), ratio), nil
}

func copyFile(srcPath, dstPath string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(dstPath, data, 0644)
}
