// Package loader acquires question bank text. Banks are usually plain text
// dumped from OCR/PDF tooling, but exports saved as HTML pages are accepted
// too and distilled down to their text content before extraction.
package loader

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"
)

// Bank is a loaded question bank ready for parsing.
type Bank struct {
	Source   string // originating file path
	Text     string
	Language string // best-effort detection, "" when undetermined
}

// Load reads a bank file. HTML files are reduced to plain text; everything
// else is passed through as-is. The detected language is advisory only - it
// helps catch feeding the wrong bank to a subject profile.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bank file: %w", err)
	}

	text := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = htmlToText(path, text)
		if err != nil {
			return nil, err
		}
	}

	return &Bank{
		Source:   path,
		Text:     text,
		Language: detectLanguage(text),
	}, nil
}

// htmlToText distills an HTML export to its readable text. Readability finds
// the main content when the export has page chrome around it; when it comes
// up empty the whole body text is used instead.
func htmlToText(path, html string) (string, error) {
	pageURL := &url.URL{Scheme: "file", Path: path}

	article, err := readability.FromReader(strings.NewReader(html), pageURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return article.TextContent, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML bank: %w", err)
	}
	return doc.Find("body").Text(), nil
}

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// detectLanguage runs a cheap language check over the head of the bank text.
// The detector build is deferred and shared; it is the expensive part.
func detectLanguage(text string) string {
	const sampleSize = 4096
	if len(text) > sampleSize {
		text = text[:sampleSize]
	}
	if strings.TrimSpace(text) == "" {
		return ""
	}

	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.French,
				lingua.Spanish,
				lingua.Portuguese,
				lingua.German,
			).
			Build()
	})

	language, ok := detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return language.String()
}
