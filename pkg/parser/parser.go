// Package parser turns OCR/PDF-derived plain text into validated
// multiple-choice question records. The pipeline is a pure fold: the text is
// split into pages and lines, each line is classified, and the assembler
// state machine accumulates classified lines into records. Nothing in here
// performs I/O; malformed input degrades to fewer records, never to an error.
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/edtechlabs/qbank/models"
)

// Parser drives extraction for one subject profile. Per-run state lives in
// the Assembler created inside Parse, so one Parser may be reused for any
// number of banks, including concurrently.
type Parser struct {
	profile    *models.SubjectProfile
	pageMarker *regexp.Regexp
}

// Result is the outcome of one extraction run.
type Result struct {
	Questions   []models.Question
	Diagnostics []models.Diagnostic
	Pages       int
}

// New builds a Parser for a subject profile.
func New(profile *models.SubjectProfile) (*Parser, error) {
	p := &Parser{profile: profile}
	if profile.PageMarker != "" {
		re, err := regexp.Compile(profile.PageMarker)
		if err != nil {
			return nil, fmt.Errorf("invalid page marker pattern: %w", err)
		}
		p.pageMarker = re
	}
	return p, nil
}

// Parse extracts every question it can from content. It never fails on
// malformed input; incomplete questions surface as diagnostics instead.
func (p *Parser) Parse(content string) *Result {
	pages := p.splitPages(content)
	asm := NewAssembler(p.profile)

	for pageIdx, page := range pages {
		pageNum := pageIdx + 1
		for _, line := range strings.Split(page, "\n") {
			tag := Classify(line, asm.Context())
			asm.Feed(tag, pageNum)
		}
		// Questions never span a page boundary.
		asm.Flush()
	}

	return &Result{
		Questions:   asm.Questions(),
		Diagnostics: asm.Diagnostics(),
		Pages:       len(pages),
	}
}

// splitPages pre-splits the text on the profile's page marker. The chunk
// before the first marker is front matter, not a page.
func (p *Parser) splitPages(content string) []string {
	if p.pageMarker == nil || !p.pageMarker.MatchString(content) {
		return []string{content}
	}
	return p.pageMarker.Split(content, -1)[1:]
}
