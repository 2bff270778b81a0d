package structure

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/promptmap/internal/core/domain"
)

var (
	// lineMarkerRe matches list numbering and bullets at the start of a line.
	lineMarkerRe = regexp.MustCompile(`^\s*(?:\d+[.)]\s*|[-*•]\s+)`)

	limitationHeaderRe = regexp.MustCompile(`(?i)\b(?:cons|limitations?|drawbacks?|disadvantages?|weaknesses?)\b`)
	advantageHeaderRe  = regexp.MustCompile(`(?i)\b(?:pros|advantages?|benefits?|strengths?)\b`)
)

// replyLines splits content into trimmed, non-empty lines.
func replyLines(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// cleanLine strips list markers and markdown emphasis.
func cleanLine(line string) string {
	line = lineMarkerRe.ReplaceAllString(line, "")
	line = strings.ReplaceAll(line, "**", "")
	line = strings.ReplaceAll(line, "__", "")
	return strings.TrimSpace(line)
}

// isIntroLine reports whether line only introduces the list that follows,
// as in "Here are three components:".
func isIntroLine(line string) bool {
	return !lineMarkerRe.MatchString(line) && strings.HasSuffix(line, ":")
}

// ParseSections parses "Name: Description" lines. Lines without a colon
// become sections with an empty description.
func ParseSections(content string) (domain.ParsedSections, error) {
	var out domain.ParsedSections
	for _, line := range replyLines(content) {
		if isIntroLine(line) {
			continue
		}
		parts := strings.SplitN(cleanLine(line), ":", 2)
		name := strings.TrimSpace(parts[0])
		if name == "" {
			continue
		}
		section := domain.ParsedSection{Name: name}
		if len(parts) == 2 {
			section.Description = strings.TrimSpace(parts[1])
		}
		out.Items = append(out.Items, section)
	}
	if len(out.Items) == 0 {
		return out, fmt.Errorf("parse sections: %w", domain.ErrMalformedReply)
	}
	return out, nil
}

// ParseList parses a plain list, one item per line.
func ParseList(content string) (domain.ParsedList, error) {
	var out domain.ParsedList
	for _, line := range replyLines(content) {
		if isIntroLine(line) {
			continue
		}
		if item := cleanLine(line); item != "" {
			out.Items = append(out.Items, item)
		}
	}
	if len(out.Items) == 0 {
		return out, fmt.Errorf("parse list: %w", domain.ErrMalformedReply)
	}
	return out, nil
}

// ParseProsCons splits a reply into advantages and limitations. Unmarked
// lines that name a side switch the current section; list lines are added
// to it. Lines before the first header are dropped.
func ParseProsCons(content string) (domain.ParsedProsCons, error) {
	var out domain.ParsedProsCons
	var current *[]string
	for _, line := range replyLines(content) {
		if !lineMarkerRe.MatchString(line) {
			// "Disadvantages" also contains "advantages".
			if limitationHeaderRe.MatchString(line) {
				current = &out.Limitations
				continue
			}
			if advantageHeaderRe.MatchString(line) {
				current = &out.Advantages
				continue
			}
		}
		if current == nil {
			continue
		}
		if item := cleanLine(line); item != "" {
			*current = append(*current, item)
		}
	}
	if len(out.Advantages) == 0 && len(out.Limitations) == 0 {
		return out, fmt.Errorf("parse pros and cons: %w", domain.ErrMalformedReply)
	}
	return out, nil
}
