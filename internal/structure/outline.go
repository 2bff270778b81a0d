package structure

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
	"github.com/custodia-labs/promptmap/internal/logger"
)

const (
	outlineRelation    = "related to"
	detailRelation     = "includes"
	maxOutlineDetails  = 3
	maxBareSubtopics   = 6
	maxKeyPhrases      = 5
	maxPromptSubtopics = 5
	detailTitleLength  = 40

	// emphasisCutset is stripped from both ends of descriptions, which
	// often carry the closing half of "**Title:**".
	emphasisCutset = "*_ \t\r"
)

var (
	mainTopicPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)main topic:?[ \t]*([^\n]+)`),
		regexp.MustCompile(`(?i)topic:?[ \t]*([^\n]+)`),
		regexp.MustCompile(`(?m)^#\s*([^\n]+)`),
	}
	descriptionRe    = regexp.MustCompile(`(?i)(?:description|overview):?[ \t]*([^\n]+)`)
	descriptionEndRe = regexp.MustCompile(`(?i)^(?:main|topic|subtopic|overview|\d+\.|\*|-)`)

	numberedSubtopicRe = regexp.MustCompile(`(?m)^[ \t]*(?:\d+\.|\(\d+\))[ \t]*([^\n:]+)(?::[ \t]*([^\n]*))?`)
	bulletSubtopicRe   = regexp.MustCompile(`(?m)^[*-][ \t]*([^\n:]+)(?::[ \t]*([^\n]*))?`)
	indentedBulletRe   = regexp.MustCompile(`(?m)^[ \t]+[*-][ \t]*([^\n:]+)(?::[ \t]*([^\n]*))?`)
	anyBulletRe        = regexp.MustCompile(`(?m)^[ \t]*[*-][ \t]*([^\n:]+)(?::[ \t]*([^\n]*))?`)
	sentenceBreakRe    = regexp.MustCompile(`[.!?]+`)

	markupReplacer = strings.NewReplacer("*", "", "#", "", "_", "", "`", "")
)

// Outline asks the collaborator for a MAIN TOPIC / DESCRIPTION / SUBTOPICS
// outline of prompt and parses it.
func (g *Generator) Outline(ctx context.Context, prompt string) (domain.ParsedOutline, error) {
	reply, _, err := g.generate(ctx, driven.PromptStructure, prompt, prompt)
	if err != nil {
		return domain.ParsedOutline{}, err
	}
	return ParseOutline(reply, prompt)
}

// ParseOutline parses a collaborator outline. Only a blank reply is an
// error; anything else yields at least the subtopics BuildOutline can
// recover.
func ParseOutline(content, prompt string) (domain.ParsedOutline, error) {
	if strings.TrimSpace(content) == "" {
		return domain.ParsedOutline{}, fmt.Errorf("parse outline: %w", domain.ErrMalformedReply)
	}
	return BuildOutline(content, prompt), nil
}

// BuildOutline extracts an outline from free-form content. Subtopics are
// tried as numbered lines, then top-level bullets, then short bare lines,
// then key phrases of the content's sentences, and finally the prompt's
// longer words.
func BuildOutline(content, prompt string) domain.ParsedOutline {
	out := domain.ParsedOutline{
		MainTopic:   outlineMainTopic(content, prompt),
		Description: outlineDescription(content, prompt),
	}

	strategies := []func() []domain.OutlineSubtopic{
		func() []domain.OutlineSubtopic { return markedSubtopics(content, numberedSubtopicRe, out.MainTopic) },
		func() []domain.OutlineSubtopic { return markedSubtopics(content, bulletSubtopicRe, out.MainTopic) },
		func() []domain.OutlineSubtopic { return bareSubtopics(content, out.MainTopic) },
		func() []domain.OutlineSubtopic { return keyPhraseSubtopics(content) },
		func() []domain.OutlineSubtopic { return promptSubtopics(prompt, out.MainTopic) },
	}
	for i, strategy := range strategies {
		if out.Subtopics = strategy(); len(out.Subtopics) > 0 {
			logger.Debug("structure: outline parsed by strategy %d, %d subtopics", i+1, len(out.Subtopics))
			break
		}
	}
	return out
}

func cleanTitle(s string) string {
	return strings.TrimSpace(markupReplacer.Replace(s))
}

func outlineMainTopic(content, prompt string) string {
	for _, re := range mainTopicPatterns {
		if m := re.FindStringSubmatch(content); m != nil {
			if t := cleanTitle(m[1]); t != "" {
				return t
			}
		}
	}
	return prompt
}

// outlineDescription returns the description line plus any continuation
// lines up to a blank line or the next heading or list item.
func outlineDescription(content, prompt string) string {
	loc := descriptionRe.FindStringSubmatchIndex(content)
	if loc == nil {
		return "Mind map for: " + prompt
	}
	desc := strings.Trim(content[loc[2]:loc[3]], emphasisCutset)
	rest := strings.Split(content[loc[1]:], "\n")
	for _, line := range rest[1:] {
		line = strings.TrimSpace(line)
		if line == "" || descriptionEndRe.MatchString(line) {
			break
		}
		desc += " " + line
	}
	return desc
}

// markedSubtopics reads subtopics from lines matched by re. The details
// of each are searched only between its line and the next match.
func markedSubtopics(content string, re *regexp.Regexp, mainTopic string) []domain.OutlineSubtopic {
	matches := re.FindAllStringSubmatchIndex(content, -1)
	var out []domain.OutlineSubtopic
	for i, m := range matches {
		title := cleanTitle(content[m[2]:m[3]])
		if len(title) < 3 || strings.Contains(strings.ToLower(title), "subtopic") {
			continue
		}
		desc := "Related to " + mainTopic
		if m[4] >= 0 {
			if d := strings.Trim(content[m[4]:m[5]], emphasisCutset); d != "" {
				desc = d
			}
		}
		end := len(content)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		out = append(out, domain.OutlineSubtopic{
			Title:       title,
			Description: desc,
			Relation:    outlineRelation,
			Details:     outlineDetails(content[m[1]:end], title),
		})
	}
	return out
}

func bareSubtopics(content, mainTopic string) []domain.OutlineSubtopic {
	skip := []string{"topic:", "description:", "subtopic", "detail"}
	var out []domain.OutlineSubtopic
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 5 || len(line) >= 50 || strings.HasPrefix(line, "#") ||
			containsAny(strings.ToLower(line), skip) {
			continue
		}
		out = append(out, domain.OutlineSubtopic{
			Title:       cleanTitle(line),
			Description: "Aspect of " + mainTopic,
			Relation:    outlineRelation,
		})
		if len(out) == maxBareSubtopics {
			break
		}
	}
	return out
}

// keyPhraseSubtopics takes the middle three to five words of each
// sentence. Every phrase gets a "Key aspect" detail and phrases at even
// positions also get an "Application" detail.
func keyPhraseSubtopics(content string) []domain.OutlineSubtopic {
	skip := []string{"topic", "subtopic", "detail"}
	var out []domain.OutlineSubtopic
	for _, s := range sentenceBreakRe.Split(content, -1) {
		s = strings.TrimSpace(s)
		if len(s) < 15 || containsAny(strings.ToLower(s), skip) {
			continue
		}
		words := strings.Fields(s)
		if len(words) < 3 {
			continue
		}
		n := min(5, max(3, len(words)/2))
		start := (len(words) - n) / 2
		title := strings.Join(words[start:start+n], " ")

		details := []domain.OutlineDetail{{
			Title:       "Key aspect of " + title,
			Description: "Important characteristic related to " + title,
			Relation:    detailRelation,
		}}
		if len(out)%2 == 0 {
			details = append(details, domain.OutlineDetail{
				Title:       "Application of " + title,
				Description: "How " + title + " is applied or used",
				Relation:    "used for",
			})
		}
		out = append(out, domain.OutlineSubtopic{
			Title:       title,
			Description: s,
			Relation:    outlineRelation,
			Details:     details,
		})
		if len(out) == maxKeyPhrases {
			break
		}
	}
	return out
}

func promptSubtopics(prompt, mainTopic string) []domain.OutlineSubtopic {
	var words []string
	for _, w := range strings.Fields(prompt) {
		if len(w) > 4 {
			words = append(words, w)
		}
	}
	var out []domain.OutlineSubtopic
	for _, w := range unique(words, maxPromptSubtopics) {
		out = append(out, domain.OutlineSubtopic{
			Title:       w,
			Description: "Aspect of " + mainTopic,
			Relation:    outlineRelation,
		})
	}
	return out
}

// outlineDetails reads up to three details from section: indented
// bullets, then any bullets, then its first sentences, then generic
// details.
func outlineDetails(section, subtopic string) []domain.OutlineDetail {
	for _, re := range []*regexp.Regexp{indentedBulletRe, anyBulletRe} {
		if details := bulletDetails(section, re, subtopic); len(details) > 0 {
			return details
		}
	}

	var details []domain.OutlineDetail
	for i, s := range sentenceBreakRe.Split(section, -1) {
		if i == 2 {
			break
		}
		s = strings.TrimSpace(s)
		if len(s) < 10 || strings.Contains(strings.ToLower(s), "subtopic") {
			continue
		}
		title := s
		if r := []rune(s); len(r) > detailTitleLength {
			title = string(r[:detailTitleLength]) + "..."
		}
		details = append(details, domain.OutlineDetail{Title: title, Description: s, Relation: detailRelation})
	}
	if len(details) > 0 {
		return details
	}
	return genericDetails(subtopic)
}

func bulletDetails(section string, re *regexp.Regexp, subtopic string) []domain.OutlineDetail {
	var out []domain.OutlineDetail
	for _, m := range re.FindAllStringSubmatch(section, -1) {
		title := cleanTitle(m[1])
		if len(title) < 2 {
			continue
		}
		desc := strings.Trim(m[2], emphasisCutset)
		if desc == "" {
			desc = "Detail of " + subtopic
		}
		out = append(out, domain.OutlineDetail{Title: title, Description: desc, Relation: detailRelation})
		if len(out) == maxOutlineDetails {
			break
		}
	}
	return out
}

func genericDetails(subtopic string) []domain.OutlineDetail {
	return []domain.OutlineDetail{
		{
			Title: "Key aspect of " + subtopic,
			Description: fmt.Sprintf("This represents an important characteristic or feature related to %s. "+
				"Understanding this aspect provides deeper insight into how %s functions "+
				"and its significance in the broader context.", subtopic, subtopic),
			Relation: detailRelation,
		},
		{
			Title: "Application of " + subtopic,
			Description: fmt.Sprintf("This shows how %s is applied or used in practical scenarios. "+
				"Real-world applications demonstrate the value and utility of %s "+
				"in solving problems or addressing needs.", subtopic, subtopic),
			Relation: "used for",
		},
	}
}

// OutlineAnalysis converts an outline into an Analysis tree. Outline
// subtopics become topics and their details become detail-styled
// subtopics.
func OutlineAnalysis(o domain.ParsedOutline) *domain.Analysis {
	a := &domain.Analysis{
		MainConcept: o.MainTopic,
		Description: o.Description,
		Origin:      domain.OriginStructured,
		PromptType:  domain.PromptTypeConcept,
	}
	for _, s := range o.Subtopics {
		t := domain.Topic{Name: s.Title, Relation: s.Relation, Details: s.Description}
		for _, d := range s.Details {
			t.Subtopics = append(t.Subtopics, domain.Subtopic{
				Name:     d.Title,
				Relation: d.Relation,
				Details:  d.Description,
				Kind:     domain.NodeKindDetail,
			})
		}
		a.Topics = append(a.Topics, t)
	}
	return a
}
