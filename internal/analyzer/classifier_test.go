package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/promptmap/internal/core/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		prompt string
		want   domain.PromptType
	}{
		{"How to bake bread", domain.PromptTypeHowTo},
		{"Steps to change a tire", domain.PromptTypeHowTo},
		{"What is photosynthesis?", domain.PromptTypeDefinition},
		{"Define entropy", domain.PromptTypeDefinition},
		{"Explain the water cycle", domain.PromptTypeConcept},
		{"F = m * a", domain.PromptTypeFormula},
		{"Formula for kinetic energy", domain.PromptTypeFormula},
		{"2 + 2", domain.PromptTypeFormula},
		{"12 * 7", domain.PromptTypeFormula},
		{"what does 3 + 4 * 2 give", domain.PromptTypeFormula},
		{"Python vs JavaScript", domain.PromptTypeComparison},
		{"Compare cats and dogs", domain.PromptTypeComparison},
		{"Troubleshoot a slow laptop", domain.PromptTypeProblemSolution},
		{"Types of clouds", domain.PromptTypeList},
		{"Effects of climate change", domain.PromptTypeCauseEffect},
		{"Why does ice float", domain.PromptTypeCauseEffect},
	}
	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.prompt))
		})
	}
}

func TestClassify_FirstRowWins(t *testing.T) {
	// Matches both a how-to pattern and a problem/solution pattern.
	assert.Equal(t, domain.PromptTypeHowTo, Classify("how to fix a leak"))
}

func TestClassify_DomainFallback(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   domain.PromptType
	}{
		{"math votes formula", "algebra geometry calculus", domain.PromptTypeFormula},
		{"technology with how", "software network how", domain.PromptTypeHowTo},
		{"technology without how", "software network", domain.PromptTypeConcept},
		{"health with cure", "disease cure", domain.PromptTypeProblemSolution},
		{"health without treatment words", "patient hospital", domain.PromptTypeConcept},
		{"nothing matches", "photosynthesis", domain.PromptTypeConcept},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.prompt))
		})
	}
}

func TestClassify_AlwaysValid(t *testing.T) {
	prompts := []string{"", "?", "a", "12345", "the the the", "!!! ???"}
	for _, p := range prompts {
		assert.True(t, Classify(p).IsValid(), p)
	}
}

func TestIdentifyDomain(t *testing.T) {
	tests := []struct {
		text string
		want domain.Domain
	}{
		{"software algorithm data", domain.DomainTechnology},
		{"patient diagnosis treatment", domain.DomainHealth},
		{"music painting", domain.DomainArts},
		{"bread", domain.DomainGeneral},
		// knowledge counts for education and philosophy; education is declared first.
		{"knowledge", domain.DomainEducation},
		{"", domain.DomainGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, IdentifyDomain(tt.text))
		})
	}
}
