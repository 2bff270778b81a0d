package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
	"github.com/custodia-labs/promptmap/internal/logger"
	"github.com/custodia-labs/promptmap/internal/structure"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// promptExt is the file extension of template files.
const promptExt = ".txt"

// PromptStore loads collaborator templates from user-editable files on disk,
// falling back to the built-in templates.
//
// The store uses lazy initialisation: the directory and default files are
// only created on the first Load, not in the constructor.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	defaults  map[string]string
	initOnce  sync.Once
	initErr   error
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.promptmap/prompts/.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		promptDir = filepath.Join(dir, "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
		defaults:  structure.DefaultPrompts(),
	}, nil
}

// Load returns the template for name. User files win over built-ins; a
// file that lost its %s placeholder is ignored with a warning.
func (s *PromptStore) Load(name string) (string, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		if prompt, ok := s.defaults[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	prompt, err := s.loadFromFile(name)
	if err != nil {
		if def, ok := s.defaults[name]; ok {
			return def, nil
		}
		return "", fmt.Errorf("load prompt %q: %w: %w", name, domain.ErrNotFound, err)
	}

	s.mu.Lock()
	if cached, ok := s.cache[name]; ok {
		prompt = cached
	} else {
		s.cache[name] = prompt
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
	logger.Debug("prompts: cache cleared")
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the prompt directory, default files and README.
func (s *PromptStore) initialise() {
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	for name, content := range s.defaults {
		path := filepath.Join(s.promptDir, name+promptExt)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

func (s *PromptStore) loadFromFile(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.promptDir, name+promptExt))
	if err != nil {
		return "", err
	}
	prompt := strings.TrimSpace(string(data))
	if !strings.Contains(prompt, "%s") {
		logger.Warn("prompts: %s%s has no %%s placeholder, using built-in", name, promptExt)
		return "", fmt.Errorf("prompt %q: missing placeholder", name)
	}
	return prompt, nil
}

func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}

	var files strings.Builder
	for _, name := range driven.AllPromptNames() {
		fmt.Fprintf(&files, "- `%s%s`\n", name, promptExt)
	}

	content := `# promptmap prompts

This directory holds the templates sent to the text-generation collaborator.

## Files

` + files.String() + `
` + "`structure.txt`" + ` asks for the MAIN TOPIC / DESCRIPTION / SUBTOPICS outline used
by structured mode. The others fill the sections of a concept map in
assisted mode.

## Customisation

Edit any file to change what the collaborator is asked. Changes apply to the
next command, and immediately while ` + "`promptmap serve`" + ` is running.

## Placeholder

Every template must keep exactly one ` + "`%s`" + `: the prompt text for
structure.txt and the main concept for the others. A file without it is
ignored and the built-in template is used.
`
	return os.WriteFile(path, []byte(content), 0600)
}
