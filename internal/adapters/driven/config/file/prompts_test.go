package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
	"github.com/custodia-labs/promptmap/internal/structure"
)

func TestPromptStore_ImplementsInterface(t *testing.T) {
	var _ driven.PromptStore = (*PromptStore)(nil)
}

func TestNewPromptStore_DoesNoIO(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prompts")

	store, err := NewPromptStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestPromptStore_Load_CreatesDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	_, err = store.Load(driven.PromptStructure)
	require.NoError(t, err)

	for _, name := range driven.AllPromptNames() {
		_, err := os.Stat(filepath.Join(dir, name+".txt"))
		assert.NoError(t, err, "expected %s.txt", name)
	}
	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "pros_cons.txt")
}

func TestPromptStore_Load_DefaultContent(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range driven.AllPromptNames() {
		t.Run(name, func(t *testing.T) {
			prompt, err := store.Load(name)
			require.NoError(t, err)
			assert.Contains(t, prompt, "%s")
			assert.Contains(t, structure.DefaultPrompt(name), prompt)
		})
	}
}

func TestPromptStore_Load_CustomContent(t *testing.T) {
	dir := t.TempDir()
	custom := "Define %s in one sentence."
	require.NoError(t, os.WriteFile(filepath.Join(dir, "definition.txt"), []byte(custom+"\n"), 0600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptDefinition)
	require.NoError(t, err)
	assert.Equal(t, custom, prompt)

	data, err := os.ReadFile(filepath.Join(dir, "definition.txt"))
	require.NoError(t, err)
	assert.Equal(t, custom+"\n", string(data), "existing files are not overwritten")
}

func TestPromptStore_Load_MissingPlaceholderUsesDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "core.txt"), []byte("no placeholder here"), 0600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptCore)
	require.NoError(t, err)
	assert.Equal(t, structure.DefaultPrompt(driven.PromptCore), prompt)
}

func TestPromptStore_Load_UnknownName(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("does_not_exist")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPromptStore_Load_InitFailureUsesDefaults(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	store, err := NewPromptStore(filepath.Join(blocker, "prompts"))
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptExamples)
	require.NoError(t, err)
	assert.Equal(t, structure.DefaultPrompt(driven.PromptExamples), prompt)

	_, err = store.Load("unknown")
	assert.Error(t, err)
}

func TestPromptStore_Reload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	_, err = store.Load(driven.PromptExamples)
	require.NoError(t, err)

	updated := "List examples of %s."
	require.NoError(t, os.WriteFile(filepath.Join(dir, "examples.txt"), []byte(updated), 0600))

	cached, err := store.Load(driven.PromptExamples)
	require.NoError(t, err)
	assert.NotEqual(t, updated, cached)

	store.Reload()
	fresh, err := store.Load(driven.PromptExamples)
	require.NoError(t, err)
	assert.Equal(t, updated, fresh)
}

func TestPromptStore_ConcurrentLoad(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			names := driven.AllPromptNames()
			_, err := store.Load(names[n%len(names)])
			assert.NoError(t, err)
			if n%5 == 0 {
				store.Reload()
			}
		}(i)
	}
	wg.Wait()
}
