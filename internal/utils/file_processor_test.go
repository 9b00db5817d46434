package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/stubgen/internal/errors"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
}

func TestCollectFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"calc.svc",
		"notes.txt",
		"api/fleet.YAML",
		"api/v2/orders.yml",
		"api/testdata/ignored.svc",
		".hidden/secret.svc",
	)
	filter := ExtensionFilter(".svc", ".yaml", ".yml")
	fp := NewFileProcessor()

	t.Run("single directory", func(t *testing.T) {
		files, err := fp.CollectFiles([]string{root}, filter)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "calc.svc")}, files)
	})

	t.Run("recursive", func(t *testing.T) {
		files, err := fp.CollectFiles([]string{root + RecursiveSuffix}, filter)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "api", "fleet.YAML"),
			filepath.Join(root, "api", "v2", "orders.yml"),
			filepath.Join(root, "calc.svc"),
		}, files)
	})

	t.Run("explicit file bypasses filter and duplicates collapse", func(t *testing.T) {
		notes := filepath.Join(root, "notes.txt")
		files, err := fp.CollectFiles([]string{notes, root, notes}, filter)
		require.NoError(t, err)
		assert.Equal(t, []string{notes, filepath.Join(root, "calc.svc")}, files)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := fp.CollectFiles([]string{filepath.Join(root, "nope")}, filter)
		require.Error(t, err)
		assert.Equal(t, errors.FileSystemErrorCode, errors.CodeOf(err))
	})

	t.Run("recursive file", func(t *testing.T) {
		_, err := fp.CollectFiles([]string{filepath.Join(root, "calc.svc") + RecursiveSuffix}, filter)
		require.Error(t, err)
		assert.Equal(t, errors.ConfigurationErrorCode, errors.CodeOf(err))
	})
}

func TestResolveTarget(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "api/calc.svc")
	chdir(t, root)

	target, err := ResolveTarget("api/...")
	require.NoError(t, err)
	assert.Equal(t, Target{Path: filepath.Join(root, "api"), Recursive: true, IsDir: true}, target)

	target, err = ResolveTarget("api/calc.svc")
	require.NoError(t, err)
	assert.Equal(t, Target{Path: filepath.Join(root, "api", "calc.svc")}, target)

	for _, arg := range []string{"./...", "..."} {
		target, err = ResolveTarget(arg)
		require.NoError(t, err)
		assert.Equal(t, Target{Path: root, Recursive: true, IsDir: true}, target, arg)
	}

	_, err = ResolveTarget("api/../../etc")
	assert.Equal(t, errors.FileSystemErrorCode, errors.CodeOf(err))
}

func TestWalkFilesWithoutFilter(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "b.java", "a.java", "sub/c.java")

	files, err := NewFileProcessor().WalkFiles(root, FileWalkOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.java"), filepath.Join(root, "b.java")}, files)
}

func TestFileCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.svc")
	require.NoError(t, os.WriteFile(path, []byte("package a;"), 0644))

	cache := NewFileCache[string]()

	_, ok := cache.Get(path)
	assert.False(t, ok)

	require.NoError(t, cache.Set(path, "parsed"))
	value, ok := cache.Get(path)
	assert.True(t, ok)
	assert.Equal(t, "parsed", value)
	assert.Equal(t, []string{path}, cache.Keys())

	// a different size invalidates even within the same mtime granularity
	require.NoError(t, os.WriteFile(path, []byte("package a.b;"), 0644))
	future := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, future, future))

	_, ok = cache.Get(path)
	assert.False(t, ok)
	assert.Empty(t, cache.Keys(), "stale entries are dropped")

	stats := cache.GetStats()
	assert.Equal(t, CacheStats{Size: 0, Hits: 1, Misses: 2}, stats)

	assert.Error(t, cache.Set(filepath.Join(t.TempDir(), "missing.svc"), "x"))

	cache.Clear()
	assert.Equal(t, CacheStats{}, cache.GetStats())
}
