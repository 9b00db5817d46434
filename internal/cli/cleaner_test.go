package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/stubgen/internal/templates"
)

func TestCleaner_CleanGeneratedFiles(t *testing.T) {
	generated := "package a.jaxws;\n\n" + templates.Banner + "\npublic class Add {\n\n\n}\n"

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"jaxws/Add.java":         generated,
		"jaxws/AddResponse.java": generated,
		"jaxws/Handwritten.java": "public class Handwritten {}\n",
		"jaxws/notes.txt":        templates.Banner,
		"jaxws/nested/Deep.java": generated,
		"other/FailureBean.java": generated,
	})

	cleaner := NewCleaner()

	removed, err := cleaner.CleanGeneratedFiles([]string{filepath.Join(root, "jaxws")})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "jaxws", "Add.java"),
		filepath.Join(root, "jaxws", "AddResponse.java"),
	}, removed)

	assert.FileExists(t, filepath.Join(root, "jaxws", "Handwritten.java"))
	assert.FileExists(t, filepath.Join(root, "jaxws", "notes.txt"))
	assert.FileExists(t, filepath.Join(root, "jaxws", "nested", "Deep.java"))

	removed, err = cleaner.CleanGeneratedFiles([]string{root + "/..."})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "jaxws", "nested", "Deep.java"),
		filepath.Join(root, "other", "FailureBean.java"),
	}, removed)
	assert.FileExists(t, filepath.Join(root, "jaxws", "Handwritten.java"))

	removed, err = cleaner.CleanGeneratedFiles([]string{root + "/..."})
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestCleaner_MissingDirectory(t *testing.T) {
	_, err := NewCleaner().CleanGeneratedFiles([]string{filepath.Join(t.TempDir(), "gone")})
	assert.Error(t, err)
}
