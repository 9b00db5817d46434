package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/toyz/stubgen/internal/parser"
)

// Each archive holds an input description plus the exact expected units.
// The archive comment lists the expected write order, one file per line.
func TestGoldenArchives(t *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, archives)

	for _, path := range archives {
		t.Run(filepath.Base(path), func(t *testing.T) {
			archive, err := txtar.ParseFile(path)
			require.NoError(t, err)

			var input *txtar.File
			expected := make(map[string]string)
			for i := range archive.Files {
				f := &archive.Files[i]
				if parser.IsDescriptionFile(f.Name) {
					input = f
					continue
				}
				expected[f.Name] = string(f.Data)
			}
			require.NotNil(t, input, "archive has no input description")

			iface, err := parser.NewParser().ParseSource(input.Name, input.Data)
			require.NoError(t, err)

			dest := t.TempDir()
			files, err := Generate(iface, dest)
			require.NoError(t, err)

			assert.Equal(t, writeOrder(archive.Comment), fileNames(files))

			for name, want := range expected {
				got, err := os.ReadFile(filepath.Join(dest, name))
				require.NoError(t, err, "missing %s", name)
				assert.Equal(t, want, string(got), "content of %s", name)
			}

			entries, err := os.ReadDir(dest)
			require.NoError(t, err)
			assert.Len(t, entries, len(expected), "unexpected extra files")
		})
	}
}

func writeOrder(comment []byte) []string {
	var order []string
	for _, line := range strings.Split(string(comment), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasSuffix(line, ".java") {
			order = append(order, line)
		}
	}
	return order
}
