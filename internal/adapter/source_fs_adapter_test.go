package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "devkit.dev/pkg/devkit/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.js"), "console.log(1)\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.js"), "eval(x)\n")

		var visited []string
		err := adapter.Walk(context.Background(), m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.js")} {
			assert.False(t, containsPath(visited, forbidden), "unexpectedly visited %s", forbidden)
		}

		assert.True(t, containsPath(visited, filepath.Join(root, "main.js")))
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.js")
		writeTestFile(t, child, "eval(x)\n")

		var visited []string
		err := adapter.Walk(context.Background(), m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)
		assert.True(t, containsPath(visited, child))
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "a.js"), "")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := adapter.Walk(ctx, m.Path(root), true, func(string, os.FileInfo, error) error { return nil })
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "app.js"), "eval(x)\n")
	writeTestFile(t, filepath.Join(root, "Model.java"), "class A {}\n")
	writeTestFile(t, filepath.Join(root, "README.md"), "# readme\n")
	mustMkdir(t, filepath.Join(root, "src"))
	writeTestFile(t, filepath.Join(root, "src", "util.ts"), "function a(){}\n")
	writeTestFile(t, filepath.Join(root, "src", "util_gen.ts"), "function b(){}\n")
	mustMkdir(t, filepath.Join(root, "node_modules", "dep"))
	writeTestFile(t, filepath.Join(root, "node_modules", "dep", "index.js"), "eval(y)\n")

	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	t.Run("recursive pattern with extension filter", func(t *testing.T) {
		sources, err := adapter.Get(ctx, []m.Path{m.Path(root + "/...")}, []string{".js", "ts"})
		require.NoError(t, err)

		assert.Equal(t, []string{"app.js", "util.ts", "util_gen.ts"}, baseNames(sources))

		for _, source := range sources {
			require.NotNil(t, source.Origin)
			assert.True(t, filepath.IsAbs(string(source.Origin.FullPath)))
			assert.Len(t, source.Origin.Hash, 64)
			assert.Empty(t, source.Content)
		}
	})

	t.Run("plain directory is not recursive", func(t *testing.T) {
		sources, err := adapter.Get(ctx, []m.Path{m.Path(root)}, []string{".js", ".ts"})
		require.NoError(t, err)
		assert.Equal(t, []string{"app.js"}, baseNames(sources))
	})

	t.Run("single file pattern", func(t *testing.T) {
		sources, err := adapter.Get(ctx, []m.Path{m.Path(filepath.Join(root, "Model.java"))}, []string{".java"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Model.java"}, baseNames(sources))
	})

	t.Run("file with other extension is dropped", func(t *testing.T) {
		sources, err := adapter.Get(ctx, []m.Path{m.Path(filepath.Join(root, "README.md"))}, []string{".js"})
		require.NoError(t, err)
		assert.Empty(t, sources)
	})

	t.Run("no extensions keeps every file", func(t *testing.T) {
		sources, err := adapter.Get(ctx, []m.Path{m.Path(root)}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Model.java", "README.md", "app.js"}, baseNames(sources))
	})

	t.Run("exclude patterns", func(t *testing.T) {
		sources, err := adapter.Get(ctx, []m.Path{m.Path(root + "/...")}, []string{".ts"}, `_gen\.ts$`)
		require.NoError(t, err)
		assert.Equal(t, []string{"util.ts"}, baseNames(sources))
	})

	t.Run("overlapping patterns are deduplicated", func(t *testing.T) {
		sources, err := adapter.Get(ctx, []m.Path{m.Path(root), m.Path(root + "/...")}, []string{".js"})
		require.NoError(t, err)
		assert.Equal(t, []string{"app.js"}, baseNames(sources))
	})

	t.Run("invalid exclude pattern", func(t *testing.T) {
		_, err := adapter.Get(ctx, []m.Path{m.Path(root)}, nil, "(")
		require.Error(t, err)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := adapter.Get(ctx, []m.Path{m.Path(filepath.Join(root, "missing"))}, nil)
		require.Error(t, err)
	})

	t.Run("defaults to current directory recursively", func(t *testing.T) {
		t.Chdir(root)

		sources, err := adapter.Get(ctx, nil, []string{".ts"})
		require.NoError(t, err)
		require.Len(t, sources, 2)
		assert.Equal(t, m.Path("src/util.ts"), sources[0].Origin.ShortPath)
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.js")
	content := "function main() {}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(context.Background(), m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.js")
	content := []byte("function main() {}\n")
	writeTestBytes(t, path, content)

	got, err := adapter.HashFile(context.Background(), m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%x", sha256.Sum256(content)), got)

	_, err = adapter.HashFile(context.Background(), m.Path(filepath.Join(root, "missing.js")))
	require.Error(t, err)
}

func TestLocalSourceFSAdapter_FileInfoAndWriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	root := t.TempDir()
	path := m.Path(filepath.Join(root, "out.ts"))

	require.NoError(t, adapter.WriteFile(ctx, path, []byte("interface A {}"), 0o600))

	info, err := adapter.FileInfo(ctx, path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(len("interface A {}")), info.Size())
}

func TestSplitPattern(t *testing.T) {
	tests := []struct {
		in        m.Path
		root      string
		recursive bool
	}{
		{"./...", ".", true},
		{"...", ".", true},
		{"./src/...", filepath.FromSlash("./src"), true},
		{"./src", "./src", false},
		{"app.js", "app.js", false},
	}

	for _, tt := range tests {
		root, recursive := splitPattern(tt.in)
		assert.Equal(t, tt.root, root, string(tt.in))
		assert.Equal(t, tt.recursive, recursive, string(tt.in))
	}
}

func baseNames(sources []m.Source) []string {
	names := make([]string, 0, len(sources))
	for _, source := range sources {
		names = append(names, filepath.Base(string(source.Origin.FullPath)))
	}

	return names
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
