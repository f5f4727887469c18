// Package adapter contains the filesystem, cache and persistence adapters of
// the devkit CLI.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "devkit.dev/pkg/devkit/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Get resolves path patterns into sources. Patterns ending in "/..." are
	// walked recursively, plain directories only at their top level and files
	// are taken as is. Only files with one of extensions are kept (all files
	// when extensions is empty); files whose path matches an exclude regex are
	// dropped. Content is not loaded.
	Get(ctx context.Context, paths []m.Path, extensions []string, exclude ...string) ([]m.Source, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory (no sub-dirs).
	Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// HashFile returns the SHA-256 fingerprint of the file at path.
	HashFile(ctx context.Context, path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the domain.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

const recursiveSuffix = "/..."

var skippedDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"vendor":       {},
}

// LocalSourceFSAdapter is the os backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, paths []m.Path, extensions []string, exclude ...string) ([]m.Source, error) {
	excludeRegexps, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		paths = []m.Path{"." + recursiveSuffix}
	}

	filter := sourceFilter{extensions: normalizeExtensions(extensions), exclude: excludeRegexps}
	seen := make(map[m.Path]struct{})

	var sources []m.Source

	for _, pattern := range paths {
		root, recursive := splitPattern(pattern)

		found, err := a.collect(ctx, root, recursive, filter)
		if err != nil {
			return nil, err
		}

		for _, source := range found {
			if _, dup := seen[source.Origin.FullPath]; dup {
				continue
			}

			seen[source.Origin.FullPath] = struct{}{}
			sources = append(sources, source)
		}
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Origin.ShortPath < sources[j].Origin.ShortPath
	})

	slog.Debug("discovered sources", "patterns", len(paths), "count", len(sources))

	return sources, nil
}

func (a *LocalSourceFSAdapter) collect(ctx context.Context, root string, recursive bool, filter sourceFilter) ([]m.Source, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		if !filter.accepts(root) {
			return nil, nil
		}

		source, err := a.newSource(ctx, root)
		if err != nil {
			return nil, err
		}

		return []m.Source{source}, nil
	}

	var sources []m.Source

	err = a.Walk(ctx, m.Path(root), recursive, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if _, skip := skippedDirs[info.Name()]; skip && path != root {
				return filepath.SkipDir
			}

			return nil
		}

		if !filter.accepts(path) {
			return nil
		}

		source, err := a.newSource(ctx, path)
		if err != nil {
			return err
		}

		sources = append(sources, source)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sources, nil
}

func (a *LocalSourceFSAdapter) newSource(ctx context.Context, path string) (m.Source, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return m.Source{}, fmt.Errorf("resolve %s: %w", path, err)
	}

	hash, err := a.HashFile(ctx, m.Path(abs))
	if err != nil {
		return m.Source{}, fmt.Errorf("hash error for %s: %w", path, err)
	}

	return m.Source{
		Origin: &m.File{
			ShortPath: m.Path(filepath.ToSlash(filepath.Clean(path))),
			FullPath:  m.Path(abs),
			Hash:      hash,
		},
	}, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(ctx context.Context, path m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

type sourceFilter struct {
	extensions []string
	exclude    []*regexp.Regexp
}

func (f sourceFilter) accepts(path string) bool {
	slashed := filepath.ToSlash(filepath.Clean(path))

	for _, re := range f.exclude {
		if re.MatchString(slashed) {
			return false
		}
	}

	if len(f.extensions) == 0 {
		return true
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range f.extensions {
		if ext == want {
			return true
		}
	}

	return false
}

func splitPattern(pattern m.Path) (string, bool) {
	p := filepath.ToSlash(string(pattern))
	if p == "..." {
		return ".", true
	}

	if strings.HasSuffix(p, recursiveSuffix) {
		root := strings.TrimSuffix(p, recursiveSuffix)
		if root == "" {
			root = "/"
		}

		return filepath.FromSlash(root), true
	}

	return string(pattern), false
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}

func normalizeExtensions(extensions []string) []string {
	out := make([]string, 0, len(extensions))

	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		out = append(out, ext)
	}

	return out
}
