// Package adapter contains the filesystem and codec adapters used by the repattern CLI.
package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	m "repattern.dev/pkg/repattern/internal/model"
)

// IgnoreFileName is the gitignore-style file honoured at the top of every scanned root.
const IgnoreFileName = ".repatternignore"

// ChangeSetExtensions lists the file extensions recognised as change-set documents.
var ChangeSetExtensions = []string{".json", ".yaml", ".yml", ".msgpack"}

// SourceFSAdapter hides filesystem access from the workflow so discovery can be
// tested against fakes.
type SourceFSAdapter interface {
	// Get resolves roots into change-set files. A root ending in "/..." is scanned
	// recursively, a directory only at its top level, a file is taken as is.
	// Exclude holds regular expressions matched against the slash-separated path.
	Get(ctx context.Context, roots []m.Path, exclude ...string) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalSourceFSAdapter implements SourceFSAdapter over the local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get walks the roots and returns the sorted, deduplicated change-set files.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, roots []m.Path, exclude ...string) ([]m.Path, error) {
	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	if len(roots) == 0 {
		roots = []m.Path{"."}
	}

	seen := make(map[m.Path]bool)

	var paths []m.Path

	for _, root := range roots {
		found, err := a.scanRoot(ctx, root, excludes)
		if err != nil {
			return nil, err
		}

		for _, path := range found {
			if seen[path] {
				continue
			}

			seen[path] = true
			paths = append(paths, path)
		}
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths, nil
}

func (a *LocalSourceFSAdapter) scanRoot(ctx context.Context, root m.Path, excludes []*regexp.Regexp) ([]m.Path, error) {
	rootStr, recursive := splitRecursive(string(root))

	info, err := os.Stat(rootStr)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", rootStr, err)
	}

	if !info.IsDir() {
		if isExcluded(rootStr, excludes) {
			return nil, nil
		}

		return []m.Path{m.Path(rootStr)}, nil
	}

	ignored := loadIgnoreFile(rootStr)

	var paths []m.Path

	err = filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel, relErr := filepath.Rel(rootStr, path)
		if relErr != nil {
			return relErr
		}

		if info.IsDir() {
			if path == rootStr {
				return nil
			}

			if !recursive || strings.HasPrefix(info.Name(), ".") || matchesIgnore(ignored, rel) {
				return filepath.SkipDir
			}

			return nil
		}

		if !hasChangeSetExtension(path) || matchesIgnore(ignored, rel) || isExcluded(path, excludes) {
			return nil
		}

		paths = append(paths, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", rootStr, err)
	}

	return paths, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func splitRecursive(root string) (string, bool) {
	if root == "..." {
		return ".", true
	}

	if strings.HasSuffix(root, "/...") {
		trimmed := strings.TrimSuffix(root, "/...")
		if trimmed == "" {
			trimmed = "/"
		}

		return trimmed, true
	}

	return root, false
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to compile exclude pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}

func isExcluded(path string, excludes []*regexp.Regexp) bool {
	slashed := filepath.ToSlash(path)

	for _, re := range excludes {
		if re.MatchString(slashed) {
			return true
		}
	}

	return false
}

func hasChangeSetExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	for _, known := range ChangeSetExtensions {
		if ext == known {
			return true
		}
	}

	return false
}

func loadIgnoreFile(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, IgnoreFileName))
	if err != nil {
		return nil
	}

	return gi
}

func matchesIgnore(gi *ignore.GitIgnore, rel string) bool {
	return gi != nil && gi.MatchesPath(filepath.ToSlash(rel))
}
