package indexer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// FileDiscovery enumerates libraries under a root directory and the source
// files under each library's src folder. Enumeration order is lexical at
// every level so repeated runs over the same tree produce the same index.
type FileDiscovery struct {
	rootDir        string
	rawRoot        string
	srcDir         string
	sourcePatterns []compiledPattern
	ignorePatterns []compiledPattern
}

// NewFileDiscovery creates a new file discovery instance.
func NewFileDiscovery(rootDir, srcDir string, sourcePatterns, ignorePatterns []string) (*FileDiscovery, error) {
	fd := &FileDiscovery{
		rootDir: rootDir,
		rawRoot: "./" + filepath.Base(filepath.Clean(rootDir)),
		srcDir:  srcDir,
	}

	for _, pattern := range sourcePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid source pattern %q: %w", pattern, err)
		}
		fd.sourcePatterns = append(fd.sourcePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		fd.ignorePatterns = append(fd.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	return fd, nil
}

// DiscoverLibraries returns every immediate subdirectory of the root.
func (fd *FileDiscovery) DiscoverLibraries() ([]Library, error) {
	entries, err := os.ReadDir(fd.rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read library root %s: %w", fd.rootDir, err)
	}

	libraries := []Library{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		// Same shape the library root listing has on Windows: root, OS separator, name.
		rawDir := fd.rawRoot + string(filepath.Separator) + entry.Name()
		libraries = append(libraries, Library{
			Name:   NormalizeLibraryName(rawDir),
			RawDir: rawDir,
			Dir:    filepath.Join(fd.rootDir, entry.Name()),
		})
	}

	return libraries, nil
}

// DiscoverFiles walks <library>/<src> and returns matching source files.
// A library without a src folder has no files and is not an error.
func (fd *FileDiscovery) DiscoverFiles(lib Library) ([]SourceFile, error) {
	srcPath := filepath.Join(lib.Dir, fd.srcDir)
	info, err := os.Stat(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []SourceFile{}, nil
		}
		return nil, fmt.Errorf("failed to stat %s: %w", srcPath, err)
	}
	if !info.IsDir() {
		return []SourceFile{}, nil
	}

	rawSrc := lib.RawDir + "/" + fd.srcDir + "/"
	files := []SourceFile{}

	err = filepath.WalkDir(srcPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(srcPath, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}

		// Normalize path separators for glob matching
		slashPath := filepath.ToSlash(relPath)

		if d.IsDir() {
			if fd.shouldIgnore(slashPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if fd.shouldIgnore(slashPath) || !fd.matchesAnyPattern(slashPath, fd.sourcePatterns) {
			return nil
		}

		rawPath := rawSrc + relPath
		files = append(files, SourceFile{
			Path:     path,
			FileName: filepath.Base(path),
			Folder:   rawFolder(rawPath),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", srcPath, err)
	}

	return files, nil
}

// rawFolder returns everything before the last path separator of either kind.
func rawFolder(rawPath string) string {
	if i := strings.LastIndexAny(rawPath, `/\`); i >= 0 {
		return rawPath[:i]
	}
	return ""
}

// shouldIgnore checks if a path matches any ignore pattern.
func (fd *FileDiscovery) shouldIgnore(relPath string) bool {
	if fd.matchesAnyPattern(relPath, fd.ignorePatterns) {
		return true
	}

	// Also check if this is a directory that would match with /** suffix
	// For example, "obj" should match pattern "obj/**"
	return fd.matchesAnyPattern(relPath+"/**", fd.ignorePatterns)
}

// matchesAnyPattern checks if a path matches any of the given patterns.
func (fd *FileDiscovery) matchesAnyPattern(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
	}

	// Special handling: if path is in root (no slash), also try matching against
	// patterns with **/ prefix removed. This makes "**/*.cs" match both "Foo.cs"
	// and "System/Foo.cs" as users would expect.
	if !strings.Contains(path, "/") {
		for _, cp := range patterns {
			if strings.HasPrefix(cp.pattern, "**/") {
				simplified := strings.TrimPrefix(cp.pattern, "**/")
				if simplifiedGlob, err := glob.Compile(simplified, '/'); err == nil {
					if simplifiedGlob.Match(path) {
						return true
					}
				}
			}
		}
	}

	return false
}
