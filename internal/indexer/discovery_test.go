package indexer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for FileDiscovery:
// - Lists every library directory in lexical order, skipping plain files
// - Library names have the ./libraries prefix removed
// - Libraries without a src folder yield no files and no error
// - Only files matching the source patterns are returned, in lexical order
// - Folder is the raw, un-normalized path relative to the root's parent
// - Files directly under src match **/*.cs
// - Ignore patterns skip whole directories
// - A missing root is an error
// - Invalid glob patterns are rejected

const fixtureRoot = "../../testdata/libraries"

func writeSource(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestFileDiscovery_DiscoverLibraries(t *testing.T) {
	t.Parallel()

	fd, err := NewFileDiscovery(fixtureRoot, "src", []string{"**/*.cs"}, nil)
	require.NoError(t, err)

	libraries, err := fd.DiscoverLibraries()
	require.NoError(t, err)

	var names []string
	for _, lib := range libraries {
		names = append(names, lib.Name)
	}
	assert.Equal(t, []string{"Microsoft.Win32.Primitives", "System.Collections", "System.Console"}, names)

	sep := string(filepath.Separator)
	assert.Equal(t, "./libraries"+sep+"System.Console", libraries[2].RawDir)
	assert.Equal(t, filepath.Join(fixtureRoot, "System.Console"), libraries[2].Dir)
}

func TestFileDiscovery_SkipsFilesAtRoot(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "libraries")
	writeSource(t, filepath.Join(root, "Directory.Build.props"), "<Project />")
	writeSource(t, filepath.Join(root, "System.IO", "src", "Stream.cs"), "")

	fd, err := NewFileDiscovery(root, "src", []string{"**/*.cs"}, nil)
	require.NoError(t, err)

	libraries, err := fd.DiscoverLibraries()
	require.NoError(t, err)
	require.Len(t, libraries, 1)
	assert.Equal(t, "System.IO", libraries[0].Name)
}

func TestFileDiscovery_DiscoverFiles(t *testing.T) {
	t.Parallel()

	fd, err := NewFileDiscovery(fixtureRoot, "src", []string{"**/*.cs"}, nil)
	require.NoError(t, err)

	libraries, err := fd.DiscoverLibraries()
	require.NoError(t, err)
	require.Len(t, libraries, 3)

	t.Run("library without src", func(t *testing.T) {
		files, err := fd.DiscoverFiles(libraries[0])
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("nested folders and non-source files", func(t *testing.T) {
		files, err := fd.DiscoverFiles(libraries[1])
		require.NoError(t, err)
		require.Len(t, files, 1)

		f := files[0]
		assert.Equal(t, "PriorityQueue.cs", f.FileName)
		assert.Equal(t, filepath.Join(fixtureRoot, "System.Collections", "src", "System", "Collections", "Generic", "PriorityQueue.cs"), f.Path)
		assert.Equal(t,
			"libraries/System.Collections/src/System/Collections/Generic",
			NormalizeFolder(f.Folder))
	})

	t.Run("lexical order", func(t *testing.T) {
		files, err := fd.DiscoverFiles(libraries[2])
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, "Console.cs", files[0].FileName)
		assert.Equal(t, "ConsoleKeyInfo.cs", files[1].FileName)
	})
}

func TestFileDiscovery_RawFolder(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "libraries")
	writeSource(t, filepath.Join(root, "System.Memory", "src", "Memory.cs"), "")
	writeSource(t, filepath.Join(root, "System.Memory", "src", "System", "Buffers", "ArrayPool.cs"), "")

	fd, err := NewFileDiscovery(root, "src", []string{"**/*.cs"}, nil)
	require.NoError(t, err)

	libraries, err := fd.DiscoverLibraries()
	require.NoError(t, err)
	require.Len(t, libraries, 1)

	files, err := fd.DiscoverFiles(libraries[0])
	require.NoError(t, err)
	require.Len(t, files, 2)

	sep := string(filepath.Separator)

	// WalkDir is lexical: "Memory.cs" sorts before "System".
	assert.Equal(t, "Memory.cs", files[0].FileName)
	assert.Equal(t, "./libraries"+sep+"System.Memory/src", files[0].Folder)

	assert.Equal(t, "ArrayPool.cs", files[1].FileName)
	assert.Equal(t, "./libraries"+sep+"System.Memory/src/System"+sep+"Buffers", files[1].Folder)
	assert.Equal(t, "libraries/System.Memory/src/System/Buffers", NormalizeFolder(files[1].Folder))
}

func TestFileDiscovery_IgnorePatterns(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "libraries")
	writeSource(t, filepath.Join(root, "System.Text.Json", "src", "System", "Text", "Json", "JsonSerializer.cs"), "")
	writeSource(t, filepath.Join(root, "System.Text.Json", "src", "obj", "Generated.cs"), "")
	writeSource(t, filepath.Join(root, "System.Text.Json", "src", "System", "Text", "Json", "Json.Designer.cs"), "")

	fd, err := NewFileDiscovery(root, "src", []string{"**/*.cs"}, []string{"obj/**", "**/*.Designer.cs"})
	require.NoError(t, err)

	libraries, err := fd.DiscoverLibraries()
	require.NoError(t, err)

	files, err := fd.DiscoverFiles(libraries[0])
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "JsonSerializer.cs", files[0].FileName)
}

func TestFileDiscovery_CustomSrcDir(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "libraries")
	writeSource(t, filepath.Join(root, "Lib", "source", "A.cs"), "")
	writeSource(t, filepath.Join(root, "Lib", "src", "B.cs"), "")

	fd, err := NewFileDiscovery(root, "source", []string{"**/*.cs"}, nil)
	require.NoError(t, err)

	libraries, err := fd.DiscoverLibraries()
	require.NoError(t, err)

	files, err := fd.DiscoverFiles(libraries[0])
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "A.cs", files[0].FileName)
}

func TestFileDiscovery_MissingRoot(t *testing.T) {
	t.Parallel()

	fd, err := NewFileDiscovery(filepath.Join(t.TempDir(), "missing"), "src", []string{"**/*.cs"}, nil)
	require.NoError(t, err)

	_, err = fd.DiscoverLibraries()
	assert.Error(t, err)
}

func TestNewFileDiscovery_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := NewFileDiscovery(fixtureRoot, "src", []string{"[*.cs"}, nil)
	assert.Error(t, err)

	_, err = NewFileDiscovery(fixtureRoot, "src", []string{"**/*.cs"}, []string{"{obj"})
	assert.Error(t, err)
}
