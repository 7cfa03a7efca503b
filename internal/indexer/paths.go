package indexer

import "strings"

// Library root spellings stripped from library directories, checked in order.
const (
	libsPrefixBackslash = `./libraries\`
	libsPrefixSlash     = "./libraries/"
	libsPrefixBare      = "./libraries"
)

// folderRules are applied in order, each to the result of the previous one.
var folderRules = []struct {
	old string
	new string
}{
	{"./", ""},
	{`\`, "/"},
	{"/libraries/libraries", "/libraries"},
	{"libraries", "libraries/"},
	{"//", "/"},
}

// NormalizeLibraryName strips the first matching library root prefix from
// dir. Paths without a recognised prefix are returned unchanged.
func NormalizeLibraryName(dir string) string {
	for _, prefix := range []string{libsPrefixBackslash, libsPrefixSlash, libsPrefixBare} {
		if strings.HasPrefix(dir, prefix) {
			return dir[len(prefix):]
		}
	}
	return dir
}

// NormalizeFolder turns a raw on-disk folder path into the repository
// relative folder used in source URLs. It only undoes the redundancy the
// libraries/<lib>/src layout produces; it is not a general path cleaner.
func NormalizeFolder(folder string) string {
	for _, rule := range folderRules {
		folder = strings.ReplaceAll(folder, rule.old, rule.new)
	}
	return folder
}
