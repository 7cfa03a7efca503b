package indexer

import "time"

// SourceRecord maps a qualified type name to the raw URL of the file
// declaring it. Names are not unique: partial types yield one record per file.
type SourceRecord struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Library is one top-level directory under the library root.
type Library struct {
	Name   string // cleaned library name, e.g. System.Console
	RawDir string // directory as reported to the normalizer, e.g. ./libraries/System.Console
	Dir    string // directory on disk
}

// SourceFile is a single source file found under a library's src folder.
type SourceFile struct {
	Path     string // path on disk
	FileName string // base name
	Folder   string // raw, un-normalized folder of the file relative to the library root's parent
}

// Stats tracks statistics about an indexing run.
type Stats struct {
	Libraries  int           `json:"libraries"`
	Files      int           `json:"files"`
	Namespaces int           `json:"namespaces"` // distinct namespace names
	Records    int           `json:"records"`
	Duration   time.Duration `json:"duration"`
}
