package indexer

import "fmt"

// URLBuilder turns declarations into index records using a fixed source
// host convention: https://{Host}/{Org}/{Repo}/{Branch}/src/{folder}/{file}.
type URLBuilder struct {
	Host   string
	Org    string
	Repo   string
	Branch string
}

// DefaultURLBuilder points at raw files of dotnet/runtime on main.
func DefaultURLBuilder() URLBuilder {
	return URLBuilder{
		Host:   "raw.githubusercontent.com",
		Org:    "dotnet",
		Repo:   "runtime",
		Branch: "main",
	}
}

// Build returns the record for identifier declared in namespace owner.
// folder must already be normalized. No validation is performed.
func (b URLBuilder) Build(owner, identifier, folder, fileName string) SourceRecord {
	return SourceRecord{
		Name: fmt.Sprintf("%s.%s", owner, identifier),
		URL:  fmt.Sprintf("https://%s/%s/%s/%s/src/%s/%s", b.Host, b.Org, b.Repo, b.Branch, folder, fileName),
	}
}
