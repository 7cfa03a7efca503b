package indexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLBuilder_Build(t *testing.T) {
	t.Parallel()

	record := DefaultURLBuilder().Build("System", "Console", "libraries/System.Console/src/System", "Console.cs")

	assert.Equal(t, "System.Console", record.Name)
	assert.Equal(t,
		"https://raw.githubusercontent.com/dotnet/runtime/main/src/libraries/System.Console/src/System/Console.cs",
		record.URL)
}

func TestURLBuilder_CustomHost(t *testing.T) {
	t.Parallel()

	b := URLBuilder{Host: "git.example.com", Org: "mono", Repo: "corefx", Branch: "release/8.0"}
	record := b.Build("System.Collections.Generic", "List", "libraries/System.Collections/src", "List.cs")

	assert.Equal(t, "System.Collections.Generic.List", record.Name)
	assert.Equal(t,
		"https://git.example.com/mono/corefx/release/8.0/src/libraries/System.Collections/src/List.cs",
		record.URL)
}

func TestURLBuilder_NoValidation(t *testing.T) {
	t.Parallel()

	record := URLBuilder{}.Build("", "", "", "")

	assert.Equal(t, ".", record.Name)
	assert.Equal(t, "https://////src//", record.URL)
}
