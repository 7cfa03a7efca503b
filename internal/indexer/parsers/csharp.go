package parsers

import (
	"context"
	"os"

	"github.com/mvp-joe/bcl-sources/internal/indexer/extraction"
	sitter "github.com/tree-sitter/go-tree-sitter"
	csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"
)

const (
	blockNamespaceKind      = "namespace_declaration"
	fileScopedNamespaceKind = "file_scoped_namespace_declaration"
)

// csharpDeclarationKinds maps tree-sitter node kinds to the declarations we index.
var csharpDeclarationKinds = map[string]extraction.DeclarationKind{
	"class_declaration":         extraction.KindClass,
	"struct_declaration":        extraction.KindStruct,
	"interface_declaration":     extraction.KindInterface,
	"enum_declaration":          extraction.KindEnum,
	"delegate_declaration":      extraction.KindDelegate,
	"record_declaration":        extraction.KindRecord,
	"record_struct_declaration": extraction.KindRecord, // older grammars split record struct out
	"enum_member_declaration":   extraction.KindEnumMember,
}

// csharpParser extracts namespace-scoped declarations from C# files.
type csharpParser struct {
	*treeSitterParser
}

// NewCSharpParser creates a new C# parser.
func NewCSharpParser() *csharpParser {
	lang := sitter.NewLanguage(csharp.Language())
	return &csharpParser{
		treeSitterParser: newTreeSitterParser(lang, "csharp"),
	}
}

// ParseFile reads and parses a C# source file.
func (p *csharpParser) ParseFile(ctx context.Context, filePath string) (*FileDeclarations, error) {
	source, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return p.ParseSource(ctx, filePath, source)
}

// ParseSource parses C# source and returns the declarations owned by
// each namespace. Namespaces are visited in pre-order and each one owns
// every declaration beneath it, so a type inside a nested namespace is
// reported once per enclosing namespace, outermost first. A file-scoped
// namespace also owns the declarations that follow it in its parent.
func (p *csharpParser) ParseSource(ctx context.Context, filePath string, source []byte) (*FileDeclarations, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tree, err := p.parse(filePath, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	result := &FileDeclarations{
		Language:     p.lang,
		FilePath:     filePath,
		Namespaces:   []string{},
		Declarations: []extraction.Declaration{},
	}

	walkTree(tree.RootNode(), func(n *sitter.Node) bool {
		switch n.Kind() {
		case blockNamespaceKind:
			p.extractNamespace(n, source, nil, result)
		case fileScopedNamespaceKind:
			p.extractNamespace(n, source, n.NextSibling(), result)
		}
		return true
	})

	return result, nil
}

// extractNamespace records every declaration below ns under its name, then
// every declaration in the siblings starting at following.
func (p *csharpParser) extractNamespace(ns *sitter.Node, source []byte, following *sitter.Node, result *FileDeclarations) {
	owner := namespaceName(ns, source)
	if owner == "" {
		return
	}
	result.Namespaces = append(result.Namespaces, owner)

	p.extractDescendants(ns, source, owner, result)
	for sib := following; sib != nil; sib = sib.NextSibling() {
		p.extractNode(sib, source, owner, result)
	}
}

// extractDescendants visits the descendants of node in pre-order. Nested
// types are reported under the namespace, not the outer type.
func (p *csharpParser) extractDescendants(node *sitter.Node, source []byte, owner string, result *FileDeclarations) {
	for i := 0; i < int(node.ChildCount()); i++ {
		p.extractNode(node.Child(uint(i)), source, owner, result)
	}
}

// extractNode records node if it is a declaration and then its descendants.
func (p *csharpParser) extractNode(node *sitter.Node, source []byte, owner string, result *FileDeclarations) {
	if kind, ok := csharpDeclarationKinds[node.Kind()]; ok {
		p.extractDeclaration(node, source, kind, owner, result)
	}
	p.extractDescendants(node, source, owner, result)
}

// extractDeclaration records a single declaration node.
func (p *csharpParser) extractDeclaration(node *sitter.Node, source []byte, kind extraction.DeclarationKind, owner string, result *FileDeclarations) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		nameNode = findChildByType(node, "identifier")
	}
	if nameNode == nil {
		return
	}

	result.Declarations = append(result.Declarations, extraction.Declaration{
		Kind:       kind,
		Identifier: extractNodeText(nameNode, source),
		Owner:      owner,
	})
}

// namespaceName returns the dotted name of a namespace declaration.
func namespaceName(node *sitter.Node, source []byte) string {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		nameNode = findChildByType(node, "qualified_name")
	}
	if nameNode == nil {
		nameNode = findChildByType(node, "identifier")
	}
	return compactNodeText(nameNode, source)
}
