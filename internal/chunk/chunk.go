// Package chunk defines the ordered, anchorable units of generated content
// produced by plugins, and the linker that merges them into source text.
package chunk

import (
	"slices"
)

// FileType identifies an output kind.
type FileType string

// Known output kinds.
const (
	FileTypeHTML FileType = "html"
	FileTypeCSS  FileType = "css"
	FileTypeJS   FileType = "js"
)

//go:generate go tool stringer -type=Position -linecomment -output=position_string.go

// Position is where a chunk is spliced relative to the buffer or its anchor.
type Position int

const (
	// Append adds the chunk at the end of the buffer.
	Append Position = iota // append
	// Prepend adds the chunk at the start of the buffer.
	Prepend // prepend
	// Before inserts the chunk right before its anchor.
	Before // before
	// After inserts the chunk right after its anchor.
	After // after
)

// Directive tells the linker where a chunk goes.
type Directive struct {
	// Anchor names an earlier chunk. Required for Before and After.
	Anchor   string
	Position Position
}

// Chunk is one unit of generated content.
type Chunk struct {
	// Name identifies the chunk. Linked chunks become anchors under their
	// name; plugins look chunks up by it.
	Name     string
	FileType FileType
	Linker   Directive
	// Content is a string, []byte, *html.Node, Stylesheet or fmt.Stringer.
	Content any
}

// Group holds the chunks of one output kind in pipeline order.
type Group struct {
	FileType FileType
	Chunks   []*Chunk
}

// GroupByFileType splits chunks by output kind. Groups are ordered by the
// first appearance of their kind; chunks keep their relative order.
func GroupByFileType(chunks []*Chunk) []Group {
	var groups []Group

	for _, c := range chunks {
		i := slices.IndexFunc(groups, func(g Group) bool { return g.FileType == c.FileType })
		if i < 0 {
			groups = append(groups, Group{FileType: c.FileType})
			i = len(groups) - 1
		}

		groups[i].Chunks = append(groups[i].Chunks, c)
	}

	return groups
}
