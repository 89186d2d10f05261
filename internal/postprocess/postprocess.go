// Package postprocess provides the whole-file transforms applied after
// chunks are linked, plus the built-in processors.
package postprocess

import (
	"maps"
	"slices"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"uidl-generator/internal/chunk"
	"uidl-generator/internal/format"
)

// Files maps each output kind of one compiled unit to its text.
type Files = map[chunk.FileType]string

// Processor transforms the linked files of one compiled unit. Processors
// are trusted caller code: their errors are returned unchanged.
type Processor func(files Files) (Files, error)

// Chain is an ordered list of processors.
type Chain []Processor

// Apply runs the processors in order, each one seeing the previous
// processor's output.
func (c Chain) Apply(files Files) (Files, error) {
	var err error

	for _, p := range c {
		files, err = p(files)
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// Prettier formats the files with the given formatter.
func Prettier(f format.Formatter) Processor {
	if f == nil {
		f = format.Format
	}

	return func(files Files) (Files, error) {
		return f(files)
	}
}

// Sanitize runs the markup through a bluemonday policy. A nil policy
// uses bluemonday's UGC policy, which strips scripts, event handler
// attributes and unsafe URLs.
func Sanitize(policy *bluemonday.Policy) Processor {
	if policy == nil {
		policy = bluemonday.UGCPolicy()
	}

	return func(files Files) (Files, error) {
		text, ok := files[chunk.FileTypeHTML]
		if !ok {
			return files, nil
		}

		out := maps.Clone(files)
		out[chunk.FileTypeHTML] = policy.Sanitize(text)

		return out, nil
	}
}

// PagePolicy is the UGC policy extended with the title and meta tags a
// page carries up to the merged document head.
func PagePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("title")
	p.AllowAttrs("name", "content", "charset", "property").OnElements("meta")

	return p
}

// Banner prepends a comment to every file whose kind has a known comment
// syntax.
func Banner(text string) Processor {
	return func(files Files) (Files, error) {
		out := maps.Clone(files)

		for _, kind := range slices.Sorted(maps.Keys(files)) {
			var comment string

			switch kind {
			case chunk.FileTypeHTML:
				comment = "<!-- " + strings.ReplaceAll(text, "-->", "-- >") + " -->"
			case chunk.FileTypeCSS, chunk.FileTypeJS:
				comment = "/* " + strings.ReplaceAll(text, "*/", "* /") + " */"
			default:
				continue
			}

			out[kind] = comment + "\n" + files[kind]
		}

		return out, nil
	}
}
