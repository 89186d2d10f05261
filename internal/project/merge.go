package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"uidl-generator/internal/chunk"
	"uidl-generator/internal/common"
	"uidl-generator/internal/dom"
	"uidl-generator/internal/format"
)

// StylesheetLink is injected into the shell head when the project
// declares style sets.
const StylesheetLink = `<link rel="stylesheet" href="./style.css">`

// Document is the tree surgery the merge stage needs. Scopes name the
// first element with that tag; the empty scope is the document root.
type Document interface {
	// Find returns the serialized elements with the tag inside scope.
	Find(scope, tag string) ([]string, error)
	Remove(scope, tag string)
	Append(scope, markup string) error
	Prepend(scope, markup string) error
	Empty(scope string)
	HTML() (string, error)
}

// Parser creates Documents from full documents and from fragments.
type Parser interface {
	Document(src string) (Document, error)
	Fragment(src string) (Document, error)
}

// HTMLParser is the Parser backed by the dom package.
type HTMLParser struct{}

// Document implements Parser.
func (HTMLParser) Document(src string) (Document, error) {
	d, err := dom.Parser{}.Document(src)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// Fragment implements Parser.
func (HTMLParser) Fragment(src string) (Document, error) {
	d, err := dom.Parser{}.Fragment(src)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// CloneGlobals merges every root page into the shell document: the page
// supplies title, meta tags and body content, the shell supplies its
// scripts and fallback head tags. The shell entry is removed afterwards.
type CloneGlobals struct {
	// Parser defaults to HTMLParser.
	Parser Parser
	// Formatter runs once per merged page; defaults to format.Format.
	Formatter format.Formatter
}

// RunBefore implements Plugin.
func (CloneGlobals) RunBefore(context.Context, *Structure) error {
	return nil
}

// RunAfter implements Plugin. A file map without a shell entry is left
// unchanged.
func (m CloneGlobals) RunAfter(ctx context.Context, s *Structure) error {
	parser := m.Parser
	if parser == nil {
		parser = HTMLParser{}
	}

	formatter := m.Formatter
	if formatter == nil {
		formatter = format.Format
	}

	entry, ok := s.Files[EntryKey]
	if !ok {
		return nil
	}

	src, ok := firstMarkup(entry)
	if !ok {
		return errors.New("shell entry has no markup file")
	}

	sh, err := stripShell(parser, src, s.Project != nil && len(s.Project.StyleSetDefinitions) > 0)
	if err != nil {
		return err
	}

	for _, key := range s.Files.Keys() {
		folder := s.Files[key]
		if key == EntryKey || !folder.IsRoot() {
			continue
		}

		for _, i := range folder.markup() {
			if err := ctx.Err(); err != nil {
				return err
			}

			merged, err := sh.merge(parser, folder.Files[i].Content)
			if err != nil {
				return fmt.Errorf("merging page %q: %w", key, err)
			}

			formatted, err := formatter(map[chunk.FileType]string{chunk.FileTypeHTML: merged})
			if err != nil {
				return err
			}

			folder.Files[i].Content = formatted[chunk.FileTypeHTML]
		}
	}

	delete(s.Files, EntryKey)

	return nil
}

// shell is the stripped shell document and the parts taken out of it.
type shell struct {
	html        string
	metas       []string
	title       string
	bodyScripts []string
}

// stripShell takes scripts, meta tags and the title out of the shell,
// links the project stylesheet if needed and puts the head scripts back
// after it.
func stripShell(parser Parser, src string, linkStyles bool) (*shell, error) {
	doc, err := parser.Document(src)
	if err != nil {
		return nil, err
	}

	headScripts, err := doc.Find("head", "script")
	if err != nil {
		return nil, err
	}

	sh := &shell{}

	if sh.bodyScripts, err = doc.Find("body", "script"); err != nil {
		return nil, err
	}

	if sh.metas, err = doc.Find("head", "meta"); err != nil {
		return nil, err
	}

	titles, err := doc.Find("head", "title")
	if err != nil {
		return nil, err
	}

	sh.title, _ = common.First(titles)

	doc.Remove("head", "script")
	doc.Remove("body", "script")
	doc.Remove("head", "meta")
	doc.Remove("head", "title")

	if linkStyles {
		if err := doc.Append("head", StylesheetLink); err != nil {
			return nil, err
		}
	}

	if err := doc.Append("head", strings.Join(headScripts, "")); err != nil {
		return nil, err
	}

	if sh.html, err = doc.HTML(); err != nil {
		return nil, err
	}

	return sh, nil
}

// merge builds the full document of one page on a fresh copy of the
// stripped shell.
func (sh *shell) merge(parser Parser, page string) (string, error) {
	doc, err := parser.Document(sh.html)
	if err != nil {
		return "", err
	}

	doc.Empty("body")
	doc.Remove("head", "title")
	doc.Remove("head", "meta")

	frag, err := parser.Fragment(page)
	if err != nil {
		return "", err
	}

	pageMetas, err := frag.Find("", "meta")
	if err != nil {
		return "", err
	}

	if err := doc.Prepend("head", strings.Join(append(pageMetas, sh.metas...), "")); err != nil {
		return "", err
	}

	frag.Remove("", "meta")

	titles, err := frag.Find("", "title")
	if err != nil {
		return "", err
	}

	title, ok := common.First(titles)
	if !ok {
		title = sh.title
	}

	if err := doc.Prepend("head", title); err != nil {
		return "", err
	}

	frag.Remove("", "title")

	body, err := frag.HTML()
	if err != nil {
		return "", err
	}

	if err := doc.Append("body", body+strings.Join(sh.bodyScripts, "")); err != nil {
		return "", err
	}

	return doc.HTML()
}

func firstMarkup(f *Folder) (string, bool) {
	i, ok := common.First(f.markup())
	if !ok {
		return "", false
	}

	return f.Files[i].Content, true
}
