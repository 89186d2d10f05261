// Package format pretty-prints generated files.
//
// HTML is re-parsed with golang.org/x/net/html and printed one block per
// line with two-space indentation; elements holding a single short text
// keep it inline, and raw-text elements (script, style, pre, textarea)
// keep their content untouched. CSS and JS only get their whitespace
// normalized.
package format

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"uidl-generator/internal/chunk"
)

const (
	indentUnit = "  "
	// inlineTextLimit is the longest text kept on its parent's line.
	inlineTextLimit = 80
)

var voidElements = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true,
	atom.Embed: true, atom.Hr: true, atom.Img: true, atom.Input: true,
	atom.Link: true, atom.Meta: true, atom.Source: true, atom.Track: true,
	atom.Wbr: true,
}

var rawTextElements = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Pre: true, atom.Textarea: true,
}

// Formatter formats a set of files keyed by output kind.
type Formatter func(files map[chunk.FileType]string) (map[chunk.FileType]string, error)

// Format formats every file it knows how to format and returns the rest
// unchanged. The input map is not modified.
func Format(files map[chunk.FileType]string) (map[chunk.FileType]string, error) {
	out := make(map[chunk.FileType]string, len(files))

	for kind, text := range files {
		switch kind {
		case chunk.FileTypeHTML:
			formatted, err := HTML(text)
			if err != nil {
				return nil, err
			}

			out[kind] = formatted
		case chunk.FileTypeCSS, chunk.FileTypeJS:
			out[kind] = trimLines(text)
		default:
			out[kind] = text
		}
	}

	return out, nil
}

// HTML pretty-prints a full document or a fragment. Input that looks like
// a document (doctype or <html>) is parsed as one; anything else is
// parsed as body content.
func HTML(src string) (string, error) {
	nodes, err := parse(src)
	if err != nil {
		return "", fmt.Errorf("formatting html: %w", err)
	}

	p := &printer{}
	for _, n := range nodes {
		p.node(n, 0)
	}

	return p.buf.String(), nil
}

func parse(src string) ([]*html.Node, error) {
	head := strings.ToLower(strings.TrimSpace(src))
	if strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html") {
		doc, err := html.Parse(strings.NewReader(src))
		if err != nil {
			return nil, err
		}

		var nodes []*html.Node
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			nodes = append(nodes, c)
		}

		return nodes, nil
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}

	return html.ParseFragment(strings.NewReader(src), body)
}

type printer struct {
	buf bytes.Buffer
}

func (p *printer) line(depth int, s string) {
	p.buf.WriteString(strings.Repeat(indentUnit, depth))
	p.buf.WriteString(s)
	p.buf.WriteByte('\n')
}

func (p *printer) node(n *html.Node, depth int) {
	switch n.Type {
	case html.DoctypeNode:
		p.line(depth, "<!DOCTYPE "+n.Data+">")
	case html.CommentNode:
		p.line(depth, "<!-- "+strings.TrimSpace(n.Data)+" -->")
	case html.TextNode:
		if text := collapse(n.Data); text != "" {
			p.line(depth, escapeText(text))
		}
	case html.ElementNode:
		p.element(n, depth)
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.node(c, depth)
		}
	}
}

func (p *printer) element(n *html.Node, depth int) {
	open := openTag(n)

	if voidElements[n.DataAtom] {
		p.line(depth, open)

		return
	}

	closeTag := "</" + n.Data + ">"

	if rawTextElements[n.DataAtom] {
		var raw strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			raw.WriteString(c.Data)
		}

		p.line(depth, open+raw.String()+closeTag)

		return
	}

	if n.FirstChild == nil {
		p.line(depth, open+closeTag)

		return
	}

	if only := n.FirstChild; only.NextSibling == nil && only.Type == html.TextNode {
		if text := collapse(only.Data); len(text) <= inlineTextLimit {
			p.line(depth, open+escapeText(text)+closeTag)

			return
		}
	}

	p.line(depth, open)

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.node(c, depth+1)
	}

	p.line(depth, closeTag)
}

func openTag(n *html.Node) string {
	var b strings.Builder

	b.WriteString("<")
	b.WriteString(n.Data)

	for _, a := range n.Attr {
		b.WriteString(" ")

		if a.Namespace != "" {
			b.WriteString(a.Namespace + ":")
		}

		b.WriteString(a.Key)

		if a.Val != "" {
			b.WriteString(`="`)
			b.WriteString(escapeAttr(a.Val))
			b.WriteString(`"`)
		}
	}

	b.WriteString(">")

	return b.String()
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;")
)

func escapeText(s string) string { return textEscaper.Replace(s) }

func escapeAttr(s string) string { return attrEscaper.Replace(s) }

// collapse folds whitespace runs into single spaces and trims the ends.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// trimLines strips trailing whitespace from every line and ends the text
// with exactly one newline.
func trimLines(s string) string {
	lines := strings.Split(strings.TrimRight(s, " \t\r\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}

	if len(lines) == 1 && lines[0] == "" {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}
