package project

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"uidl-generator/internal/uidl"
)

// ShellBuilder renders the shell document of a project.
type ShellBuilder func(globals uidl.Globals) (string, error)

// BuildShell renders a minimal HTML5 document carrying the project
// globals: language, charset, meta tags, title and scripts.
func BuildShell(globals uidl.Globals) (string, error) {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element(atom.Html)
	if globals.Language != "" {
		htmlEl.Attr = []html.Attribute{{Key: "lang", Val: globals.Language}}
	}

	root.AppendChild(htmlEl)

	head := element(atom.Head)
	htmlEl.AppendChild(head)

	charset := element(atom.Meta)
	charset.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(charset)

	for _, m := range globals.Meta {
		tag := element(atom.Meta)
		for _, key := range slices.Sorted(maps.Keys(m)) {
			tag.Attr = append(tag.Attr, html.Attribute{Key: key, Val: m[key]})
		}

		head.AppendChild(tag)
	}

	if globals.Title != "" {
		title := element(atom.Title)
		title.AppendChild(&html.Node{Type: html.TextNode, Data: globals.Title})
		head.AppendChild(title)
	}

	appendScripts(head, globals.HeadScripts)

	body := element(atom.Body)
	htmlEl.AppendChild(body)
	appendScripts(body, globals.BodyScripts)

	var b strings.Builder
	if err := html.Render(&b, root); err != nil {
		return "", err
	}

	return b.String(), nil
}

func appendScripts(parent *html.Node, sources []string) {
	for _, src := range sources {
		script := element(atom.Script)
		script.Attr = []html.Attribute{{Key: "src", Val: src}}
		parent.AppendChild(script)
	}
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
}
