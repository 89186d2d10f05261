// Package mapping provides the tables that map abstract UIDL element types
// to concrete output tags, default attributes and style semantics.
//
// Tables are YAML (or JSON, which is valid YAML) documents:
//
//	elements:
//	  container:
//	    elementType: div
//	  image:
//	    elementType: img
//	    selfClosing: true
//	    attrs:
//	      alt: ""
//	  icon:
//	    elementType: svg
//	    styles: ignore
//	    dependency:
//	      type: package
//	      path: "@icons/core"
//	      version: "1.0.0"
//	events:
//	  click: onclick
//	attributes:
//	  className: class
//
// # Precedence
//
// A resolver holds one base table and any number of override tables in a
// Layers stack. Lookups search the most recently added table first, so an
// override shadows the base table (and earlier overrides) key by key
// without merging the entries themselves.
//
// # Style strategies
//
//   - merge (default): the entry's default style sits underneath the
//     node's own inline style
//   - ignore: inline style is dropped for this element
package mapping
