// Package uidl defines the UI description tree consumed by the generator,
// together with its JSON parser and validators.
//
// A component document has the following shape:
//
//	{
//	  "name": "HomePage",
//	  "meta": {"fileName": "index"},
//	  "styleSetDefinitions": {"primary": {"content": {"color": "red"}}},
//	  "node": {
//	    "type": "container",
//	    "attrs": {"id": "main"},
//	    "style": {"display": "flex"},
//	    "referencedStyles": [{"type": "project-referenced", "id": "primary"}],
//	    "children": [
//	      {"type": "text", "content": "Hi"}
//	    ]
//	  }
//	}
//
// Nodes may carry a repeat or conditional template instead of (or next to)
// plain children. Resolution fills ElementType, SelfClosing and Dependency
// in place; nothing else in the tree is shared between compilations.
package uidl
