package chunk

import (
	"fmt"
	"slices"
	"strings"
)

// separator joins linked segments.
const separator = "\n"

// LinkError reports a chunk whose anchor is not in the buffer.
type LinkError struct {
	Chunk    string
	Anchor   string
	Position Position
	Err      error
}

func (e *LinkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("linking chunk %q: %v", e.Chunk, e.Err)
	}

	return fmt.Sprintf("linking chunk %q: anchor %q for %s not found", e.Chunk, e.Anchor, e.Position)
}

func (e *LinkError) Unwrap() error {
	return e.Err
}

type segment struct {
	anchor string
	text   string
	// after is the anchor this segment was placed after, if any.
	after string
}

// Link merges the chunks of one output kind into a single text. Chunks
// are processed in order; each one is rendered right before it is spliced
// and then serves as an anchor under its name for the chunks after it.
// When two chunks share a name the first one is the anchor.
func Link(chunks []*Chunk) (string, error) {
	if len(chunks) == 0 {
		return "", nil
	}

	buf := make([]segment, 0, len(chunks))

	for _, c := range chunks {
		text, err := Render(c)
		if err != nil {
			return "", &LinkError{Chunk: c.Name, Anchor: c.Linker.Anchor, Position: c.Linker.Position, Err: err}
		}

		seg := segment{anchor: c.Name, text: text}

		switch c.Linker.Position {
		case Append:
			buf = append(buf, seg)
		case Prepend:
			buf = slices.Insert(buf, 0, seg)
		case Before, After:
			i := slices.IndexFunc(buf, func(s segment) bool { return s.anchor == c.Linker.Anchor })
			if c.Linker.Anchor == "" || i < 0 {
				return "", &LinkError{Chunk: c.Name, Anchor: c.Linker.Anchor, Position: c.Linker.Position}
			}

			if c.Linker.Position == After {
				// Keep chunks placed after the same anchor in pipeline order.
				i++
				for i < len(buf) && buf[i].after == c.Linker.Anchor {
					i++
				}

				seg.after = c.Linker.Anchor
			}

			buf = slices.Insert(buf, i, seg)
		default:
			return "", &LinkError{
				Chunk:    c.Name,
				Anchor:   c.Linker.Anchor,
				Position: c.Linker.Position,
				Err:      fmt.Errorf("unknown position %s", c.Linker.Position),
			}
		}
	}

	parts := make([]string, len(buf))
	for i, s := range buf {
		parts[i] = s.text
	}

	return strings.Join(parts, separator), nil
}
