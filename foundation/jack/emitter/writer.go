// File: writer.go
// Title: Tag Writer
// Description: Writer renders Open, Close and Leaf calls as indented XML
//              elements and enforces correct nesting.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-14
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-14 v0.1.0: Initial implementation

package emitter

import (
	"fmt"
	"io"
	"strings"

	jcerror "github.com/msto63/jackc/foundation/core/error"
)

// DefaultIndent is used when no indent is configured
const DefaultIndent = "  "

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape replaces <, > and & with their entities. Nothing else is escaped.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Writer writes nested elements to an io.Writer. The first error, from the
// underlying writer or from misuse, is sticky and returned by every later
// call.
type Writer struct {
	out    io.Writer
	indent string
	open   []string
	err    error
}

// NewWriter creates a writer. An empty indent writes every element flush
// left.
func NewWriter(out io.Writer, indent string) *Writer {
	return &Writer{out: out, indent: indent}
}

// Open starts a non-terminal element
func (w *Writer) Open(tag string) error {
	if err := w.checkTag("Open", tag); err != nil {
		return err
	}
	w.line("<" + tag + ">")
	w.open = append(w.open, tag)
	return w.err
}

// Close ends the innermost open element, which must be tag
func (w *Writer) Close(tag string) error {
	if w.err != nil {
		return w.err
	}
	n := len(w.open)
	if n == 0 {
		return w.fail(jcerror.Newf("close </%s> with no open element", tag).
			WithDetail("tag", tag))
	}
	if w.open[n-1] != tag {
		return w.fail(jcerror.Newf("close </%s> does not match open <%s>", tag, w.open[n-1]).
			WithDetail("tag", tag).
			WithDetail("open", w.open[n-1]))
	}

	w.open = w.open[:n-1]
	w.line("</" + tag + ">")
	return w.err
}

// Leaf writes a terminal element: <tag> content </tag>
func (w *Writer) Leaf(tag, content string) error {
	if err := w.checkTag("Leaf", tag); err != nil {
		return err
	}
	w.line("<" + tag + "> " + Escape(content) + " </" + tag + ">")
	return w.err
}

// Finish fails if any element is still open
func (w *Writer) Finish() error {
	if w.err != nil {
		return w.err
	}
	if n := len(w.open); n > 0 {
		return w.fail(jcerror.Newf("%d element(s) still open, innermost <%s>", n, w.open[n-1]).
			WithDetail("open", strings.Join(w.open, "/")))
	}
	return nil
}

// Depth returns the number of open elements
func (w *Writer) Depth() int {
	return len(w.open)
}

func (w *Writer) checkTag(op, tag string) error {
	if w.err != nil {
		return w.err
	}
	if tag == "" || strings.ContainsAny(tag, "<>&/ \t\n\"'") {
		return w.fail(jcerror.Newf("%s: invalid tag %q", op, tag).WithDetail("tag", tag))
	}
	return nil
}

func (w *Writer) line(s string) {
	if w.err != nil {
		return
	}
	text := strings.Repeat(w.indent, len(w.open)) + s + "\n"
	if _, err := io.WriteString(w.out, text); err != nil {
		w.err = jcerror.Wrap(err, "write output").
			WithCode(jcerror.CodeIOError).
			WithOperation("emitter.write")
	}
}

func (w *Writer) fail(err *jcerror.Error) error {
	w.err = err.WithCode(jcerror.CodeEmit).WithOperation("emitter.Writer")
	return w.err
}

// String describes the writer state for debugging
func (w *Writer) String() string {
	return fmt.Sprintf("emitter.Writer{open: %v}", w.open)
}
