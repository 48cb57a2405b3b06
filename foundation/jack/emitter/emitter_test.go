// File: emitter_test.go
// Title: Emitter Tests
// Description: Tests for escaping, nesting checks, tree and token document
//              rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-14
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-14 v0.1.0: Initial implementation

package emitter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	jcerror "github.com/msto63/jackc/foundation/core/error"
	"github.com/msto63/jackc/foundation/jack/ast"
	"github.com/msto63/jackc/foundation/jack/token"
)

func TestEscape(t *testing.T) {
	tests := map[string]string{
		"<":             "&lt;",
		">":             "&gt;",
		"&":             "&amp;",
		"a < b & c > d": "a &lt; b &amp; c &gt; d",
		`"quoted" 'x'`:  `"quoted" 'x'`,
		"&amp;":         "&amp;amp;",
		"plain":         "plain",
	}
	for in, want := range tests {
		if got := Escape(in); got != want {
			t.Errorf("Escape(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWriter_Nesting(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, "  ")

	steps := []error{
		w.Open("term"),
		w.Leaf("symbol", "<"),
		w.Open("expression"),
		w.Leaf("identifier", "x"),
		w.Close("expression"),
		w.Close("term"),
		w.Finish(),
	}
	for i, err := range steps {
		if err != nil {
			t.Fatalf("step %d error = %v", i, err)
		}
	}

	want := "<term>\n" +
		"  <symbol> &lt; </symbol>\n" +
		"  <expression>\n" +
		"    <identifier> x </identifier>\n" +
		"  </expression>\n" +
		"</term>\n"
	if buf.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriter_Misuse(t *testing.T) {
	tests := []struct {
		name    string
		run     func(w *Writer) error
		wantMsg string
	}{
		{
			name:    "close without open",
			run:     func(w *Writer) error { return w.Close("class") },
			wantMsg: "close </class> with no open element",
		},
		{
			name: "mismatched close",
			run: func(w *Writer) error {
				_ = w.Open("class")
				_ = w.Open("statements")
				return w.Close("class")
			},
			wantMsg: "close </class> does not match open <statements>",
		},
		{
			name: "finish with open elements",
			run: func(w *Writer) error {
				_ = w.Open("class")
				_ = w.Open("subroutineDec")
				return w.Finish()
			},
			wantMsg: "2 element(s) still open, innermost <subroutineDec>",
		},
		{
			name:    "empty tag",
			run:     func(w *Writer) error { return w.Leaf("", "x") },
			wantMsg: "invalid tag",
		},
		{
			name:    "tag with markup",
			run:     func(w *Writer) error { return w.Open("a><b") },
			wantMsg: "invalid tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(&bytes.Buffer{}, "")
			err := tt.run(w)
			if !jcerror.HasCode(err, jcerror.CodeEmit) {
				t.Fatalf("error = %v, want JACK_EMIT", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
			if again := w.Leaf("symbol", ";"); again != err {
				t.Errorf("errors must be sticky, got %v", again)
			}
		})
	}
}

type failingWriter struct{ after int }

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.after == 0 {
		return 0, errors.New("disk full")
	}
	f.after--
	return len(p), nil
}

func TestWriter_OutputError(t *testing.T) {
	w := NewWriter(&failingWriter{after: 1}, "")
	if err := w.Open("tokens"); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	err := w.Leaf("symbol", "{")
	if !jcerror.HasCode(err, jcerror.CodeIOError) || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Leaf() error = %v, want IO_ERROR", err)
	}
	if w.Finish() != err {
		t.Error("Finish() must return the sticky error")
	}
}

func TestWriteTree(t *testing.T) {
	term := ast.NewElement(ast.Term, token.Position{})
	term.AppendToken(token.Token{Kind: token.KindStringConst, Text: "a & b"})
	expr := ast.NewElement(ast.Expression, token.Position{})
	expr.Append(term)
	expr.AppendToken(token.Token{Kind: token.KindSymbol, Symbol: '>'})
	one := ast.NewElement(ast.Term, token.Position{})
	one.AppendToken(token.Token{Kind: token.KindIntConst, Int: 1})
	expr.Append(one)
	list := ast.NewElement(ast.ExpressionList, token.Position{})

	root := ast.NewElement(ast.ReturnStatement, token.Position{})
	root.AppendToken(token.Token{Kind: token.KindKeyword, Keyword: token.Return})
	root.Append(expr, list)
	root.AppendToken(token.Token{Kind: token.KindSymbol, Symbol: ';'})

	var buf bytes.Buffer
	if err := WriteTree(&buf, root, "  "); err != nil {
		t.Fatalf("WriteTree() error = %v", err)
	}

	want := `<returnStatement>
  <keyword> return </keyword>
  <expression>
    <term>
      <stringConstant> a &amp; b </stringConstant>
    </term>
    <symbol> &gt; </symbol>
    <term>
      <integerConstant> 1 </integerConstant>
    </term>
  </expression>
  <expressionList>
  </expressionList>
  <symbol> ; </symbol>
</returnStatement>
`
	if buf.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", buf.String(), want)
	}

	opens := strings.Count(buf.String(), "<term>") + strings.Count(buf.String(), "<expression>")
	closes := strings.Count(buf.String(), "</term>") + strings.Count(buf.String(), "</expression>")
	if opens != closes {
		t.Errorf("opens %d != closes %d", opens, closes)
	}
}

func TestWriteTokens(t *testing.T) {
	tokens := []token.Token{
		{Kind: token.KindKeyword, Keyword: token.If},
		{Kind: token.KindSymbol, Symbol: '('},
		{Kind: token.KindIdentifier, Text: "x"},
		{Kind: token.KindSymbol, Symbol: '<'},
		{Kind: token.KindIntConst, Int: 153},
		{Kind: token.KindSymbol, Symbol: ')'},
		{Kind: token.KindStringConst, Text: "negative"},
	}

	var buf bytes.Buffer
	if err := WriteTokens(&buf, tokens, ""); err != nil {
		t.Fatalf("WriteTokens() error = %v", err)
	}

	want := `<tokens>
<keyword> if </keyword>
<symbol> ( </symbol>
<identifier> x </identifier>
<symbol> &lt; </symbol>
<integerConstant> 153 </integerConstant>
<symbol> ) </symbol>
<stringConstant> negative </stringConstant>
</tokens>
`
	if buf.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", buf.String(), want)
	}

	buf.Reset()
	if err := WriteTokens(&buf, nil, DefaultIndent); err != nil || buf.String() != "<tokens>\n</tokens>\n" {
		t.Errorf("empty token list = %q, %v", buf.String(), err)
	}
}
