// File: jack_test.go
// Title: Jack Engine Tests
// Description: Tests for analysis and token runs, error annotation, output
//              rendering and concurrent use of one engine.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-15
// Modified: 2025-02-18
//
// Change History:
// - 2025-02-15 v0.1.0: Initial implementation
// - 2025-02-18 v0.1.1: Render-before-write cases

package jack

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	jcerror "github.com/msto63/jackc/foundation/core/error"
	jclog "github.com/msto63/jackc/foundation/core/log"
	"github.com/msto63/jackc/foundation/jack/ast"
	"github.com/msto63/jackc/foundation/jack/token"
)

const mainJack = `class Main {
    function void main() {
        var Array a;
        var int i, sum;
        let a = Array.new(3);
        let i = 0;
        while (i < 3) {
            let a[i] = i * 2;
            let sum = sum + a[i];
            let i = i + 1;
        }
        if (sum > 5) { do Output.printString("big & <ok>"); }
        return;
    }
}
`

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = jclog.Discard()
	}
	e, err := NewEngine(opts)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func TestAnalyze(t *testing.T) {
	e := newTestEngine(t, Options{})

	result, err := e.Analyze("Main.jack", mainJack)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if _, err := uuid.Parse(result.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID", result.RunID)
	}
	if result.Name != "Main.jack" || result.Bytes != len(mainJack) {
		t.Errorf("Name = %q, Bytes = %d", result.Name, result.Bytes)
	}
	if result.Tree.Production != ast.Class {
		t.Errorf("root = %s", result.Tree.Production)
	}
	if !result.Stats.Balanced() || result.Stats.Elements == 0 {
		t.Errorf("Stats = %+v", result.Stats)
	}
	if result.Stats.ByProduction[ast.LetStatement] != 5 {
		t.Errorf("letStatement count = %d, want 5", result.Stats.ByProduction[ast.LetStatement])
	}
}

func TestAnalyze_ErrorsCarryFile(t *testing.T) {
	e := newTestEngine(t, Options{})

	tests := []struct {
		src  string
		code jcerror.Code
	}{
		{"class { }", jcerror.CodeSyntax},
		{"class Main { field String s; method void m() { let s = \"abc; } }", jcerror.CodeLexical},
	}
	for _, tt := range tests {
		result, err := e.Analyze("Bad.jack", tt.src)
		if result != nil {
			t.Errorf("Analyze(%q) returned a partial result", tt.src)
		}
		jcErr, ok := jcerror.As(err)
		if !ok || jcErr.Code() != tt.code {
			t.Fatalf("Analyze(%q) error = %v, want %s", tt.src, err, tt.code)
		}
		if file, _ := jcErr.Detail("file"); file != "Bad.jack" {
			t.Errorf("file detail = %v", file)
		}
	}
}

func TestAnalyze_SourceLimit(t *testing.T) {
	e := newTestEngine(t, Options{MaxSourceBytes: 10})
	_, err := e.Analyze("Big.jack", "class Main { }")
	if !jcerror.HasCode(err, jcerror.CodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
	_, err = e.Tokenize("Big.jack", "class Main { }")
	if !jcerror.HasCode(err, jcerror.CodeInvalidInput) {
		t.Errorf("Tokenize error = %v, want INVALID_INPUT", err)
	}
}

func TestNewEngine_RejectsNegativeLimits(t *testing.T) {
	_, err := NewEngine(Options{MaxDepth: -1})
	if !jcerror.HasCode(err, jcerror.CodeInvalidConfig) {
		t.Errorf("NewEngine() error = %v, want INVALID_CONFIG", err)
	}
}

func TestWriteTree(t *testing.T) {
	e := newTestEngine(t, Options{})
	result, err := e.Analyze("Main.jack", mainJack)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	var buf bytes.Buffer
	if err := e.WriteTree(&buf, result); err != nil {
		t.Fatalf("WriteTree() error = %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<class>\n  <keyword> class </keyword>\n  <identifier> Main </identifier>\n") {
		t.Errorf("unexpected document start:\n%s", out[:120])
	}
	if !strings.HasSuffix(out, "</class>\n") {
		t.Error("document must end with </class>")
	}
	for _, want := range []string{
		"<stringConstant> big &amp; &lt;ok&gt; </stringConstant>",
		"<symbol> &lt; </symbol>",
		"<symbol> &gt; </symbol>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("document missing %q", want)
		}
	}

	var opens, closes int
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "</"):
			closes++
		case !strings.Contains(line, "</"):
			opens++
		}
	}
	if opens != closes || opens != result.Stats.Elements {
		t.Errorf("opens = %d, closes = %d, elements = %d", opens, closes, result.Stats.Elements)
	}
}

func TestTokenizeAndWriteTokens(t *testing.T) {
	indent := ""
	e := newTestEngine(t, Options{Indent: &indent})

	result, err := e.Tokenize("Main.jack", "if (x < 0) { let s = \"neg\"; }")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	counts := result.KindCounts()
	if counts[token.KindKeyword] != 2 || counts[token.KindSymbol] != 7 || counts[token.KindStringConst] != 1 {
		t.Errorf("KindCounts() = %v", counts)
	}

	var buf bytes.Buffer
	if err := e.WriteTokens(&buf, result); err != nil {
		t.Fatalf("WriteTokens() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "<tokens>" || lines[len(lines)-1] != "</tokens>" {
		t.Errorf("document = %s", buf.String())
	}
	if len(lines) != len(result.Tokens)+2 {
		t.Errorf("got %d lines for %d tokens", len(lines), len(result.Tokens))
	}
	if lines[4] != "<symbol> &lt; </symbol>" {
		t.Errorf("lines[4] = %q", lines[4])
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestWriteTree_OutputError(t *testing.T) {
	e := newTestEngine(t, Options{})
	result, err := e.Analyze("Main.jack", "class Main { }")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	err = e.WriteTree(brokenWriter{}, result)
	if !jcerror.HasCode(err, jcerror.CodeIOError) {
		t.Errorf("WriteTree() error = %v, want IO_ERROR", err)
	}
}

func TestAnalyze_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := jclog.NewWithConfig(jclog.Config{Level: jclog.LevelDebug, Format: jclog.FormatJSON, Output: &buf})
	e := newTestEngine(t, Options{Logger: logger})

	result, err := e.Analyze("Main.jack", "class Main { }")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"message":"analyze completed"`) {
		t.Errorf("no completion entry in:\n%s", out)
	}
	if !strings.Contains(out, `"correlation_id":"`+result.RunID+`"`) {
		t.Errorf("entries not tagged with run ID %s", result.RunID)
	}
}

func TestAnalyze_FailureLogging(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantLevel string
	}{
		{"syntax error", "class Main { function }", "info"},
		{"lexical error", "class Main { let x = 1 # 2; }", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := jclog.NewWithConfig(jclog.Config{Level: jclog.LevelInfo, Format: jclog.FormatJSON, Output: &buf})
			e := newTestEngine(t, Options{Logger: logger})

			if _, err := e.Analyze("Main.jack", tt.src); err == nil {
				t.Fatal("Analyze() error = nil")
			}

			out := buf.String()
			if !strings.Contains(out, `"message":"analyze failed"`) {
				t.Fatalf("no failure entry in:\n%s", out)
			}
			if !strings.Contains(out, `"level":"`+tt.wantLevel+`"`) {
				t.Errorf("failure entry not at %s level:\n%s", tt.wantLevel, out)
			}
			if !strings.Contains(out, `"logger":"jack-engine"`) {
				t.Errorf("failure entry not named jack-engine:\n%s", out)
			}
			if strings.Contains(out, "analyze completed") {
				t.Errorf("failed run also logged completion:\n%s", out)
			}
		})
	}
}

func TestAnalyze_CheckpointAtTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := jclog.NewWithConfig(jclog.Config{Level: jclog.LevelTrace, Format: jclog.FormatJSON, Output: &buf})
	e := newTestEngine(t, Options{Logger: logger})

	if _, err := e.Analyze("Main.jack", "class Main { }"); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"message":"analyze checkpoint: parsed"`) {
		t.Errorf("no parsed checkpoint in:\n%s", buf.String())
	}
}

func TestEngine_ConcurrentUse(t *testing.T) {
	e := newTestEngine(t, Options{})

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			src := fmt.Sprintf("class C%d { field int f%d; }", n, n)
			result, err := e.Analyze(fmt.Sprintf("C%d.jack", n), src)
			if err != nil {
				errs <- err
				return
			}
			if name := result.Tree.Terminals()[1].Token.Text; name != fmt.Sprintf("C%d", n) {
				errs <- fmt.Errorf("run %d parsed class %s", n, name)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
