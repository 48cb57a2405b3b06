// File: jack.go
// Title: Jack Engine
// Description: Engine, options and results for analysis and flat token runs.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-15
// Modified: 2025-02-18
//
// Change History:
// - 2025-02-15 v0.1.0: Initial implementation
// - 2025-02-18 v0.1.1: Render into a buffer before writing

package jack

import (
	"bytes"
	"io"
	"time"

	"github.com/google/uuid"

	jcerror "github.com/msto63/jackc/foundation/core/error"
	jclog "github.com/msto63/jackc/foundation/core/log"
	"github.com/msto63/jackc/foundation/jack/ast"
	"github.com/msto63/jackc/foundation/jack/emitter"
	"github.com/msto63/jackc/foundation/jack/parser"
	"github.com/msto63/jackc/foundation/jack/token"
	"github.com/msto63/jackc/foundation/jack/tokenizer"
)

// Options configures the engine
type Options struct {
	// Logger for engine operations (optional, defaults to the default logger)
	Logger *jclog.Logger

	// MaxSourceBytes limits the source size (default: 1 MiB)
	MaxSourceBytes int

	// MaxDepth limits parse tree nesting (default: 1000)
	MaxDepth int

	// Indent is repeated once per nesting level in XML output (default: two spaces)
	Indent *string
}

// Engine runs analyses. It keeps no state between calls.
type Engine struct {
	logger  *jclog.Logger
	options Options
	indent  string
}

// Result is the outcome of a successful analysis
type Result struct {
	RunID    string
	Name     string
	Tree     *ast.Element
	Stats    ast.Stats
	Bytes    int
	Duration time.Duration
}

// TokenResult is the outcome of a successful flat token run
type TokenResult struct {
	RunID    string
	Name     string
	Tokens   []token.Token
	Bytes    int
	Duration time.Duration
}

// KindCounts returns the number of tokens per kind
func (r *TokenResult) KindCounts() map[token.Kind]int {
	counts := make(map[token.Kind]int)
	for _, tok := range r.Tokens {
		counts[tok.Kind]++
	}
	return counts
}

// NewEngine creates an engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	options := Options{
		Logger:         jclog.GetDefault(),
		MaxSourceBytes: parser.DefaultMaxInputLength,
		MaxDepth:       parser.DefaultMaxDepth,
	}
	indent := emitter.DefaultIndent

	if len(opts) > 0 {
		provided := opts[0]
		if provided.MaxSourceBytes < 0 || provided.MaxDepth < 0 {
			return nil, jcerror.New("limits must not be negative").
				WithCode(jcerror.CodeInvalidConfig).
				WithOperation("jack.NewEngine").
				WithDetail("max_source_bytes", provided.MaxSourceBytes).
				WithDetail("max_depth", provided.MaxDepth)
		}
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxSourceBytes > 0 {
			options.MaxSourceBytes = provided.MaxSourceBytes
		}
		if provided.MaxDepth > 0 {
			options.MaxDepth = provided.MaxDepth
		}
		if provided.Indent != nil {
			indent = *provided.Indent
		}
	}

	return &Engine{
		logger:  options.Logger.WithName("jack-engine"),
		options: options,
		indent:  indent,
	}, nil
}

// Analyze tokenizes and parses src. name identifies the source in logs and
// error details.
func (e *Engine) Analyze(name, src string) (*Result, error) {
	runID := uuid.NewString()
	logger := e.logger.WithCorrelationID(runID).WithFields(jclog.Fields{"file": name})
	timer := logger.StartTimer("analyze").WithField("bytes", len(src))

	logger.Debug("Starting analysis")

	if err := e.checkSize(name, src); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	p := parser.New(parser.Options{
		Logger:         logger,
		MaxDepth:       e.options.MaxDepth,
		MaxInputLength: e.options.MaxSourceBytes,
	})
	tree, err := p.Parse(src)
	if err != nil {
		err = withFile(err, name)
		timer.StopWithError(err)
		return nil, err
	}
	timer.Checkpoint("parsed")

	stats := ast.Collect(tree)
	if !stats.Balanced() {
		err := jcerror.Newf("unbalanced parse tree: %d opened, %d closed", stats.Opens, stats.Closes).
			WithCode(jcerror.CodeInternal).
			WithOperation("jack.Analyze").
			WithDetail("file", name)
		timer.StopWithError(err)
		return nil, err
	}
	if problems := ast.ValidateTree(tree); len(problems) > 0 {
		err := jcerror.Newf("malformed parse tree: %v", problems[0]).
			WithCode(jcerror.CodeInternal).
			WithOperation("jack.Analyze").
			WithDetail("file", name).
			WithDetail("problems", len(problems))
		timer.StopWithError(err)
		return nil, err
	}

	elapsed := timer.WithFields(jclog.Fields{
		"elements":  stats.Elements,
		"terminals": stats.Terminals,
		"max_depth": stats.MaxDepth,
	}).Stop()

	return &Result{
		RunID:    runID,
		Name:     name,
		Tree:     tree,
		Stats:    stats,
		Bytes:    len(src),
		Duration: elapsed,
	}, nil
}

// Tokenize returns every token of src
func (e *Engine) Tokenize(name, src string) (*TokenResult, error) {
	runID := uuid.NewString()
	logger := e.logger.WithCorrelationID(runID).WithFields(jclog.Fields{"file": name})
	timer := logger.StartTimer("tokenize").WithField("bytes", len(src))

	if err := e.checkSize(name, src); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	tokens, err := tokenizer.Tokenize(src)
	if err != nil {
		err = withFile(err, name)
		timer.StopWithError(err)
		return nil, err
	}

	elapsed := timer.WithField("tokens", len(tokens)).Stop()
	return &TokenResult{
		RunID:    runID,
		Name:     name,
		Tokens:   tokens,
		Bytes:    len(src),
		Duration: elapsed,
	}, nil
}

// RenderTree returns the XML document for an analysis result
func (e *Engine) RenderTree(r *Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := emitter.WriteTree(&buf, r.Tree, e.indent); err != nil {
		return nil, withFile(err, r.Name)
	}
	return buf.Bytes(), nil
}

// RenderTokens returns the XML document for a token result
func (e *Engine) RenderTokens(r *TokenResult) ([]byte, error) {
	var buf bytes.Buffer
	if err := emitter.WriteTokens(&buf, r.Tokens, e.indent); err != nil {
		return nil, withFile(err, r.Name)
	}
	return buf.Bytes(), nil
}

// WriteTree renders the tree completely before writing anything to out, so
// a failed render leaves out untouched.
func (e *Engine) WriteTree(out io.Writer, r *Result) error {
	doc, err := e.RenderTree(r)
	if err != nil {
		return err
	}
	return write(out, doc, r.Name)
}

// WriteTokens renders the token document completely before writing it
func (e *Engine) WriteTokens(out io.Writer, r *TokenResult) error {
	doc, err := e.RenderTokens(r)
	if err != nil {
		return err
	}
	return write(out, doc, r.Name)
}

func (e *Engine) checkSize(name, src string) error {
	if len(src) <= e.options.MaxSourceBytes {
		return nil
	}
	return jcerror.Newf("%s exceeds maximum source size: %d > %d bytes", name, len(src), e.options.MaxSourceBytes).
		WithCode(jcerror.CodeInvalidInput).
		WithOperation("jack.checkSize").
		WithDetail("file", name).
		WithDetail("bytes", len(src))
}

func write(out io.Writer, doc []byte, name string) error {
	if _, err := out.Write(doc); err != nil {
		return jcerror.Wrap(err, "write "+name).
			WithCode(jcerror.CodeIOError).
			WithOperation("jack.write")
	}
	return nil
}

// withFile records the source name on structured errors
func withFile(err error, name string) error {
	if jcErr, ok := jcerror.As(err); ok {
		jcErr.WithDetail("file", name)
	}
	return err
}
