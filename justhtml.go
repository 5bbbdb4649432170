// Package html5 provides a pure Go HTML5 parser implementing the WHATWG HTML5 specification.
//
// html5 is a complete HTML5 parser that handles malformed HTML exactly as browsers do.
// It passes all 9,000+ tests in the official html5lib-tests suite.
//
// # Basic Usage
//
//	doc, err := html5.Parse("<html><body><p>Hello!</p></body></html>")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Query with CSS selectors
//	for _, p := range doc.Query("p") {
//		fmt.Println(p.Text())
//	}
//
// # Features
//
//   - 100% HTML5 compliant (WHATWG Living Standard)
//   - CSS selector support
//   - Streaming API for memory-efficient processing
//   - Encoding detection per HTML5 spec
//   - Fragment parsing for innerHTML-style use cases
//
// For more information, see https://github.com/html5go/html5
package html5

import (
	"sort"

	"github.com/html5go/html5/dom"
	"github.com/html5go/html5/encoding"
	htmlerrors "github.com/html5go/html5/errors"
	_ "github.com/html5go/html5/selector" // registers CSS selector support on dom.Element.Query
	"github.com/html5go/html5/tokenizer"
	"github.com/html5go/html5/treebuilder"
)

// Version is the current version of html5.
const Version = "0.1.0-dev"

// Parse parses an HTML string and returns a Document.
//
// The parser handles malformed HTML according to the WHATWG HTML5 specification,
// ensuring the same behavior as web browsers.
//
// Example:
//
//	doc, err := html5.Parse("<html><body><p>Hello!</p></body></html>")
//	if err != nil {
//		// err contains parse errors if WithCollectErrors() was used
//	}
func Parse(html string, opts ...Option) (*dom.Document, error) {
	cfg := newConfig(opts...)
	return parse(html, cfg)
}

// ParseBytes parses HTML from a byte slice with automatic encoding detection.
//
// The encoding is chosen in this order:
//  1. An encoding given via WithEncoding, if it names a known encoding
//     (a BOM in the input is then skipped but does not override it)
//  2. BOM (Byte Order Mark)
//  3. <meta charset> or <meta http-equiv="Content-Type">
//  4. Fallback to windows-1252
//
// Example:
//
//	data, _ := os.ReadFile("page.html")
//	doc, err := html5.ParseBytes(data)
func ParseBytes(html []byte, opts ...Option) (*dom.Document, error) {
	cfg := newConfig(opts...)

	// Detect and decode encoding
	decoded, enc, err := encoding.Decode(html, cfg.encoding)
	if err != nil {
		return nil, err
	}
	_ = enc // TODO: store detected encoding in document

	return parse(decoded, cfg)
}

// ParseFragment parses an HTML fragment in a specific context element.
//
// This is equivalent to setting element.innerHTML in browsers. The context
// determines how the fragment is parsed (e.g., parsing "<td>" in a "tr" context
// vs. in a "div" context produces different results).
//
// Example:
//
//	nodes, err := html5.ParseFragment("<td>Cell</td>", "tr")
func ParseFragment(html string, context string, opts ...Option) ([]*dom.Element, error) {
	cfg := newConfig(opts...)
	fc := treebuilder.NewFragmentContext(context)
	cfg.fragmentContext = &fc
	return parseFragment(html, cfg)
}

// parse is the internal parsing implementation.
func parse(html string, cfg *config) (*dom.Document, error) {
	tokOpts := tokenizer.Options{DiscardBOM: true, XMLCoercion: cfg.xmlCoercion, TabStopSize: cfg.tabStopSize}
	tok := tokenizer.NewWithOptions(html, tokOpts)
	tb := treebuilder.New(tok)
	if cfg.iframeSrcdoc {
		tb.SetIframeSrcdoc(true)
	}

	for {
		tok.SetAllowCDATA(tb.AllowCDATA())
		tt := tok.Next()
		tb.ProcessToken(tt)
		if tt.Type == tokenizer.EOF {
			break
		}
	}

	if cfg.strict || cfg.collectErrors {
		parseErrs := mergeErrors(tok.Errors(), tb.Errors(), cfg.maxErrors)
		if len(parseErrs) > 0 && cfg.strict {
			return nil, parseErrs[0]
		}
		if len(parseErrs) > 0 && cfg.collectErrors {
			return tb.Document(), htmlerrors.ParseErrors(parseErrs)
		}
	}

	return tb.Document(), nil
}

// parseFragment is the internal fragment parsing implementation.
func parseFragment(html string, cfg *config) ([]*dom.Element, error) {
	tokOpts := tokenizer.Options{DiscardBOM: true, XMLCoercion: cfg.xmlCoercion, TabStopSize: cfg.tabStopSize}
	tok := tokenizer.NewWithOptions(html, tokOpts)
	tb := treebuilder.NewFragment(tok, cfg.fragmentContext)
	if cfg.iframeSrcdoc {
		tb.SetIframeSrcdoc(true)
	}

	for {
		tok.SetAllowCDATA(tb.AllowCDATA())
		tt := tok.Next()
		tb.ProcessToken(tt)
		if tt.Type == tokenizer.EOF {
			break
		}
	}

	if cfg.strict || cfg.collectErrors {
		parseErrs := mergeErrors(tok.Errors(), tb.Errors(), cfg.maxErrors)
		if len(parseErrs) > 0 && cfg.strict {
			return nil, parseErrs[0]
		}
		if len(parseErrs) > 0 && cfg.collectErrors {
			return tb.FragmentNodes(), htmlerrors.ParseErrors(parseErrs)
		}
	}

	return tb.FragmentNodes(), nil
}

// mergeErrors combines tokenizer-level and tree-construction-level parse
// errors in document order, stopping once maxErrors is reached (0 means
// unlimited). Parsing itself always runs to completion; this only bounds
// the size of the error list callers see.
func mergeErrors(tokErrs []tokenizer.ParseError, treeErrs []*htmlerrors.ParseError, maxErrors int) []*htmlerrors.ParseError {
	total := len(tokErrs) + len(treeErrs)
	if total == 0 {
		return nil
	}
	out := make([]*htmlerrors.ParseError, 0, total)
	for _, e := range tokErrs {
		out = append(out, &htmlerrors.ParseError{
			Code:    e.Code,
			Message: htmlerrors.Message(e.Code),
			Line:    e.Line,
			Column:  e.Column,
		})
	}
	out = append(out, treeErrs...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].Column < out[j].Column
	})
	if maxErrors > 0 && len(out) > maxErrors {
		out = out[:maxErrors]
	}
	return out
}
