package html5

import (
	"github.com/html5go/html5/treebuilder"
)

// config holds parser configuration.
type config struct {
	encoding        string
	fragmentContext *treebuilder.FragmentContext
	iframeSrcdoc    bool
	strict          bool
	collectErrors   bool
	xmlCoercion     bool
	tabStopSize     int
	maxErrors       int
}

// newConfig creates a new config with defaults and applies options.
func newConfig(opts ...Option) *config {
	cfg := &config{
		tabStopSize: 8,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures the parser behavior.
type Option func(*config)

// WithEncoding sets the character encoding to use for parsing.
// This overrides automatic encoding detection.
//
// Common values: "utf-8", "windows-1252", "iso-8859-1"
func WithEncoding(enc string) Option {
	return func(c *config) {
		c.encoding = enc
	}
}

// WithFragment sets the parsing context for fragment parsing.
// This is typically used internally by ParseFragment.
func WithFragment(tagName string) Option {
	return func(c *config) {
		fc := treebuilder.NewFragmentContext(tagName)
		c.fragmentContext = &fc
	}
}

// WithFragmentNS sets the parsing context with a specific namespace.
// Use this for parsing SVG or MathML fragments.
func WithFragmentNS(tagName, namespace string) Option {
	return func(c *config) {
		c.fragmentContext = &treebuilder.FragmentContext{
			TagName:   tagName,
			Namespace: namespace,
		}
	}
}

// WithIframeSrcdoc enables iframe srcdoc parsing mode.
// In this mode, the parser treats the input as the srcdoc attribute value.
func WithIframeSrcdoc() Option {
	return func(c *config) {
		c.iframeSrcdoc = true
	}
}

// WithStrictMode enables strict parsing mode.
// In this mode, the first parse error causes Parse to return an error.
// By default, parse errors are handled according to the HTML5 spec
// and parsing continues.
func WithStrictMode() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithCollectErrors enables error collection mode.
// Parse errors are collected and returned as a ParseErrors error
// (which can be unwrapped to get individual errors).
// Without this option, parse errors are silently recovered from.
func WithCollectErrors() Option {
	return func(c *config) {
		c.collectErrors = true
	}
}

// WithXMLCoercion enables XHTML5/XML-coercion quirks in the tokenizer
// (e.g. treating "/" differently inside tags). Most callers parsing regular
// HTML documents should leave this disabled.
func WithXMLCoercion() Option {
	return func(c *config) {
		c.xmlCoercion = true
	}
}

// WithTabStopSize sets the column width used when the tokenizer encounters a
// tab character while tracking line/column positions for error reporting.
// The default is 8, matching most terminal and editor conventions.
func WithTabStopSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.tabStopSize = n
		}
	}
}

// WithMaxErrors bounds how many parse errors are recorded before the parser
// stops adding new ones. Parsing itself always runs to completion and still
// returns a full document; this only caps the size of the returned error
// list. Zero (the default) means unlimited.
func WithMaxErrors(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxErrors = n
		}
	}
}
