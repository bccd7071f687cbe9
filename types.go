package jsoncodable

import (
	"go.uber.org/zap"

	"github.com/reoring/jsoncodable/internal/pathexpr"
)

// NullPolicy controls how absent optional values are written.
type NullPolicy int

const (
	OmitNulls   NullPolicy = iota // Drop the key entirely.
	EncodeNulls                   // Write the key with a JSON null.
)

// DecodeOptions bundles decode-time options. The zero value is ready to use.
type DecodeOptions struct {
	// Logger receives debug events for elements dropped by best-effort
	// collections. Nil disables logging.
	Logger *zap.Logger
	// OnDrop is called once per element dropped by a best-effort collection.
	OnDrop func(Issue)
}

// EncodeOptions bundles encode-time options. The zero value omits absent
// optionals and expands dotted paths.
type EncodeOptions struct {
	Nulls NullPolicy
	// LiteralKeys disables dot expansion so "a.b" is written as a single key.
	LiteralKeys bool
}

// Scope carries the location and options of a single decode or encode step.
// Shapes receive a Scope and pass derived scopes to their children.
type Scope struct {
	path string
	dec  *DecodeOptions
	enc  *EncodeOptions
}

// Path returns the path expression of the value being processed.
func (s Scope) Path() string { return s.path }

// Key returns a child scope for an object member.
func (s Scope) Key(k string) Scope { s.path = pathexpr.JoinKey(s.path, k); return s }

// Index returns a child scope for an array element.
func (s Scope) Index(i int) Scope { s.path = pathexpr.JoinIndex(s.path, i); return s }

// DecodeOptions returns the options of the current decode call.
func (s Scope) DecodeOptions() DecodeOptions {
	if s.dec == nil {
		return DecodeOptions{}
	}
	return *s.dec
}

// EncodeOptions returns the options of the current encode call.
func (s Scope) EncodeOptions() EncodeOptions {
	if s.enc == nil {
		return EncodeOptions{}
	}
	return *s.enc
}

// drop reports an element discarded by a best-effort collection.
func (s Scope) drop(err error) {
	iss, ok := AsIssues(err)
	if !ok {
		iss = Issues{{Path: s.path, Code: CodeInvalidValue, Message: err.Error(), Cause: err}}
	}
	opt := s.DecodeOptions()
	logger := opt.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, it := range iss {
		logger.Debug("dropped invalid element",
			zap.String("path", it.Path),
			zap.String("code", it.Code),
			zap.Error(iss),
		)
		if opt.OnDrop != nil {
			opt.OnDrop(it)
		}
	}
}

func lastDecodeOpt(opts []DecodeOptions) *DecodeOptions {
	var opt DecodeOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return &opt
}

func lastEncodeOpt(opts []EncodeOptions) *EncodeOptions {
	var opt EncodeOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return &opt
}
