// File: lixenwraith/nestval/builder.go
package nestval

import (
	"fmt"

	"github.com/go-logr/logr"
)

// ValidatorFunc defines the signature for a function that can validate a Resolver.
// It receives the built *Resolver and should return an error if validation fails.
type ValidatorFunc func(r *Resolver) error

// Builder provides a fluent interface for building resolvers
type Builder struct {
	root       any
	hasRoot    bool
	data       []byte
	format     Format
	hasData    bool
	separator  string
	hasSep     bool
	tagName    string
	logger     logr.Logger
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a new resolver builder with "." as separator and "toml" as struct tag
func NewBuilder() *Builder {
	return &Builder{
		separator:  DefaultSeparator,
		hasSep:     true,
		tagName:    DefaultTagName,
		logger:     logr.Discard(),
		validators: make([]ValidatorFunc, 0),
	}
}

// WithRoot binds an already decoded root. It replaces any document set earlier.
func (b *Builder) WithRoot(root any) *Builder {
	b.root = root
	b.hasRoot = true
	b.data = nil
	b.hasData = false
	return b
}

// WithDocument binds a document parsed at Build time. It replaces any root set earlier.
func (b *Builder) WithDocument(data []byte, format Format) *Builder {
	b.data = data
	b.format = format
	b.hasData = true
	b.root = nil
	b.hasRoot = false
	return b
}

// WithSeparator sets the literal separator used to split paths
func (b *Builder) WithSeparator(sep string) *Builder {
	b.separator = sep
	b.hasSep = true
	return b
}

// WithoutSeparator treats every path as a single key
func (b *Builder) WithoutSeparator() *Builder {
	b.separator = ""
	b.hasSep = false
	return b
}

// WithTagName sets the struct tag consulted when traversing structs
func (b *Builder) WithTagName(tagName string) *Builder {
	if tagName == "" {
		b.err = fmt.Errorf("tag name cannot be empty")
		return b
	}
	b.tagName = tagName
	return b
}

// WithLogger sets the logger for traversal and decoding diagnostics
func (b *Builder) WithLogger(logger logr.Logger) *Builder {
	b.logger = logger
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// WithRequired adds a validator that fails when any of paths cannot be resolved
func (b *Builder) WithRequired(paths ...string) *Builder {
	required := append([]string(nil), paths...)
	return b.WithValidator(func(r *Resolver) error {
		return r.Validate(required...)
	})
}

// Build creates the Resolver with all specified options
func (b *Builder) Build() (*Resolver, error) {
	if b.err != nil {
		return nil, b.err
	}

	root := b.root
	switch {
	case b.hasData:
		doc, err := ParseDocument(b.data, b.format)
		if err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}
		root = doc
	case !b.hasRoot:
		return nil, fmt.Errorf("resolver requires a root or a document")
	}

	if err := validateRoot(root); err != nil {
		return nil, err
	}

	r := &Resolver{
		root:      root,
		separator: b.separator,
		hasSep:    b.hasSep,
		tagName:   b.tagName,
		logger:    b.logger,
	}

	r.logger.V(1).Info("resolver built",
		"separator", b.separator, "split", b.hasSep, "tag", b.tagName, "validators", len(b.validators))

	for _, validator := range b.validators {
		if err := validator(r); err != nil {
			return nil, fmt.Errorf("resolver validation failed: %w", err)
		}
	}

	return r, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Resolver {
	r, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("resolver build failed: %v", err))
	}
	return r
}
