// Package generator translates an immutable model definition into the
// textual model class consumed by a client-side data binding framework. One
// Generator is bound to one dialect profile; the translation itself is a
// pure function of the definition, so a single instance is safe for
// concurrent use.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leonidagapkin/extclassgenerator/internal/jsvalue"
	"github.com/leonidagapkin/extclassgenerator/pkg/dialect"
	"github.com/leonidagapkin/extclassgenerator/pkg/model"
)

const (
	defaultLineEnding = "\n"
	debugIndent       = "  "
	baseClass         = "Ext.data.Model"
)

// Options controls output formatting for a single Generate call. The zero
// value produces minified output with double-quoted strings.
type Options struct {
	// Debug emits pretty-printed output instead of the minified form.
	Debug bool

	// UseSingleQuotes switches string literals to single quotes.
	UseSingleQuotes bool

	// SurroundAPIWithQuotes renders CRUD method references as quoted
	// strings instead of bare expressions.
	SurroundAPIWithQuotes bool

	// LineEnding overrides the "\n" default in debug output.
	LineEnding string
}

func (o Options) lineEnding() string {
	if o.LineEnding == "" {
		return defaultLineEnding
	}
	return o.LineEnding
}

// Generator renders model definitions for a single output format.
type Generator struct {
	profile dialect.Profile
}

// New binds a generator to a dialect profile.
func New(profile dialect.Profile) *Generator {
	return &Generator{profile: profile}
}

// NewForFormat resolves the profile by name and binds a generator to it.
func NewForFormat(name string) (*Generator, error) {
	profile, err := dialect.Lookup(name)
	if err != nil {
		return nil, err
	}
	return New(profile), nil
}

// Name reports the dialect name the generator emits.
func (g *Generator) Name() string {
	return g.profile.Name
}

// ContentType reports the media type of generated output.
func (g *Generator) ContentType() string {
	return "application/javascript; charset=utf-8"
}

// Generate renders the definition. Emission order is fixed across dialects:
// idProperty, fields, validations, associations, proxy. Errors are detected
// before any output is assembled, so callers never observe partial writes.
func (g *Generator) Generate(ctx context.Context, definition *model.ModelDefinition, opts Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if definition == nil {
		return nil, errors.New("generator: model definition is required")
	}

	body, err := g.buildBody(definition, opts)
	if err != nil {
		return nil, err
	}

	writer := jsvalue.Writer{LineEnding: opts.lineEnding()}
	if opts.Debug {
		writer.Indent = debugIndent
	}
	if opts.UseSingleQuotes {
		writer.Quote = '\''
	}

	var out strings.Builder
	if definition.Name == "" {
		// Nameless definitions are sub-object targets: only the bare body
		// is wanted, without the class envelope.
		out.WriteString(writer.Write(body))
	} else {
		envelope := jsvalue.NewObject()
		envelope.Put("extend", jsvalue.String(baseClass))
		if g.profile.ClassConfig {
			envelope.Put("config", body)
		} else {
			for _, member := range body.Members() {
				envelope.Put(member.Key, member.Value)
			}
		}

		out.WriteString("Ext.define(")
		out.WriteString(writer.Write(jsvalue.String(definition.Name)))
		out.WriteByte(',')
		if opts.Debug {
			out.WriteByte(' ')
		}
		out.WriteString(writer.Write(envelope))
		out.WriteString(");")
	}
	out.WriteString(opts.lineEnding())

	return []byte(out.String()), nil
}

func (g *Generator) buildBody(definition *model.ModelDefinition, opts Options) (*jsvalue.Object, error) {
	body := jsvalue.NewObject()

	if id := definition.IDProperty; id != "" && id != model.DefaultIDProperty {
		body.Put("idProperty", jsvalue.String(id))
	}

	fields := make(jsvalue.Array, 0, definition.FieldCount())
	for _, field := range definition.Fields() {
		node, err := fieldNode(field, g.profile)
		if err != nil {
			return nil, err
		}
		fields = append(fields, node)
	}
	body.Put("fields", fields)

	if len(definition.Validations) > 0 {
		validations, err := serializeValidations(definition.Validations, g.profile)
		if err != nil {
			return nil, err
		}
		body.Put("validations", validations)
	}

	if len(definition.Associations) > 0 {
		associations, err := serializeAssociations(definition.Associations)
		if err != nil {
			return nil, err
		}
		body.Put("associations", associations)
	}

	proxy, err := buildProxy(definition, g.profile, opts)
	if err != nil {
		return nil, err
	}
	if proxy != nil {
		body.Put("proxy", proxy)
	}

	return body, nil
}

// Render is a convenience wrapper resolving the output format by name.
func Render(ctx context.Context, definition *model.ModelDefinition, format string, opts Options) ([]byte, error) {
	gen, err := NewForFormat(format)
	if err != nil {
		return nil, err
	}
	return gen.Generate(ctx, definition, opts)
}

func configError(field, format string, args ...any) error {
	return fmt.Errorf("generator: field %q: %s", field, fmt.Sprintf(format, args...))
}
