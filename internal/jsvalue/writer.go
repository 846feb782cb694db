package jsvalue

import (
	"fmt"
	"strconv"
	"strings"
)

// Writer serializes a Value tree. The zero value writes compact output with
// double-quoted strings and "\n" line endings.
type Writer struct {
	// Indent enables pretty output when non-empty; each nesting level is
	// prefixed with one copy.
	Indent string

	// Quote is the string literal delimiter, '"' when zero.
	Quote byte

	// LineEnding separates lines in pretty output, "\n" when empty.
	LineEnding string
}

func (w Writer) quote() byte {
	if w.Quote == 0 {
		return '"'
	}
	return w.Quote
}

func (w Writer) lineEnding() string {
	if w.LineEnding == "" {
		return "\n"
	}
	return w.LineEnding
}

// Write renders the value tree to text.
func (w Writer) Write(value Value) string {
	var builder strings.Builder
	w.write(&builder, value, 0)
	return builder.String()
}

func (w Writer) write(builder *strings.Builder, value Value, depth int) {
	switch v := value.(type) {
	case String:
		builder.WriteString(w.quoteString(string(v)))
	case Number:
		builder.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 64))
	case Bool:
		builder.WriteString(strconv.FormatBool(bool(v)))
	case Raw:
		builder.WriteString(string(v))
	case *Object:
		w.writeObject(builder, v, depth)
	case Array:
		w.writeArray(builder, v, depth)
	default:
		// Unreachable for trees built by this module; keep the output
		// self-describing instead of panicking mid-render.
		fmt.Fprintf(builder, "/* unsupported %T */", value)
	}
}

func (w Writer) writeObject(builder *strings.Builder, object *Object, depth int) {
	if object == nil || object.Len() == 0 {
		builder.WriteString("{}")
		return
	}

	builder.WriteByte('{')
	for i, member := range object.Members() {
		if i > 0 {
			builder.WriteByte(',')
		}
		w.newline(builder, depth+1)
		builder.WriteString(w.key(member.Key))
		builder.WriteByte(':')
		if w.Indent != "" {
			builder.WriteByte(' ')
		}
		w.write(builder, member.Value, depth+1)
	}
	w.newline(builder, depth)
	builder.WriteByte('}')
}

func (w Writer) writeArray(builder *strings.Builder, array Array, depth int) {
	if len(array) == 0 {
		builder.WriteString("[]")
		return
	}

	builder.WriteByte('[')
	for i, element := range array {
		if i > 0 {
			builder.WriteByte(',')
		}
		w.newline(builder, depth+1)
		w.write(builder, element, depth+1)
	}
	w.newline(builder, depth)
	builder.WriteByte(']')
}

func (w Writer) newline(builder *strings.Builder, depth int) {
	if w.Indent == "" {
		return
	}
	builder.WriteString(w.lineEnding())
	for i := 0; i < depth; i++ {
		builder.WriteString(w.Indent)
	}
}

func (w Writer) key(key string) string {
	if isIdentifier(key) {
		return key
	}
	return w.quoteString(key)
}

func (w Writer) quoteString(value string) string {
	quote := w.quote()
	var builder strings.Builder
	builder.Grow(len(value) + 2)
	builder.WriteByte(quote)
	for _, r := range value {
		switch r {
		case rune(quote):
			builder.WriteByte('\\')
			builder.WriteRune(r)
		case '\\':
			builder.WriteString(`\\`)
		case '\n':
			builder.WriteString(`\n`)
		case '\r':
			builder.WriteString(`\r`)
		case '\t':
			builder.WriteString(`\t`)
		default:
			builder.WriteRune(r)
		}
	}
	builder.WriteByte(quote)
	return builder.String()
}

func isIdentifier(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
