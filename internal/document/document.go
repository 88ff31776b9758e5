// Package document emits the JSON-with-trailing-commas dialect used for
// capability reports: every entry, including the last one of a container,
// is followed by a comma.
package document

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// DefaultIndent is the number of spaces per nesting level in pretty output.
const DefaultIndent = 4

// Options control how a Writer renders the document.
type Options struct {
	// Indent is the number of spaces per nesting level. Negative values are
	// treated as zero.
	Indent int
	// Compact suppresses indentation and newlines, keeping only the
	// delimiters and separators.
	Compact bool
}

// Writer streams a nested document to an underlying writer. It tracks a
// single nesting depth and performs no structural validation; callers are
// responsible for balancing Start and End calls. Write errors are sticky
// and surface through Flush.
type Writer struct {
	buf     *bufio.Writer
	depth   int
	indent  int
	compact bool
}

// NewWriter returns a Writer emitting to w with the given options.
func NewWriter(w io.Writer, opts Options) *Writer {
	return &Writer{
		buf:     bufio.NewWriter(w),
		indent:  max(opts.Indent, 0),
		compact: opts.Compact,
	}
}

func (w *Writer) writeIndent() {
	if w.compact {
		return
	}
	for i := 0; i < w.depth*w.indent; i++ {
		w.buf.WriteByte(' ')
	}
}

func (w *Writer) writeTag(tag string) {
	if tag == "" {
		return
	}
	w.buf.WriteByte('"')
	w.buf.WriteString(tag)
	w.buf.WriteString(`":`)
	if !w.compact {
		w.buf.WriteByte(' ')
	}
}

func (w *Writer) newline() {
	if !w.compact {
		w.buf.WriteByte('\n')
	}
}

// StartArray opens an array entry. An empty tag opens an anonymous array.
func (w *Writer) StartArray(tag string) {
	w.writeIndent()
	w.writeTag(tag)
	w.buf.WriteByte('[')
	w.newline()
	w.depth++
}

// EndArray closes the innermost array.
func (w *Writer) EndArray() {
	w.depth--
	w.writeIndent()
	w.buf.WriteString("],")
	w.newline()
}

// StartObject opens an object entry. An empty tag opens an anonymous object.
func (w *Writer) StartObject(tag string) {
	w.writeIndent()
	w.writeTag(tag)
	w.buf.WriteByte('{')
	w.newline()
	w.depth++
}

// EndObject closes the innermost object.
func (w *Writer) EndObject() {
	w.depth--
	w.writeIndent()
	w.buf.WriteString("},")
	w.newline()
}

// Bool emits a boolean entry.
func (w *Writer) Bool(tag string, value bool) {
	w.writeIndent()
	w.writeTag(tag)
	if value {
		w.buf.WriteString("true,")
	} else {
		w.buf.WriteString("false,")
	}
	w.newline()
}

// Int emits an integer entry.
func (w *Writer) Int(tag string, value int64) {
	w.writeIndent()
	w.writeTag(tag)
	w.buf.WriteString(strconv.FormatInt(value, 10))
	w.buf.WriteByte(',')
	w.newline()
}

// Float emits a floating point entry with six significant digits, trailing
// zeros trimmed.
func (w *Writer) Float(tag string, value float64) {
	w.writeIndent()
	w.writeTag(tag)
	w.buf.WriteString(strconv.FormatFloat(value, 'g', 6, 64))
	w.buf.WriteByte(',')
	w.newline()
}

// String emits a string entry. The value is written verbatim with no
// escaping.
func (w *Writer) String(tag, value string) {
	w.writeIndent()
	w.writeTag(tag)
	w.buf.WriteByte('"')
	w.buf.WriteString(value)
	w.buf.WriteString(`",`)
	w.newline()
}

// Stringf emits a formatted string entry.
func (w *Writer) Stringf(tag, format string, args ...any) {
	w.String(tag, fmt.Sprintf(format, args...))
}

// Depth reports the current nesting depth.
func (w *Writer) Depth() int {
	return w.depth
}

// Flush writes buffered output and returns the first write error
// encountered, if any.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}
