// Package markup provides the writer used by the HTML components to build
// templ components with the templ runtime API.
package markup

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Writer accumulates HTML output and remembers the first write error.
type Writer struct {
	w   io.Writer
	err error
}

// Component adapts fn into a templ component.
func Component(fn func(ctx context.Context, m *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &Writer{w: w}
		fn(ctx, m)
		return m.err
	})
}

// Raw writes trusted markup as-is.
func (m *Writer) Raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// Rawf formats trusted markup. String, Stringer and error arguments are
// escaped; other values keep their type so numeric verbs still apply.
func (m *Writer) Rawf(format string, args ...interface{}) {
	escaped := make([]interface{}, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case string:
			escaped[i] = templ.EscapeString(v)
		case error:
			escaped[i] = templ.EscapeString(v.Error())
		case fmt.Stringer:
			escaped[i] = templ.EscapeString(v.String())
		default:
			escaped[i] = v
		}
	}
	m.Raw(fmt.Sprintf(format, escaped...))
}

// Text writes escaped text.
func (m *Writer) Text(s string) {
	m.Raw(templ.EscapeString(s))
}

// Textf formats and writes escaped text.
func (m *Writer) Textf(format string, args ...interface{}) {
	m.Text(fmt.Sprintf(format, args...))
}

// Attr writes ` name="value"` with the value escaped.
func (m *Writer) Attr(name, value string) {
	m.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// URLAttr writes a sanitized URL attribute.
func (m *Writer) URLAttr(name, url string) {
	m.Attr(name, string(templ.URL(url)))
}

// BoolAttr writes name when on is true.
func (m *Writer) BoolAttr(name string, on bool) {
	if on {
		m.Raw(" " + name)
	}
}

// Render writes a child component.
func (m *Writer) Render(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

// Classes joins the non-empty class names.
func Classes(names ...string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}

// If returns class when cond is true.
func If(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
