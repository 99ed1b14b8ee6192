// Package present renders query results as console text.
package present

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/dbsmedya/gsread/internal/gainsight"
)

// ReadOnlyNotice closes every command's output.
const ReadOnlyNotice = "🛡️  100% READ-ONLY: No data was modified, only viewed"

var (
	styleTitle = color.Style{color.FgCyan, color.OpBold}
	styleOK    = color.Style{color.FgGreen}
	styleFail  = color.Style{color.FgRed, color.OpBold}
	styleHint  = color.Style{color.FgYellow}
	styleMuted = color.Style{color.FgGray}
)

// Field is one labelled line of a header.
type Field struct {
	Icon  string
	Label string
	Value string
}

// Printer writes report text to w.
type Printer struct {
	w       io.Writer
	colored bool
	redact  bool
}

// NewPrinter creates a Printer. colored enables ANSI styling; redact masks
// email addresses and domains.
func NewPrinter(w io.Writer, colored, redact bool) *Printer {
	return &Printer{w: w, colored: colored, redact: redact}
}

func (p *Printer) paint(s color.Style, text string) string {
	if !p.colored {
		return text
	}
	return s.Sprint(text)
}

func (p *Printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) println(args ...interface{}) {
	fmt.Fprintln(p.w, args...)
}

// Header prints the title, one "icon label: value" line per field and a rule
// of width '=' characters.
func (p *Printer) Header(title string, width int, fields ...Field) {
	p.println(p.paint(styleTitle, title))
	for _, f := range fields {
		p.printf("%s %s: %s\n", f.Icon, f.Label, f.Value)
	}
	p.Rule("=", width)
}

// Rule prints ch repeated width times.
func (p *Printer) Rule(ch string, width int) {
	p.println(strings.Repeat(ch, width))
}

// Section prints a blank line and a step heading.
func (p *Printer) Section(text string) {
	p.println()
	p.println(p.paint(styleTitle, text))
}

// Line prints one plain line.
func (p *Printer) Line(format string, args ...interface{}) {
	p.printf(format+"\n", args...)
}

// Success prints a completion line.
func (p *Printer) Success(format string, args ...interface{}) {
	p.println(p.paint(styleOK, "✅ "+fmt.Sprintf(format, args...)))
}

// Failure prints a failure line followed by the likely reasons.
func (p *Printer) Failure(message string, reasons ...string) {
	p.println(p.paint(styleFail, "❌ "+message))
	if len(reasons) == 0 {
		return
	}
	p.println(p.paint(styleHint, "💡 Possible reasons:"))
	for _, r := range reasons {
		p.printf("   • %s\n", r)
	}
}

// Error prints an indented description of a failed call.
func (p *Printer) Error(err error) {
	p.println("   " + p.paint(styleFail, "❌ "+DescribeError(err)))
}

// Footer prints the read-only notice.
func (p *Printer) Footer() {
	p.println()
	p.println(p.paint(styleMuted, ReadOnlyNotice))
}

// DescribeError turns a client error into a one-line console message.
func DescribeError(err error) string {
	var (
		httpErr      *gainsight.HTTPError
		apiErr       *gainsight.APIError
		transportErr *gainsight.TransportError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &httpErr):
		return fmt.Sprintf("HTTP %d: %s", httpErr.StatusCode, httpErr.Snippet)
	case errors.As(err, &apiErr):
		return "API Error: " + apiErr.Description
	case errors.Is(err, context.Canceled):
		return "Cancelled"
	case errors.As(err, &transportErr):
		return fmt.Sprintf("Request error: %v", transportErr.Err)
	case errors.Is(err, gainsight.ErrUnexpectedFormat):
		return "Unexpected data format"
	case errors.Is(err, gainsight.ErrMalformedResponse):
		return "Malformed response body"
	default:
		return err.Error()
	}
}
