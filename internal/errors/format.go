package errors

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ANSI escapes used by Format.
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
	ansiGray   = "\033[90m"
)

var colors = true

// SetColors turns ANSI colors in Format on or off.
func SetColors(enabled bool) {
	colors = enabled
}

func paint(code, text string) string {
	if !colors || text == "" {
		return text
	}
	return code + text + ansiReset
}

// Report is the serializable view of an error, as sent in HTTP error
// bodies and printed by --json.
type Report struct {
	Code       string    `json:"code,omitempty"`
	Category   Category  `json:"category,omitempty"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
	Location   *Location `json:"location,omitempty"`
}

// ReportOf describes err. A coded error without a detail of its own
// reports its cause as the detail; any other error only has a message.
func ReportOf(err error) Report {
	e := lookup(err)
	if e == nil {
		return Report{Message: err.Error()}
	}
	r := Report{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
		Location:   e.Location,
	}
	if r.Detail == "" && e.Wrapped != nil {
		r.Detail = e.Wrapped.Error()
	}
	return r
}

// Summary returns a single line for err, e.g.
// "next.json:3:16: E040: Invalid description JSON (unexpected '}')".
func Summary(err error) string {
	if e := lookup(err); e != nil {
		return e.FormatCompact()
	}
	return err.Error()
}

// FormatCompact renders e on one line: location, code, message and the
// detail in parentheses.
func (e *Error) FormatCompact() string {
	var b strings.Builder
	if e.Location != nil {
		b.WriteString(e.Location.String() + ": ")
	}
	if e.Code != "" {
		b.WriteString(e.Code + ": ")
	}
	b.WriteString(e.Message)
	if e.Detail != "" {
		b.WriteString(" (" + e.Detail + ")")
	}
	return b.String()
}

// Format renders e for a terminal: a header line, the input lines around
// the location when one is known, then detail, cause and hint.
func (e *Error) Format() string {
	var b strings.Builder

	b.WriteString("\n" + paint(ansiRed+ansiBold, "error"))
	if e.Code != "" {
		b.WriteString(paint(ansiBold, "["+e.Code+"]"))
	}
	b.WriteString(": " + e.Message + "\n")

	if e.Location != nil {
		fmt.Fprintf(&b, "  %s %s\n", paint(ansiCyan, "-->"), e.Location)
		e.writeSource(&b)
	}
	b.WriteString("\n")

	for _, line := range wrapText(e.Detail, 72) {
		b.WriteString("  " + line + "\n")
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  %s %s\n", paint(ansiYellow, "cause:"), e.Wrapped)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s %s\n", paint(ansiCyan, "hint:"), e.Suggestion)
	}
	return b.String()
}

// writeSource prints the context lines with a gutter and a caret under
// the error column.
func (e *Error) writeSource(b *strings.Builder) {
	if len(e.Context) == 0 {
		return
	}
	first := max(1, e.Location.Line-contextRadius)
	width := len(strconv.Itoa(first + len(e.Context) - 1))
	bar := paint(ansiGray, "|")

	for i, text := range e.Context {
		n := first + i
		fmt.Fprintf(b, "  %*d %s %s\n", width, n, bar, text)
		if n == e.Location.Line && e.Location.Column > 0 {
			fmt.Fprintf(b, "  %*s %s %s%s\n", width, "", bar,
				strings.Repeat(" ", e.Location.Column-1), paint(ansiRed, "^"))
		}
	}
}

// wrapText breaks text into lines of at most width bytes at word
// boundaries. Longer words get a line of their own.
func wrapText(text string, width int) []string {
	var (
		lines []string
		line  string
	)
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) > width:
			lines = append(lines, line)
			line = word
		default:
			line += " " + word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// Fprint writes err to w: the full Format for coded errors, a single
// header line otherwise.
func Fprint(w io.Writer, err error) {
	if e := lookup(err); e != nil {
		fmt.Fprint(w, e.Format())
		return
	}
	fmt.Fprintf(w, "\n%s: %s\n", paint(ansiRed+ansiBold, "error"), err)
}
