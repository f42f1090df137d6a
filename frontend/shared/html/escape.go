package html

import "github.com/a-h/templ"

// EscapeString HTML-escapes user-provided text before it is interpolated
// into a page body.
func EscapeString(s string) string {
	return templ.EscapeString(s)
}
