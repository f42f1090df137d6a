package html

import "fmt"

// RenderLayout wraps a page body in the shared document shell. The theme
// class goes on <html> so the first paint is already themed.
func RenderLayout(title, theme, body string) string {
	return fmt.Sprintf(
		"<!doctype html><html class=%q><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>%s</title><link rel=\"stylesheet\" href=\"/assets/app.css\"></head><body>%s%s</body></html>",
		theme, title, body, CSRFFormScript())
}

// RenderAppLayout is the authenticated shell: top navigation plus the idle
// warning dialog and its polling script.
func RenderAppLayout(title, theme, username, body string) string {
	shell := RenderTopNav(username) + body + idleWarningDialog()
	return RenderLayout(title, theme, shell)
}
