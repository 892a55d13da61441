package commit

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Draft holds the parts of a commit message collected by the prompt
type Draft struct {
	Type    Type
	Scope   string
	Subject string
	Body    string
}

// FormatOptions controls optional decorations of the formatted message
type FormatOptions struct {
	// Emoji prefixes the header with the type emoji.
	Emoji bool
}

// Format renders the draft as a conventional commit message
func Format(d Draft) (string, error) {
	return FormatWithOptions(d, FormatOptions{})
}

// FormatWithOptions renders the draft as a conventional commit message.
//
// The header is "<type>(<scope>): <subject>", with the scope segment omitted when the
// scope is empty. A non-empty body follows after a blank line. A draft without a type or
// subject is a programming error in the caller and is reported as an assertion failure.
func FormatWithOptions(d Draft, opts FormatOptions) (string, error) {
	if !d.Type.Valid() {
		return "", errors.Mark(errors.AssertionFailedf("format: draft has no commit type"), ErrMissingType)
	}

	subject := strings.TrimSpace(d.Subject)
	if subject == "" {
		return "", errors.Mark(errors.AssertionFailedf("format: draft for %q has an empty subject", d.Type), ErrEmptySubject)
	}

	if !ValidScope(d.Scope) {
		return "", errors.Mark(errors.AssertionFailedf("format: scope %q contains parentheses", d.Scope), ErrInvalidScope)
	}

	var b strings.Builder
	b.WriteString(Header(d.Type, d.Scope, opts))
	b.WriteString(subject)

	if body := strings.TrimSpace(d.Body); body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}

	return b.String(), nil
}

// ValidScope reports whether scope can appear between the header parentheses
func ValidScope(scope string) bool {
	return !strings.ContainsAny(scope, "()")
}

// Header returns the header prefix up to and including ": ".
// Editor mode uses it as the template of the first line.
func Header(t Type, scope string, opts FormatOptions) string {
	var b strings.Builder
	if opts.Emoji && t.Valid() {
		b.WriteString(t.Emoji())
		b.WriteByte(' ')
	}
	b.WriteString(t.String())
	if scope = strings.TrimSpace(scope); scope != "" {
		b.WriteByte('(')
		b.WriteString(scope)
		b.WriteByte(')')
	}
	b.WriteString(": ")
	return b.String()
}
