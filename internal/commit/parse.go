package commit

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

var headerPattern = regexp.MustCompile(`^([A-Za-z]+)(?:\(([^()]*)\))?: (.*\S.*)$`)

// Parse splits a conventional commit message back into a draft.
// A leading type emoji, as written by FormatWithOptions, is accepted and dropped.
func Parse(message string) (Draft, error) {
	message = strings.TrimSpace(strings.ReplaceAll(message, "\r\n", "\n"))

	header, body, _ := strings.Cut(message, "\n")

	header = strings.TrimSpace(header)
	if _, rest, ok := typeByEmoji(header); ok {
		header = strings.TrimSpace(rest)
	}

	m := headerPattern.FindStringSubmatch(header)
	if m == nil {
		return Draft{}, errors.Wrapf(ErrMalformedMessage, "header %q", header)
	}

	t, ok := ParseType(m[1])
	if !ok {
		return Draft{}, errors.Wrapf(ErrUnknownType, "%q", m[1])
	}

	return Draft{
		Type:    t,
		Scope:   strings.TrimSpace(m[2]),
		Subject: strings.TrimSpace(m[3]),
		Body:    strings.TrimSpace(body),
	}, nil
}
