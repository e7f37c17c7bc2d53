package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// bearerPattern matches "Bearer <token>" strings that appear as raw
// values, e.g. a logged Authorization header.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// jwtPattern matches raw JWT strings (header.payload.signature). The
// login endpoint returns such a token. At least 10 characters per
// segment avoids false positives on short dot-separated strings.
var jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

// newRedactAttr returns a masq-powered ReplaceAttr function for
// slog.HandlerOptions. It redacts the credential fields of the login
// flow by name and catches raw tokens by regex.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	return masq.New(
		masq.WithFieldName("password"),
		masq.WithFieldName("token"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("email"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
	)
}
