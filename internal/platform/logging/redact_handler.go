package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the lowercase header names whose values never reach
// the log. The HTTP middleware redacts request headers from the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// emailPattern catches user addresses that end up inside error strings,
	// for example a conflict on the users.email unique index.
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// Azure Storage connection strings and SAS query strings used by the
	// queue sink.
	accountKeyPattern   = regexp.MustCompile(`(?i)accountkey=[^;]+`)
	sasSignaturePattern = regexp.MustCompile(`(?i)\bsig=[^&;\s]+`)
)

// newRedactAttr builds the masq ReplaceAttr hook. Fields are redacted by name
// or prefix, and string values by pattern.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+8)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("email"),
		masq.WithFieldName("password"),
		masq.WithFieldName("connection_string"),
		masq.WithFieldPrefix("secret"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(emailPattern),
		masq.WithRegex(accountKeyPattern),
		masq.WithRegex(sasSignaturePattern),
	)

	return masq.New(opts...)
}
