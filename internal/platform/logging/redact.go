package logging

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

const redacted = "[REDACTED]"

// sensitiveHeaders carry credentials between the board, its clients and
// the backend. Lowercase.
var sensitiveHeaders = []string{"authorization", "cookie", "set-cookie", "x-api-key"}

// credentialFields are slog keys and struct field names that hold secrets.
// The struct names cover actions logged whole, such as auth.Login and the
// user.Auth session.
var credentialFields = []string{"password", "Password", "token", "Token", "access_token", "secret"}

// Patterns for secrets that show up inside otherwise harmless values.
var (
	bearerValue = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	jwtValue    = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	apiKeyValue = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// SensitiveHeader reports whether the named HTTP header must not be logged
// verbatim.
func SensitiveHeader(name string) bool {
	return slices.Contains(sensitiveHeaders, strings.ToLower(name))
}

// RedactedValue is what loggers print in place of a secret.
func RedactedValue() string { return redacted }

// redactor builds the masq ReplaceAttr hook installed by New.
func redactor() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for _, name := range slices.Concat(sensitiveHeaders, credentialFields) {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerValue),
		masq.WithRegex(jwtValue),
		masq.WithRegex(apiKeyValue),
	)
	return masq.New(opts...)
}
