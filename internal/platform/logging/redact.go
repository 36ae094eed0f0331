package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// Redacted replaces the value of every redacted attribute. It matches masq's
// default so header redaction in middleware and masq output read the same.
const Redacted = "[REDACTED]"

// SensitiveHeaders lists lowercase header names whose values never reach the
// log. The diagnostics middleware consults it when logging request headers.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"x-api-key":     true,
}

var (
	redactedFields   = []string{"password", "secret", "token"}
	redactedPrefixes = []string{"secret_", "api_key"}

	// Raw credential shapes that can hide inside free-form values such as an
	// error string or a to-do title pasted from a terminal.
	redactedValues = []*regexp.Regexp{
		regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
		regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
		regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	}
)

// redactAttr builds the slog ReplaceAttr hook that masks sensitive
// attributes by name, by name prefix and by value pattern.
func redactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(redactedFields)+len(redactedPrefixes)+len(redactedValues))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range redactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range redactedPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range redactedValues {
		opts = append(opts, masq.WithRegex(re))
	}

	return masq.New(opts...)
}
