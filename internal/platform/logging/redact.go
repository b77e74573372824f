package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SecretTag marks struct fields that must never reach a log line. Client
// contact details carry it.
const SecretTag = "secret"

var (
	jwtValue    = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
	schemeValue = regexp.MustCompile(`(?i)^(bearer|basic)\s+\S+`)
	emailValue  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[A-Za-z]{2,}$`)
)

// credentialKeys are attribute keys whose values are always dropped.
var credentialKeys = []string{
	"authorization",
	"Authorization",
	"token",
	"tokens",
	"password",
	"apiKey",
	"api_key",
	"cookie",
}

// contactKeys hold client personal data. Struct fields are covered by
// SecretTag; these cover values logged as plain attributes.
var contactKeys = []string{
	"email",
	"phone",
}

// RedactOptions returns the masq rules applied to every JSON and text log.
func RedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(credentialKeys)+len(contactKeys)+5)

	for _, key := range credentialKeys {
		opts = append(opts, masq.WithFieldName(key))
	}

	for _, key := range contactKeys {
		opts = append(opts, masq.WithFieldName(key))
	}

	return append(opts,
		masq.WithTag(SecretTag),
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(jwtValue),
		masq.WithRegex(schemeValue),
		masq.WithRegex(emailValue),
	)
}

// NewReplaceAttr returns a slog ReplaceAttr that applies RedactOptions plus
// any extra options.
func NewReplaceAttr(extra ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(RedactOptions(), extra...)...)
}
