package cli

import "strings"

// Cancellation tokens, matched case-insensitively at any workflow prompt.
// Registration uses :q instead of a single letter so a customer actually
// named "C" can still be entered.
const (
	cancelEnrollment   = "c"
	cancelRegistration = ":q"
)

func normalizeToken(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func isCancel(input, token string) bool {
	return strings.EqualFold(strings.TrimSpace(input), token)
}
