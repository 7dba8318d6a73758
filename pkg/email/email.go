package email

import "regexp"

// addressPattern accepts "something@something.something" and nothing
// stricter.
var addressPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// IsValid reports whether the address has the basic user@host.tld shape.
func IsValid(address string) bool {
	return addressPattern.MatchString(address)
}
