package cli

// palette wraps text in ANSI colour codes, or passes it through untouched
// when colour is disabled (ATL_COLOR=off, NO_COLOR, or piped output).
type palette struct {
	enabled bool
}

const colorReset = "\033[0m"

func (p palette) wrap(code, s string) string {
	if !p.enabled {
		return s
	}
	return code + s + colorReset
}

func (p palette) red(s string) string   { return p.wrap("\033[91m", s) }
func (p palette) green(s string) string { return p.wrap("\033[92m", s) }
func (p palette) blue(s string) string  { return p.wrap("\033[94m", s) }
func (p palette) cyan(s string) string  { return p.wrap("\033[96m", s) }
