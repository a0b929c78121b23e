// Package debug holds the environment switches that turn on tracing.
package debug

import (
	"os"
	"strconv"
	"strings"
)

const (
	ParseVar  = "SL_DEBUG_PARSE"
	TokensVar = "SL_DEBUG_TOKENS"
)

type debug struct {
	Parse  bool
	Tokens bool
}

var d *debug

func init() {
	env := os.Environ()
	d = &debug{
		Parse:  Enabled(env, ParseVar),
		Tokens: Enabled(env, TokensVar),
	}
}

// Enabled reports whether name is set to a true value in env, a list of
// key=value pairs as returned by os.Environ.  The last setting wins.
func Enabled(env []string, name string) bool {
	on := false
	for _, kv := range env {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k != name {
			continue
		}
		on, _ = strconv.ParseBool(v)
	}
	return on
}

func Parse() bool {
	return d.Parse
}

func Tokens() bool {
	return d.Tokens
}
