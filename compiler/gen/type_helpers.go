package gen

import (
	"go/token"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

// words splits an identifier into words at separators, lower-to-upper
// transitions and the end of upper-case runs ("HTTPServer" -> HTTP, Server).
func words(s string) []string {
	var (
		out []string
		cur []rune
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}
	rs := []rune(s)
	for i, r := range rs {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(r) {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return out
}

// pascal converts a shape, member or enum value name to an exported Go
// identifier.
func pascal(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		rs := []rune(strings.ToLower(w))
		rs[0] = unicode.ToUpper(rs[0])
		b.WriteString(string(rs))
	}
	return b.String()
}

// camel converts a name to an unexported Go identifier.
func camel(s string) string {
	p := []rune(pascal(s))
	if len(p) == 0 {
		return ""
	}
	p[0] = unicode.ToLower(p[0])
	return string(p)
}

// Pascal is the exported form of pascal for emitters.
func Pascal(s string) string { return pascal(s) }

// Camel is the exported form of camel for emitters.
func Camel(s string) string { return camel(s) }

// storageField returns the unexported struct field holding a member. Go
// keywords get an underscore prefix.
func storageField(name string) string {
	c := camel(name)
	if token.Lookup(c).IsKeyword() {
		return "_" + c
	}
	return c
}

// fileName returns the snake-case base name of a generated file.
func fileName(name string) string {
	return inflect.Underscore(name)
}

// names builds a set of reserved identifiers.
func names(ids ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

var (
	// structureMethods are generated on every structure value or builder.
	structureMethods = names(
		"Build",
		"Copy",
		"Equal",
		"Hash",
		"String",
		"ToBuilder",
	)
	// errorMethods are generated on error structures in addition.
	errorMethods = names(
		"Error",
		"ErrorCode",
		"ErrorFault",
		"ErrorMessage",
		"Message",
		"Retryable",
		"Unwrap",
	)
)

// EnumUnknownValue is the raw value of the catch-all enum constant.
const EnumUnknownValue = "UNKNOWN_TO_SDK_VERSION"
