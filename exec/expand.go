package exec

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Expand rewrites every @name placeholder in query to ? and returns the
// rewritten text plus the bound values in first-occurrence order. params is
// keyed by placeholder name including the @ prefix, as produced by the
// builder; bindings the text never references are ignored.
//
// The scan walks the statement byte-for-byte and passes through
// single-quoted strings, double-quoted strings, backtick identifiers,
// "--" and "#" line comments, and block comments untouched, so
// placeholder-looking text inside them is left alone. "@@" introduces a
// MySQL system variable and is never rewritten.
func Expand(query string, params map[string]any, cfg Config) (string, []any, error) {
	var sb strings.Builder
	sb.Grow(len(query))
	args := make([]any, 0, len(params))

	const (
		sText = iota
		sSQ   // '...'
		sDQ   // "..."
		sBT   // `...`
		sLC   // -- or # line comment
		sBC   // /* ... */ block comment
	)
	state := sText

	n := 0
	for i := 0; i < len(query); {
		c := query[i]

		switch state {
		case sText:
			if c == '-' && i+1 < len(query) && query[i+1] == '-' {
				state = sLC
				sb.WriteString("--")
				i += 2
				continue
			}
			if c == '#' {
				state = sLC
				sb.WriteByte(c)
				i++
				continue
			}
			if c == '/' && i+1 < len(query) && query[i+1] == '*' {
				state = sBC
				sb.WriteString("/*")
				i += 2
				continue
			}
			if c == '\'' {
				state = sSQ
				sb.WriteByte(c)
				i++
				continue
			}
			if c == '"' {
				state = sDQ
				sb.WriteByte(c)
				i++
				continue
			}
			if c == '`' {
				state = sBT
				sb.WriteByte(c)
				i++
				continue
			}

			if c == '@' {
				// @@ is a system variable, not a placeholder.
				if i+1 < len(query) && query[i+1] == '@' {
					sb.WriteString("@@")
					i += 2
					continue
				}
				k := scanName(query, i+1)
				if k == i+1 {
					sb.WriteByte(c)
					i++
					continue
				}
				name := query[i:k] // includes the @
				if cfg.MaxNameLen > 0 && len(name)-1 > cfg.MaxNameLen {
					return "", nil, fmt.Errorf("%w: %q (%d > %d)", ErrParamNameTooLong, name, len(name)-1, cfg.MaxNameLen)
				}
				v, ok := params[name]
				if !ok {
					return "", nil, fmt.Errorf("%w: %s", ErrParamMissing, name)
				}
				n++
				if cfg.MaxParams > 0 && n > cfg.MaxParams {
					return "", nil, fmt.Errorf("%w: limit %d", ErrTooManyParams, cfg.MaxParams)
				}
				sb.WriteByte('?')
				args = append(args, v)
				i = k
				continue
			}

			sb.WriteByte(c)
			i++

		case sSQ:
			if c == '\\' {
				sb.WriteByte(c)
				i++
				if i < len(query) {
					sb.WriteByte(query[i])
					i++
				}
				continue
			}
			sb.WriteByte(c)
			i++
			if c == '\'' {
				if i < len(query) && query[i] == '\'' {
					sb.WriteByte(query[i])
					i++
				} else {
					state = sText
				}
			}

		case sDQ:
			if c == '\\' {
				sb.WriteByte(c)
				i++
				if i < len(query) {
					sb.WriteByte(query[i])
					i++
				}
				continue
			}
			sb.WriteByte(c)
			i++
			if c == '"' {
				if i < len(query) && query[i] == '"' {
					sb.WriteByte(query[i])
					i++
				} else {
					state = sText
				}
			}

		case sBT:
			sb.WriteByte(c)
			i++
			if c == '`' {
				if i < len(query) && query[i] == '`' {
					sb.WriteByte(query[i])
					i++
				} else {
					state = sText
				}
			}

		case sLC:
			sb.WriteByte(c)
			i++
			if c == '\n' || c == '\r' {
				state = sText
			}

		case sBC:
			sb.WriteByte(c)
			i++
			if c == '*' && i < len(query) && query[i] == '/' {
				sb.WriteByte('/')
				i++
				state = sText
			}
		}
	}

	return sb.String(), args, nil
}

// scanName returns the index just past the placeholder name starting at
// start. Names use the same letter/digit/underscore alphabet the builder
// derives them from.
func scanName(query string, start int) int {
	k := start
	for k < len(query) {
		r, size := utf8.DecodeRuneInString(query[k:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		k += size
	}
	return k
}
