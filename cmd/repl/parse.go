package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// tokenize splits input into tokens, respecting single-quoted strings
// (with '' as the escaped quote) and treating '=' as its own token.
func tokenize(input string) []string {
	var tokens []string
	var cur strings.Builder
	inQuote := false

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for i := 0; i < len(input); i++ {
		ch := input[i]

		if inQuote {
			cur.WriteByte(ch)
			if ch == '\'' {
				if i+1 < len(input) && input[i+1] == '\'' {
					cur.WriteByte('\'')
					i++
				} else {
					inQuote = false
					flush()
				}
			}
			continue
		}

		switch {
		case ch == '\'':
			flush()
			cur.WriteByte(ch)
			inQuote = true

		case ch == '=':
			flush()
			tokens = append(tokens, "=")

		case ch == ' ' || ch == '\t':
			flush()

		default:
			cur.WriteByte(ch)
		}
	}
	flush()
	return tokens
}

// parseValue converts a token string to a Go value suitable for a Set call.
func parseValue(token string) (any, error) {
	lower := strings.ToLower(token)
	if lower == "true" {
		return true, nil
	}
	if lower == "false" {
		return false, nil
	}
	if lower == "null" {
		return nil, nil
	}
	if strings.HasPrefix(token, "'") && strings.HasSuffix(token, "'") && len(token) >= 2 {
		inner := token[1 : len(token)-1]
		return strings.ReplaceAll(inner, "''", "'"), nil
	}
	if i, err := strconv.Atoi(token); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("cannot parse value: %s", token)
}

// parseTarget splits a db.table argument into its two identifiers.
func parseTarget(arg string) (database, table string, err error) {
	database, table, ok := strings.Cut(arg, ".")
	if !ok || strings.TrimSpace(database) == "" || strings.TrimSpace(table) == "" {
		return "", "", errors.New("usage: into <db>.<table>")
	}
	return database, table, nil
}

// parseAssignment parses the argument of a set/upsert/update command:
//
//	<field> [=] <value> [if <true|false>]
//
// The '=' is optional sugar. A trailing "if" clause gates registration.
func parseAssignment(args string) (field string, value any, condition bool, err error) {
	tokens := tokenize(strings.TrimSpace(args))
	condition = true

	// Peel off a trailing "if <bool>" clause.
	if n := len(tokens); n >= 2 && strings.EqualFold(tokens[n-2], "if") {
		switch strings.ToLower(tokens[n-1]) {
		case "true":
			condition = true
		case "false":
			condition = false
		default:
			return "", nil, false, fmt.Errorf("if clause takes true or false, got %s", tokens[n-1])
		}
		tokens = tokens[:n-2]
	}

	if len(tokens) < 2 {
		return "", nil, false, errors.New("usage: <field> [=] <value> [if <true|false>]")
	}
	field = tokens[0]
	rest := tokens[1:]
	if rest[0] == "=" {
		rest = rest[1:]
	}
	if len(rest) != 1 {
		return "", nil, false, errors.New("usage: <field> [=] <value> [if <true|false>]")
	}

	value, err = parseValue(rest[0])
	if err != nil {
		return "", nil, false, err
	}
	return field, value, condition, nil
}
