package main

import (
	"errors"
	"sort"
	"strings"
)

// commandEntry maps a REPL prefix to its handler and optional tab-completer.
type commandEntry struct {
	prefix    string
	handler   func(args string) error
	completer func(args string) (completionContext, string) // nil = no arg completion
	hidden    bool                                          // excluded from commandNames()
}

// initCommands builds the command registry and sorts by prefix length descending.
func (s *Session) initCommands() {
	s.commands = []commandEntry{
		// --- display commands ---
		{prefix: "sql", handler: func(_ string) error { return s.cmdSQL() }},
		{prefix: "tosql", handler: func(_ string) error { return s.cmdSQL() }, hidden: true},
		{prefix: "fields", handler: func(_ string) error { return s.cmdFields() }},
		{prefix: "params", handler: func(_ string) error { return s.cmdParams() }},
		{prefix: "expand", handler: func(_ string) error { return s.cmdExpand() }},
		{prefix: "reset", handler: func(_ string) error { return s.cmdReset() }},
		{prefix: "help", handler: func(_ string) error { s.cmdHelp(); return nil }},

		// --- statement building ---
		{prefix: "into ", handler: func(a string) error { return s.cmdInto(a) }, completer: completeTargetArgs},
		{prefix: "into", handler: func(_ string) error { return errors.New("usage: into <db>.<table>") }},
		{prefix: "set ", handler: func(a string) error { return s.cmdSet(a) }, completer: completeFieldArgs},
		{prefix: "set", handler: func(_ string) error { return errors.New("usage: set <field> <value> [if <true|false>]") }},
		{prefix: "upsert ", handler: func(a string) error { return s.cmdUpsert(a) }, completer: completeFieldArgs},
		{prefix: "upsert", handler: func(_ string) error { return errors.New("usage: upsert <field> <value> [if <true|false>]") }},
		{prefix: "update ", handler: func(a string) error { return s.cmdUpdate(a) }, completer: completeFieldArgs},
		{prefix: "update", handler: func(_ string) error { return errors.New("usage: update <field> <value> [if <true|false>]") }},

		// --- database connectivity ---
		{prefix: "connect ", handler: func(a string) error { return s.cmdConnect(a) }},
		{prefix: "connect", handler: func(_ string) error { return s.cmdConnect("") }},
		{prefix: "disconnect", handler: func(_ string) error { return s.cmdDisconnect() }},
		{prefix: "exec", handler: func(_ string) error { return s.cmdExec() }},
		{prefix: "run", handler: func(_ string) error { return s.cmdExec() }, hidden: true},
	}

	// Sort by prefix length descending so longest prefixes match first.
	sort.Slice(s.commands, func(i, j int) bool {
		return len(s.commands[i].prefix) > len(s.commands[j].prefix)
	})
}

// commandNames derives the command name list from the registry for tab completion.
func (s *Session) commandNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, cmd := range s.commands {
		if cmd.hidden {
			continue
		}
		name := strings.TrimRight(cmd.prefix, " ")
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	// exit/quit are handled by the REPL loop, not Execute().
	for _, extra := range []string{"exit", "quit"} {
		if !seen[extra] {
			names = append(names, extra)
		}
	}
	sort.Strings(names)
	return names
}

// --- Shared completion helpers ---

// completeTargetArgs handles completion for the into command: db.table names.
func completeTargetArgs(args string) (completionContext, string) {
	return contextTarget, strings.TrimSpace(args)
}

// completeFieldArgs handles completion for set/upsert/update: the first
// word is a column name, anything after it is a value.
func completeFieldArgs(args string) (completionContext, string) {
	arg := strings.TrimSpace(args)
	if !strings.Contains(arg, " ") && !strings.HasSuffix(args, " ") {
		return contextColumn, arg
	}
	return contextValue, lastToken(args)
}
