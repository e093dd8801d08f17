package shell

import "strings"

// ExecFunc runs a command. args excludes the command name.
type ExecFunc func(sh *Shell, args []string) Reply

type command struct {
	name     string
	executor ExecFunc
	// arity > 0 means exactly arity words including the name,
	// arity < 0 means at least -arity words.
	arity int
}

var cmdTable = make(map[string]*command)

// registerCommand registers a command. Names are case-insensitive.
func registerCommand(name string, executor ExecFunc, arity int) {
	name = strings.ToLower(name)
	cmdTable[name] = &command{
		name:     name,
		executor: executor,
		arity:    arity,
	}
}

func validateArity(arity int, cmdArgs []string) bool {
	argNum := len(cmdArgs)
	if arity >= 0 {
		return argNum == arity
	}
	return argNum >= -arity
}

// Commands returns the registered command names.
func Commands() []string {
	names := make([]string, 0, len(cmdTable))
	for name := range cmdTable {
		names = append(names, name)
	}
	return names
}
