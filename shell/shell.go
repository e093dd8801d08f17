// Package shell interprets text commands against a keyspace of named
// collections.
package shell

import (
	"fmt"
	"runtime/debug"
	"strings"

	mvshell "mvdan.cc/sh/v3/shell"

	"collections/logger"
	"collections/struct/dict"
	"collections/struct/list"
	"collections/struct/value"
)

// Shell owns the keyspace. It is not safe for concurrent use.
type Shell struct {
	data dict.Dict[*list.Collection[value.Value]]
}

func New() *Shell {
	return &Shell{
		data: dict.MakeSimple[*list.Collection[value.Value]](),
	}
}

// noEnv leaves $VAR references empty instead of reading the process
// environment.
func noEnv(string) string {
	return ""
}

// Exec splits line into words with shell quoting rules and executes it.
func (sh *Shell) Exec(line string) Reply {
	words, err := mvshell.Fields(line, noEnv)
	if err != nil {
		return MakeErrReply("ERR syntax error: " + err.Error())
	}
	if len(words) == 0 {
		return &NoReply{}
	}
	return sh.ExecCommand(words)
}

// ExecCommand executes one command, for example ["add", "nums", "5"].
func (sh *Shell) ExecCommand(cmdLine []string) (result Reply) {
	defer func() {
		if err := recover(); err != nil {
			logger.Warn(fmt.Sprintf("error occurs: %v\n%s", err, string(debug.Stack())))
			result = &UnknownErrReply{}
		}
	}()
	cmdName := strings.ToLower(cmdLine[0])
	cmd, ok := cmdTable[cmdName]
	if !ok {
		return MakeErrReply("ERR unknown command '" + cmdName + "'")
	}
	if !validateArity(cmd.arity, cmdLine) {
		return &ArgNumErrReply{Cmd: cmdName}
	}
	return cmd.executor(sh, cmdLine[1:])
}

// Get returns the collection stored at key.
func (sh *Shell) Get(key string) (*list.Collection[value.Value], bool) {
	return sh.data.Get(key)
}

func (sh *Shell) Keys() []string {
	return sh.data.Keys()
}
