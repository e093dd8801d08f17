package shell

import (
	"strconv"
	"strings"
)

// Reply is the result of one command line.
type Reply interface {
	String() string
}

// ErrorReply is a Reply describing a failed command.
type ErrorReply interface {
	Reply
	Error() string
}

type OkReply struct{}

func (r *OkReply) String() string {
	return "OK"
}

type IntReply struct {
	Code int64
}

func MakeIntReply(code int64) *IntReply {
	return &IntReply{Code: code}
}

func (r *IntReply) String() string {
	return "(integer) " + strconv.FormatInt(r.Code, 10)
}

type BulkReply struct {
	Arg string
}

func MakeBulkReply(arg string) *BulkReply {
	return &BulkReply{Arg: arg}
}

func (r *BulkReply) String() string {
	return r.Arg
}

type MultiReply struct {
	Args []string
}

func MakeMultiReply(args []string) *MultiReply {
	return &MultiReply{Args: args}
}

func (r *MultiReply) String() string {
	if len(r.Args) == 0 {
		return "(empty)"
	}
	var sb strings.Builder
	for i, arg := range r.Args {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(") ")
		sb.WriteString(arg)
	}
	return sb.String()
}

// NoReply answers blank and comment lines.
type NoReply struct{}

func (r *NoReply) String() string {
	return ""
}

type StandardErrReply struct {
	Status string
}

func MakeErrReply(status string) *StandardErrReply {
	return &StandardErrReply{Status: status}
}

func (r *StandardErrReply) String() string {
	return r.Status
}

func (r *StandardErrReply) Error() string {
	return r.Status
}

type UnknownErrReply struct{}

func (r *UnknownErrReply) String() string {
	return "ERR unknown"
}

func (r *UnknownErrReply) Error() string {
	return "ERR unknown"
}

type ArgNumErrReply struct {
	Cmd string
}

func (r *ArgNumErrReply) String() string {
	return "ERR wrong number of arguments for '" + r.Cmd + "' command"
}

func (r *ArgNumErrReply) Error() string {
	return r.String()
}

func IsErrorReply(reply Reply) bool {
	_, ok := reply.(ErrorReply)
	return ok
}
