package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"collections/config"
	"collections/logger"
)

// Run executes every line read from in and writes the replies to out. It
// returns when in is exhausted or ctx is done.
func (sh *Shell) Run(ctx context.Context, in io.Reader, out io.Writer, props *config.Properties) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		if !props.Quiet {
			if _, err := io.WriteString(out, props.Prompt); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			reply := sh.Exec(line)
			if _, isNone := reply.(*NoReply); isNone {
				continue
			}
			if IsErrorReply(reply) {
				logger.Debug("command failed:", line, "->", reply.String())
			}
			if _, err := fmt.Fprintln(out, reply.String()); err != nil {
				return err
			}
		}
	}
}
