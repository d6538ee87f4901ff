// Package cli runs a conversation on a terminal: every line typed is one
// customer turn, and the assistant reply is printed back.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/session"
)

const (
	addressCommand = "/address "
	quitCommand    = "/quit"
)

type (
	StartHandler interface {
		Handle(ctx context.Context, cmd commands.StartSessionCommand) error
	}

	TurnHandler interface {
		Handle(ctx context.Context, cmd commands.ProcessTurnCommand) (commands.TurnResult, error)
	}

	AddressHandler interface {
		Handle(ctx context.Context, cmd commands.SetAddressCommand) error
	}
)

// Chat binds the use cases to a line-oriented terminal.
type Chat struct {
	start   StartHandler
	turn    TurnHandler
	address AddressHandler
}

func NewChat(start StartHandler, turn TurnHandler, address AddressHandler) *Chat {
	return &Chat{start: start, turn: turn, address: address}
}

// Run starts a fresh session and serves it until in is exhausted, the
// customer types /quit, or ctx is cancelled. After a confirmed order the
// session keeps going, so the customer can order again.
func (c *Chat) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	id := kernel.NewUUID()
	startCmd, err := commands.NewStartSessionCommand(id)
	if err != nil {
		return err
	}
	if err := c.start.Handle(ctx, startCmd); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	fmt.Fprintln(out, "Welcome! What can I get you? (type /address <street> to set the address, /quit to leave)")

	stop := make(chan struct{})
	defer close(stop)
	lines, readErr := readLines(in, stop)

	for {
		fmt.Fprint(out, "> ")
		var raw string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return <-readErr
			}
			raw = l
		}

		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			continue
		case line == quitCommand:
			fmt.Fprintln(out, "Bye!")
			return nil
		case strings.HasPrefix(line, addressCommand):
			if err := c.setAddress(ctx, id, strings.TrimPrefix(line, addressCommand), out); err != nil {
				return err
			}
		default:
			if err := c.say(ctx, id, line, out); err != nil {
				return err
			}
		}
	}
}

// readLines scans in on its own goroutine so that Run can give up on a
// cancelled context while a read is still blocked. The error channel
// receives the scanner's error before lines is closed.
func readLines(in io.Reader, stop <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
		readErr <- scanner.Err()
	}()
	return lines, readErr
}

func (c *Chat) say(ctx context.Context, id kernel.UUID, utterance string, out io.Writer) error {
	cmd, err := commands.NewProcessTurnCommand(id, utterance)
	if err != nil {
		return err
	}
	res, err := c.turn.Handle(ctx, cmd)
	if err != nil {
		return fmt.Errorf("process turn: %w", err)
	}

	fmt.Fprintln(out, res.Reply)
	if res.Status == session.Confirmed {
		fmt.Fprintln(out, "Say anything to start a new order.")
	}
	return nil
}

func (c *Chat) setAddress(ctx context.Context, id kernel.UUID, address string, out io.Writer) error {
	cmd, err := commands.NewSetAddressCommand(id, address)
	if err != nil {
		fmt.Fprintln(out, "Please give a street address after /address.")
		return nil //nolint:nilerr // a blank address is a typing mistake, not a failure
	}
	if err := c.address.Handle(ctx, cmd); err != nil {
		return fmt.Errorf("set address: %w", err)
	}

	fmt.Fprintf(out, "Delivery address set to: %s\n", cmd.Address())
	return nil
}
