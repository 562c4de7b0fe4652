package wallet

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errPinMismatch = errors.New("pins do not match")

// prompter reads secrets from a terminal without echo, or line by line from
// any other input.
type prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

func newPrompter(cmd *cobra.Command) *prompter {
	return &prompter{
		in:  cmd.InOrStdin(),
		out: cmd.ErrOrStderr(),
	}
}

type readResult struct {
	value string
	err   error
}

// readSecret prompts for label. Cancelling ctx aborts the prompt.
func (p *prompter) readSecret(ctx context.Context, label string) (string, error) {
	fmt.Fprint(p.out, label)
	defer fmt.Fprintln(p.out)

	ch := make(chan readResult, 1)

	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())

		state, err := term.GetState(fd)
		if err != nil {
			return "", err
		}

		go func() {
			b, err := term.ReadPassword(fd)
			ch <- readResult{string(b), err}
		}()

		select {
		case r := <-ch:
			return strings.TrimSpace(r.value), r.err
		case <-ctx.Done():
			_ = term.Restore(fd, state)
			return "", ctx.Err()
		}
	}

	if p.reader == nil {
		p.reader = bufio.NewReader(p.in)
	}

	go func() {
		line, err := p.reader.ReadString('\n')
		if err == io.EOF && line != "" {
			err = nil
		}
		ch <- readResult{strings.TrimSpace(line), err}
	}()

	select {
	case r := <-ch:
		return r.value, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (p *prompter) readPin(ctx context.Context) (string, error) {
	return p.readSecret(ctx, "PIN: ")
}

// readNewPin asks for a PIN twice.
func (p *prompter) readNewPin(ctx context.Context, label string) (string, error) {
	pin, err := p.readSecret(ctx, label)
	if err != nil {
		return "", err
	}

	confirm, err := p.readSecret(ctx, "Repeat "+strings.ToLower(label))
	if err != nil {
		return "", err
	}

	if pin != confirm {
		return "", errPinMismatch
	}

	return pin, nil
}
