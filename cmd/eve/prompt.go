package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"eve/internal/scenepath"
)

const maxPromptAttempts = 3

// promptDecider asks the user what to do about an existing save target.
type promptDecider struct {
	in  *bufio.Reader
	out io.Writer
}

func newPromptDecider(in io.Reader, out io.Writer) *promptDecider {
	return &promptDecider{in: bufio.NewReader(in), out: out}
}

func (p *promptDecider) Decide(ctx context.Context, existing scenepath.FilePath) (scenepath.Decision, error) {
	fmt.Fprintf(p.out, "%s already exists.\n", existing.Raw())
	for attempt := 0; attempt < maxPromptAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprint(p.out, "[o]verwrite / save [n]ext version / [c]ancel: ")
		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("read answer: %w", err)
		}
		if strings.TrimSpace(line) != "" {
			if decision, parseErr := scenepath.ParseDecision(line); parseErr == nil {
				return decision, nil
			}
			fmt.Fprintf(p.out, "Unrecognized answer %q\n", strings.TrimSpace(line))
		}
		if errors.Is(err, io.EOF) {
			return 0, errors.New("read answer: input closed")
		}
	}
	return 0, fmt.Errorf("no valid answer after %d attempts", maxPromptAttempts)
}
