package gh

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner ejecuta el binario gh. Es una interfaz para poder mockearlo en tests.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

type execRunner struct {
	binary string
}

func (r *execRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		if msg != "" {
			return nil, fmt.Errorf("%s %s: %s: %w", r.binary, strings.Join(args, " "), msg, err)
		}
		return nil, fmt.Errorf("%s %s: %w", r.binary, strings.Join(args, " "), err)
	}

	return stdout.Bytes(), nil
}
