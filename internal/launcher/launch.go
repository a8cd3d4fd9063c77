package launcher

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Launch starts binary with env as its complete environment and returns its
// process id without waiting for it to exit. The process outlives ctx.
func Launch(ctx context.Context, binary string, env []string, args ...string) (int, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
	}
	if strings.TrimSpace(binary) == "" {
		return 0, errors.New("launch: binary is empty")
	}
	resolved, err := exec.LookPath(binary)
	if err != nil {
		return 0, fmt.Errorf("launch %s: %w", binary, err)
	}

	proc := exec.Command(resolved, args...)
	proc.Env = env
	if err := proc.Start(); err != nil {
		return 0, fmt.Errorf("launch %s: %w", binary, err)
	}
	pid := proc.Process.Pid
	if err := proc.Process.Release(); err != nil {
		return pid, fmt.Errorf("release %s: %w", binary, err)
	}
	return pid, nil
}
