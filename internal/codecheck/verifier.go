package codecheck

import (
	"context"
	"errors"
	"os/exec"
)

// Verifier decides whether the source file at path is accepted. A
// rejection is ok == false together with the verifier's output; err is
// reserved for failing to run the verifier at all.
type Verifier interface {
	Verify(ctx context.Context, path string) (output []byte, ok bool, err error)
}

// CommandVerifier runs an external command with the source path appended
// as its last argument. The command is killed when ctx is cancelled.
type CommandVerifier struct {
	Command []string
}

// Verify implements Verifier.
func (v CommandVerifier) Verify(ctx context.Context, path string) ([]byte, bool, error) {
	args := append(append([]string(nil), v.Command[1:]...), path)
	cmd := exec.CommandContext(ctx, v.Command[0], args...)

	out, err := cmd.CombinedOutput()
	if err == nil {
		return out, true, nil
	}

	if ctx.Err() != nil {
		return out, false, ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, false, nil
	}
	return out, false, err
}
