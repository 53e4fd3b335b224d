package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// DefaultCommand is used when EDITOR is not set
const DefaultCommand = "nano"

// ErrEditorFailed means the editor ran but exited with a failure status
var ErrEditorFailed = errors.New("editor exited with failure status")

// Editor launches an external text editor and waits for it to exit
type Editor struct {
	command []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	logger *zap.Logger
}

// New creates an editor from a command line such as "vim" or "code -w".
// A command that names an existing executable is used as a single path even
// if it contains spaces. An empty command falls back to DefaultCommand.
func New(command string, logger *zap.Logger) *Editor {
	command = strings.TrimSpace(command)

	var fields []string
	switch {
	case command == "":
		fields = []string{DefaultCommand}
	case isExecutable(command):
		fields = []string{command}
	default:
		fields = strings.Fields(command)
	}

	return &Editor{
		command: fields,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		logger:  logger,
	}
}

func isExecutable(path string) bool {
	_, err := exec.LookPath(path)
	return err == nil
}

// Name returns the editor executable
func (e *Editor) Name() string {
	return e.command[0]
}

// Open opens path in the editor and blocks until the editor exits.
// A failure to start the editor is returned as is; a non-zero exit
// status is returned wrapped in ErrEditorFailed.
func (e *Editor) Open(ctx context.Context, path string) error {
	args := make([]string, 0, len(e.command))
	args = append(args, e.command[1:]...)
	args = append(args, path)

	cmd := exec.CommandContext(ctx, e.command[0], args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	e.logger.Debug("Opening editor",
		zap.String("editor", e.Name()),
		zap.String("file", path))

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open editor %q: %w", e.Name(), err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			e.logger.Warn("Editor exited with failure",
				zap.String("editor", e.Name()),
				zap.Int("exit_code", exitErr.ExitCode()))
			return fmt.Errorf("%w: %v", ErrEditorFailed, err)
		}
		return fmt.Errorf("editor %q failed: %w", e.Name(), err)
	}

	return nil
}
