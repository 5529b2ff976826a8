package sink

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anton-fomin/inject-env/pkg/domain"
)

// FileMode is used when the overwrite target does not exist yet.
const FileMode os.FileMode = 0644

// Write performs the output action for t.
// File writes are whole-file and not atomic: a failure while writing may leave
// the target partially written.
func (t Target) Write(ctx context.Context, stdout io.Writer, rendered string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch t.Mode {
	case ModeStdout:
		if _, err := fmt.Fprintln(stdout, rendered); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	case ModeOverwrite:
		return writeFile(t.Path, rendered)
	case ModeReplace:
		return replaceInFile(t.Path, t.Token, rendered)
	case ModeInvalid:
		if t.Path != "" {
			return domain.ErrEmptyReplaceToken
		}
		return domain.ErrReplaceWithoutOut
	default:
		return fmt.Errorf("unknown output mode %s", t.Mode)
	}
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), FileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func replaceInFile(path, token, rendered string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return writeFile(path, strings.ReplaceAll(string(data), token, rendered))
}
