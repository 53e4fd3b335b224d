package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/officedays/officedays/internal/config"
	"github.com/officedays/officedays/internal/editor"
)

// editConfig opens the config file in the user's editor. An editor that
// exits with a failure status is only a warning.
func editConfig(ctx context.Context, settings *config.Settings, configPath string, stderr io.Writer, logger *zap.Logger) error {
	ed := editor.New(settings.Editor, logger)

	if err := ed.Open(ctx, configPath); err != nil {
		if errors.Is(err, editor.ErrEditorFailed) {
			fmt.Fprintln(stderr, "Failed to Edit the Configuration File")
			return nil
		}
		return err
	}

	return nil
}
