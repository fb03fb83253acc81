package main

import (
	"fmt"
	"io"
	"os"

	"github.com/conn-castle/template-wizard/internal/messages"
	"github.com/conn-castle/template-wizard/internal/selection"
)

// writeSelection encodes sel to path, or to stdout when path is empty.
func writeSelection(stdout io.Writer, path string, format selection.Format, sel selection.UserSelection) error {
	if path == "" {
		return selection.Encode(stdout, format, sel)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf(messages.OutputWriteFailedFmt, path, err)
	}
	if err := selection.Encode(f, format, sel); err != nil {
		_ = f.Close()
		return fmt.Errorf(messages.OutputWriteFailedFmt, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf(messages.OutputWriteFailedFmt, path, err)
	}
	return nil
}
