package main

import (
	"github.com/conn-castle/template-wizard/internal/logging"
	"github.com/conn-castle/template-wizard/internal/selection"
	"github.com/conn-castle/template-wizard/internal/wizard"
)

// cliHost renders nothing itself; the commands drive output. It only logs
// what the wizard reports.
type cliHost struct {
	logger logging.Logger
}

func (h *cliHost) Navigate(step wizard.Step) {
	h.logger.Debug("wizard step shown", logging.String("step", step.String()))
}

func (h *cliHost) Close(result *selection.UserSelection, completed bool) {
	fields := []logging.Field{logging.Bool("completed", completed)}
	if result != nil {
		fields = append(fields,
			logging.String("project_type", result.ProjectType()),
			logging.String("framework", result.Framework()),
			logging.Int("items", len(result.Items())),
		)
	}
	h.logger.Info("wizard closed", fields...)
}
