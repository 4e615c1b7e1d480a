package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
)

// Process exit codes. Template errors get a distinct code so wrapper
// scripts can tell a broken template from a broken content tree.
const (
	ExitOK       = 0
	ExitTemplate = 1
	ExitBuild    = 2
)

// CLIAdapter handles error presentation and exit code determination for
// the ssg command.
type CLIAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIAdapter creates a new CLI error adapter.
func NewCLIAdapter(verbose bool, logger *slog.Logger) *CLIAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIAdapter{verbose: verbose, logger: logger}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}
	if GetKind(err) == KindTemplate {
		return ExitTemplate
	}
	return ExitBuild
}

// Report logs an error for user-facing display and returns its exit code.
func (a *CLIAdapter) Report(err error) int {
	if err == nil {
		return ExitOK
	}
	var se *SiteError
	if stderrors.As(err, &se) {
		a.logger.Error(se.Message,
			slog.String("kind", string(se.Kind)),
			slog.String("path", se.Path),
			slog.String("error", causeString(se)))
	} else {
		a.logger.Error("build failed", slog.String("error", err.Error()))
	}
	return a.ExitCodeFor(err)
}

func causeString(se *SiteError) string {
	if se.Cause == nil {
		return ""
	}
	return se.Cause.Error()
}

// FormatError formats an error for user-friendly display.
func (a *CLIAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	var se *SiteError
	if stderrors.As(err, &se) {
		if a.verbose {
			return se.Error()
		}
		if se.Path != "" {
			return fmt.Sprintf("%s error while processing %s: %s", se.Kind, se.Path, se.Message)
		}
		return fmt.Sprintf("%s error: %s", se.Kind, se.Message)
	}
	return fmt.Sprintf("Error: %v", err)
}
