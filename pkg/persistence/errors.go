package persistence

import (
	"errors"
	"fmt"
)

// Standard persistence error types that all implementations should use.
var (
	// ErrReportNotFound indicates a translation report was not found by
	// the given identifier.
	ErrReportNotFound = errors.New("report not found")

	// ErrReportAlreadyExists indicates a report with the same identifier
	// already exists.
	ErrReportAlreadyExists = errors.New("report already exists")
)

// ReportError wraps report-related errors with additional context.
type ReportError struct {
	Op       string // Operation being performed (e.g., "ReportByID", "Save", "Delete")
	ReportID string // Report ID if applicable
	Err      error  // Underlying error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("%s operation failed for report %s: %v", e.Op, e.ReportID, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given context.
func NewReportError(op, reportID string, err error) *ReportError {
	return &ReportError{
		Op:       op,
		ReportID: reportID,
		Err:      err,
	}
}

// IsReportNotFound checks if an error indicates a missing report.
func IsReportNotFound(err error) bool {
	return errors.Is(err, ErrReportNotFound)
}
