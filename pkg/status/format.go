package status

import (
	"fmt"
)

// FileFormatter defines how file outcomes and summaries should be formatted
type FileFormatter interface {
	// FormatFileOperation formats a per-file outcome line
	FormatFileOperation(info FileInfo) string

	// FormatSummary formats the end-of-pass summary
	FormatSummary(s *Summary) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileOperation formats a per-file outcome line
func (f *DefaultFileFormatter) FormatFileOperation(info FileInfo) string {
	switch info.Status {
	case StatusRewritten:
		return fmt.Sprintf("Updated %s", info.Path)
	case StatusSkippedBinary:
		return fmt.Sprintf("Skipped %s (binary)", info.Path)
	case StatusSkippedExcluded:
		return fmt.Sprintf("Skipped %s (excluded)", info.Path)
	case StatusError:
		return fmt.Sprintf("Failed %s: %v", info.Path, info.Error)
	default:
		return fmt.Sprintf("Unchanged %s", info.Path)
	}
}

// FormatSummary formats the end-of-pass summary
func (f *DefaultFileFormatter) FormatSummary(s *Summary) string {
	return s.String()
}

// FormatError formats an error message
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}
