package commitmanager

import (
	"time"
)

// CommitOptions contains configuration for creating a commit
type CommitOptions struct {
	// Message is the commit message (required)
	Message string

	// When is the commit time. The manager's clock is used when zero.
	When time.Time
}

// Validate validates CommitOptions
func (opts *CommitOptions) Validate() error {
	if opts.Message == "" {
		return NewEmptyMessageError()
	}
	return nil
}

// HistoryOptions bounds a history walk from HEAD.
type HistoryOptions struct {
	// Limit caps the number of commits returned; zero means no limit.
	Limit int
}
