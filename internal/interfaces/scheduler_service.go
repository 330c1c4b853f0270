package interfaces

import "time"

// JobStatus represents the current status of a scheduled cycle job
type JobStatus struct {
	Name      string     `json:"name"`
	Enabled   bool       `json:"enabled"`
	Schedule  string     `json:"schedule"`
	LastRun   *time.Time `json:"last_run,omitempty"`
	NextRun   *time.Time `json:"next_run,omitempty"`
	IsRunning bool       `json:"is_running"`
	LastError string     `json:"last_error,omitempty"`
}

// SchedulerService manages cron-based scheduling of the pipeline cycles
type SchedulerService interface {
	// Start begins the scheduler
	Start() error

	// Stop halts the scheduler
	Stop() error

	// IsRunning returns true if scheduler is active
	IsRunning() bool

	// RegisterJob registers a named job with a cron schedule
	RegisterJob(name string, schedule string, handler func() error) error

	// TriggerJob manually triggers a registered job
	TriggerJob(name string) error

	// GetJobStatus returns the status of a specific job
	GetJobStatus(name string) (*JobStatus, error)

	// GetAllJobStatuses returns all job statuses
	GetAllJobStatuses() map[string]*JobStatus
}
