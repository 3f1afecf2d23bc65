package jobs

import (
	"fmt"
)

// JobManager starts and stops all scheduled jobs together.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
}

func NewJobManager(outboxRelayJob *OutboxRelayJob) *JobManager {
	return &JobManager{
		outboxRelayJob: outboxRelayJob,
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	return nil
}

// StopAll blocks until running jobs have returned.
func (jm *JobManager) StopAll() {
	jm.outboxRelayJob.Stop()
}
