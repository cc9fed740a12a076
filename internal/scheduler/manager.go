package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-revshare/internal/logger"
)

// Manager runs the registered jobs on their schedules
type Manager struct {
	scheduler gocron.Scheduler
	jobs      []Job
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewManager creates a new job manager evaluating schedules in UTC
func NewManager() (*Manager, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Manager{scheduler: s}, nil
}

// Register adds a job to the scheduler. A job never overlaps with itself:
// a tick arriving while the previous run is in flight is rescheduled.
func (m *Manager) Register(job Job) error {
	_, err := m.scheduler.NewJob(
		job.Definition(),
		gocron.NewTask(m.execute, job),
		gocron.WithName(job.Name()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to register job %s: %w", job.Name(), err)
	}

	m.jobs = append(m.jobs, job)
	return nil
}

// Start starts the scheduler; jobs run with a context derived from ctx
func (m *Manager) Start(ctx context.Context) {
	m.ctx, m.cancel = context.WithCancel(ctx)
	m.scheduler.Start()

	for _, job := range m.scheduler.Jobs() {
		next, err := job.NextRun()
		if err != nil {
			continue
		}
		logger.InfoCtx(ctx, "Job scheduled", zap.String("job", job.Name()), zap.Time("next_run", next))
	}
}

// Stop cancels running jobs and shuts the scheduler down
func (m *Manager) Stop() error {
	if m.cancel != nil {
		m.cancel()
	}
	if err := m.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown scheduler: %w", err)
	}
	return nil
}

// RunNow executes every registered job once, outside of the schedule
func (m *Manager) RunNow(ctx context.Context) error {
	for _, job := range m.jobs {
		if err := job.Run(ctx); err != nil {
			return fmt.Errorf("job %s failed: %w", job.Name(), err)
		}
	}
	return nil
}

func (m *Manager) execute(job Job) {
	ctx := logger.WithFields(m.ctx, zap.String("job", job.Name()))
	start := time.Now()

	logger.InfoCtx(ctx, "Starting job")
	if err := job.Run(ctx); err != nil {
		logger.ErrorCtx(ctx, err, zap.Duration("duration", time.Since(start)))
		return
	}
	logger.InfoCtx(ctx, "Job completed", zap.Duration("duration", time.Since(start)))
}
