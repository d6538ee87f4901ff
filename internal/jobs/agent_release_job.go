package jobs

import (
	"context"
	"time"

	"orderdesk/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ReleaseAgentsHandler is the use case run on every tick.
type ReleaseAgentsHandler interface {
	Handle(ctx context.Context, cmd commands.ReleaseAgentsCommand) (int, error)
}

// AgentReleaseJob periodically frees agents whose delivery is done.
type AgentReleaseJob struct {
	handler  ReleaseAgentsHandler
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewAgentReleaseJob(handler ReleaseAgentsHandler, schedule string, logger *zap.Logger) (*AgentReleaseJob, error) {
	if _, err := ParseSchedule(schedule); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AgentReleaseJob{
		handler:  handler,
		schedule: schedule,
		now:      time.Now,
		cron:     newCron(),
		logger:   logger.With(zap.String("component", "agent_release_job")),
	}, nil
}

// WithClock replaces the time source.
func (j *AgentReleaseJob) WithClock(now func() time.Time) *AgentReleaseJob {
	j.now = now
	return j
}

// Name identifies the job in logs.
func (j *AgentReleaseJob) Name() string {
	return "agent release"
}

func (j *AgentReleaseJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("agent release job started", zap.String("schedule", j.schedule))
	return nil
}

// Run performs one release pass.
func (j *AgentReleaseJob) Run(ctx context.Context) {
	cmd, err := commands.NewReleaseAgentsCommand(j.now())
	if err != nil {
		j.logger.Error("agent release job failed", zap.Error(err))
		return
	}

	released, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("agent release job failed", zap.Error(err))
		return
	}
	if released > 0 {
		j.logger.Info("agents released", zap.Int("count", released))
	}
}

// Stop waits for a running pass to finish.
func (j *AgentReleaseJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("agent release job stopped")
}
