package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"distribution-oos-backend/internal/config"
	"distribution-oos-backend/internal/shared"
	"distribution-oos-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redisAddress string, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		jobConfig: jobConfig,
	}
}

func (s *Scheduler) RegisterJobs() error {
	if err := s.registerAlertScanJob(); err != nil {
		return err
	}
	if err := s.registerMetricsSnapshotJob(); err != nil {
		return err
	}
	return nil
}

// Alert scan: derive inventory_low alerts từ distributor inventories
func (s *Scheduler) registerAlertScanJob() error {
	payload, err := json.Marshal(shared.AlertScanPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeAlertScan, payload)
	entryID, err := s.scheduler.Register(s.jobConfig.AlertScanCron, task, asynq.Queue("low"))
	if err != nil {
		return err
	}

	logger.Info("scheduled job registered", map[string]interface{}{
		"job":      shared.TypeAlertScan,
		"cron":     s.jobConfig.AlertScanCron,
		"entry_id": entryID,
	})
	return nil
}

// Metrics snapshot: recompute counters + push snapshot lên Redis
func (s *Scheduler) registerMetricsSnapshotJob() error {
	payload, err := json.Marshal(shared.MetricsSnapshotPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeMetricsSnapshot, payload)
	entryID, err := s.scheduler.Register(s.jobConfig.MetricsSnapshotCron, task, asynq.Queue("low"))
	if err != nil {
		return err
	}

	logger.Info("scheduled job registered", map[string]interface{}{
		"job":      shared.TypeMetricsSnapshot,
		"cron":     s.jobConfig.MetricsSnapshotCron,
		"entry_id": entryID,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
