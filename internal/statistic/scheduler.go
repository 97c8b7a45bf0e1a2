package statistic

import (
	"context"
	"crmdigest/internal/models"
	"crmdigest/internal/providers"
	"crmdigest/internal/services"
	"crmdigest/internal/statistic/interfaces"
	"crmdigest/internal/structures"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	service     services.ReportServiceInterface
	fileManager *FileManager
	cron        *cron.Cron
	entry       cron.EntryID
	opsMu       sync.Mutex
}

// Init registers the daily run in the report timezone and starts the cron.
// A disabled schedule registers nothing.
func (s *Scheduler) Init() error {
	if !s.config.Schedule.Enabled {
		s.logger.Infof(providers.TypeApp, "Daily schedule disabled")
		return nil
	}

	s.cron = cron.New(cron.WithLocation(s.service.Location()))
	id, err := s.cron.AddFunc(s.config.Schedule.Spec, s.run)
	if err != nil {
		return fmt.Errorf("schedule %q: %w", s.config.Schedule.Spec, err)
	}
	s.entry = id
	s.cron.Start()

	s.logger.Infof(providers.TypeApp, "Daily report scheduled at %q (%s), next run %s",
		s.config.Schedule.Spec, s.service.Location(), s.NextRun().Format(time.RFC3339))
	return nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Schedule.RunTimeout)
	defer cancel()

	s.logger.Infof(providers.TypeApp, "Scheduled report run started")
	_, err := s.service.SendDaily(ctx)
	switch {
	case errors.Is(err, models.ErrRunInProgress):
		s.logger.Warnf(providers.TypeApp, "Scheduled run skipped: %s", err)
		return
	case err != nil:
		s.logger.Errorf(providers.TypeApp, "Scheduled run failed: %s", err)
	}

	_ = s.Persist()
}

// NextRun is the next activation time, zero when nothing is scheduled.
func (s *Scheduler) NextRun() time.Time {
	if s.cron == nil {
		return time.Time{}
	}
	return s.cron.Entry(s.entry).Next
}

// Stop halts the cron and waits for a running job to return.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Scheduler) Restore() error {
	return s.fileManager.LoadFromFile(s.config.State.FilePath)
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	err := s.fileManager.SaveToFile(s.config.State.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting run state: %s", err)
		return err
	}
	s.logger.Debugf(providers.TypeApp, "Persisted run state to %s", s.config.State.FilePath)
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.ReportServiceInterface, fileManager *FileManager) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		service:     service,
		fileManager: fileManager,
	}
}
