package services

import (
	"context"
	"crmdigest/internal/analytics"
	"crmdigest/internal/crm"
	"crmdigest/internal/mail"
	"crmdigest/internal/models"
	"crmdigest/internal/providers"
	"crmdigest/internal/structures"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

const (
	outcomeOk    = "ok"
	outcomeError = "error"
)

type ReportServiceInterface interface {
	Build(ctx context.Context, day time.Time) (*models.Report, error)
	Render(report *models.Report) (string, error)
	Send(ctx context.Context, day time.Time) (*models.Report, error)
	SendDaily(ctx context.Context) (*models.Report, error)
	CheckConnection(ctx context.Context) error
	Yesterday() time.Time
	Location() *time.Location
	LastRun() models.RunState
	PutLastRun(state models.RunState)
}

type ReportService struct {
	conf      *structures.Config
	logger    providers.Logger
	client    crm.ClientInterface
	renderer  mail.RendererInterface
	transport mail.TransportInterface
	metrics   providers.MetricsProviderInterface
	loc       *time.Location
	now       func() time.Time

	running atomic.Bool
	mu      sync.RWMutex
	state   models.RunState
}

func NewReportService(conf *structures.Config, logger providers.Logger, client crm.ClientInterface, renderer mail.RendererInterface, transport mail.TransportInterface, metrics providers.MetricsProviderInterface) ReportServiceInterface {
	return &ReportService{
		conf:      conf,
		logger:    logger,
		client:    client,
		renderer:  renderer,
		transport: transport,
		metrics:   metrics,
		loc:       ReportLocation(conf, logger),
		now:       time.Now,
	}
}

// ReportLocation is the timezone report days are cut in.
func ReportLocation(conf *structures.Config, logger providers.Logger) *time.Location {
	loc, err := time.LoadLocation(conf.Schedule.Timezone)
	if err != nil {
		logger.Warnf(providers.TypeApp, "Unknown timezone %q, using local time: %s", conf.Schedule.Timezone, err)
		return time.Local
	}
	return loc
}

func (s *ReportService) Location() *time.Location {
	return s.loc
}

// Yesterday is local midnight of the day before today in the report timezone.
func (s *ReportService) Yesterday() time.Time {
	return analytics.Yesterday(s.now(), s.loc).Start
}

// Build fetches one day of CRM records and runs the aggregation over them.
func (s *ReportService) Build(ctx context.Context, day time.Time) (*models.Report, error) {
	w := analytics.DayWindow(day, s.loc)
	rec, err := s.collect(ctx, w)
	if err != nil {
		return nil, err
	}

	report := analytics.Build(w, rec, models.ID(s.conf.Report.PipelineID))
	s.logger.Infof(providers.TypeApp, "Report for %s: %d calls, %d notes, %d movements, %d activities, %d won, %d lost, %d owners",
		w.StartDate(), report.Totals.CallsMade, report.Totals.NotesCreated, report.Totals.DealMovements,
		report.Totals.ActivitiesDone, report.Totals.DealsWon, report.Totals.DealsLost, len(report.ByOwner))
	return report, nil
}

// collect fetches all sources concurrently. Deals, activities and users are
// required; notes and pipelines degrade to empty collections.
func (s *ReportService) collect(ctx context.Context, w analytics.Window) (analytics.Records, error) {
	var rec analytics.Records
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		deals, err := s.client.FetchDeals(gctx)
		if err != nil {
			return s.unavailable(crm.ResourceDeals, err)
		}
		rec.Deals = deals
		return nil
	})
	g.Go(func() error {
		activities, err := s.client.FetchActivities(gctx, w)
		if err != nil {
			return s.unavailable(crm.ResourceActivities, err)
		}
		rec.Activities = activities
		return nil
	})
	g.Go(func() error {
		users, err := s.client.FetchUsers(gctx)
		if err != nil {
			return s.unavailable(crm.ResourceUsers, err)
		}
		rec.Users = users
		return nil
	})
	g.Go(func() error {
		notes, err := s.client.FetchNotes(gctx, w)
		if err != nil {
			s.degrade(gctx, crm.ResourceNotes, err)
			notes = make([]models.Note, 0)
		}
		rec.Notes = notes
		return nil
	})
	g.Go(func() error {
		pipelines, err := s.client.FetchPipelines(gctx)
		if err != nil {
			s.degrade(gctx, crm.ResourcePipelines, err)
			pipelines = make([]models.Pipeline, 0)
		}
		rec.Pipelines = pipelines
		return nil
	})

	if err := g.Wait(); err != nil {
		return analytics.Records{}, err
	}
	s.logger.Debugf(providers.TypeCrm, "Fetched %d deals, %d activities, %d notes, %d users, %d pipelines",
		len(rec.Deals), len(rec.Activities), len(rec.Notes), len(rec.Users), len(rec.Pipelines))
	return rec, nil
}

func (s *ReportService) unavailable(resource string, err error) error {
	s.logger.Errorf(providers.TypeCrm, "Fetching %s failed: %s", resource, err)
	return fmt.Errorf("%w: %s: %w", models.ErrSourceUnavailable, resource, err)
}

func (s *ReportService) degrade(ctx context.Context, resource string, err error) {
	if ctx.Err() != nil {
		return
	}
	s.logger.Warnf(providers.TypeCrm, "Fetching %s failed, continuing without it: %s", resource, err)
	s.metrics.IncDegradedSource(resource)
}

func (s *ReportService) Render(report *models.Report) (string, error) {
	return s.renderer.Render(report)
}

// Send builds the report for day and mails it. Only one run may be in
// flight; a concurrent call returns ErrRunInProgress.
func (s *ReportService) Send(ctx context.Context, day time.Time) (*models.Report, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, models.ErrRunInProgress
	}
	defer s.running.Store(false)

	startedAt := s.now()
	s.logger.Infof(providers.TypeApp, "Report run for %s started", analytics.DayWindow(day, s.loc).StartDate())

	report, err := s.deliver(ctx, day)
	s.record(startedAt, day, report, err)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) SendDaily(ctx context.Context) (*models.Report, error) {
	return s.Send(ctx, s.Yesterday())
}

func (s *ReportService) deliver(ctx context.Context, day time.Time) (*models.Report, error) {
	report, err := s.Build(ctx, day)
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.Render(report)
	if err != nil {
		return nil, err
	}

	err = s.transport.Send(ctx, s.renderer.Subject(report), html, s.conf.Mail.Recipients)
	if err != nil {
		s.metrics.IncEmailsSent(outcomeError)
		return nil, err
	}
	s.metrics.IncEmailsSent(outcomeOk)
	return report, nil
}

func (s *ReportService) record(startedAt, day time.Time, report *models.Report, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.LastRunAt = startedAt
	s.state.LastReportDate = analytics.DayWindow(day, s.loc).StartDate()
	if err != nil {
		s.state.LastError = err.Error()
		s.metrics.IncReportRuns(outcomeError)
		s.logger.Errorf(providers.TypeApp, "Report run for %s failed: %s", s.state.LastReportDate, err)
		return
	}

	s.state.LastError = ""
	s.state.LastSuccessAt = s.now()
	s.state.Totals = report.Totals
	s.metrics.IncReportRuns(outcomeOk)
	s.metrics.SetLastReportTotals(report.Totals)
	s.metrics.SetLastSuccess(s.state.LastSuccessAt)
	s.logger.Infof(providers.TypeApp, "Report for %s sent to %d recipients", s.state.LastReportDate, len(s.conf.Mail.Recipients))
}

// CheckConnection verifies the CRM token.
func (s *ReportService) CheckConnection(ctx context.Context) error {
	user, err := s.client.Ping(ctx)
	if err != nil {
		if errors.Is(err, models.ErrCrmResponse) {
			return fmt.Errorf("crm rejected the api token: %w", err)
		}
		return err
	}
	s.logger.Infof(providers.TypeCrm, "Connected to CRM as %s", user.Name)
	return nil
}

func (s *ReportService) LastRun() models.RunState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *ReportService) PutLastRun(state models.RunState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}
