package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"receiptor-bot/internal/clock"
	"receiptor-bot/internal/models"
	"receiptor-bot/internal/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// SyncResult counts what one holiday sync run did.
type SyncResult struct {
	Refreshed int
	Holidays  int
	Failed    []string
}

// HolidaySyncJob keeps the public-holiday cache fresh for the current and
// next year of every working country in use.
type HolidaySyncJob struct {
	users   repository.UserRepository
	public  *PublicHolidayService
	clock   clock.Clock
	timeout time.Duration
	cron    *cron.Cron
	logger  *logrus.Logger
}

// NewHolidaySyncJob schedules the sync on a standard five-field cron spec.
// The schedule does not run until Start.
func NewHolidaySyncJob(
	users repository.UserRepository,
	public *PublicHolidayService,
	clk clock.Clock,
	spec string,
	timeout time.Duration,
) (*HolidaySyncJob, error) {
	logger := newLogger()

	j := &HolidaySyncJob{
		users:   users,
		public:  public,
		clock:   clk,
		timeout: timeout,
		logger:  logger,
		cron: cron.New(
			cron.WithLogger(cron.PrintfLogger(logger)),
			cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(logger))),
		),
	}

	if _, err := j.cron.AddFunc(spec, func() {
		if _, err := j.Run(context.Background()); err != nil {
			j.logger.WithError(err).Warn("Scheduled holiday sync finished with errors")
		}
	}); err != nil {
		return nil, fmt.Errorf("invalid holiday sync schedule %q: %w", spec, err)
	}

	return j, nil
}

func (j *HolidaySyncJob) Start() {
	j.cron.Start()
	j.logger.Info("Holiday sync scheduler started")
}

// Stop stops the scheduler. The returned context is done once a running
// sync has finished.
func (j *HolidaySyncJob) Stop() context.Context {
	return j.cron.Stop()
}

// Run syncs the current and the next year.
func (j *HolidaySyncJob) Run(ctx context.Context) (SyncResult, error) {
	year := j.clock.Now().Year()
	return j.SyncYears(ctx, year, year+1)
}

// SyncYears refreshes every working country for the given years. A failing
// country does not stop the others; all failures are returned joined.
func (j *HolidaySyncJob) SyncYears(ctx context.Context, years ...int) (SyncResult, error) {
	countries, err := j.users.WorkingCountries()
	if err != nil {
		return SyncResult{}, fmt.Errorf("failed to list working countries: %w", err)
	}
	if len(countries) == 0 {
		countries = []string{models.DefaultWorkingCountryCode}
	}

	var result SyncResult
	var errs []error

	for _, country := range countries {
		for _, year := range years {
			if err := ctx.Err(); err != nil {
				return result, err
			}

			n, err := j.refresh(ctx, year, country)
			if err != nil {
				result.Failed = append(result.Failed, fmt.Sprintf("%s %d", country, year))
				errs = append(errs, err)
				continue
			}
			result.Refreshed++
			result.Holidays += n
		}
	}

	j.logger.WithFields(logrus.Fields{
		"countries": len(countries),
		"refreshed": result.Refreshed,
		"holidays":  result.Holidays,
		"failed":    len(result.Failed),
	}).Info("Holiday sync finished")

	return result, errors.Join(errs...)
}

func (j *HolidaySyncJob) refresh(ctx context.Context, year int, country string) (int, error) {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	holidays, err := j.public.Refresh(ctx, year, country)
	if err != nil {
		return 0, err
	}
	return len(holidays), nil
}
