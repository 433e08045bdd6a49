package service

import (
	"context"
	"sync"
	"time"

	"github.com/euscan/euscanwww/metrics"
	"github.com/euscan/euscanwww/utils"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

const countersJobTimeout = 30 * time.Minute

type StatsJobService interface {
	CreateJob(schedule string) error
	Stop()
}

func NewStatsJobService(statsService StatsService) StatsJobService {
	return &statsJobServiceImpl{
		statsService: statsService,
		cron:         cron.New(cron.WithLocation(time.UTC)),
	}
}

type statsJobServiceImpl struct {
	statsService StatsService
	cron         *cron.Cron
	started      sync.Once
}

func (s *statsJobServiceImpl) CreateJob(schedule string) error {
	job := &CountersJob{schedule: schedule, statsService: s.statsService}
	_, err := s.cron.AddJob(schedule, job)
	if err != nil {
		log.Warnf("[Stats job] Job wasn't added for schedule - %s. With error - %s", schedule, err)
		return err
	}
	s.started.Do(s.cron.Start)
	log.Infof("[Stats job] Job was created with schedule - %s", schedule)
	return nil
}

func (s *statsJobServiceImpl) Stop() {
	<-s.cron.Stop().Done()
}

// CountersJob stores a statistics snapshot. Overlapping runs are skipped.
type CountersJob struct {
	schedule     string
	statsService StatsService
	running      sync.Mutex
}

func (j *CountersJob) Run() {
	if !j.running.TryLock() {
		log.Warn("[Stats job] Previous run is still in progress, skipping")
		return
	}
	defer j.running.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), countersJobTimeout)
	defer cancel()
	started := time.Now()
	err := utils.SafeSync(func() error {
		return j.statsService.UpdateCounters(ctx)
	})
	if err != nil {
		log.Errorf("[Stats job] Failed to update counters: %v", err)
		return
	}
	elapsed := time.Since(started)
	metrics.CountersJobDuration.WithLabelValues().Set(elapsed.Seconds())
	log.Infof("[Stats job] Counters updated in %s", elapsed)
}
