package cronjob

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/prajwalpc099d/ProjectVault/internal/recommendations/service"
)

const refreshTimeout = 2 * time.Minute

// Scheduler keeps cached recommendations warm: on every tick it recomputes
// the result for each user holding a cache entry, so interactive requests
// mostly hit a fresh cache. Users who fall out of the retention window stop
// being refreshed.
type Scheduler struct {
	svc  *service.Service
	spec string
	log  *zap.Logger
	cron *cron.Cron
}

func NewScheduler(svc *service.Service, spec string, log *zap.Logger) *Scheduler {
	return &Scheduler{svc: svc, spec: spec, log: log}
}

// Start initializes the cron task.
func (s *Scheduler) Start() error {
	c := cron.New(cron.WithSeconds())

	if _, err := c.AddFunc(s.spec, s.refreshAll); err != nil {
		return err
	}

	s.log.Info("recommendation refresh scheduler started", zap.String("spec", s.spec))
	c.Start()
	s.cron = c
	return nil
}

// Stop halts the cron loop, waiting for a running refresh to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Scheduler) refreshAll() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	uids, err := s.svc.CachedUsers(ctx)
	if err != nil {
		s.log.Warn("refresh skipped, cannot list cached users", zap.Error(err))
		return
	}

	refreshed := 0
	for _, uid := range uids {
		if _, err := s.svc.GetRecommendations(ctx, uid, true); err != nil {
			s.log.Warn("refresh failed for user", zap.String("user", uid), zap.Error(err))
			continue
		}
		refreshed++
	}

	if len(uids) > 0 {
		s.log.Info("recommendation caches refreshed",
			zap.Int("users", len(uids)),
			zap.Int("refreshed", refreshed),
		)
	}
}
