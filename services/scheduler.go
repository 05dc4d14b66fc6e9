// services/scheduler.go
package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartSnapshotScheduler recomputes the global snapshot on a fixed interval.
// Deployments that trigger the recompute through the HTTP cron endpoint
// instead can skip starting it.
func (s *StatsService) StartSnapshotScheduler(interval time.Duration) {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if _, err := s.RecomputeGlobalStats(); err != nil {
				log.Printf("[Scheduler] Stats recompute failed: %v", err)
			}
		}),
	)
}
