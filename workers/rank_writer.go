package workers

import (
	"context"
	"log"
	"time"

	"district-champions-system/models"

	"gorm.io/gorm"
)

// RankUpdate is one best-effort rank annotation for a stored state entry.
type RankUpdate struct {
	EntryID      string
	Rank         int
	OxygenOffset float64
}

// RankWriter persists leaderboard rank annotations in the background. The
// request path enqueues after its response is composed and returns
// immediately; each write failure is logged and isolated from the rest of
// the batch. There are no retries — the next leaderboard read re-derives
// everything anyway.
type RankWriter struct {
	DB      *gorm.DB
	queue   chan RankUpdate
	persist func(RankUpdate) error
}

func NewRankWriter(db *gorm.DB, buffer int) *RankWriter {
	if buffer <= 0 {
		buffer = 256
	}
	w := &RankWriter{DB: db, queue: make(chan RankUpdate, buffer)}
	w.persist = w.apply
	return w
}

// Enqueue hands a batch to the writer without blocking the caller. Updates
// are dropped with a log line when the queue is saturated; callers never
// wait on rank persistence.
func (w *RankWriter) Enqueue(updates []RankUpdate) {
	for _, u := range updates {
		select {
		case w.queue <- u:
		default:
			log.Printf("⚠️ Rank writer queue full, dropping update for %s", u.EntryID)
		}
	}
}

// Start consumes the queue until ctx is cancelled. Run it in its own
// goroutine from main.
func (w *RankWriter) Start(ctx context.Context) {
	log.Println("Starting leaderboard rank writer...")
	for {
		select {
		case <-ctx.Done():
			log.Println("Rank writer stopped.")
			return
		case u := <-w.queue:
			if err := w.persist(u); err != nil {
				log.Printf("❌ Failed to persist rank for %s: %v", u.EntryID, err)
			}
		}
	}
}

func (w *RankWriter) apply(u RankUpdate) error {
	return w.DB.Model(&models.StateLeaderboardEntry{}).
		Where("id = ?", u.EntryID).
		Updates(map[string]interface{}{
			"rank":          u.Rank,
			"oxygen_offset": u.OxygenOffset,
			"last_updated":  time.Now(),
		}).Error
}
