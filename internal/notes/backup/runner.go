package backup

import (
	"context"
	"log"
	"time"

	"github.com/apisuite/apisuite/internal/notes/models"
)

// Runner periodically snapshots the notes table in addition to the
// write-through backups taken on every mutation.
type Runner struct {
	store  *Store
	ticker *time.Ticker
	cancel context.CancelFunc
}

// StartRunner begins snapshotting every interval. snapshot supplies the
// current notes table.
func StartRunner(store *Store, interval time.Duration, snapshot func() ([]models.Note, error)) *Runner {
	ctx, cancel := context.WithCancel(context.Background())

	r := &Runner{
		store:  store,
		ticker: time.NewTicker(interval),
		cancel: cancel,
	}

	go r.run(ctx, snapshot)

	log.Printf("Auto-backup started with interval %v", interval)
	return r
}

func (r *Runner) run(ctx context.Context, snapshot func() ([]models.Note, error)) {
	defer r.ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.ticker.C:
			notes, err := snapshot()

			if err != nil {
				log.Printf("Auto-backup: failed to read notes: %v", err)
				continue
			}

			if err := r.store.Write(notes); err != nil {
				log.Printf("Auto-backup: failed to write snapshot: %v", err)
			}
		}
	}
}

func (r *Runner) Stop() {
	r.cancel()
}
