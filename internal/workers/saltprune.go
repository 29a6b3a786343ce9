package workers

import (
	"time"

	"github.com/MKhiriev/go-passkey-vault/internal/config"
	"github.com/MKhiriev/go-passkey-vault/internal/keycache"
	"github.com/MKhiriev/go-passkey-vault/internal/logger"
)

// SaltPruneWorker periodically drops stale entries from the PRF salt cache.
// Salts are public values, so staleness is a hygiene concern, not a security
// one: an entry for a long-deleted credential only invites a doomed offline
// unlock attempt.
type SaltPruneWorker struct {
	salts  *keycache.SaltCache
	maxAge time.Duration

	// one sweep per maxAge is enough; salts going stale is slow business.
	interval time.Duration

	stop chan struct{}

	logger *logger.Logger
}

// NewSaltPruneWorker builds a worker over the given salt cache. A
// non-positive SaltMaxAge disables the worker.
func NewSaltPruneWorker(salts *keycache.SaltCache, cfg config.ClientWorkers, log *logger.Logger) *SaltPruneWorker {
	return &SaltPruneWorker{
		salts:    salts,
		maxAge:   cfg.SaltMaxAge,
		interval: cfg.SaltMaxAge,
		stop:     make(chan struct{}),
		logger:   log,
	}
}

// Run starts the sweep loop in a background goroutine.
func (w *SaltPruneWorker) Run() {
	if w.maxAge <= 0 || w.interval <= 0 {
		w.logger.Debug().Msg("salt-prune worker disabled")
		return
	}

	go w.loop()
}

// Stop terminates the sweep loop. Safe to call once.
func (w *SaltPruneWorker) Stop() {
	close(w.stop)
}

func (w *SaltPruneWorker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *SaltPruneWorker) sweep() {
	removed, err := w.salts.Prune(w.maxAge)
	if err != nil {
		w.logger.Err(err).Msg("salt cache prune failed")
		return
	}

	if removed > 0 {
		w.logger.Info().Int("removed", removed).Msg("pruned stale salt cache entries")
	}
}
