package workers

import (
	"time"

	"github.com/MKhiriev/go-passkey-vault/internal/config"
	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/internal/session"
)

// AutoLockWorker locks the encryption session after it has sat unused for
// the configured idle timeout. It polls rather than hooks every key access:
// a lock that lands one interval late is acceptable, a hot path that pays
// for a timer reset on every encrypt call is not.
type AutoLockWorker struct {
	session  *session.Controller
	userID   int64
	interval time.Duration
	idle     time.Duration

	stop chan struct{}

	logger *logger.Logger
}

// NewAutoLockWorker builds a worker for the given user's session. interval
// and idle timeout come from the client worker settings; zero values disable
// the worker (Run returns immediately).
func NewAutoLockWorker(sessionCtrl *session.Controller, userID int64, cfg config.ClientWorkers, log *logger.Logger) *AutoLockWorker {
	return &AutoLockWorker{
		session:  sessionCtrl,
		userID:   userID,
		interval: cfg.AutoLockInterval,
		idle:     cfg.IdleTimeout,
		stop:     make(chan struct{}),
		logger:   log,
	}
}

// Run starts the polling loop in a background goroutine.
func (w *AutoLockWorker) Run() {
	if w.interval <= 0 || w.idle <= 0 {
		w.logger.Debug().Msg("auto-lock worker disabled")
		return
	}

	go w.loop()
}

// Stop terminates the polling loop. Safe to call once.
func (w *AutoLockWorker) Stop() {
	close(w.stop)
}

func (w *AutoLockWorker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			w.tick()
		}
	}
}

func (w *AutoLockWorker) tick() {
	if !w.session.IsUnlocked() {
		return
	}

	idleFor := time.Since(w.session.LastUsed())
	if idleFor < w.idle {
		return
	}

	if err := w.session.Lock(w.userID); err != nil {
		w.logger.Err(err).Int64("user_id", w.userID).Msg("auto-lock failed")
		return
	}

	w.logger.Info().
		Int64("user_id", w.userID).
		Dur("idle", idleFor).
		Msg("session auto-locked after idle timeout")
}
