package workers

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-passkey-vault/internal/config"
	"github.com/MKhiriev/go-passkey-vault/internal/keycache"
	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/models"
)

func newTestSaltCache(t *testing.T) *keycache.SaltCache {
	t.Helper()
	salts, err := keycache.NewSaltCache(filepath.Join(t.TempDir(), "salts.json"))
	require.NoError(t, err)
	return salts
}

func TestSaltPruneWorker_SweepKeepsFreshEntries(t *testing.T) {
	salts := newTestSaltCache(t)
	require.NoError(t, salts.Put(1, models.PRFParameters{Salt: []byte{0x01}, Version: 1}))

	cfg := config.ClientWorkers{SaltMaxAge: 24 * time.Hour}
	w := NewSaltPruneWorker(salts, cfg, logger.Nop())

	w.sweep()

	_, err := salts.Get(1)
	assert.NoError(t, err, "fresh entry must survive the sweep")
}

func TestSaltPruneWorker_DisabledWithoutMaxAge(t *testing.T) {
	salts := newTestSaltCache(t)
	w := NewSaltPruneWorker(salts, config.ClientWorkers{}, logger.Nop())

	// Run must return immediately instead of starting a loop.
	w.Run()
	w.Stop()
}

func TestSaltPruneWorker_RunSweepsOnInterval(t *testing.T) {
	salts := newTestSaltCache(t)
	require.NoError(t, salts.Put(7, models.PRFParameters{Salt: []byte{0x07}, Version: 1}))

	// With an extremely small max age every entry is stale by the first tick.
	cfg := config.ClientWorkers{SaltMaxAge: time.Millisecond}
	w := NewSaltPruneWorker(salts, cfg, logger.Nop())

	w.Run()
	defer w.Stop()

	assert.Eventually(t, func() bool {
		_, err := salts.Get(7)
		return err != nil
	}, time.Second, 5*time.Millisecond, "stale entry should be pruned by the loop")
}
