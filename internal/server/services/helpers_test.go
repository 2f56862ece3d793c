package services

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/vaccx/internal/logging"
	"github.com/dmitrijs2005/vaccx/internal/server/config"
	"github.com/dmitrijs2005/vaccx/internal/server/kv"
	"github.com/dmitrijs2005/vaccx/internal/server/repositories/repomanager"
)

// lockedBuffer lets concurrent goroutines log into one buffer.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type recordingObserver struct {
	mu        sync.Mutex
	completed []float64
	rejected  []string
}

func (o *recordingObserver) TradeCompleted(price float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.completed = append(o.completed, price)
}

func (o *recordingObserver) TradeRejected(reason string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rejected = append(o.rejected, reason)
}

type testEnv struct {
	store  *kv.MemoryStore
	svc    *ExchangeService
	logs   *lockedBuffer
	now    time.Time
	clock  sync.Mutex
	obs    *recordingObserver
	config *config.Config
}

func (e *testEnv) advance(d time.Duration) {
	e.clock.Lock()
	defer e.clock.Unlock()
	e.now = e.now.Add(d)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return cfg
}

func newTestEnv(t *testing.T, mutate ...func(*config.Config)) *testEnv {
	t.Helper()

	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}

	env := &testEnv{
		store:  kv.NewMemoryStore(),
		logs:   &lockedBuffer{},
		now:    time.Unix(1_700_000_000, 0),
		obs:    &recordingObserver{},
		config: cfg,
	}
	env.store.SetClock(func() time.Time {
		env.clock.Lock()
		defer env.clock.Unlock()
		return env.now
	})

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(env.logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	env.svc = NewExchangeService(env.store, repomanager.NewKVRepositoryManager(), cfg, logger, WithTradeObserver(env.obs))
	return env
}

func ptr(f float64) *float64 { return &f }
