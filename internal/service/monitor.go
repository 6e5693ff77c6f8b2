package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

// StoreMonitor periodically pings the session store and logs availability changes.
type StoreMonitor struct {
	store    SessionStore
	schedule string
	logger   *zap.Logger

	healthy atomic.Bool
}

// NewStoreMonitor creates a new StoreMonitor running on a cron schedule.
func NewStoreMonitor(store SessionStore, schedule string, logger *zap.Logger) *StoreMonitor {
	m := &StoreMonitor{
		store:    store,
		schedule: schedule,
		logger:   logger,
	}
	m.healthy.Store(true)
	return m
}

// Healthy reports the result of the last check.
func (m *StoreMonitor) Healthy() bool {
	return m.healthy.Load()
}

// Start runs the monitor until ctx is cancelled.
func (m *StoreMonitor) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(m.schedule, func() {
		m.Check(ctx)
	})
	if err != nil {
		return err
	}

	c.Start()
	m.logger.Info("store monitor started", zap.String("schedule", m.schedule))

	<-ctx.Done()

	<-c.Stop().Done()
	m.logger.Info("store monitor stopped")
	return nil
}

// Check pings the store once and records the result.
func (m *StoreMonitor) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := m.store.Ping(ctx)
	healthy := err == nil

	if prev := m.healthy.Swap(healthy); prev != healthy {
		if healthy {
			m.logger.Info("session store is back online")
		} else {
			m.logger.Error("session store is unavailable", zap.Error(err))
		}
	}

	return healthy
}
