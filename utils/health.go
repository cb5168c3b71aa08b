package utils

import (
	"context"
	"sync"
	"time"
)

// Pinger is anything that can report whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Services  map[string]bool `json:"services"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth = HealthStatus{Services: map[string]bool{}}
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	out := HealthStatus{Services: make(map[string]bool, len(currentHealth.Services)), CheckedAt: currentHealth.CheckedAt}
	for k, v := range currentHealth.Services {
		out.Services[k] = v
	}
	return out
}

// CheckHealth pings every service once and stores the snapshot.
func CheckHealth(ctx context.Context, services map[string]Pinger) HealthStatus {
	snapshot := HealthStatus{Services: make(map[string]bool, len(services)), CheckedAt: time.Now()}
	for name, p := range services {
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		snapshot.Services[name] = p.Ping(pctx) == nil
		cancel()
	}

	mu.Lock()
	currentHealth = snapshot
	mu.Unlock()
	return snapshot
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, interval time.Duration, services map[string]Pinger) {
	if len(services) == 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		CheckHealth(ctx, services)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, services)
			}
		}
	}()
}
