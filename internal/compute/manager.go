package compute

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Manager selects a backend and owns its lifecycle. Candidates are tried in
// order; the CPU backend is always appended as the fallback, so selection
// never fails on a machine without a device runtime.
type Manager struct {
	mu      sync.RWMutex
	log     *zap.Logger
	backend Backend
}

func NewManager(log *zap.Logger, candidates ...Backend) (*Manager, error) {
	m := &Manager{log: log}
	candidates = append(candidates, NewCPUBackend(log))
	for _, candidate := range candidates {
		if !candidate.IsAvailable() {
			log.Debug("backend unavailable", zap.String("backend", candidate.Name()))
			continue
		}
		if err := candidate.Initialize(); err != nil {
			log.Warn("backend failed to initialize",
				zap.String("backend", candidate.Name()), zap.Error(err))
			_ = candidate.Cleanup()
			continue
		}
		m.backend = candidate
		log.Info("selected backend", zap.String("backend", candidate.Name()))
		return m, nil
	}
	return nil, fmt.Errorf("no compute backend could be initialized")
}

// Backend returns the active backend.
func (m *Manager) Backend() Backend {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.backend
}

// BackendName returns the active backend's name, or "none".
func (m *Manager) BackendName() string {
	if backend := m.Backend(); backend != nil {
		return backend.Name()
	}
	return "none"
}

func (m *Manager) SAXPY(alpha float32, x, y []float32) ([]float32, error) {
	backend := m.Backend()
	if backend == nil {
		return nil, fmt.Errorf("no backend available")
	}
	return backend.SAXPY(alpha, x, y)
}

func (mgr *Manager) MatrixMultiply(a, b []float32, m, k, n int) ([]float32, error) {
	backend := mgr.Backend()
	if backend == nil {
		return nil, fmt.Errorf("no backend available")
	}
	return backend.MatrixMultiply(a, b, m, k, n)
}

func (m *Manager) DeviceInfo() DeviceInfo {
	backend := m.Backend()
	if backend == nil {
		return DeviceInfo{Name: "no backend available"}
	}
	return backend.DeviceInfo()
}

// Cleanup releases the active backend's resources.
func (m *Manager) Cleanup() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.backend == nil {
		return nil
	}
	err := m.backend.Cleanup()
	m.backend = nil
	return err
}
