// Package store provides CaseStore implementations.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/warp/precatorio-engine/generic"
	"github.com/warp/precatorio-engine/precatorio"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu    sync.RWMutex
	cases map[string]precatorio.Case
	now   func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		cases: make(map[string]precatorio.Case),
		now:   time.Now,
	}
}

// SaveCase stores a copy of the case. CreatedAt is kept on replace.
func (m *Memory) SaveCase(_ context.Context, c precatorio.Case) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.cases[c.ID]; ok {
		c.CreatedAt = existing.CreatedAt
	} else if c.CreatedAt.IsZero() {
		c.CreatedAt = m.now().UTC()
	}
	m.cases[c.ID] = c
	return nil
}

func (m *Memory) GetCase(_ context.Context, id string) (*precatorio.Case, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.cases[id]
	if !ok {
		return nil, &generic.NotFoundError{Kind: "case", ID: id}
	}
	return &c, nil
}

func (m *Memory) ListCases(_ context.Context) ([]precatorio.Case, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cases := make([]precatorio.Case, 0, len(m.cases))
	for _, c := range m.cases {
		cases = append(cases, c)
	}
	sort.Slice(cases, func(i, j int) bool {
		if cases[i].CreatedAt.Equal(cases[j].CreatedAt) {
			return cases[i].ID < cases[j].ID
		}
		return cases[i].CreatedAt.After(cases[j].CreatedAt)
	})
	return cases, nil
}

func (m *Memory) DeleteCase(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cases[id]; !ok {
		return &generic.NotFoundError{Kind: "case", ID: id}
	}
	delete(m.cases, id)
	return nil
}

var _ precatorio.CaseStore = (*Memory)(nil)
