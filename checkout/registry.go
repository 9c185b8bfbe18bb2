package checkout

import (
	"sync"
	"time"

	"github.com/Govind-619/Storefront/utils"
	"github.com/google/uuid"
)

// Registry keeps the live workflows by draft id. Workflows idle for longer
// than the TTL are evicted by a background janitor, except while submitting.
type Registry struct {
	mu        sync.RWMutex
	workflows map[string]*Workflow
	ttl       time.Duration
	now       func() time.Time

	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewRegistry starts a registry whose janitor runs every ttl/2; ttl <= 0
// disables eviction
func NewRegistry(ttl time.Duration) *Registry {
	r := &Registry{
		workflows: make(map[string]*Workflow),
		ttl:       ttl,
		now:       time.Now,
		stopChan:  make(chan struct{}),
	}
	if ttl > 0 {
		r.startCleanupRoutine(ttl / 2)
	}
	return r
}

func (r *Registry) startCleanupRoutine(interval time.Duration) {
	if interval < time.Second {
		interval = time.Second
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n := r.Evict(); n > 0 {
					utils.LogDebug("Evicted %d idle order drafts", n)
				}
			case <-r.stopChan:
				return
			}
		}
	}()
}

// Add stores w under a new draft id
func (r *Registry) Add(w *Workflow) string {
	id := uuid.New().String()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workflows[id] = w
	return id
}

// Get returns the workflow stored under id
func (r *Registry) Get(id string) (*Workflow, bool) {
	if id == "" {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.workflows[id]
	return w, ok
}

// Remove drops the workflow stored under id
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.workflows, id)
}

// Len returns the number of live workflows
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.workflows)
}

// Evict removes workflows idle for longer than the TTL and returns how many went
func (r *Registry) Evict() int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for id, w := range r.workflows {
		lastUsed, submitting := w.idleSince()
		if submitting || !lastUsed.Before(cutoff) {
			continue
		}
		delete(r.workflows, id)
		evicted++
	}
	return evicted
}

// Close stops the janitor
func (r *Registry) Close() {
	r.closeOnce.Do(func() {
		close(r.stopChan)
		r.wg.Wait()
	})
}
