package draftRepo

import (
	"context"
	"sync"
	"time"

	"civicjustice/models"
)

type memoryEntry struct {
	draft     models.ReportDraft
	expiresAt time.Time
}

// MemoryDraftRepo keeps drafts in process memory. Entries expire lazily.
type MemoryDraftRepo struct {
	mu      sync.Mutex
	drafts  map[string]memoryEntry
	ttl     time.Duration
	nowFunc func() time.Time
}

// NewMemoryDraftRepo returns an in-memory draft store; ttl <= 0 disables expiry.
func NewMemoryDraftRepo(ttl time.Duration) *MemoryDraftRepo {
	return &MemoryDraftRepo{
		drafts:  make(map[string]memoryEntry),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

func (r *MemoryDraftRepo) expiry() time.Time {
	if r.ttl <= 0 {
		return time.Time{}
	}
	return r.nowFunc().Add(r.ttl)
}

// lookup must be called with mu held.
func (r *MemoryDraftRepo) lookup(id string) (memoryEntry, bool) {
	e, ok := r.drafts[id]
	if !ok {
		return e, false
	}
	if !e.expiresAt.IsZero() && r.nowFunc().After(e.expiresAt) {
		delete(r.drafts, id)
		return e, false
	}
	return e, true
}

func (r *MemoryDraftRepo) Create(_ context.Context, draft models.ReportDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[draft.ID] = memoryEntry{draft: cloneDraft(draft), expiresAt: r.expiry()}
	return nil
}

func (r *MemoryDraftRepo) Get(_ context.Context, id string) (*models.ReportDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.lookup(id)
	if !ok {
		return nil, ErrDraftNotFound
	}
	d := cloneDraft(e.draft)
	return &d, nil
}

func (r *MemoryDraftRepo) Update(_ context.Context, id string, fn func(*models.ReportDraft) error) (*models.ReportDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.lookup(id)
	if !ok {
		return nil, ErrDraftNotFound
	}
	d := cloneDraft(e.draft)
	if err := fn(&d); err != nil {
		return nil, err
	}
	r.drafts[id] = memoryEntry{draft: cloneDraft(d), expiresAt: r.expiry()}
	return &d, nil
}

func (r *MemoryDraftRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lookup(id); !ok {
		return ErrDraftNotFound
	}
	delete(r.drafts, id)
	return nil
}

// Sweep removes every expired draft and returns how many were dropped.
func (r *MemoryDraftRepo) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.nowFunc()
	removed := 0
	for id, e := range r.drafts {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(r.drafts, id)
			removed++
		}
	}
	return removed
}
