package draftRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"civicjustice/models"

	"github.com/go-redis/redis/v8"
)

const draftKeyPrefix = "report:draft:"

// maxTxRetries bounds optimistic retries when a draft is modified concurrently.
const maxTxRetries = 5

// RedisDraftRepo stores drafts as JSON documents with a sliding TTL.
type RedisDraftRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftRepo(client *redis.Client, ttl time.Duration) *RedisDraftRepo {
	return &RedisDraftRepo{client: client, ttl: ttl}
}

func draftKey(id string) string {
	return draftKeyPrefix + id
}

func (r *RedisDraftRepo) Create(ctx context.Context, draft models.ReportDraft) error {
	b, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, draftKey(draft.ID), b, r.ttl).Err()
}

func (r *RedisDraftRepo) Get(ctx context.Context, id string) (*models.ReportDraft, error) {
	data, err := r.client.Get(ctx, draftKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}
	var d models.ReportDraft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("corrupt draft %s: %w", id, err)
	}
	return &d, nil
}

func (r *RedisDraftRepo) Update(ctx context.Context, id string, fn func(*models.ReportDraft) error) (*models.ReportDraft, error) {
	key := draftKey(id)
	var result models.ReportDraft

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err == redis.Nil {
			return ErrDraftNotFound
		}
		if err != nil {
			return err
		}
		var d models.ReportDraft
		if err := json.Unmarshal(data, &d); err != nil {
			return fmt.Errorf("corrupt draft %s: %w", id, err)
		}
		if err := fn(&d); err != nil {
			return err
		}
		b, err := json.Marshal(d)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, b, r.ttl)
			return nil
		})
		if err == nil {
			result = d
		}
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return &result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("draft %s: too much contention", id)
}

func (r *RedisDraftRepo) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, draftKey(id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDraftNotFound
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (r *RedisDraftRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
