// Package redisstore implements PortalStore on Redis. Portals live as JSON
// blobs under per-id keys plus a set of all ids; no TTL, the catalog is
// durable. SETNX guards creates and WATCH transactions guard the
// read-merge-write of partial updates, which keeps mutations for a given id
// linearizable with respect to reads of that id.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nexai/hub/internal/domain"
	"github.com/nexai/hub/internal/store"
)

// maxTxRetries bounds optimistic-lock retries when two admins race on the
// same portal. The later write wins in full.
const maxTxRetries = 5

// Store handles Redis operations for portals
type Store struct {
	client  *redis.Client
	timeNow func() time.Time
}

// New creates a new Redis-backed portal store
func New(client *redis.Client) *Store {
	return &Store{
		client:  client,
		timeNow: time.Now,
	}
}

func (s *Store) Create(ctx context.Context, candidate domain.Candidate) (domain.Portal, error) {
	now := s.timeNow()
	portal, err := store.NewPortal(candidate, now)
	if err != nil {
		return domain.Portal{}, err
	}

	generated := portal.ID == ""
	if generated {
		portal.ID = store.GenerateID(now)
	}

	for {
		data, err := json.Marshal(portal)
		if err != nil {
			return domain.Portal{}, fmt.Errorf("failed to marshal portal: %w", err)
		}

		ok, err := s.client.SetNX(ctx, PortalKey(portal.ID), data, 0).Result()
		if err != nil {
			return domain.Portal{}, fmt.Errorf("failed to create portal: %w", err)
		}
		if ok {
			break
		}
		if !generated {
			return domain.Portal{}, domain.ErrConflict
		}
		// Generated millisecond ids can collide; bump and retry.
		now = now.Add(time.Millisecond)
		portal.ID = store.GenerateID(now)
	}

	if err := s.client.SAdd(ctx, AllPortalsKey(), portal.ID).Err(); err != nil {
		return domain.Portal{}, fmt.Errorf("failed to add portal to set: %w", err)
	}

	return portal, nil
}

func (s *Store) Get(ctx context.Context, id string) (domain.Portal, error) {
	data, err := s.client.Get(ctx, PortalKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Portal{}, domain.ErrNotFound
		}
		return domain.Portal{}, fmt.Errorf("failed to get portal: %w", err)
	}

	var portal domain.Portal
	if err := json.Unmarshal(data, &portal); err != nil {
		return domain.Portal{}, fmt.Errorf("failed to unmarshal portal: %w", err)
	}
	return portal, nil
}

func (s *Store) GetAll(ctx context.Context) ([]domain.Portal, error) {
	ids, err := s.client.SMembers(ctx, AllPortalsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get portal IDs: %w", err)
	}

	portals := make([]domain.Portal, 0, len(ids))
	for _, id := range ids {
		portal, err := s.Get(ctx, id)
		if err != nil {
			// Skip ids whose blob is gone; the set entry is stale.
			continue
		}
		portals = append(portals, portal)
	}

	domain.SortPortals(portals)
	return portals, nil
}

func (s *Store) Update(ctx context.Context, id string, patch domain.Patch) (domain.Portal, error) {
	key := PortalKey(id)
	var merged domain.Portal

	txn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to get portal: %w", err)
		}

		var portal domain.Portal
		if err := json.Unmarshal(data, &portal); err != nil {
			return fmt.Errorf("failed to unmarshal portal: %w", err)
		}

		if err := store.ApplyPatch(&portal, patch, s.timeNow()); err != nil {
			return err
		}

		out, err := json.Marshal(portal)
		if err != nil {
			return fmt.Errorf("failed to marshal portal: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, 0)
			return nil
		})
		if err != nil {
			return err
		}

		merged = portal
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := s.client.Watch(ctx, txn, key)
		if err == nil {
			return merged, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return domain.Portal{}, err
	}
	return domain.Portal{}, fmt.Errorf("failed to update portal %s after %d attempts: %w", id, maxTxRetries, redis.TxFailedErr)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	removed, err := s.client.Del(ctx, PortalKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete portal: %w", err)
	}
	if removed == 0 {
		return domain.ErrNotFound
	}

	if err := s.client.SRem(ctx, AllPortalsKey(), id).Err(); err != nil {
		return fmt.Errorf("failed to remove portal from set: %w", err)
	}
	return nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	n, err := s.client.SCard(ctx, AllPortalsKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count portals: %w", err)
	}
	return int(n), nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
