package state

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/seatwise/seatwise/pkg/errors"
)

const (
	redisKeyPrefix = "seatwise:snapshot:"
	redisLatestKey = "seatwise:snapshot:latest"
	redisIndexKey  = "seatwise:snapshots"
)

// RedisStore persists snapshots in Redis. Snapshots are stored as JSON
// under per-ID keys, indexed in a sorted set scored by save time so that
// List and Latest stay cheap.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis using a URL of the form
// redis://[user:password@]host:port/db.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse redis url")
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to redis")
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "marshal snapshot")
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisKeyPrefix+snap.ID, data, 0)
	pipe.Set(ctx, redisLatestKey, snap.ID, 0)
	pipe.ZAdd(ctx, redisIndexKey, redis.Z{
		Score:  float64(snap.SavedAt.UnixNano()),
		Member: snap.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "save snapshot")
	}
	return nil
}

func (s *RedisStore) Latest(ctx context.Context) (*Snapshot, error) {
	id, err := s.client.Get(ctx, redisLatestKey).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read latest marker")
	}
	return s.Get(ctx, id)
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Snapshot, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read snapshot")
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "parse snapshot")
	}
	return &snap, nil
}

func (s *RedisStore) List(ctx context.Context) ([]*Snapshot, error) {
	ids, err := s.client.ZRevRange(ctx, redisIndexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read snapshot index")
	}
	out := make([]*Snapshot, 0, len(ids))
	for _, id := range ids {
		snap, err := s.Get(ctx, id)
		if errors.Is(err, errors.ErrCodeSnapshotNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, redisKeyPrefix+id)
	pipe.ZRem(ctx, redisIndexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete snapshot")
	}
	latest, err := s.client.Get(ctx, redisLatestKey).Result()
	if err == nil && latest == id {
		s.client.Del(ctx, redisLatestKey)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
