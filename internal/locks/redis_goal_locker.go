package locks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

const (
	lockKeyPrefix = "goal_lock:"
	retryInterval = 25 * time.Millisecond
)

// Deletes the key only while it still holds our token.
var releaseScript = rueidis.NewLuaScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisGoalLocker holds a goal with SET NX PX so writers in different
// processes are serialized. The TTL bounds how long a crashed holder blocks others.
type RedisGoalLocker struct {
	client rueidis.Client
	ttl    time.Duration
	wait   time.Duration
	logger *zap.Logger
}

func NewRedisGoalLocker(client rueidis.Client, ttl, wait time.Duration, logger *zap.Logger) *RedisGoalLocker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisGoalLocker{
		client: client,
		ttl:    ttl,
		wait:   wait,
		logger: logger,
	}
}

func (r *RedisGoalLocker) Lock(ctx context.Context, goalID string) (func(), error) {
	key := lockKeyPrefix + goalID
	token := uuid.NewString()
	deadline := time.Now().Add(r.wait)

	for {
		acquired, err := r.tryAcquire(ctx, key, token)
		if err != nil {
			return nil, fmt.Errorf("acquire goal lock: %w", err)
		}
		if acquired {
			return func() { r.release(key, token) }, nil
		}

		if !time.Now().Before(deadline) {
			return nil, ErrGoalLocked
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}

func (r *RedisGoalLocker) tryAcquire(ctx context.Context, key, token string) (bool, error) {
	cmd := r.client.B().Set().Key(key).Value(token).Nx().Px(r.ttl).Build()
	err := r.client.Do(ctx, cmd).Error()
	if err == nil {
		return true, nil
	}
	if rueidis.IsRedisNil(err) {
		return false, nil
	}
	return false, err
}

func (r *RedisGoalLocker) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := releaseScript.Exec(ctx, r.client, []string{key}, []string{token}).Error(); err != nil {
		r.logger.Warn("failed to release goal lock", zap.String("key", key), zap.Error(err))
	}
}
