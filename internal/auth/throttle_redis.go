package auth

import (
    "context"
    "log"
    "time"

    "github.com/redis/go-redis/v9"
)

// RedisThrottle is a Throttle backed by Redis so that failure counters
// are shared across instances.  Counters use plain INCR/DEL with no
// expiry, matching the no-time-decay contract of the interface.  Redis
// errors fail open: an unreachable Redis must not lock every user out,
// so IsBlocked returns false and counter updates are logged and dropped.
type RedisThrottle struct {
    rdb *redis.Client
    max int
}

// NewRedisThrottle returns a RedisThrottle blocking after max
// consecutive failures.
func NewRedisThrottle(rdb *redis.Client, max int) *RedisThrottle {
    return &RedisThrottle{rdb: rdb, max: max}
}

func throttleKey(email string) string { return "login_fail:" + email }

func (t *RedisThrottle) RecordFailure(email string) {
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := t.rdb.Incr(ctx, throttleKey(email)).Err(); err != nil {
        log.Printf("throttle: incr failed for %s: %v", email, err)
    }
}

func (t *RedisThrottle) RecordSuccess(email string) {
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := t.rdb.Del(ctx, throttleKey(email)).Err(); err != nil {
        log.Printf("throttle: del failed for %s: %v", email, err)
    }
}

func (t *RedisThrottle) IsBlocked(email string) bool {
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    n, err := t.rdb.Get(ctx, throttleKey(email)).Int()
    if err != nil {
        if err != redis.Nil {
            log.Printf("throttle: get failed for %s: %v", email, err)
        }
        return false
    }
    return n >= t.max
}
