package redisclient

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionTTL is how long a login session stays valid without re-auth.
const SessionTTL = 7 * 24 * time.Hour

// Client wraps the redis connection with the key conventions used across
// the app: login sessions, liker counters and the daily like quota.
type Client struct {
	RDB *redis.Client
}

func New(addr, password string) *Client {
	opts := &redis.Options{Addr: addr}
	if password != "" {
		opts.Password = password
	}
	return &Client{RDB: redis.NewClient(opts)}
}

func (c *Client) Ping(ctx context.Context) error {
	return c.RDB.Ping(ctx).Err()
}

// --- sessions ---

func sessionKey(token string) string { return "session:" + token }

// PutSession stores token -> userID with the session TTL.
func (c *Client) PutSession(ctx context.Context, token string, userID uint) error {
	return c.RDB.Set(ctx, sessionKey(token), strconv.FormatUint(uint64(userID), 10), SessionTTL).Err()
}

// GetSession resolves a session token to a user id. Returns (0, nil) on a
// miss so callers can fall through to the next auth strategy.
func (c *Client) GetSession(ctx context.Context, token string) (uint, error) {
	val, err := c.RDB.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	// refresh TTL on access, active sessions stay alive
	_ = c.RDB.Expire(ctx, sessionKey(token), SessionTTL).Err()
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (c *Client) DeleteSession(ctx context.Context, token string) error {
	return c.RDB.Del(ctx, sessionKey(token)).Err()
}

// --- liker counters ---

func likeCountKey(userID uint) string {
	return fmt.Sprintf("likes:count:%d", userID)
}

// GetLikeCount returns the cached count of users who liked userID. A miss
// returns (0, false, nil); callers fall back to the database.
func (c *Client) GetLikeCount(ctx context.Context, userID uint) (int64, bool, error) {
	val, err := c.RDB.Get(ctx, likeCountKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	_ = c.RDB.Expire(ctx, likeCountKey(userID), time.Hour).Err()
	return n, true, nil
}

func (c *Client) SetLikeCount(ctx context.Context, userID uint, count int64) error {
	return c.RDB.Set(ctx, likeCountKey(userID), count, time.Hour).Err()
}

func (c *Client) IncrLikeCount(ctx context.Context, userID uint) error {
	key := likeCountKey(userID)
	if err := c.RDB.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return c.RDB.Expire(ctx, key, time.Hour).Err()
}

func (c *Client) DecrLikeCount(ctx context.Context, userID uint) error {
	key := likeCountKey(userID)
	if err := c.RDB.Decr(ctx, key).Err(); err != nil {
		return err
	}
	return c.RDB.Expire(ctx, key, time.Hour).Err()
}

// --- daily like quota ---

func dailyLikeKey(userID uint, day time.Time) string {
	return fmt.Sprintf("likes:daily:%d:%s", userID, day.Format("2006-01-02"))
}

// IncrDailyLikes bumps today's like counter for the user and returns the
// new value. The key expires at the end of the day.
func (c *Client) IncrDailyLikes(ctx context.Context, userID uint, now time.Time) (int64, error) {
	key := dailyLikeKey(userID, now)
	n, err := c.RDB.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	_ = c.RDB.ExpireAt(ctx, key, midnight).Err()
	return n, nil
}

// DecrDailyLikes undoes a quota increment when the swipe itself failed.
func (c *Client) DecrDailyLikes(ctx context.Context, userID uint, now time.Time) error {
	return c.RDB.Decr(ctx, dailyLikeKey(userID, now)).Err()
}
