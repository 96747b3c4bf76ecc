package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xraph/tend"
)

// Publisher is the subset of the go-redis client used by the Redis
// reporter. *redis.Client, *redis.ClusterClient, and anything implementing
// redis.Cmdable satisfy it.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Compile-time check that the full client satisfies Publisher.
var _ Publisher = (redis.Cmdable)(nil)

// RedisOption configures the Redis reporter.
type RedisOption func(*Redis)

// WithRedisChannel sets the channel events are published to.
// Defaults to "tend:events".
func WithRedisChannel(channel string) RedisOption {
	return func(r *Redis) { r.channel = channel }
}

// WithRedisCodec sets the wire codec for published records.
// Defaults to JSON.
func WithRedisCodec(c Codec) RedisOption {
	return func(r *Redis) { r.codec = c }
}

// WithRedisTimeout bounds each publish call. Defaults to 5 seconds.
func WithRedisTimeout(d time.Duration) RedisOption {
	return func(r *Redis) { r.timeout = d }
}

// WithRedisLogger sets a custom logger.
func WithRedisLogger(l *slog.Logger) RedisOption {
	return func(r *Redis) { r.logger = l }
}

// Redis publishes event records to a Redis channel so a central consumer
// can collect unobserved failures from many processes. Publishing is
// fire-and-forget: a failed publish is logged and dropped, matching the
// reporting contract.
type Redis struct {
	client  Publisher
	channel string
	codec   Codec
	timeout time.Duration
	logger  *slog.Logger
}

// NewRedis creates a Redis reporter. The caller owns the client lifecycle.
func NewRedis(client Publisher, opts ...RedisOption) *Redis {
	r := &Redis{
		client:  client,
		channel: "tend:events",
		codec:   &JSONCodec{},
		timeout: 5 * time.Second,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report implements tend.Reporter.
func (r *Redis) Report(ev tend.Event) {
	data, err := r.codec.Encode(NewRecord(ev))
	if err != nil {
		r.logger.Error("failed to encode event record",
			slog.String("message", ev.Message),
			slog.String("error", err.Error()),
		)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.client.Publish(ctx, r.channel, data).Err(); err != nil {
		r.logger.Error("failed to publish event record",
			slog.String("channel", r.channel),
			slog.String("error", err.Error()),
		)
	}
}
