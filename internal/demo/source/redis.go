package source

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/logging"

	"github.com/kpumuk/lazychart/chartdata"
)

func init() {
	// Disable all Redis logging globally using the built-in VoidLogger
	redis.SetLogger(&logging.VoidLogger{})
}

// maxRedisPoints caps how many trailing samples are read per series key.
const maxRedisPoints = 120

// Redis reads series from Redis lists. Each configured key names one series;
// the list holds numeric samples in arrival order, and the trailing
// maxRedisPoints samples become points with X equal to the sample index.
type Redis struct {
	redis           *redis.Client
	keys            []string
	displayRedisURL string
}

// NewRedis creates a Redis source configured from a Redis URL.
func NewRedis(redisURL string, keys []string) (*Redis, error) {
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	// Disable connection pool logging by disabling retries entirely.
	opts.MaxRetries = -1               // Disable retries completely
	opts.DialTimeout = 2 * time.Second // Short timeout to fail fast
	opts.ReadTimeout = 2 * time.Second
	opts.WriteTimeout = 2 * time.Second
	opts.PoolSize = 1 // Minimal pool size

	return &Redis{
		redis:           redis.NewClient(opts),
		keys:            keys,
		displayRedisURL: sanitizeRedisURL(redisURL),
	}, nil
}

// DisplayRedisURL returns a sanitized URL safe for display.
func (r *Redis) DisplayRedisURL() string {
	return r.displayRedisURL
}

func sanitizeRedisURL(redisURL string) string {
	if redisURL == "" {
		return ""
	}
	parsed, err := url.Parse(redisURL)
	if err != nil {
		return redisURL
	}
	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = nil
		} else {
			parsed.User = url.User(username)
		}
	}
	return parsed.String()
}

// Close closes the Redis connection.
func (r *Redis) Close() error {
	return r.redis.Close()
}

// Name implements Source.
func (r *Redis) Name() string {
	return "redis " + r.displayRedisURL
}

// Fetch implements Source. Keys that are missing or empty yield empty series
// so the charts render their empty state instead of failing.
func (r *Redis) Fetch(ctx context.Context) ([]chartdata.Series, error) {
	series := make([]chartdata.Series, 0, len(r.keys))
	for _, key := range r.keys {
		values, err := r.redis.LRange(ctx, key, -maxRedisPoints, -1).Result()
		if err != nil {
			return nil, fmt.Errorf("read series %q: %w", key, err)
		}

		points := make([]chartdata.Point, 0, len(values))
		for i, raw := range values {
			y, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("series %q sample %d: %w", key, i, err)
			}
			points = append(points, chartdata.Point{X: float64(i), Y: y})
		}

		series = append(series, chartdata.Series{Name: key, Points: points})
	}

	return series, nil
}
