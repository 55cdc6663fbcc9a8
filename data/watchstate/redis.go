package watchstate

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/Ilhomjon565/kutubxona-uit/config"
	"github.com/Ilhomjon565/kutubxona-uit/utils"
)

const (
	latestBookKey  = "watcher:latest_book_id"
	subscribersKey = "watcher:subscribers"
)

// RedisWatchState keeps the new-book watcher baseline and the list of
// notification subscribers, so a restart does not re-announce old books.
type RedisWatchState struct {
	redis *redis.Client
	cfg   *config.Config
}

func NewRedisWatchState(cfg *config.Config, redisClient *redis.Client) *RedisWatchState {
	return &RedisWatchState{redis: redisClient, cfg: cfg}
}

func (r *RedisWatchState) LatestBookID(ctx context.Context) (string, error) {
	op := "RedisWatchState.LatestBookID"
	rqID := utils.GetRequestIDFromCtx(ctx)

	res, err := r.redis.Get(ctx, latestBookKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return "", err
	}

	return res, nil
}

func (r *RedisWatchState) SetLatestBookID(ctx context.Context, bookID string) error {
	op := "RedisWatchState.SetLatestBookID"
	rqID := utils.GetRequestIDFromCtx(ctx)

	_, err := r.redis.Set(ctx, latestBookKey, bookID, 0).Result()
	if err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("bookID", bookID))
		return err
	}

	return nil
}

func (r *RedisWatchState) Subscribe(ctx context.Context, email string) error {
	op := "RedisWatchState.Subscribe"
	rqID := utils.GetRequestIDFromCtx(ctx)

	_, err := r.redis.SAdd(ctx, subscribersKey, email).Result()
	if err != nil {
		slog.Error("failed on redis.SAdd", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	return nil
}

func (r *RedisWatchState) Subscribers(ctx context.Context) ([]string, error) {
	op := "RedisWatchState.Subscribers"
	rqID := utils.GetRequestIDFromCtx(ctx)

	res, err := r.redis.SMembers(ctx, subscribersKey).Result()
	if err != nil {
		slog.Error("failed on redis.SMembers", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, err
	}

	return res, nil
}
