package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Ilhomjon565/kutubxona-uit/config"
	"github.com/Ilhomjon565/kutubxona-uit/internal/model"
	"github.com/Ilhomjon565/kutubxona-uit/utils"
)

type RedisSession struct {
	redis *redis.Client
	cfg   *config.Config
}

func NewRedisSession(cfg *config.Config, redisClient *redis.Client) *RedisSession {
	return &RedisSession{redis: redisClient, cfg: cfg}
}

func (r *RedisSession) createSessionKey(sid string) string {
	return fmt.Sprintf("admin:sid:%s:session", sid)
}

func (r *RedisSession) CreateSession(ctx context.Context, session model.AdminSession) (string, error) {
	op := "RedisSession.CreateSession"
	rqID := utils.GetRequestIDFromCtx(ctx)
	slog.Debug("start CreateSession", slog.String("rqID", rqID), slog.String("username", session.Username))

	sessionJson, err := json.Marshal(session)
	if err != nil {
		slog.Error("can't marshall session", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return "", errors.New("can't marshall session")
	}

	sid := uuid.NewString()

	_, err = r.redis.Set(ctx, r.createSessionKey(sid), sessionJson, r.cfg.SessionExpiration).Result()
	if err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return "", err
	}

	slog.Debug("CreateSession completed", slog.String("rqID", rqID))

	return sid, nil
}

func (r *RedisSession) GetSession(ctx context.Context, sid string) (model.AdminSession, error) {
	op := "RedisSession.GetSession"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := r.createSessionKey(sid)

	res, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			slog.Warn("session not found in redis", slog.String("rqID", rqID), slog.String("op", op))
			return model.AdminSession{}, ErrNotFound
		}

		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return model.AdminSession{}, err
	}

	session := model.AdminSession{}

	err = json.Unmarshal([]byte(res), &session)
	if err != nil {
		slog.Error("can't unmarshall session", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.AdminSession{}, errors.New("can't unmarshall session")
	}

	return session, nil
}

func (r *RedisSession) DeleteSession(ctx context.Context, sid string) error {
	op := "RedisSession.DeleteSession"
	rqID := utils.GetRequestIDFromCtx(ctx)

	_, err := r.redis.Del(ctx, r.createSessionKey(sid)).Result()
	if err != nil {
		slog.Error("failed on redis.Del", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	return nil
}
