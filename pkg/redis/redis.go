package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type IRedis interface {
	SetRefreshToken(ctx context.Context, userID string, token string, expiration time.Duration) error
	GetRefreshToken(ctx context.Context, userID string) (string, error)
	DeleteRefreshToken(ctx context.Context, userID string) error
	SetCachedReport(ctx context.Context, sessionID string, report string, expiration time.Duration) error
	GetCachedReport(ctx context.Context, sessionID string) (string, error)
	InvalidateReport(ctx context.Context, sessionID string) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func refreshTokenKey(userID string) string {
	return "refresh_token:" + userID
}

func reportKey(sessionID string) string {
	return "report:" + sessionID
}

func (r *redisClient) SetRefreshToken(ctx context.Context, userID string, token string, expiration time.Duration) error {
	err := r.client.Set(ctx, refreshTokenKey(userID), token, expiration).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error setting refresh token for user %s: %v", userID, err))
		return err
	}
	return nil
}

func (r *redisClient) GetRefreshToken(ctx context.Context, userID string) (string, error) {
	val, err := r.client.Get(ctx, refreshTokenKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", err
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting refresh token for user %s: %v", userID, err))
		return "", err
	}
	return val, nil
}

func (r *redisClient) DeleteRefreshToken(ctx context.Context, userID string) error {
	if _, err := r.client.Del(ctx, refreshTokenKey(userID)).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Error deleting refresh token for user %s: %v", userID, err))
		return err
	}
	return nil
}

func (r *redisClient) SetCachedReport(ctx context.Context, sessionID string, report string, expiration time.Duration) error {
	logrus.Debug(fmt.Sprintf("Caching report for session %s", sessionID))
	err := r.client.Set(ctx, reportKey(sessionID), report, expiration).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error caching report for session %s: %v", sessionID, err))
		return err
	}
	return nil
}

func (r *redisClient) GetCachedReport(ctx context.Context, sessionID string) (string, error) {
	val, err := r.client.Get(ctx, reportKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		logrus.Debug(fmt.Sprintf("No cached report for session %s", sessionID))
		return "", err
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting cached report for session %s: %v", sessionID, err))
		return "", err
	}
	return val, nil
}

func (r *redisClient) InvalidateReport(ctx context.Context, sessionID string) error {
	result, err := r.client.Del(ctx, reportKey(sessionID)).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error invalidating report for session %s: %v", sessionID, err))
		return err
	}
	if result == 0 {
		logrus.Debug(fmt.Sprintf("Report key for session %s not found for deletion", sessionID))
	}
	return nil
}
