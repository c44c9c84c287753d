package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lshigami/Meerkats/config"
	"github.com/lshigami/Meerkats/internal/dto"
	"github.com/redis/go-redis/v9"
)

// StatsCache keeps computed survey statistics for a short window so repeated
// dashboard polls do not re-aggregate every answer row.
type StatsCache interface {
	Get(ctx context.Context, surveyID uint) (*dto.SurveyStatsDTO, error)
	Set(ctx context.Context, stats *dto.SurveyStatsDTO) error
	Invalidate(ctx context.Context, surveyID uint) error
}

type statsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{
		client: client,
		ttl:    30 * time.Second,
	}
}

func (c *statsCache) key(surveyID uint) string {
	return fmt.Sprintf("survey:%d:stats", surveyID)
}

func (c *statsCache) Get(ctx context.Context, surveyID uint) (*dto.SurveyStatsDTO, error) {
	data, err := c.client.Get(ctx, c.key(surveyID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats dto.SurveyStatsDTO
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *statsCache) Set(ctx context.Context, stats *dto.SurveyStatsDTO) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(stats.SurveyID), data, c.ttl).Err()
}

func (c *statsCache) Invalidate(ctx context.Context, surveyID uint) error {
	return c.client.Del(ctx, c.key(surveyID)).Err()
}
