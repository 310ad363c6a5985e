package service

import (
	"context"
	"encoding/json"
	"skillstack_backend/internal/model"
	"skillstack_backend/internal/util"
	"skillstack_backend/pkg/logger"
	"skillstack_backend/pkg/monitoring"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// StatsCache 统计结果缓存。缓存失败只记录日志，不影响主流程。
// Get 未命中时返回当前代数 gen，Set 只有在代数仍为 gen 时才写入；
// Invalidate 递增代数，因此失效之前开始计算的结果不会再写回缓存。
type StatsCache interface {
	Get(ctx context.Context) (stats *model.SkillStats, gen int64, ok bool)
	Set(ctx context.Context, gen int64, stats *model.SkillStats, ttl time.Duration)
	Invalidate(ctx context.Context)
}

// NewStatsCache rdb 为 nil（未启用 redis）时返回空实现
func NewStatsCache(rdb *redis.Client) StatsCache {
	if rdb == nil {
		return noopStatsCache{}
	}
	return &RedisStatsCache{Client: rdb, Key: util.StatsCacheKey, GenKey: util.StatsCacheGenKey}
}

// setIfGeneration KEYS[1]=缓存键 KEYS[2]=代数键 ARGV: 代数、数据、过期毫秒
var setIfGeneration = redis.NewScript(`
local gen = redis.call('GET', KEYS[2]) or '0'
if gen ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

type RedisStatsCache struct {
	Client *redis.Client
	Key    string
	GenKey string
}

func (c *RedisStatsCache) Get(ctx context.Context) (*model.SkillStats, int64, bool) {
	// 一次 MGET 同时读取数据与代数
	vals, err := c.Client.MGet(ctx, c.Key, c.GenKey).Result()
	if err != nil {
		logger.Log.Warn("Stats cache read failed", zap.Error(err))
		monitoring.StatsCacheCounter.WithLabelValues("miss").Inc()
		return nil, -1, false
	}

	gen := int64(0)
	if raw, ok := vals[1].(string); ok {
		if gen, err = strconv.ParseInt(raw, 10, 64); err != nil {
			logger.Log.Warn("Stats cache generation is corrupt", zap.String("value", raw))
			gen = -1
		}
	}

	raw, ok := vals[0].(string)
	if !ok {
		monitoring.StatsCacheCounter.WithLabelValues("miss").Inc()
		return nil, gen, false
	}

	var stats model.SkillStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		logger.Log.Warn("Stats cache payload is corrupt", zap.Error(err))
		monitoring.StatsCacheCounter.WithLabelValues("miss").Inc()
		return nil, gen, false
	}

	monitoring.StatsCacheCounter.WithLabelValues("hit").Inc()
	return &stats, gen, true
}

func (c *RedisStatsCache) Set(ctx context.Context, gen int64, stats *model.SkillStats, ttl time.Duration) {
	if gen < 0 || ttl <= 0 {
		return
	}

	data, err := json.Marshal(stats)
	if err != nil {
		logger.Log.Warn("Stats cache encode failed", zap.Error(err))
		return
	}

	stored, err := setIfGeneration.Run(ctx, c.Client, []string{c.Key, c.GenKey},
		strconv.FormatInt(gen, 10), data, ttl.Milliseconds()).Int()
	if err != nil {
		logger.Log.Warn("Stats cache write failed", zap.Error(err))
		return
	}
	if stored == 0 {
		logger.Log.Debug("Stats cache write skipped, data changed during computation", zap.Int64("generation", gen))
	}
}

func (c *RedisStatsCache) Invalidate(ctx context.Context) {
	_, err := c.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, c.GenKey)
		pipe.Del(ctx, c.Key)
		return nil
	})
	if err != nil {
		logger.Log.Warn("Stats cache invalidation failed", zap.Error(err))
	}
}

type noopStatsCache struct{}

func (noopStatsCache) Get(context.Context) (*model.SkillStats, int64, bool) { return nil, 0, false }
func (noopStatsCache) Set(context.Context, int64, *model.SkillStats, time.Duration) {}
func (noopStatsCache) Invalidate(context.Context) {}
