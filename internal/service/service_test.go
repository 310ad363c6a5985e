package service

import (
	"context"
	"skillstack_backend/internal/model"
	"skillstack_backend/internal/repository"
	"skillstack_backend/internal/testutil"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeStatsCache 记录失效次数，便于断言；代数规则与 redis 实现一致
type fakeStatsCache struct {
	mu          sync.Mutex
	stats       *model.SkillStats
	gen         int64
	sets        int
	invalidated int
}

func (c *fakeStatsCache) Get(context.Context) (*model.SkillStats, int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats, c.gen, c.stats != nil
}

func (c *fakeStatsCache) Set(_ context.Context, gen int64, stats *model.SkillStats, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.stats = stats
	c.sets++
}

func (c *fakeStatsCache) Invalidate(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = nil
	c.gen++
	c.invalidated++
}

func (c *fakeStatsCache) invalidations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invalidated
}

type testEnv struct {
	db         *gorm.DB
	cache      *fakeStatsCache
	recompute  *RecomputeService
	skills     *SkillService
	activities *ActivityService
	stats      *StatsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.OpenTestDB(t)
	cache := &fakeStatsCache{}
	skillRepo := repository.NewSkillRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	recompute := NewRecomputeService(db, cache)

	return &testEnv{
		db:         db,
		cache:      cache,
		recompute:  recompute,
		skills:     NewSkillService(skillRepo, activityRepo, recompute),
		activities: NewActivityService(activityRepo, skillRepo, recompute),
		stats:      NewStatsService(skillRepo, cache, time.Minute),
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }

func hoursPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func skillReq(name string, estimated int) SkillRequest {
	rt := model.ResourceCourse
	p := model.PlatformUdemy
	return SkillRequest{
		Name:           strPtr(name),
		ResourceType:   &rt,
		Platform:       &p,
		EstimatedHours: intPtr(estimated),
	}
}

func (e *testEnv) createSkill(t *testing.T, name string, estimated int) *model.SkillDetail {
	t.Helper()
	skill, err := e.skills.Create(context.Background(), skillReq(name, estimated))
	require.NoError(t, err)
	return skill
}

func (e *testEnv) logHours(t *testing.T, skillID uint, date, hours string) *model.LearningActivity {
	t.Helper()
	activity, err := e.activities.Create(context.Background(), ActivityRequest{
		SkillID:    uintPtr(skillID),
		Date:       strPtr(date),
		HoursSpent: hoursPtr(hours),
	})
	require.NoError(t, err)
	return activity
}

func (e *testEnv) getSkill(t *testing.T, id uint) *model.SkillDetail {
	t.Helper()
	skill, err := e.skills.Get(context.Background(), id)
	require.NoError(t, err)
	return skill
}
