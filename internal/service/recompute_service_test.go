package service

import (
	"context"
	"fmt"
	"skillstack_backend/internal/model"
	"skillstack_backend/internal/util"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityLifecycleDrivesStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	skill := env.createSkill(t, "Go Web Services", 10)
	assert.Equal(t, model.StatusNotStarted, skill.Status)
	assert.Equal(t, "0.00", skill.HoursSpent)

	// 首条记录开始学习
	env.logHours(t, skill.ID, "2024-03-01", "4")
	got := env.getSkill(t, skill.ID)
	assert.Equal(t, model.StatusInProgress, got.Status)
	assert.Equal(t, "4.00", got.HoursSpent)
	assert.Equal(t, 40.0, got.ProgressPercentage)

	// 达到目标时长
	six := env.logHours(t, skill.ID, "2024-03-02", "6")
	got = env.getSkill(t, skill.ID)
	assert.Equal(t, model.StatusCompleted, got.Status)
	assert.Equal(t, "10.00", got.HoursSpent)
	assert.Equal(t, 100.0, got.ProgressPercentage)

	// completed 不会因为时长回落而退回
	require.NoError(t, env.activities.Delete(ctx, six.ID))
	got = env.getSkill(t, skill.ID)
	assert.Equal(t, model.StatusCompleted, got.Status)
	assert.Equal(t, "4.00", got.HoursSpent)
	assert.Len(t, got.Activities, 1)
}

func TestStatusWithoutTargetHours(t *testing.T) {
	env := newTestEnv(t)

	skill := env.createSkill(t, "Docker", 0)
	env.logHours(t, skill.ID, "2024-03-01", "0.5")

	got := env.getSkill(t, skill.ID)
	assert.Equal(t, model.StatusInProgress, got.Status)
	assert.Equal(t, "0.50", got.HoursSpent)
	assert.Equal(t, 50.0, got.ProgressPercentage)
}

func TestDeletingLastActivityResetsStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	skill := env.createSkill(t, "Kafka", 5)
	a := env.logHours(t, skill.ID, "2024-03-01", "6")
	require.Equal(t, model.StatusCompleted, env.getSkill(t, skill.ID).Status)

	require.NoError(t, env.activities.Delete(ctx, a.ID))
	got := env.getSkill(t, skill.ID)
	assert.Equal(t, model.StatusNotStarted, got.Status)
	assert.Equal(t, "0.00", got.HoursSpent)
	assert.Empty(t, got.Activities)
}

func TestHoursAlwaysEqualActivitySum(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	skill := env.createSkill(t, "Algorithms", 0)
	ids := make([]uint, 0, 6)
	for i, h := range []string{"0.11", "1.25", "2.5", "0.2", "3.33", "0.7"} {
		a := env.logHours(t, skill.ID, fmt.Sprintf("2024-04-%02d", i+1), h)
		ids = append(ids, a.ID)
	}
	assert.Equal(t, "8.09", env.getSkill(t, skill.ID).HoursSpent)

	_, err := env.activities.Update(ctx, ids[1], ActivityRequest{HoursSpent: hoursPtr("2.25")}, true)
	require.NoError(t, err)
	assert.Equal(t, "9.09", env.getSkill(t, skill.ID).HoursSpent)

	require.NoError(t, env.activities.Delete(ctx, ids[0]))
	assert.Equal(t, "8.98", env.getSkill(t, skill.ID).HoursSpent)

	report, err := env.recompute.CheckConsistency(ctx, skill.ID)
	require.NoError(t, err)
	assert.True(t, report.Consistent)
	assert.Equal(t, 5, report.ActivityCount)
}

func TestRecomputeIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	skill := env.createSkill(t, "Networking", 10)
	env.logHours(t, skill.ID, "2024-03-01", "3")
	before := env.getSkill(t, skill.ID)

	first, err := env.recompute.Recompute(ctx, skill.ID)
	require.NoError(t, err)
	second, err := env.recompute.Recompute(ctx, skill.ID)
	require.NoError(t, err)

	after := env.getSkill(t, skill.ID)
	assert.Equal(t, first.Status, second.Status)
	assert.True(t, first.HoursSpent.Equal(second.HoursSpent))
	assert.Equal(t, before.HoursSpent, after.HoursSpent)
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
}

func TestRecomputeMissingSkill(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.recompute.Recompute(context.Background(), 999)
	assert.ErrorIs(t, err, util.ErrSkillNotFound)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestRecomputeRepairsDriftedSkill(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	skill := env.createSkill(t, "Linux", 10)
	env.logHours(t, skill.ID, "2024-03-01", "2")

	// 绕过服务层直接写库，模拟派生数据漂移
	require.NoError(t, env.db.Model(&model.Skill{}).Where("id = ?", skill.ID).
		Updates(map[string]interface{}{"hours_spent": "7", "status": model.StatusNotStarted}).Error)

	report, err := env.recompute.CheckConsistency(ctx, skill.ID)
	var cerr *util.ConsistencyError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, skill.ID, cerr.SkillID)
	assert.Equal(t, "7.00", cerr.Stored.StringFixed(2))
	assert.Equal(t, "2.00", cerr.Actual.StringFixed(2))
	assert.False(t, report.Consistent)
	assert.Equal(t, model.StatusInProgress, report.ExpectedStatus)

	changed, err := env.recompute.RecomputeAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	got := env.getSkill(t, skill.ID)
	assert.Equal(t, "2.00", got.HoursSpent)
	assert.Equal(t, model.StatusInProgress, got.Status)

	_, err = env.recompute.CheckConsistency(ctx, skill.ID)
	assert.NoError(t, err)
}

func TestConcurrentActivityWritesKeepSum(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	skill := env.createSkill(t, "Distributed Systems", 100)
	other := env.createSkill(t, "Databases", 0)

	var wg sync.WaitGroup
	errs := make(chan error, 40)
	for i := 0; i < 20; i++ {
		for _, id := range []uint{skill.ID, other.ID} {
			wg.Add(1)
			go func(skillID uint, day int) {
				defer wg.Done()
				_, err := env.activities.Create(ctx, ActivityRequest{
					SkillID:    uintPtr(skillID),
					Date:       strPtr(fmt.Sprintf("2024-05-%02d", day)),
					HoursSpent: hoursPtr("1.25"),
				})
				errs <- err
			}(id, i+1)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, "25.00", env.getSkill(t, skill.ID).HoursSpent)
	assert.Equal(t, "25.00", env.getSkill(t, other.ID).HoursSpent)
	assert.Equal(t, 0, env.recompute.locks.size())
}
