package service

import (
	"context"
	"skillstack_backend/internal/model"
	"skillstack_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateActivityValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	skill := env.createSkill(t, "Go", 0)

	cases := []struct {
		name  string
		req   ActivityRequest
		field string
	}{
		{"hours at lower bound", ActivityRequest{SkillID: uintPtr(skill.ID), Date: strPtr("2024-03-01"), HoursSpent: hoursPtr("0.1")}, "hours_spent"},
		{"negative hours", ActivityRequest{SkillID: uintPtr(skill.ID), Date: strPtr("2024-03-01"), HoursSpent: hoursPtr("-2")}, "hours_spent"},
		{"three decimals", ActivityRequest{SkillID: uintPtr(skill.ID), Date: strPtr("2024-03-01"), HoursSpent: hoursPtr("1.125")}, "hours_spent"},
		{"too many hours", ActivityRequest{SkillID: uintPtr(skill.ID), Date: strPtr("2024-03-01"), HoursSpent: hoursPtr("100")}, "hours_spent"},
		{"missing hours", ActivityRequest{SkillID: uintPtr(skill.ID), Date: strPtr("2024-03-01")}, "hours_spent"},
		{"bad date", ActivityRequest{SkillID: uintPtr(skill.ID), Date: strPtr("03/01/2024"), HoursSpent: hoursPtr("1")}, "date"},
		{"missing date", ActivityRequest{SkillID: uintPtr(skill.ID), HoursSpent: hoursPtr("1")}, "date"},
		{"missing skill", ActivityRequest{Date: strPtr("2024-03-01"), HoursSpent: hoursPtr("1")}, "skill"},
		{"unknown skill", ActivityRequest{SkillID: uintPtr(404), Date: strPtr("2024-03-01"), HoursSpent: hoursPtr("1")}, "skill"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.activities.Create(ctx, tc.req)
			var verr *util.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.field)
		})
	}

	got := env.getSkill(t, skill.ID)
	assert.Equal(t, "0.00", got.HoursSpent)
	assert.Equal(t, model.StatusNotStarted, got.Status)
}

func TestCreateActivityAcceptsBoundaryValues(t *testing.T) {
	env := newTestEnv(t)
	skill := env.createSkill(t, "Go", 0)

	a := env.logHours(t, skill.ID, "2024-02-29", "0.11")
	assert.Equal(t, "0.11", a.HoursSpent.StringFixed(2))
	assert.Equal(t, "2024-02-29", a.Date.Format(util.DateFormat))

	b := env.logHours(t, skill.ID, "2024-02-29", "99.99")
	assert.Equal(t, skill.ID, b.SkillID)

	// 同一天的多条记录都计入
	assert.Equal(t, "100.10", env.getSkill(t, skill.ID).HoursSpent)
}

func TestUpdateActivity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	skill := env.createSkill(t, "Postgres", 5)
	other := env.createSkill(t, "MySQL", 0)
	a := env.logHours(t, skill.ID, "2024-03-01", "2")

	updated, err := env.activities.Update(ctx, a.ID, ActivityRequest{
		Date:       strPtr("2024-03-05"),
		HoursSpent: hoursPtr("5"),
		Notes:      strPtr("indexes"),
	}, true)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", updated.Date.Format(util.DateFormat))
	assert.Equal(t, "5.00", updated.HoursSpent.StringFixed(2))
	assert.Equal(t, "indexes", updated.Notes)
	assert.Equal(t, model.StatusCompleted, env.getSkill(t, skill.ID).Status)

	_, err = env.activities.Update(ctx, a.ID, ActivityRequest{SkillID: uintPtr(other.ID)}, true)
	var verr *util.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "skill")
	assert.Equal(t, "0.00", env.getSkill(t, other.ID).HoursSpent)

	// 同一技能视为未变更
	_, err = env.activities.Update(ctx, a.ID, ActivityRequest{SkillID: uintPtr(skill.ID), Notes: strPtr("same")}, true)
	require.NoError(t, err)

	_, err = env.activities.Update(ctx, a.ID, ActivityRequest{Notes: strPtr("partial only")}, false)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "date")
	assert.Contains(t, verr.Fields, "hours_spent")

	_, err = env.activities.Update(ctx, 999, ActivityRequest{Notes: strPtr("x")}, true)
	assert.ErrorIs(t, err, util.ErrActivityNotFound)
}

func TestDeleteActivityNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.activities.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, util.ErrActivityNotFound)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestListActivities(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	skill := env.createSkill(t, "Go", 0)
	other := env.createSkill(t, "SQL", 0)
	older := env.logHours(t, skill.ID, "2024-01-01", "1")
	newer := env.logHours(t, skill.ID, "2024-02-01", "1")
	env.logHours(t, other.ID, "2024-03-01", "1")

	list, err := env.activities.List(ctx, ActivityQuery{Skill: "1"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)

	all, err := env.activities.List(ctx, ActivityQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	for _, bad := range []string{"abc", "0", "404"} {
		_, err := env.activities.List(ctx, ActivityQuery{Skill: bad})
		var verr *util.ValidationError
		require.ErrorAs(t, err, &verr, bad)
		assert.Contains(t, verr.Fields, "skill")
	}
}

func TestMutationsInvalidateStatsCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	skill := env.createSkill(t, "Go", 0)
	after := env.cache.invalidations()
	assert.Equal(t, 1, after)

	a := env.logHours(t, skill.ID, "2024-01-01", "1")
	assert.Equal(t, after+1, env.cache.invalidations())

	_, err := env.activities.Update(ctx, a.ID, ActivityRequest{Notes: strPtr("n")}, true)
	require.NoError(t, err)
	require.NoError(t, env.activities.Delete(ctx, a.ID))
	require.NoError(t, env.skills.Delete(ctx, skill.ID))
	assert.Equal(t, after+4, env.cache.invalidations())

	// 失败的写入不触发失效
	_, err = env.activities.Create(ctx, ActivityRequest{SkillID: uintPtr(skill.ID), Date: strPtr("2024-01-01"), HoursSpent: hoursPtr("1")})
	require.Error(t, err)
	assert.Equal(t, after+4, env.cache.invalidations())
}
