package testutil

import (
	"skillstack_backend/internal/model"
	"skillstack_backend/pkg/database"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenTestDB 打开内存 sqlite 并迁移表结构，测试结束时自动关闭。
// 内存库绑定在单个连接上，因此连接数固定为 1。
func OpenTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(":memory:")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

// CreateSkill 以默认值创建技能，mutate 可覆盖字段
func CreateSkill(t testing.TB, db *gorm.DB, name string, mutate ...func(*model.Skill)) *model.Skill {
	t.Helper()

	skill := &model.Skill{
		Name:         name,
		ResourceType: model.ResourceCourse,
		Platform:     model.PlatformUdemy,
		Difficulty:   model.DifficultyBeginner,
		Status:       model.StatusNotStarted,
	}
	for _, fn := range mutate {
		fn(skill)
	}
	require.NoError(t, db.Create(skill).Error)
	return skill
}
