package repository

import (
	"context"
	"skillstack_backend/internal/model"
	"skillstack_backend/internal/util"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SkillRepository struct {
	DB *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

// WithContext 返回绑定请求上下文的仓储副本
func (r *SkillRepository) WithContext(ctx context.Context) *SkillRepository {
	return &SkillRepository{DB: r.DB.WithContext(ctx)}
}

func (r *SkillRepository) Create(skill *model.Skill) error {
	return r.DB.Create(skill).Error
}

func (r *SkillRepository) FindByID(id uint) (*model.Skill, error) {
	var skill model.Skill
	err := r.DB.First(&skill, id).Error
	return &skill, err
}

// FindByIDForUpdate 在事务中锁定技能行（SELECT ... FOR UPDATE）
// sqlite 不支持行锁，由单写连接保证串行
func (r *SkillRepository) FindByIDForUpdate(id uint) (*model.Skill, error) {
	var skill model.Skill
	err := r.DB.Clauses(clause.Locking{Strength: "UPDATE"}).First(&skill, id).Error
	return &skill, err
}

// UpdateFields 按列名更新用户可编辑字段，hours_spent 不在此处写入
func (r *SkillRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	delete(fields, "hours_spent")
	return r.DB.Model(&model.Skill{}).Where("id = ?", id).Updates(fields).Error
}

// UpdateDerived 写回重算得到的学习时长与状态
func (r *SkillRepository) UpdateDerived(id uint, hoursSpent decimal.Decimal, status model.SkillStatus) error {
	return r.DB.Model(&model.Skill{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"hours_spent": hoursSpent,
			"status":      status,
			"updated_at":  time.Now(),
		}).Error
}

// Delete 先删除技能下的所有学习记录，再删除技能本身
func (r *SkillRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("skill_id = ?", id).Delete(&model.LearningActivity{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Skill{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// List 按筛选条件查询，最新创建的在前
func (r *SkillRepository) List(filter model.SkillFilter) ([]model.Skill, error) {
	var skills []model.Skill
	query := r.DB.Model(&model.Skill{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Platform != "" {
		query = query.Where("platform = ?", filter.Platform)
	}
	if filter.ResourceType != "" {
		query = query.Where("resource_type = ?", filter.ResourceType)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + util.EscapeLike(strings.ToLower(search)) + "%"
		query = query.Where(
			"(LOWER(name) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!' OR LOWER(tags) LIKE ? ESCAPE '!')",
			pattern, pattern, pattern,
		)
	}

	err := query.Order("created_at DESC").Order("id DESC").Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) FindAllIDs() ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Skill{}).Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (r *SkillRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Skill{}).Count(&count).Error
	return count, err
}

// GroupCount 分组计数结果
type GroupCount struct {
	Value string
	Count int64
}

// CountGroupBy 按列分组计数，column 只接受调用方写死的列名
func (r *SkillRepository) CountGroupBy(column string) ([]GroupCount, error) {
	var rows []GroupCount
	err := r.DB.Model(&model.Skill{}).
		Select(column + " AS value, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	return rows, err
}

// SumHours 所有技能累计学习时长
func (r *SkillRepository) SumHours() (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.DB.Model(&model.Skill{}).
		Select("SUM(hours_spent)").
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal.Round(2), nil
}
