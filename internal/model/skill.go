package model

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Skill 学习目录中的一项技能（课程、视频、书籍等）
// HoursSpent 与 Status 为派生字段，只允许重算服务写入
type Skill struct {
	BaseModel
	Name           string          `gorm:"size:255;not null" json:"name"`
	Description    string          `gorm:"type:text" json:"description"`
	ResourceType   ResourceType    `gorm:"size:20;not null;index" json:"resource_type"`
	Platform       Platform        `gorm:"size:20;not null;index" json:"platform"`
	ResourceURL    string          `gorm:"size:200" json:"resource_url"`
	Difficulty     Difficulty      `gorm:"not null;default:1" json:"difficulty"`
	EstimatedHours int             `gorm:"not null;default:0" json:"estimated_hours"`
	HoursSpent     decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0" json:"hours_spent"`
	Status         SkillStatus     `gorm:"size:20;not null;default:'not_started';index" json:"status"`
	Notes          string          `gorm:"type:text" json:"notes"`
	Tags           string          `gorm:"size:255" json:"tags"`
}

func (Skill) TableName() string {
	return "skills"
}

// ProgressPercentage 读取时计算的学习进度，不落库
func (s *Skill) ProgressPercentage() float64 {
	return ProgressPercentage(s.HoursSpent, s.EstimatedHours, s.Status)
}

// ProgressPercentage 设置了目标时长时按比例计算（封顶 100），否则按状态给出固定值
func ProgressPercentage(hoursSpent decimal.Decimal, estimatedHours int, status SkillStatus) float64 {
	if estimatedHours > 0 {
		pct := hoursSpent.Div(decimal.NewFromInt(int64(estimatedHours))).Mul(hundred)
		if pct.GreaterThan(hundred) {
			pct = hundred
		}
		return pct.Round(2).InexactFloat64()
	}

	switch status {
	case StatusCompleted:
		return 100
	case StatusInProgress:
		return 50
	default:
		return 0
	}
}

// ResolveStatus 根据学习总时长推导技能状态，规则按顺序匹配，先命中者生效：
//  1. 总时长为 0 -> not_started（覆盖包括 paused 在内的任何状态）
//  2. 设置了目标且总时长达到目标 -> completed
//  3. 总时长大于 0 且当前为 not_started -> in_progress
//  4. 其余情况保持当前状态不变
//
// 第 4 条意味着 completed 的技能在删除部分记录后不会回退。
func ResolveStatus(total decimal.Decimal, estimatedHours int, current SkillStatus) SkillStatus {
	switch {
	case total.IsZero():
		return StatusNotStarted
	case estimatedHours > 0 && total.GreaterThanOrEqual(decimal.NewFromInt(int64(estimatedHours))):
		return StatusCompleted
	case total.IsPositive() && current == StatusNotStarted:
		return StatusInProgress
	default:
		return current
	}
}

// SkillFilter 技能列表的筛选条件，零值表示不过滤
type SkillFilter struct {
	Status       SkillStatus
	Platform     Platform
	ResourceType ResourceType
	Search       string
}
