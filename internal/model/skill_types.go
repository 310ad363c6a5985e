package model

import (
	"time"
)

const dateLayout = "2006-01-02"

// SkillListItem 列表页使用的精简视图
type SkillListItem struct {
	ID                 uint         `json:"id"`
	Name               string       `json:"name"`
	ResourceType       ResourceType `json:"resource_type"`
	Platform           Platform     `json:"platform"`
	Difficulty         Difficulty   `json:"difficulty"`
	HoursSpent         string       `json:"hours_spent"`
	Status             SkillStatus  `json:"status"`
	ProgressPercentage float64      `json:"progress_percentage"`
	CreatedAt          time.Time    `json:"created_at"`
}

func NewSkillListItem(s *Skill) SkillListItem {
	return SkillListItem{
		ID:                 s.ID,
		Name:               s.Name,
		ResourceType:       s.ResourceType,
		Platform:           s.Platform,
		Difficulty:         s.Difficulty,
		HoursSpent:         s.HoursSpent.StringFixed(2),
		Status:             s.Status,
		ProgressPercentage: s.ProgressPercentage(),
		CreatedAt:          s.CreatedAt,
	}
}

// SkillDetail 详情视图，包含全部字段、进度与学习记录
type SkillDetail struct {
	ID                 uint           `json:"id"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	ResourceType       ResourceType   `json:"resource_type"`
	Platform           Platform       `json:"platform"`
	ResourceURL        string         `json:"resource_url"`
	Difficulty         Difficulty     `json:"difficulty"`
	EstimatedHours     int            `json:"estimated_hours"`
	HoursSpent         string         `json:"hours_spent"`
	Status             SkillStatus    `json:"status"`
	Notes              string         `json:"notes"`
	Tags               string         `json:"tags"`
	ProgressPercentage float64        `json:"progress_percentage"`
	Activities         []ActivityView `json:"activities"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func NewSkillDetail(s *Skill, activities []LearningActivity) SkillDetail {
	views := make([]ActivityView, 0, len(activities))
	for i := range activities {
		views = append(views, NewActivityView(&activities[i]))
	}

	return SkillDetail{
		ID:                 s.ID,
		Name:               s.Name,
		Description:        s.Description,
		ResourceType:       s.ResourceType,
		Platform:           s.Platform,
		ResourceURL:        s.ResourceURL,
		Difficulty:         s.Difficulty,
		EstimatedHours:     s.EstimatedHours,
		HoursSpent:         s.HoursSpent.StringFixed(2),
		Status:             s.Status,
		Notes:              s.Notes,
		Tags:               s.Tags,
		ProgressPercentage: s.ProgressPercentage(),
		Activities:         views,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

// ActivityView 学习记录的输出格式，日期只保留到天
type ActivityView struct {
	ID         uint      `json:"id"`
	SkillID    uint      `json:"skill"`
	Date       string    `json:"date"`
	HoursSpent string    `json:"hours_spent"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewActivityView(a *LearningActivity) ActivityView {
	return ActivityView{
		ID:         a.ID,
		SkillID:    a.SkillID,
		Date:       a.Date.Format(dateLayout),
		HoursSpent: a.HoursSpent.StringFixed(2),
		Notes:      a.Notes,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// SkillStats 仪表盘统计数据
type SkillStats struct {
	TotalSkills           int64                  `json:"total_skills"`
	NotStartedSkills      int64                  `json:"not_started_skills"`
	InProgressSkills      int64                  `json:"in_progress_skills"`
	CompletedSkills       int64                  `json:"completed_skills"`
	PausedSkills          int64                  `json:"paused_skills"`
	CompletionRate        float64                `json:"completion_rate"`
	TotalHours            float64                `json:"total_hours"`
	AvgHoursPerSkill      float64                `json:"avg_hours_per_skill"`
	PlatformBreakdown     map[Platform]int64     `json:"platform_breakdown"`
	ResourceTypeBreakdown map[ResourceType]int64 `json:"resource_type_breakdown"`
	StatusBreakdown       map[SkillStatus]int64  `json:"status_breakdown"`
	MostUsedPlatform      *Platform              `json:"most_used_platform"`
	MostUsedResourceType  *ResourceType          `json:"most_used_resource_type"`
}
