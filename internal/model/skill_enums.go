package model

// ResourceType 学习资源类型
type ResourceType string

const (
	ResourceVideo         ResourceType = "video"
	ResourceCourse        ResourceType = "course"
	ResourceArticle       ResourceType = "article"
	ResourceBook          ResourceType = "book"
	ResourceTutorial      ResourceType = "tutorial"
	ResourceCertification ResourceType = "certification"
)

// ResourceTypes 按声明顺序排列，统计时用于平局判定
var ResourceTypes = []ResourceType{
	ResourceVideo,
	ResourceCourse,
	ResourceArticle,
	ResourceBook,
	ResourceTutorial,
	ResourceCertification,
}

var resourceTypeLabels = map[ResourceType]string{
	ResourceVideo:         "Video",
	ResourceCourse:        "Course",
	ResourceArticle:       "Article",
	ResourceBook:          "Book",
	ResourceTutorial:      "Tutorial",
	ResourceCertification: "Certification",
}

func (t ResourceType) Valid() bool {
	_, ok := resourceTypeLabels[t]
	return ok
}

func (t ResourceType) Label() string {
	return resourceTypeLabels[t]
}

// Platform 学习平台
type Platform string

const (
	PlatformUdemy        Platform = "udemy"
	PlatformYouTube      Platform = "youtube"
	PlatformCoursera     Platform = "coursera"
	PlatformEdX          Platform = "edx"
	PlatformLinkedIn     Platform = "linkedin"
	PlatformPluralsight  Platform = "pluralsight"
	PlatformCodecademy   Platform = "codecademy"
	PlatformFreeCodeCamp Platform = "freecodecamp"
	PlatformOther        Platform = "other"
)

var Platforms = []Platform{
	PlatformUdemy,
	PlatformYouTube,
	PlatformCoursera,
	PlatformEdX,
	PlatformLinkedIn,
	PlatformPluralsight,
	PlatformCodecademy,
	PlatformFreeCodeCamp,
	PlatformOther,
}

var platformLabels = map[Platform]string{
	PlatformUdemy:        "Udemy",
	PlatformYouTube:      "YouTube",
	PlatformCoursera:     "Coursera",
	PlatformEdX:          "edX",
	PlatformLinkedIn:     "LinkedIn Learning",
	PlatformPluralsight:  "Pluralsight",
	PlatformCodecademy:   "Codecademy",
	PlatformFreeCodeCamp: "FreeCodeCamp",
	PlatformOther:        "Other",
}

func (p Platform) Valid() bool {
	_, ok := platformLabels[p]
	return ok
}

func (p Platform) Label() string {
	return platformLabels[p]
}

// SkillStatus 技能学习状态
// paused 只能由用户手动设置，重算时不会自动进入该状态
type SkillStatus string

const (
	StatusNotStarted SkillStatus = "not_started"
	StatusInProgress SkillStatus = "in_progress"
	StatusCompleted  SkillStatus = "completed"
	StatusPaused     SkillStatus = "paused"
)

var SkillStatuses = []SkillStatus{
	StatusNotStarted,
	StatusInProgress,
	StatusCompleted,
	StatusPaused,
}

var skillStatusLabels = map[SkillStatus]string{
	StatusNotStarted: "Not Started",
	StatusInProgress: "In Progress",
	StatusCompleted:  "Completed",
	StatusPaused:     "Paused",
}

func (s SkillStatus) Valid() bool {
	_, ok := skillStatusLabels[s]
	return ok
}

func (s SkillStatus) Label() string {
	return skillStatusLabels[s]
}

// Difficulty 难度等级，数值越大越难
type Difficulty int

const (
	DifficultyBeginner     Difficulty = 1
	DifficultyIntermediate Difficulty = 2
	DifficultyAdvanced     Difficulty = 3
	DifficultyExpert       Difficulty = 4
)

var Difficulties = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
	DifficultyExpert,
}

var difficultyLabels = map[Difficulty]string{
	DifficultyBeginner:     "Beginner",
	DifficultyIntermediate: "Intermediate",
	DifficultyAdvanced:     "Advanced",
	DifficultyExpert:       "Expert",
}

func (d Difficulty) Valid() bool {
	_, ok := difficultyLabels[d]
	return ok
}

func (d Difficulty) Label() string {
	return difficultyLabels[d]
}
