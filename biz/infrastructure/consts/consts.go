package consts

// 数据库相关
const (
	Track     = "track"
	YearGroup = "year_group"
	Order     = "order"
)

// Post http
const (
	Post = "POST"
)

// 课堂指令
const (
	EndCmd     = -1
	MessageCmd = 0
	Ping       = 1
	TopicCmd   = 2
	PhaseCmd   = 3
	AttachCmd  = 4
)

// 默认值
const (
	DefaultTrack = "maths"
	ScienceTrack = "science"
	// MinRounds 学生发言超过该轮数才投递课程结束事件
	MinRounds = 3
)
