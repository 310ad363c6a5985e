package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

const (
	ModeDebug   = "debug"
	ModeRelease = "release"
	ModeTest    = "test"
)

// StatsCacheKey redis 中统计结果的缓存键，StatsCacheGenKey 为其代数计数
const (
	StatsCacheKey    = "skillstack:stats"
	StatsCacheGenKey = "skillstack:stats:gen"
)

// RequestIDKey gin 上下文与响应头中的请求 ID
const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)
