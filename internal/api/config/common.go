package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Upload   UploadConfig   `mapstructure:"upload"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	Bucket           string `mapstructure:"bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
}

// LogstashConfig 远程日志配置，Address 为空时只输出到 stdout
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// CacheConfig 响应缓存配置。TTL 只是调优默认值，单位分钟
type CacheConfig struct {
	Backend        string `mapstructure:"backend"` // memory / redis
	SeriesTTL      int    `mapstructure:"series_ttl"`
	FollowerTTL    int    `mapstructure:"follower_ttl"`
	KeyPrefix      string `mapstructure:"key_prefix"`
	DisableCaching bool   `mapstructure:"disable_caching"`
}

// UploadConfig 媒体上传配置
type UploadConfig struct {
	MaxSizeMB      int64 `mapstructure:"max_size_mb"`
	ThumbnailWidth int   `mapstructure:"thumbnail_width"`
}
