package structures

import (
	"net/http"
	"time"
)

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Url     string
	Handler http.Handler
}

type Server struct {
	Host string `yaml:"host" mapstructure:"host" validate:"required"`
	Port int    `yaml:"port" mapstructure:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" mapstructure:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" mapstructure:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" mapstructure:"dir" validate:"required|unixPath"`
}

// CrmConfig configures the Pipedrive client. RequestInterval is the minimum
// gap between two outbound requests.
type CrmConfig struct {
	BaseUrl         string        `yaml:"baseUrl" mapstructure:"baseUrl" validate:"required|fullUrl"`
	ApiToken        string        `yaml:"apiToken" mapstructure:"apiToken" validate:"required"`
	Timeout         time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"required|min:1"`
	RequestInterval time.Duration `yaml:"requestInterval" mapstructure:"requestInterval"`
	PageLimit       int           `yaml:"pageLimit" mapstructure:"pageLimit" validate:"required|min:1"`
	NoteLimit       int           `yaml:"noteLimit" mapstructure:"noteLimit" validate:"required|min:1"`
}

type MailConfig struct {
	Host       string   `yaml:"host" mapstructure:"host" validate:"required"`
	Port       int      `yaml:"port" mapstructure:"port" validate:"required|uint|min:1"`
	Username   string   `yaml:"username" mapstructure:"username"`
	Password   string   `yaml:"password" mapstructure:"password"`
	From       string   `yaml:"from" mapstructure:"from" validate:"required|email"`
	Recipients []string `yaml:"recipients" mapstructure:"recipients" validate:"required"`
}

type ScheduleConfig struct {
	Enabled    bool          `yaml:"enabled" mapstructure:"enabled"`
	Spec       string        `yaml:"spec" mapstructure:"spec" validate:"required|cronSpec"`
	Timezone   string        `yaml:"timezone" mapstructure:"timezone" validate:"required|timezone"`
	RunTimeout time.Duration `yaml:"runTimeout" mapstructure:"runTimeout" validate:"required|min:1"`
}

// ReportConfig scopes the digest. PipelineID 0 covers every pipeline.
type ReportConfig struct {
	PipelineID int64 `yaml:"pipelineId" mapstructure:"pipelineId"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Size    int           `yaml:"size" mapstructure:"size"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

type StateConfig struct {
	FilePath string `yaml:"filePath" mapstructure:"filePath" validate:"required|unixPath"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server         `yaml:"webServer" mapstructure:"webServer"`
	Logger    LoggerConfig   `yaml:"logger" mapstructure:"logger"`
	Crm       CrmConfig      `yaml:"crm" mapstructure:"crm"`
	Mail      MailConfig     `yaml:"mail" mapstructure:"mail"`
	Schedule  ScheduleConfig `yaml:"schedule" mapstructure:"schedule"`
	Report    ReportConfig   `yaml:"report" mapstructure:"report"`
	Cache     CacheConfig    `yaml:"cache" mapstructure:"cache"`
	Metrics   MetricsConfig  `yaml:"metrics" mapstructure:"metrics"`
	State     StateConfig    `yaml:"state" mapstructure:"state"`
}
