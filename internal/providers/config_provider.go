package providers

import (
	"crmdigest/internal/structures"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func setConfigDefaults() {
	viper.SetDefault("webServer.host", "0.0.0.0")
	viper.SetDefault("webServer.port", 3000)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", 0644)
	viper.SetDefault("crm.baseUrl", "https://api.pipedrive.com/v1")
	viper.SetDefault("crm.timeout", 30*time.Second)
	viper.SetDefault("crm.requestInterval", 300*time.Millisecond)
	viper.SetDefault("crm.pageLimit", 1000)
	viper.SetDefault("crm.noteLimit", 500)
	viper.SetDefault("mail.host", "smtp.gmail.com")
	viper.SetDefault("mail.port", 587)
	viper.SetDefault("schedule.enabled", true)
	viper.SetDefault("schedule.spec", "30 8 * * *")
	viper.SetDefault("schedule.timezone", "America/Toronto")
	viper.SetDefault("schedule.runTimeout", 5*time.Minute)
	viper.SetDefault("cache.ttl", 10*time.Minute)
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")
	setConfigDefaults()

	viper.BindEnv("crm.apiToken", "DIGEST_CRM_TOKEN")
	viper.BindEnv("mail.username", "DIGEST_MAIL_USER")
	viper.BindEnv("mail.password", "DIGEST_MAIL_PASSWORD")
	viper.BindEnv("logger.level", "DIGEST_LOG_LEVEL")
	viper.BindEnv("schedule.spec", "DIGEST_SCHEDULE")
	viper.BindEnv("schedule.timezone", "DIGEST_TIMEZONE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "CrmDailyDigest"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
