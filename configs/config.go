package configs

import (
	"log"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App        `mapstructure:"app"`
	Twilio     `mapstructure:"twilio"`
	Google     `mapstructure:"google"`
	Bot        `mapstructure:"bot"`
	Automation `mapstructure:"automation"`
	Postgres   `mapstructure:"postgres"`
}

// App struct
type App struct {
	Debug bool   `mapstructure:"debug"`
	Env   string `mapstructure:"env"`
	Port  string `mapstructure:"port"`
}

// Twilio struct
type Twilio struct {
	AccountSID     string `mapstructure:"account_sid"`
	AuthToken      string `mapstructure:"auth_token"`
	WhatsAppNumber string `mapstructure:"whatsapp_number"`
}

// Google struct - credentials for the Maps account the bot posts with
type Google struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

// Bot struct
type Bot struct {
	// AllowedNumbers is a comma-separated list of phone numbers permitted
	// to use the bot. Empty means unrestricted.
	AllowedNumbers string `mapstructure:"allowed_numbers"`
}

// Automation struct - browser automation settings
type Automation struct {
	Headless    bool `mapstructure:"headless"`
	NoSandbox   bool `mapstructure:"no_sandbox"`
	StepTimeout int  `mapstructure:"step_timeout"` // seconds per automation step
}

// Postgres struct - review history database; disabled when enabled=false
type Postgres struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func getConfig(path, env string) {
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Println("Config file has changed: ", e.Name)
	})
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalln(err)
	}
}

// AllowedNumberList splits the configured allow-list into individual numbers
func (b Bot) AllowedNumberList() []string {
	if strings.TrimSpace(b.AllowedNumbers) == "" {
		return nil
	}
	parts := strings.Split(b.AllowedNumbers, ",")
	numbers := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			numbers = append(numbers, trimmed)
		}
	}
	return numbers
}
