package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const dateLayout = "2006-01-02"

type Config struct {
	AppName      string
	Env          string // DEV (local; default), TEST, QA, PROD
	Debug        bool
	TestMode     bool
	Build        string
	Output       string        // default CLI output format
	Today        time.Time     // pinned "current date"; zero means wall clock
	AuthDelay    time.Duration // simulated sign-in latency of the mock provider
	RollbarToken string
	Host         string
}

// NewConfig loads the configuration from defaults, `config/.env.<env>` (if it exists) and the environment.
// Environment keys are prefixed by the env name, eg. `DEV_OUTPUT=json`.
func NewConfig() (*Config, error) {
	conf, err := loadConfig(viper.New())
	return conf, errors.Wrap(err, "config")
}

func loadConfig(v *viper.Viper) (*Config, error) {
	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("appName", "StudyLab")
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("build", "dev")
	v.SetDefault("output", "text")
	v.SetDefault("today", "")
	v.SetDefault("authDelay", time.Duration(0))
	v.SetDefault("rollbarToken", "")

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "godotenv(%s)", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "os.Stat(%s)", dotEnvPath)
	}
	v.AutomaticEnv()

	host, _ := os.Hostname()
	conf := &Config{
		AppName:      v.GetString("appName"),
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		Build:        v.GetString("build"),
		Output:       v.GetString("output"),
		AuthDelay:    v.GetDuration("authDelay"),
		RollbarToken: v.GetString("rollbarToken"),
		Host:         host,
	}
	if today := CleanString(v.GetString("today")); today != "" {
		t, err := ParseDate(today)
		if err != nil {
			return nil, errors.Wrap(err, "today")
		}
		conf.Today = t
	}
	return conf, nil
}

// Clock returns the time source the app should use: a fixed one when Today is set, time.Now otherwise.
func (conf *Config) Clock() func() time.Time {
	if conf.Today.IsZero() {
		return time.Now
	}
	today := conf.Today
	return func() time.Time { return today }
}

// ParseDate parses a YYYY-MM-DD date in the local timezone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}
