package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Paths    PathsConfig
	Email    EmailConfig
	Database DatabaseConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// PathsConfig locates the filesystem artifacts shared between the training
// CLIs and the prediction service.
type PathsConfig struct {
	DataDir       string
	ModelPath     string
	ThresholdPath string
	BaselinePath  string
	ReportPath    string
	WebDir        string
}

type EmailConfig struct {
	SMTPServer string
	SMTPPort   int
	Username   string
	Password   string
	// ReportURL is the externally reachable link embedded in the email body.
	ReportURL string
}

type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (e EmailConfig) CredentialsConfigured() bool {
	return e.Username != "" && e.Password != ""
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8000)

	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("MODEL_PATH", "models/churn_model.json")
	v.SetDefault("THRESHOLD_PATH", "models/threshold.json")
	v.SetDefault("BASELINE_PATH", "data/baseline_train.csv")
	// The report lands inside the frontend directory so the static file
	// server exposes it at /ui/drift_report.html.
	v.SetDefault("REPORT_PATH", "web/drift_report.html")
	v.SetDefault("WEB_DIR", "web")

	v.SetDefault("SMTP_SERVER", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("REPORT_URL", "http://localhost:8000/ui/drift_report.html")

	v.SetDefault("DATABASE_ENABLED", false)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "churn")
	v.SetDefault("DATABASE_PASSWORD", "")
	v.SetDefault("DATABASE_NAME", "churn")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	lifetime, err := time.ParseDuration(v.GetString("DATABASE_CONN_MAX_LIFETIME"))
	if err != nil {
		lifetime = 30 * time.Minute
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Paths: PathsConfig{
			DataDir:       v.GetString("DATA_DIR"),
			ModelPath:     v.GetString("MODEL_PATH"),
			ThresholdPath: v.GetString("THRESHOLD_PATH"),
			BaselinePath:  v.GetString("BASELINE_PATH"),
			ReportPath:    v.GetString("REPORT_PATH"),
			WebDir:        v.GetString("WEB_DIR"),
		},
		Email: EmailConfig{
			SMTPServer: v.GetString("SMTP_SERVER"),
			SMTPPort:   v.GetInt("SMTP_PORT"),
			Username:   v.GetString("EMAIL_USERNAME"),
			Password:   v.GetString("EMAIL_PASSWORD"),
			ReportURL:  v.GetString("REPORT_URL"),
		},
		Database: DatabaseConfig{
			Enabled:         v.GetBool("DATABASE_ENABLED"),
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: lifetime,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
