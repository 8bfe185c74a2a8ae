package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Поддерживаемые хранилища состояния booking flow
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Storage    StorageConfig    `toml:"storage"`
	Database   DatabaseConfig   `toml:"database"`
	Redis      RedisConfig      `toml:"redis"`
	BookingAPI BookingAPIConfig `toml:"booking_api"`
	Salon      SalonConfig      `toml:"salon"`
	Wizard     WizardConfig     `toml:"wizard"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type StorageConfig struct {
	Backend string `toml:"backend"` // postgres | redis | memory
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	SessionTTL int    `toml:"session_ttl"` // секунды
	Channel    string `toml:"channel"`     // канал событий между инстансами, пусто - без моста
}

type BookingAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type SalonConfig struct {
	Timezone           string   `toml:"timezone"`
	OpenTime           string   `toml:"open_time"`
	CloseTime          string   `toml:"close_time"`
	ClosedWeekdays     []string `toml:"closed_weekdays"` // "sunday", "mon", ...
	SlotStepMinutes    int      `toml:"slot_step_minutes"`
	MinNoticeMinutes   int      `toml:"min_notice_minutes"`
	AdvanceBookingDays int      `toml:"advance_booking_days"`
}

// Location часовой пояс салона
func (s SalonConfig) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: salon.timezone %q: %v", ErrInvalidConfig, s.Timezone, err)
	}
	return loc, nil
}

// Weekdays выходные дни салона
func (s SalonConfig) Weekdays() ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(s.ClosedWeekdays))
	for _, name := range s.ClosedWeekdays {
		day, ok := parseWeekday(name)
		if !ok {
			return nil, fmt.Errorf("%w: salon.closed_weekdays: unknown day %q", ErrInvalidConfig, name)
		}
		days = append(days, day)
	}
	return days, nil
}

type WizardConfig struct {
	NoticeDelayMs int `toml:"notice_delay_ms"`
}

// NoticeDelay время автоскрытия уведомлений
func (w WizardConfig) NoticeDelay() time.Duration {
	return time.Duration(w.NoticeDelayMs) * time.Millisecond
}

// Load читает .env (если есть), файл path и переменные окружения SMC_*
// Переменные окружения перекрывают значения из файла
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default значения по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc-booking-flow",
		},
		Storage: StorageConfig{
			Backend: BackendPostgres,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "booking_flow",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:       "localhost:6379",
			SessionTTL: 86400,
		},
		BookingAPI: BookingAPIConfig{
			Timeout: 10,
		},
		Salon: SalonConfig{
			Timezone:           "UTC",
			OpenTime:           "09:00",
			CloseTime:          "21:00",
			SlotStepMinutes:    30,
			MinNoticeMinutes:   60,
			AdvanceBookingDays: 30,
		},
		Wizard: WizardConfig{
			NoticeDelayMs: 3000,
		},
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	switch c.Storage.Backend {
	case BackendPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres backend", ErrInvalidConfig)
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis backend", ErrInvalidConfig)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: storage.backend must be postgres, redis or memory, got %q", ErrInvalidConfig, c.Storage.Backend)
	}

	if c.BookingAPI.URL == "" {
		return fmt.Errorf("%w: booking_api.url is required", ErrInvalidConfig)
	}
	if c.BookingAPI.Timeout <= 0 {
		return fmt.Errorf("%w: booking_api.timeout must be positive", ErrInvalidConfig)
	}

	if c.Salon.SlotStepMinutes <= 0 {
		return fmt.Errorf("%w: salon.slot_step_minutes must be positive", ErrInvalidConfig)
	}
	if c.Salon.AdvanceBookingDays <= 0 {
		return fmt.Errorf("%w: salon.advance_booking_days must be positive", ErrInvalidConfig)
	}
	if _, err := c.Salon.Location(); err != nil {
		return err
	}
	if _, err := c.Salon.Weekdays(); err != nil {
		return err
	}

	return nil
}

// applyEnv перекрывает значения переменными окружения
func applyEnv(cfg *Config) {
	setInt(&cfg.Server.HTTPPort, "SMC_HTTP_PORT")
	setString(&cfg.Logs.Level, "SMC_LOG_LEVEL")
	setString(&cfg.Logs.File, "SMC_LOG_FILE")
	setBool(&cfg.Metrics.Enabled, "SMC_METRICS_ENABLED")
	setString(&cfg.Storage.Backend, "SMC_STORAGE_BACKEND")

	setString(&cfg.Database.Host, "SMC_DB_HOST")
	setInt(&cfg.Database.Port, "SMC_DB_PORT")
	setString(&cfg.Database.User, "SMC_DB_USER")
	setString(&cfg.Database.Password, "SMC_DB_PASSWORD")
	setString(&cfg.Database.DBName, "SMC_DB_NAME")
	setString(&cfg.Database.SSLMode, "SMC_DB_SSLMODE")

	setString(&cfg.Redis.Addr, "SMC_REDIS_ADDR")
	setString(&cfg.Redis.Password, "SMC_REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "SMC_REDIS_DB")
	setString(&cfg.Redis.Channel, "SMC_REDIS_CHANNEL")

	setString(&cfg.BookingAPI.URL, "SMC_BOOKING_API_URL")
	setInt(&cfg.BookingAPI.Timeout, "SMC_BOOKING_API_TIMEOUT")

	setString(&cfg.Salon.Timezone, "SMC_SALON_TIMEZONE")
}

func setString(dst *string, key string) {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		*dst = value
	}
}

func setInt(dst *int, key string) {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			*dst = b
		}
	}
}

func parseWeekday(name string) (time.Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for day := time.Sunday; day <= time.Saturday; day++ {
		full := strings.ToLower(day.String())
		if name == full || name == full[:3] {
			return day, true
		}
	}
	return 0, false
}
