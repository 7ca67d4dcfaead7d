package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// ErrInvalidConfig возвращается, когда конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Storage      StorageConfig      `toml:"storage"`
	Database     DatabaseConfig     `toml:"database"`
	Business     BusinessConfig     `toml:"business"`
	WorkingHours WorkingHoursConfig `toml:"working_hours"`
	Services     []ServiceConfig    `toml:"services"`
	Products     []ProductConfig    `toml:"products"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`

	// CORSOrigins origin витрины; "*" разрешает любой, пусто отключает CORS
	CORSOrigins []string `toml:"cors_origins"`

	// WriteRatePerMinute лимит POST запросов с одного IP; 0 отключает
	WriteRatePerMinute int `toml:"write_rate_per_minute"`
	WriteRateBurst     int `toml:"write_rate_burst"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор хранилища: удаленная таблица (postgres) или локальный файл (sqlite)
type StorageConfig struct {
	Driver     string `toml:"driver"`
	SQLitePath string `toml:"sqlite_path"`
}

// DatabaseConfig подключение к postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// BusinessConfig данные бизнеса для витрины
type BusinessConfig struct {
	Name         string `toml:"name"`
	Tagline      string `toml:"tagline"`
	ContactPhone string `toml:"contact_phone"`
	ContactEmail string `toml:"contact_email"`
}

// WorkingHoursConfig рабочие часы
type WorkingHoursConfig struct {
	Timezone       string   `toml:"timezone"`
	Start          string   `toml:"start"`
	End            string   `toml:"end"`
	SlotMinutes    int      `toml:"slot_minutes"`
	WorkingDays    []int    `toml:"working_days"`
	Holidays       []string `toml:"holidays"`
	MinLeadMinutes *int     `toml:"min_lead_minutes"`
}

// ServiceConfig услуга каталога
type ServiceConfig struct {
	ID                 string  `toml:"id"`
	Name               string  `toml:"name"`
	Category           string  `toml:"category"`
	Description        string  `toml:"description"`
	Price              float64 `toml:"price"`
	DurationMinutes    int     `toml:"duration_minutes"`
	SessionsCount      int     `toml:"sessions_count"`
	RequiresEvaluation bool    `toml:"requires_evaluation"`
}

// ProductConfig товар каталога
type ProductConfig struct {
	ID          string  `toml:"id"`
	Name        string  `toml:"name"`
	Description string  `toml:"description"`
	Price       float64 `toml:"price"`
	Image       string  `toml:"image"`
}

// Load читает конфигурацию из TOML файла, применяет переменные окружения и значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Parse разбирает конфигурацию из строки (используется в тестах и CLI)
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate применяет значения по умолчанию и проверяет конфигурацию
func (c *Config) Validate() error {
	c.applyDefaults()

	if _, err := psqlbuilder.ParseDialect(c.Storage.Driver); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Storage.Driver == string(psqlbuilder.SQLite) && c.Storage.SQLitePath == "" {
		return fmt.Errorf("%w: storage.sqlite_path is required for sqlite", ErrInvalidConfig)
	}

	wh := c.WorkingHours.ToDomain()
	if err := wh.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	seen := make(map[string]struct{}, len(c.Services))
	for _, s := range c.Services {
		svc := s.ToDomain()
		if err := svc.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("%w: duplicate service id %s", ErrInvalidConfig, s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	return nil
}

// Dialect диалект SQL выбранного хранилища (после Validate)
func (c *Config) Dialect() psqlbuilder.Dialect {
	d, _ := psqlbuilder.ParseDialect(c.Storage.Driver)
	return d
}

// ToDomain рабочие часы в доменной модели
func (w WorkingHoursConfig) ToDomain() domain.WorkingHours {
	lead := domain.DefaultMinLeadMinutes
	if w.MinLeadMinutes != nil {
		lead = *w.MinLeadMinutes
	}
	return domain.WorkingHours{
		Timezone:       w.Timezone,
		Start:          w.Start,
		End:            w.End,
		SlotMinutes:    w.SlotMinutes,
		WorkingDays:    w.WorkingDays,
		Holidays:       w.Holidays,
		MinLeadMinutes: lead,
	}
}

// ToDomain услуга в доменной модели
func (s ServiceConfig) ToDomain() domain.Service {
	return domain.Service{
		ID:                 s.ID,
		Name:               s.Name,
		Category:           s.Category,
		Description:        s.Description,
		Price:              s.Price,
		DurationMinutes:    s.DurationMinutes,
		SessionsCount:      s.SessionsCount,
		RequiresEvaluation: s.RequiresEvaluation,
	}
}

// ToDomain товар в доменной модели
func (p ProductConfig) ToDomain() domain.Product {
	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Server.WriteRatePerMinute > 0 && c.Server.WriteRateBurst == 0 {
		c.Server.WriteRateBurst = c.Server.WriteRatePerMinute
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "scheduling_service"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = string(psqlbuilder.Postgres)
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	wh := &c.WorkingHours
	if wh.Timezone == "" {
		wh.Timezone = domain.DefaultTimezone
	}
	if wh.Start == "" {
		wh.Start = domain.DefaultWorkStart
	}
	if wh.End == "" {
		wh.End = domain.DefaultWorkEnd
	}
	if wh.SlotMinutes == 0 {
		wh.SlotMinutes = domain.DefaultSlotMinutes
	}
	if len(wh.WorkingDays) == 0 {
		wh.WorkingDays = append([]int(nil), domain.DefaultWorkingDays...)
	}
}
