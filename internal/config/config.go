package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Pricing  PricingConfig  `toml:"pricing"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	// CacheTTL время жизни кэша доступности в секундах
	CacheTTL int `toml:"cache_ttl"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// PricingConfig календарь сезонов. Правила перечислены явно и применяются
// по порядку: сначала специальные диапазоны дат, затем месячные правила.
// Сезон никогда не выводится неявно - дата без правила получает default_season.
type PricingConfig struct {
	DefaultSeason string          `toml:"default_season"`
	Seasons       []SeasonMonths  `toml:"season"`
	SpecialRanges []SpecialPeriod `toml:"special_range"`
}

// SeasonMonths месячное правило: перечисленные месяцы относятся к сезону
type SeasonMonths struct {
	Name   string `toml:"name"`
	Months []int  `toml:"months"`
}

// SpecialPeriod диапазон дат "MM-DD".."MM-DD" (включительно), который
// перекрывает месячные правила. Диапазон может переходить через новый год.
type SpecialPeriod struct {
	Season string `toml:"season"`
	From   string `toml:"from"`
	To     string `toml:"to"`
}

// Load читает и валидирует конфигурацию из файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Pricing.DefaultSeason == "" {
		return fmt.Errorf("config: pricing.default_season is required")
	}
	for _, s := range c.Pricing.Seasons {
		for _, m := range s.Months {
			if m < 1 || m > 12 {
				return fmt.Errorf("config: pricing season %q has invalid month %d", s.Name, m)
			}
		}
	}
	return nil
}
