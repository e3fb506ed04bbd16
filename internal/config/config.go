package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/karobarhq/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Statutory payroll.StatutoryConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds token verification configuration. Tokens are issued by
// the identity service; this service only verifies them.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// A missing .env is fine in deployed environments; the variables come
	// from the process environment there.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Statutory constants default to the Labour Act values; overridable so a
	// rate change does not require a release.
	statutory, err := loadStatutory()
	if err != nil {
		return nil, err
	}
	config.Statutory = statutory

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadStatutory() (payroll.StatutoryConfig, error) {
	statutory := payroll.DefaultStatutoryConfig()

	overrides := []struct {
		env    string
		target *decimal.Decimal
	}{
		{"STATUTORY_EMPLOYEE_SSF_RATE", &statutory.EmployeeSSFRate},
		{"STATUTORY_EMPLOYER_SSF_RATE", &statutory.EmployerSSFRate},
		{"STATUTORY_SOCIAL_SECURITY_TAX_RATE", &statutory.SocialSecurityTaxRate},
		{"STATUTORY_OVERTIME_MULTIPLIER", &statutory.OvertimeMultiplier},
	}
	for _, o := range overrides {
		raw := os.Getenv(o.env)
		if raw == "" {
			continue
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return payroll.StatutoryConfig{}, fmt.Errorf("invalid %s: %w", o.env, err)
		}
		*o.target = value
	}

	if raw := os.Getenv("STATUTORY_DEFAULT_PROBATION_MONTHS"); raw != "" {
		months, err := strconv.Atoi(raw)
		if err != nil || months < 0 {
			return payroll.StatutoryConfig{}, fmt.Errorf("invalid STATUTORY_DEFAULT_PROBATION_MONTHS: %q", raw)
		}
		statutory.DefaultProbationMonths = months
	}

	return statutory, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
