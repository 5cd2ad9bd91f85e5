package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config armazena todas as configurações do aplicativo GoSalon.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados (PostgreSQL)
	DatabaseURL string
	DBTimeout   time.Duration

	// Cache (Redis)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CatalogTTL    time.Duration

	// Segurança (JWT + bcrypt)
	JWTSecretKey string
	TokenExpiry  time.Duration
	BcryptCost   int

	// Política de autenticação
	MaxFailedAttempts int
	LockDuration      time.Duration
	CodeTTL           time.Duration
	CodeLength        int

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// E-mail (SMTP). Sem SMTPHost as mensagens apenas são registradas no log.
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPassword  string
	MailFrom      string
	MailWorkers   int
	MailQueueSize int
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// O .env é carregado antes, no main, via godotenv.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		Port:        v.GetString("PORT"),
		Environment: v.GetString("ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),

		DatabaseURL: v.GetString("DATABASE_URL"),
		DBTimeout:   v.GetDuration("DB_TIMEOUT"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		CatalogTTL:    v.GetDuration("CATALOG_CACHE_TTL"),

		JWTSecretKey: v.GetString("JWT_SECRET_KEY"),
		TokenExpiry:  v.GetDuration("JWT_EXPIRY"),
		BcryptCost:   v.GetInt("BCRYPT_COST"),

		MaxFailedAttempts: v.GetInt("AUTH_MAX_FAILED_ATTEMPTS"),
		LockDuration:      v.GetDuration("AUTH_LOCK_DURATION"),
		CodeTTL:           v.GetDuration("AUTH_CODE_TTL"),
		CodeLength:        v.GetInt("AUTH_CODE_LENGTH"),

		RateLimitMaxRequests: v.GetInt("RATE_LIMIT_MAX_REQUESTS"),
		RateLimitPeriod:      v.GetDuration("RATE_LIMIT_PERIOD"),

		SMTPHost:      v.GetString("SMTP_HOST"),
		SMTPPort:      v.GetInt("SMTP_PORT"),
		SMTPUser:      v.GetString("SMTP_USER"),
		SMTPPassword:  v.GetString("SMTP_PASSWORD"),
		MailFrom:      v.GetString("MAIL_FROM"),
		MailWorkers:   v.GetInt("MAIL_WORKERS"),
		MailQueueSize: v.GetInt("MAIL_QUEUE_SIZE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_TIMEOUT", 5*time.Second)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CATALOG_CACHE_TTL", 5*time.Minute)

	v.SetDefault("JWT_EXPIRY", time.Hour)
	v.SetDefault("BCRYPT_COST", 10)

	v.SetDefault("AUTH_MAX_FAILED_ATTEMPTS", 5)
	v.SetDefault("AUTH_LOCK_DURATION", 5*time.Minute)
	v.SetDefault("AUTH_CODE_TTL", 15*time.Minute)
	v.SetDefault("AUTH_CODE_LENGTH", 6)

	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_PERIOD", time.Minute)

	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("MAIL_FROM", "no-reply@gosalon.local")
	v.SetDefault("MAIL_WORKERS", 2)
	v.SetDefault("MAIL_QUEUE_SIZE", 100)
}

// validate garante que a aplicação não inicie sem credenciais de DB e JWT.
func (c *Config) validate() error {
	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.JWTSecretKey == "" {
		missing = append(missing, "JWT_SECRET_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("variáveis de ambiente obrigatórias ausentes: %s", strings.Join(missing, ", "))
	}
	if c.MaxFailedAttempts <= 0 || c.CodeLength <= 0 {
		return fmt.Errorf("política de autenticação inválida: tentativas=%d, tamanho do código=%d", c.MaxFailedAttempts, c.CodeLength)
	}
	return nil
}

// MailEnabled indica se há um servidor SMTP configurado.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != ""
}
