package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal      = "local"
	EnvDev        = "dev"
	EnvProduction = "prod"
)

type Config struct {
	Env        string `env:"ENV" env-required:"true"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer HttpServer
	Database   Database
	Limiter    Limiter
	Auth       AuthConfig
	SMTP       SMTPConfig
	Email      EmailConfig
	Cache      Cache
	Queue      Queue
	PDF        PDFConfig
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

type HttpServer struct {
	Port           string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
	AllowedOrigins []string      `env:"HTTP_ALLOWED_ORIGINS" env-default:"http://localhost:5173,http://localhost:5174" env-description:"comma separated list of origins of the booking site and admin dashboard"`
}

type Database struct {
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Server             string        `env:"DB_SERVER" env-required:"true"`
	DBName             string        `env:"DB_NAME" env-required:"true"`
	User               string        `env:"DB_USER" env-required:"true"`
	Password           string        `env:"DB_PASSWORD" env-required:"true"`
	TimeZone           string        `env:"DB_TIMEZONE"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"40"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"40"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type AuthConfig struct {
	JWT        JWTConfig
	OTP        OTPConfig
	BcryptCost int    `env:"AUTH_BCRYPT_COST" env-default:"10"`
	CookieName string `env:"AUTH_COOKIE_NAME" env-default:"token"`
}

type JWTConfig struct {
	SessionTTL time.Duration `env:"JWT_SESSION_TTL" env-default:"168h"`
	SigningKey string        `env:"JWT_SIGNING_KEY" env-required:"true"`
}

type OTPConfig struct {
	Length      int           `env:"AUTH_OTP_LENGTH" env-default:"6"`
	VerifyTTL   time.Duration `env:"AUTH_OTP_VERIFY_TTL" env-default:"24h"`
	ResetTTL    time.Duration `env:"AUTH_OTP_RESET_TTL" env-default:"15m"`
	MaxAttempts int           `env:"AUTH_OTP_MAX_ATTEMPTS" env-default:"5"`
	Lockout     time.Duration `env:"AUTH_OTP_LOCKOUT" env-default:"15m"`
}

type SMTPConfig struct {
	Host string `env:"SMTP_HOST" env-required:"true"`
	Port int    `env:"SMTP_PORT" env-required:"true"`
	From string `env:"SMTP_FROM" env-required:"true"`
	User string `env:"SMTP_USER"`
	Pass string `env:"SMTP_PASS" env-required:"true"`
}

type EmailConfig struct {
	Enabled      bool   `env:"EMAIL_ENABLED" env-default:"false"`
	TemplatesDir string `env:"EMAIL_TEMPLATES_DIR" env-default:"./templates"`
	Templates    EmailTemplates
}

type EmailTemplates struct {
	Welcome       string `env:"EMAIL_TEMPLATE_WELCOME" env-default:"welcome.html"`
	Verification  string `env:"EMAIL_TEMPLATE_VERIFICATION" env-default:"verification.html"`
	PasswordReset string `env:"EMAIL_TEMPLATE_PASSWORD_RESET" env-default:"password_reset.html"`
}

type Cache struct {
	Type  string `env:"REDIS_TYPE" env-required:"true" env-description:"specifies provider, one of redis/redisCluster"`
	Redis struct {
		Address  string `env:"REDIS_ADDR" env-default:"" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes: ['172.27.29.90:7000','172.27.29.91:7001'', '172.27.29.92:7002'']"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
}

type Queue struct {
	Concurrency int `env:"QUEUE_CONCURRENCY" env-default:"10"`
	MaxRetry    int `env:"QUEUE_MAX_RETRY" env-default:"5"`
}

type PDFConfig struct {
	FontPath string `env:"PDF_FONT_PATH" env-default:"./fonts/DejaVuSans.ttf"`
}

func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return &cfg
}
