package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	Roster    RosterConfig
	Knowledge KnowledgeConfig
	LLM       LLMConfig
	Chat      ChatConfig
	Sheet     SheetConfig
	Messenger MessengerConfig
	Session   SessionConfig
	Redis     RedisConfig
	Postgres  PostgresConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines session token parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
	BcryptCost            int
}

// RosterConfig locates the employee roster and its override accounts.
type RosterConfig struct {
	Path string
	// OverridePassword replaces the phone-derived password for the names in
	// OverrideAccounts (comma separated).
	OverridePassword string
	OverrideAccounts []string
}

// KnowledgeConfig locates the reference document directory.
type KnowledgeConfig struct {
	Dir string
}

// LLMConfig holds chat-completion endpoint values.
type LLMConfig struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
}

// ChatConfig carries the prompt and fixed reply strings that varied across
// deployments.
type ChatConfig struct {
	Persona        string
	Greeting       string
	Farewell       string
	FollowUpPrompt string
	ApologyReply   string
	CallbackNumber string
	Categories     []string
}

// SheetConfig addresses the external append-only row store.
type SheetConfig struct {
	BaseURL   string
	SheetID   string
	Worksheet string
	Token     string
}

// MessengerConfig addresses the escalation side-channel.
type MessengerConfig struct {
	BaseURL     string
	Token       string
	ChannelName string
}

// SessionConfig selects the session backend and idle lifetime.
type SessionConfig struct {
	Backend    string // "memory" or "redis"
	TTLMinutes int
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// PostgresConfig holds DB connection values for the local ticket archive.
// An empty DSN disables archiving entirely.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

const defaultPersona = "당신은 KICM의 총무/HR 지원 매니저입니다. " +
	"사내 규정과 참고 자료를 근거로 정확하고 공손하게 답변하세요. " +
	"특정 직원의 실명은 절대 언급하지 마세요."

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "hrdesk-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 120),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 480),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 10),
		},
		Roster: RosterConfig{
			Path:             getEnv("ROSTER_PATH", "data/roster.csv"),
			OverridePassword: getEnv("ROSTER_OVERRIDE_PASSWORD", "0416"),
			OverrideAccounts: getEnvAsList("ROSTER_OVERRIDE_ACCOUNTS", []string{"관리자"}),
		},
		Knowledge: KnowledgeConfig{
			Dir: getEnv("KNOWLEDGE_DIR", "data/docs"),
		},
		LLM: LLMConfig{
			BaseURL:   getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
			APIKey:    os.Getenv("LLM_API_KEY"),
			Model:     getEnv("LLM_MODEL", "gpt-4o-mini"),
			MaxTokens: getEnvAsInt("LLM_MAX_TOKENS", 1024),
		},
		Chat: ChatConfig{
			Persona:        getEnv("CHAT_PERSONA", defaultPersona),
			Greeting:       getEnv("CHAT_GREETING", "안녕하세요! KICM 총무/HR 지원 챗봇입니다. 무엇을 도와드릴까요?"),
			Farewell:       getEnv("CHAT_FAREWELL", "감사합니다. 좋은 하루 보내세요!"),
			FollowUpPrompt: getEnv("CHAT_FOLLOWUP_PROMPT", "더 궁금하신 내용이 있으신가요?"),
			ApologyReply:   getEnv("CHAT_APOLOGY_REPLY", "죄송합니다. 지금은 답변을 드릴 수 없습니다. 잠시 후 다시 시도해 주세요."),
			CallbackNumber: getEnv("CHAT_CALLBACK_NUMBER", "02-6952-0416"),
			Categories:     getEnvAsList("CHAT_CATEGORIES", nil),
		},
		Sheet: SheetConfig{
			BaseURL:   getEnv("SHEET_BASE_URL", ""),
			SheetID:   getEnv("SHEET_ID", ""),
			Worksheet: getEnv("SHEET_WORKSHEET", "상담기록"),
			Token:     os.Getenv("SHEET_TOKEN"),
		},
		Messenger: MessengerConfig{
			BaseURL:     getEnv("MESSENGER_BASE_URL", ""),
			Token:       os.Getenv("MESSENGER_TOKEN"),
			ChannelName: getEnv("MESSENGER_CHANNEL", "총무민원"),
		},
		Session: SessionConfig{
			Backend:    getEnv("SESSION_BACKEND", "memory"),
			TTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 60),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// SessionTTL returns the idle session lifetime.
func (s SessionConfig) SessionTTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
