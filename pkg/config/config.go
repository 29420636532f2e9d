package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	AI        AIConfig
	Gemini    GeminiConfig
	Anthropic AnthropicConfig
	Assembly  AssemblyAIConfig
	Data      DataConfig
	Email     EmailConfig
	NoteStore NoteStoreConfig
	Redis     RedisConfig
	Storage   StorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string `envconfig:"PORT" default:"3001"`
	Host            string `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	CORSOrigin      string `envconfig:"CORS_ORIGIN" default:"http://localhost:3000"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// AIConfig selects the LLM provider and shared generation limits
type AIConfig struct {
	Provider          string `envconfig:"AI_PROVIDER" default:"gemini"`
	MaxTokens         int    `envconfig:"AI_MAX_TOKENS" default:"8192"`
	ReportMaxTokens   int    `envconfig:"AI_REPORT_MAX_TOKENS" default:"2048"`
	SummaryPromptPath string `envconfig:"SUMMARY_PROMPT_PATH" default:"prompts/summary_prompt.txt"`
}

// GeminiConfig holds Gemini configuration
type GeminiConfig struct {
	APIKey string `envconfig:"GEMINI_API_KEY"`
	Model  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
}

// AnthropicConfig holds Anthropic configuration
type AnthropicConfig struct {
	APIKey  string `envconfig:"ANTHROPIC_API_KEY"`
	Model   string `envconfig:"ANTHROPIC_MODEL" default:"claude-sonnet-4-20250514"`
	BaseURL string `envconfig:"ANTHROPIC_BASE_URL" default:"https://api.anthropic.com"`
}

// AssemblyAIConfig holds AssemblyAI configuration
type AssemblyAIConfig struct {
	APIKey       string `envconfig:"ASSEMBLYAI_API_KEY"`
	LanguageCode string `envconfig:"ASSEMBLYAI_LANGUAGE" default:"en"`
}

// DataConfig holds on-disk locations
type DataConfig struct {
	Folder             string `envconfig:"DATA_FOLDER" default:"data_folder"`
	MockTranscriptPath string `envconfig:"MOCK_TRANSCRIPT_PATH" default:"data/mock_transcript.txt"`
	ClientFoldersFile  string `envconfig:"CLIENT_FOLDERS_FILE"`
}

// EmailConfig holds transactional email configuration
type EmailConfig struct {
	APIKey      string `envconfig:"RESEND_API_KEY"`
	SenderEmail string `envconfig:"SENDER_EMAIL"`
	SenderName  string `envconfig:"SENDER_NAME" default:"Client Meetings"`
}

// NoteStoreConfig selects the meeting note backend
type NoteStoreConfig struct {
	Backend string `envconfig:"NOTE_STORE" default:"memory"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// StorageConfig holds the optional object storage mirror
type StorageConfig struct {
	Mirror          bool   `envconfig:"STORAGE_MIRROR" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"client-meetings"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	config.AI.Provider = strings.ToLower(strings.TrimSpace(config.AI.Provider))
	config.NoteStore.Backend = strings.ToLower(strings.TrimSpace(config.NoteStore.Backend))

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.AI.Provider {
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when AI_PROVIDER=%s", ProviderGemini)
		}
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required when AI_PROVIDER=%s", ProviderAnthropic)
		}
	default:
		return fmt.Errorf("unsupported AI_PROVIDER %q", c.AI.Provider)
	}

	switch c.NoteStore.Backend {
	case NoteStoreMemory, NoteStoreRedis:
	default:
		return fmt.Errorf("unsupported NOTE_STORE %q", c.NoteStore.Backend)
	}

	if c.AI.MaxTokens <= 0 || c.AI.ReportMaxTokens <= 0 {
		return fmt.Errorf("AI_MAX_TOKENS and AI_REPORT_MAX_TOKENS must be positive")
	}
	return nil
}

// Provider and backend names
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"

	NoteStoreMemory = "memory"
	NoteStoreRedis  = "redis"
)

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
