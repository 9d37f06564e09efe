package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig
	Upload     UploadConfig

	// Generation
	LLM LLMConfig

	// Retrieval
	Retrieval    RetrievalConfig
	VertexSearch VertexSearchConfig
	Qdrant       QdrantConfig
	Voyage       VoyageConfig

	// Facilities
	Places PlacesConfig
}

type EnvironmentConfig struct {
	Name string `validate:"oneof=development staging production"`
}

type HTTPServerConfig struct {
	Port           int    `validate:"min=1,max=65535"`
	Mode           string `validate:"oneof=debug release test"`
	RequestTimeout time.Duration
	// TrustedProxies lists proxy IPs/CIDRs whose forwarding headers are believed.
	// Empty means the peer address is the client.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerMin int `validate:"min=0"`
}

type UploadConfig struct {
	MaxImageSizeMB    int `validate:"min=1,max=50"`
	MaxImageDimension int `validate:"min=1"`
	MaxTextLength     int `validate:"min=1"`
}

// LLMConfig holds configuration for the generation provider chain.
type LLMConfig struct {
	Providers         []ProviderConfig `validate:"required,min=1,dive"`
	FallbackEnabled   bool
	GenerationTimeout time.Duration
}

// ProviderConfig holds configuration for a single generation provider.
type ProviderConfig struct {
	Name            string `validate:"required,oneof=vertex gemini openai mock"`
	Enabled         bool
	Priority        int
	APIKey          string
	BaseURL         string
	Model           string
	ProjectID       string
	Location        string
	CredentialsPath string
}

// RetrievalConfig selects the knowledge base used for prompt context.
type RetrievalConfig struct {
	Provider   string `validate:"oneof=vertex qdrant none"`
	MaxResults int    `validate:"min=1,max=10"`
	Timeout    time.Duration
}

type VertexSearchConfig struct {
	ProjectID       string
	Location        string
	EngineID        string
	CredentialsPath string
}

type QdrantConfig struct {
	URL            string
	APIKey         string
	CollectionName string
	VectorSize     int
	MinScore       float64 `validate:"min=0,max=1"`
}

type VoyageConfig struct {
	APIKey string
}

type PlacesConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		viper.SetConfigFile(path)
	}
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RequestTimeout = viper.GetDuration("http_server.request_timeout")
	cfg.HTTPServer.TrustedProxies = splitList(viper.GetString("http_server.trusted_proxies"))
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.Upload.MaxImageSizeMB = viper.GetInt("upload.max_image_size_mb")
	cfg.Upload.MaxImageDimension = viper.GetInt("upload.max_image_dimension")
	cfg.Upload.MaxTextLength = viper.GetInt("upload.max_text_length")

	// Generation
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.GenerationTimeout = viper.GetDuration("llm.generation_timeout")
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:            getStringFromMap(providerMap, "name"),
						Enabled:         getBoolFromMap(providerMap, "enabled"),
						Priority:        getIntFromMap(providerMap, "priority"),
						APIKey:          expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:         getStringFromMap(providerMap, "base_url"),
						Model:           getStringFromMap(providerMap, "model"),
						ProjectID:       expandEnvVar(getStringFromMap(providerMap, "project_id")),
						Location:        getStringFromMap(providerMap, "location"),
						CredentialsPath: expandEnvVar(getStringFromMap(providerMap, "credentials_path")),
					})
				}
			}
		}
	}
	if len(cfg.LLM.Providers) == 0 {
		// Single-provider shortcut: GEMINI_API_KEY alone is enough to run.
		if key := viper.GetString("gemini_api_key"); key != "" {
			cfg.LLM.Providers = []ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1, APIKey: key}}
		}
	}

	// Retrieval
	cfg.Retrieval.Provider = viper.GetString("retrieval.provider")
	cfg.Retrieval.MaxResults = viper.GetInt("retrieval.max_results")
	cfg.Retrieval.Timeout = viper.GetDuration("retrieval.timeout")

	cfg.VertexSearch.ProjectID = expandEnvVar(viper.GetString("vertex_search.project_id"))
	cfg.VertexSearch.Location = viper.GetString("vertex_search.location")
	cfg.VertexSearch.EngineID = viper.GetString("vertex_search.engine_id")
	cfg.VertexSearch.CredentialsPath = expandEnvVar(viper.GetString("vertex_search.credentials_path"))
	if projectID := viper.GetString("google_cloud_project"); projectID != "" && cfg.VertexSearch.ProjectID == "" {
		cfg.VertexSearch.ProjectID = projectID
	}
	if creds := viper.GetString("google_application_credentials"); creds != "" && cfg.VertexSearch.CredentialsPath == "" {
		cfg.VertexSearch.CredentialsPath = creds
	}

	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	cfg.Qdrant.APIKey = expandEnvVar(viper.GetString("qdrant.api_key"))
	cfg.Qdrant.MinScore = viper.GetFloat64("qdrant.min_score")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	// Facilities
	cfg.Places.APIKey = expandEnvVar(viper.GetString("places.api_key"))
	cfg.Places.BaseURL = viper.GetString("places.base_url")
	cfg.Places.Timeout = viper.GetDuration("places.timeout")
	if mapsKey := viper.GetString("google_maps_api_key"); mapsKey != "" {
		cfg.Places.APIKey = mapsKey
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks struct constraints and the cross-field rules of the provider chain.
func Validate(cfg *Config) error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return validateLLMConfig(&cfg.LLM)
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.request_timeout", "30s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("upload.max_image_size_mb", 5)
	viper.SetDefault("upload.max_image_dimension", 4096)
	viper.SetDefault("upload.max_text_length", 2000)

	// Generation defaults
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.generation_timeout", "15s")

	// Retrieval defaults
	viper.SetDefault("retrieval.provider", "none")
	viper.SetDefault("retrieval.max_results", 3)
	viper.SetDefault("retrieval.timeout", "10s")
	viper.SetDefault("vertex_search.location", "global")
	viper.SetDefault("qdrant.collection_name", "medical_documents")
	viper.SetDefault("qdrant.vector_size", 1024)

	// Places defaults
	viper.SetDefault("places.timeout", "10s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the provider chain.
func validateLLMConfig(cfg *LLMConfig) error {
	enabledCount := 0
	priorityMap := make(map[int]bool)

	for _, provider := range cfg.Providers {
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true

		switch provider.Name {
		case "gemini", "openai":
			if provider.APIKey == "" {
				return fmt.Errorf("provider %s: api_key is required", provider.Name)
			}
		case "vertex":
			if provider.ProjectID == "" {
				return fmt.Errorf("provider vertex: project_id is required")
			}
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
