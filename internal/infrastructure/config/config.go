package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingMercadoPagoAccessToken = errors.New("MERCADOPAGO_ACCESS_TOKEN environment variable is required")

type Config struct {
	HTTP          ServerConfig
	Log           LogConfig
	MercadoPago   MercadoPagoConfig
	DocumentStore DocumentStoreConfig
	CORS          CORSConfig
	PublicBaseURL string
}

type ServerConfig struct {
	Host string
	Port string
}

type LogConfig struct {
	Level  string
	Format string
}

type MercadoPagoConfig struct {
	AccessToken string
	HTTPTimeout time.Duration
	MockMode    bool
}

// DocumentStoreConfig holds the DynamoDB connection settings and table names.
type DocumentStoreConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Endpoint        string
	ChargesTable    string
	MembersTable    string
}

type CORSConfig struct {
	AllowedOrigin string
}

// documentStoreCredentials is the shape of DOCUMENT_STORE_CREDENTIALS_JSON.
type documentStoreCredentials struct {
	Region          string `json:"region"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
	SessionToken    string `json:"session_token"`
	Endpoint        string `json:"endpoint"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	store, err := loadDocumentStore()
	if err != nil {
		return nil, err
	}

	mockMode := IsPaymentGatewayMockEnabled()
	accessToken := strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if accessToken == "" && !mockMode {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	return &Config{
		HTTP: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken: accessToken,
			HTTPTimeout: getSecondsEnv("MERCADOPAGO_HTTP_TIMEOUT_SECONDS", 10*time.Second),
			MockMode:    mockMode,
		},
		DocumentStore: store,
		CORS: CORSConfig{
			AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		},
		PublicBaseURL: publicBaseURL(),
	}, nil
}

// loadDocumentStore prefers the JSON blob and falls back to discrete variables.
func loadDocumentStore() (DocumentStoreConfig, error) {
	cfg := DocumentStoreConfig{
		Region:          getEnv("AWS_REGION", "us-east-1"),
		AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
		SecretAccessKey: unescapeNewlines(getEnv("AWS_SECRET_ACCESS_KEY", "local")),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		ChargesTable:    getEnv("CHARGES_TABLE", "monthly_charges"),
		MembersTable:    getEnv("MEMBERS_TABLE", "members"),
	}

	raw := strings.TrimSpace(os.Getenv("DOCUMENT_STORE_CREDENTIALS_JSON"))
	if raw == "" {
		return cfg, nil
	}

	var creds documentStoreCredentials
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return DocumentStoreConfig{}, fmt.Errorf("invalid DOCUMENT_STORE_CREDENTIALS_JSON: %w", err)
	}
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return DocumentStoreConfig{}, errors.New("DOCUMENT_STORE_CREDENTIALS_JSON requires access_key_id and secret_access_key")
	}

	cfg.AccessKeyID = creds.AccessKeyID
	cfg.SecretAccessKey = creds.SecretAccessKey
	cfg.SessionToken = creds.SessionToken
	if creds.Region != "" {
		cfg.Region = creds.Region
	}
	if creds.Endpoint != "" {
		cfg.Endpoint = creds.Endpoint
	}
	return cfg, nil
}

// publicBaseURL is used to build the notification_url sent to the gateway.
// VERCEL_URL carries no scheme.
func publicBaseURL() string {
	if v := strings.TrimSpace(os.Getenv("PUBLIC_BASE_URL")); v != "" {
		return strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv("VERCEL_URL")); v != "" {
		if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
			v = "https://" + v
		}
		return strings.TrimRight(v, "/")
	}
	return ""
}

// IsPaymentGatewayMockEnabled reports whether the gateway should be faked
// for local runs.
func IsPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func unescapeNewlines(v string) string {
	return strings.ReplaceAll(v, `\n`, "\n")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getSecondsEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
