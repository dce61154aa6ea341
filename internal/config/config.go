// Package config loads client configuration from the environment and from
// the packaged OAuth credentials file.
package config

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by Load.
const (
	EnvCredentialsFile = "SLIDES_CREDENTIALS_FILE"
	EnvCredentialsKey  = "SLIDES_CREDENTIALS_KEY"
	EnvTokenFile       = "SLIDES_TOKEN_FILE"
	EnvPickerClientID  = "SLIDES_PICKER_CLIENT_ID"
	EnvPickerAPIKey    = "SLIDES_PICKER_API_KEY"
	EnvPickerAppID     = "SLIDES_PICKER_APP_ID"
	EnvPickerPort      = "SLIDES_PICKER_PORT"
)

const (
	defaultCredentialsFile = "credentials.json"
	defaultTokenFile       = "token.json"
	defaultPickerPort      = 8089
)

// Sentinel errors for configuration loading.
var (
	ErrMissingCredentials = errors.New("credentials file not found")
	ErrBadEncryptionKey   = errors.New("invalid credentials encryption key")
)

// Config holds everything the client, authorizer and picker need.
type Config struct {
	// CredentialsFile is the path to the OAuth client credentials JSON.
	CredentialsFile string
	// CredentialsKey is an optional hex-encoded AES-256 key. When set,
	// CredentialsFile is expected to hold nonce-prefixed AES-GCM ciphertext.
	CredentialsKey string
	// TokenFile is where the obtained OAuth token is persisted.
	TokenFile string

	// Picker widget configuration, interpolated into the picker page.
	PickerClientID string
	PickerAPIKey   string
	PickerAppID    string
	PickerPort     int
}

// Default returns configuration with default values.
func Default() Config {
	return Config{
		CredentialsFile: defaultCredentialsFile,
		TokenFile:       defaultTokenFile,
		PickerPort:      defaultPickerPort,
	}
}

// Load reads configuration from the environment, first loading a .env file
// if one exists at envPath. An empty envPath means ".env".
func Load(envPath string) (Config, error) {
	if envPath == "" {
		envPath = ".env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", envPath, err)
		}
	}

	cfg := Default()
	if v := os.Getenv(EnvCredentialsFile); v != "" {
		cfg.CredentialsFile = v
	}
	cfg.CredentialsKey = os.Getenv(EnvCredentialsKey)
	if v := os.Getenv(EnvTokenFile); v != "" {
		cfg.TokenFile = v
	}
	cfg.PickerClientID = os.Getenv(EnvPickerClientID)
	cfg.PickerAPIKey = os.Getenv(EnvPickerAPIKey)
	cfg.PickerAppID = os.Getenv(EnvPickerAppID)
	if v := os.Getenv(EnvPickerPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", EnvPickerPort, err)
		}
		cfg.PickerPort = port
	}

	return cfg, nil
}

// ReadCredentials returns the OAuth client credentials JSON, decrypting it
// when an encryption key is configured.
func (c Config) ReadCredentials() ([]byte, error) {
	data, err := os.ReadFile(c.CredentialsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingCredentials, c.CredentialsFile)
		}
		return nil, fmt.Errorf("reading credentials: %w", err)
	}

	if c.CredentialsKey == "" {
		return data, nil
	}
	return decryptCredentials(data, c.CredentialsKey)
}

// decryptCredentials decrypts nonce-prefixed AES-GCM ciphertext with a
// hex-encoded 256-bit key.
func decryptCredentials(data []byte, keyHex string) ([]byte, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEncryptionKey, err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: want 32 bytes, got %d", ErrBadEncryptionKey, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEncryptionKey, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(data) < gcm.NonceSize() {
		return nil, errors.New("credentials ciphertext too short")
	}

	nonce, ciphertext := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypting credentials: %w", err)
	}
	return plaintext, nil
}
