package igdb

import (
	"fmt"
	"os"
	"strings"
)

// SecretSource reads one credential value from an external location.
// The default implementation reads files, matching the Docker secrets
// convention of mounting credentials under /run/secrets.
type SecretSource interface {
	Read(path string) (string, error)
}

// FileSecrets reads secrets from the filesystem.
type FileSecrets struct{}

func (FileSecrets) Read(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("secret path is not set")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read secret %s: %w", path, err)
	}
	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", fmt.Errorf("secret %s is empty", path)
	}
	return value, nil
}

// Credentials is the client id / client secret pair for the
// Twitch client-credentials grant.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// loadCredentials reads both credentials once at construction. A missing
// or unreadable secret is a configuration error: the client cannot work
// without them, so construction fails instead of deferring to the first call.
func loadCredentials(src SecretSource, clientIDPath, clientSecretPath string) (Credentials, error) {
	clientID, err := src.Read(clientIDPath)
	if err != nil {
		return Credentials{}, fmt.Errorf("igdb client id: %w", err)
	}
	clientSecret, err := src.Read(clientSecretPath)
	if err != nil {
		return Credentials{}, fmt.Errorf("igdb client secret: %w", err)
	}
	return Credentials{ClientID: clientID, ClientSecret: clientSecret}, nil
}
