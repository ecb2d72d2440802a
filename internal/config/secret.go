package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strings"
)

const minSecretLen = 32

// EnsureJWTSecret returns the JWT signing secret, generating and persisting
// one to envPath when JWT_SECRET is unset or shorter than 32 bytes. The
// generated secret is 32 random bytes, hex encoded.
func EnsureJWTSecret(envPath string) (string, error) {
	if s := os.Getenv("JWT_SECRET"); len(s) >= minSecretLen {
		return s, nil
	}

	buf := make([]byte, minSecretLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate jwt secret: %w", err)
	}
	secret := hex.EncodeToString(buf)
	log.Println("JWT_SECRET missing or too short, generating a new one")

	if err := writeSecret(envPath, secret); err != nil {
		return "", err
	}
	if err := os.Setenv("JWT_SECRET", secret); err != nil {
		return "", fmt.Errorf("set jwt secret: %w", err)
	}
	return secret, nil
}

// writeSecret rewrites envPath with any previous JWT_SECRET line replaced.
func writeSecret(envPath, secret string) error {
	var kept []string
	if content, err := os.ReadFile(envPath); err == nil {
		for _, line := range strings.Split(string(content), "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "JWT_SECRET") {
				continue
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			kept = append(kept, line)
		}
	}
	kept = append(kept, "JWT_SECRET="+secret)

	if err := os.WriteFile(envPath, []byte(strings.Join(kept, "\n")+"\n"), 0o600); err != nil {
		return fmt.Errorf("persist jwt secret: %w", err)
	}
	return nil
}
