package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"
)

// GenerateSecureRandomString generates a cryptographically secure random string of the specified byte length,
// then hex encodes it. For example, lengthInBytes=32 will result in a 64-character hex string.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// ReceiptObjectName builds an unguessable media-host object name that
// keeps the original file extension, e.g. receipts/2024/05/<hex>.jpg.
func ReceiptObjectName(fileName string, now time.Time) (string, error) {
	suffix, err := GenerateSecureRandomString(16)
	if err != nil {
		return "", err
	}
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("receipts/%s/%s%s", now.UTC().Format("2006/01"), suffix, ext), nil
}
