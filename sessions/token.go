package sessions

import (
	"crypto/rand"
	"encoding/base64"
	"log"
)

// GenerateToken returns a URL-safe random token of the given byte length.
func GenerateToken(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	return base64.URLEncoding.EncodeToString(bytes)
}
