package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Параметры PBKDF2-SHA256, совместимые с существующей базой аудиторов
	hashIterations = 120000
	saltBytes      = 16
	keyLength      = 32
)

// HashPassword возвращает хэш пароля в формате "salt$digest" (оба в hex)
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)

	digest := pbkdf2.Key([]byte(password), []byte(saltHex), hashIterations, keyLength, sha256.New)
	return saltHex + "$" + hex.EncodeToString(digest), nil
}

// VerifyPassword проверяет пароль против сохраненного хэша за постоянное время
func VerifyPassword(password, storedHash string) bool {
	parts := strings.SplitN(storedHash, "$", 2)
	if len(parts) != 2 {
		return false
	}
	saltHex, digestHex := parts[0], parts[1]

	expected, err := hex.DecodeString(digestHex)
	if err != nil {
		return false
	}

	candidate := pbkdf2.Key([]byte(password), []byte(saltHex), hashIterations, keyLength, sha256.New)
	return subtle.ConstantTimeCompare(candidate, expected) == 1
}
