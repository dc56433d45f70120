package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// isLockError проверяет, вызвана ли ошибка блокировкой базы данных
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// SQLITE_BUSY (5) и SQLITE_LOCKED (6) возникают при конкурентной записи
	return strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "SQLITE_LOCKED") ||
		strings.Contains(errStr, "locked")
}

// retryOperation повторяет операцию при ошибках блокировки.
// Задержка между попытками растет линейно.
func retryOperation(operation func() error, maxRetries int, delay time.Duration) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		if !isLockError(err) {
			return err
		}

		if attempt < maxRetries-1 {
			time.Sleep(delay * time.Duration(attempt+1))
		}
	}

	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, lastErr)
}
