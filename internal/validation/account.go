package validation

import (
	"fmt"
	"regexp"
)

// AccountNamePattern определяет допустимый формат имени аккаунта
// Латинские буквы, цифры, нижнее подчеркивание и дефис, начинается не с дефиса
var AccountNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9_-]*$`)

const (
	// MinAccountNameLen минимальная длина имени аккаунта
	MinAccountNameLen = 3
	// MaxAccountNameLen максимальная длина имени аккаунта
	MaxAccountNameLen = 32
)

// ValidateAccountName проверяет имя аккаунта, под которым хост хранит слоты
func ValidateAccountName(name string) error {
	if name == "" {
		return fmt.Errorf("account name cannot be empty")
	}

	if len(name) < MinAccountNameLen {
		return fmt.Errorf("account name must be at least %d characters long", MinAccountNameLen)
	}

	if len(name) > MaxAccountNameLen {
		return fmt.Errorf("account name must not exceed %d characters", MaxAccountNameLen)
	}

	if !AccountNamePattern.MatchString(name) {
		return fmt.Errorf("account name can only contain letters (a-z, A-Z), numbers (0-9), underscores (_) and dashes (-)")
	}

	return nil
}
