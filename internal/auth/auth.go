package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost 10 - тот же фактор стоимости, что и для аккаунтов.
const hashCost = 10

// HashPassword возвращает bcrypt-хеш пароля со встроенной солью.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("ошибка хеширования пароля: %w", err)
	}
	return string(bytes), nil
}

// CheckPasswordHash сравнивает пароль с хешем из БД.
// Неверный пароль и повреждённый хеш одинаково дают false.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
