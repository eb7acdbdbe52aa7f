package services

import (
	"crypto/rand"
	"errors"
	"math/big"

	"gorm.io/gorm"

	"shortlink/database"
	"shortlink/models"
)

const (
	CodeLength  = 6
	codeCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

	maxCodeAttempts = 10
)

// ErrCodeSpaceExhausted is returned when no unused code could be found
// within the attempt budget.
var ErrCodeSpaceExhausted = errors.New("could not generate a unique short code")

// GenerateShortCode returns a random 6-character code that no stored link
// currently uses. The existence check here is advisory only: the unique
// constraint on links.short_code is the authoritative check at insert time,
// and CreateShortLink retries on a constraint violation.
func GenerateShortCode() (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := randomCode()
		if err != nil {
			return "", err
		}

		var existing models.Link
		err = database.DB.Select("id").Where("short_code = ?", code).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", ErrCodeSpaceExhausted
}

func randomCode() (string, error) {
	code := make([]byte, CodeLength)
	charsetLength := big.NewInt(int64(len(codeCharset)))

	for i := range code {
		n, err := rand.Int(rand.Reader, charsetLength)
		if err != nil {
			return "", err
		}
		code[i] = codeCharset[n.Int64()]
	}

	return string(code), nil
}
