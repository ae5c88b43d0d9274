package utils

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/qzonme/qzonme-backend/models"
	"gorm.io/gorm"
)

const accessCodeLength = 8
const slugSuffixLength = 4
const cleanNameMaxLength = 15
const codeCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

var ErrEmptyCreatorName = errors.New("creator name cannot be empty")
var ErrBlockedCreatorName = errors.New("creator name is not allowed")

// randomInt returns a uniform value in [0, n) without modulo bias.
func randomInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return int(v.Int64())
}

func randomString(charset string, length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = charset[randomInt(len(charset))]
	}
	return string(buf)
}

func randomUint16() uint16 {
	var buf [2]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return binary.BigEndian.Uint16(buf[:])
}

// GenerateAccessCode returns the short public lookup code for a quiz.
func GenerateAccessCode() string {
	return randomString(codeCharset, accessCodeLength)
}

// GenerateUniqueAccessCode retries generation until the code does not collide
// with an existing quiz.
func GenerateUniqueAccessCode(tx *gorm.DB) (string, error) {
	for {
		code := GenerateAccessCode()

		var quiz models.Quiz
		err := tx.Where("access_code = ?", code).First(&quiz).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return code, nil
			}
			return "", err
		}
	}
}

// ValidateCreatorName rejects blank names and names on the configured block
// list. The block list exists for display names known to leak in from stale
// client defaults; it is configuration, not a business rule.
func ValidateCreatorName(name string, blocked []string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyCreatorName
	}
	for _, banned := range blocked {
		banned = strings.TrimSpace(banned)
		if banned != "" && strings.EqualFold(trimmed, banned) {
			return ErrBlockedCreatorName
		}
	}
	return nil
}

// GenerateURLSlug builds the public human-readable quiz identifier:
// the creator's name lower-cased and stripped to [a-z0-9] (capped at 15
// characters), then "-", four random alphanumerics and a zero-padded
// four-digit number.
func GenerateURLSlug(creatorName string, blocked []string) (string, error) {
	if err := ValidateCreatorName(creatorName, blocked); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(creatorName)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	cleanName := b.String()
	if cleanName == "" {
		stamp := fmt.Sprintf("%d", time.Now().Unix())
		cleanName = "quiz" + stamp[len(stamp)-4:]
	}
	if len(cleanName) > cleanNameMaxLength {
		cleanName = cleanName[:cleanNameMaxLength]
	}

	randomPart := randomString(codeCharset, slugSuffixLength)
	numericPart := fmt.Sprintf("%04d", randomInt(10000))

	return fmt.Sprintf("%s-%s%s", cleanName, randomPart, numericPart), nil
}

// GenerateDashboardToken returns the creator's private dashboard credential:
// random hex in 8-4-4-4-12 grouping. It is a bearer token, so the randomness
// comes from crypto/rand.
func GenerateDashboardToken() string {
	s4 := func() string { return fmt.Sprintf("%04x", randomUint16()) }
	return s4() + s4() + "-" + s4() + "-" + s4() + "-" + s4() + "-" + s4() + s4() + s4()
}
