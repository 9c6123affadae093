package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("Password1")
	assert.NoError(t, err)
	assert.True(t, CheckPassword("Password1", hash))
	assert.False(t, CheckPassword("password1", hash))
}

func TestHashPassword_LongPassword(t *testing.T) {
	// 100 字符，超出 bcrypt 的 72 字节上限也必须能散列成功
	pw := strings.Repeat("Aa1", 33) + "B"
	assert.Len(t, pw, 100)

	hash, err := HashPassword(pw)
	assert.NoError(t, err)
	assert.True(t, CheckPassword(pw, hash))
}

func TestHashPassword_MultibytePassword(t *testing.T) {
	// 33 个 rune 但 93 字节
	pw := strings.Repeat("密", 30) + "Aa1"

	hash, err := HashPassword(pw)
	assert.NoError(t, err)
	assert.True(t, CheckPassword(pw, hash))
}

func TestCheckPassword_TruncatesAt72Bytes(t *testing.T) {
	// 前 72 字节相同的口令视为同一口令
	prefix := strings.Repeat("Aa1", 24)
	hash, err := HashPassword(prefix + "tail-one")
	assert.NoError(t, err)
	assert.True(t, CheckPassword(prefix+"tail-two", hash))
}
