package utils

import "golang.org/x/crypto/bcrypt"

// bcrypt 只散列前 72 字节；超长口令截断，而不是让注册报错
const bcryptMaxBytes = 72

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(passwordBytes(pw), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), passwordBytes(pw)) == nil
}

func passwordBytes(pw string) []byte {
	b := []byte(pw)
	if len(b) > bcryptMaxBytes {
		b = b[:bcryptMaxBytes]
	}
	return b
}
