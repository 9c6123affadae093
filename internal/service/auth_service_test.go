package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-book-api/internal/core/auth"
	"go-book-api/internal/domain"
	"go-book-api/pkg/utils"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(u *domain.User) error {
	args := m.Called(u)
	u.ID = 1
	return args.Error(0)
}

func (m *MockUserRepo) FindByID(id uint) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func testJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}
}

func TestRegister_Success(t *testing.T) {
	users := new(MockUserRepo)
	svc := NewAuthService(users, testJWTer())

	users.On("FindByEmail", "alice@example.com").Return(nil, nil)
	users.On("Create", mock.AnythingOfType("*domain.User")).Return(nil)

	u, err := svc.Register("Alice", "alice@example.com", "Password1")

	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, domain.RoleUser, u.Role)
	// 存储的永远是散列，不是明文
	assert.NotEqual(t, "Password1", u.PasswordHash)
	assert.True(t, utils.CheckPassword("Password1", u.PasswordHash))
	users.AssertExpectations(t)
}

func TestRegister_LongPassword(t *testing.T) {
	users := new(MockUserRepo)
	svc := NewAuthService(users, testJWTer())

	users.On("FindByEmail", "alice@example.com").Return(nil, nil)
	users.On("Create", mock.AnythingOfType("*domain.User")).Return(nil)

	// 128 字符是校验允许的上限，远超 bcrypt 的 72 字节
	pw := strings.Repeat("Aa1b", 32)
	u, err := svc.Register("Alice", "alice@example.com", pw)

	assert.NoError(t, err)
	assert.True(t, utils.CheckPassword(pw, u.PasswordHash))
}

func TestRegister_EmailTaken(t *testing.T) {
	users := new(MockUserRepo)
	svc := NewAuthService(users, testJWTer())

	users.On("FindByEmail", "alice@example.com").
		Return(&domain.User{ID: 1, Email: "alice@example.com"}, nil)

	_, err := svc.Register("Alice", "alice@example.com", "Password1")

	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepo)
	jwter := testJWTer()
	svc := NewAuthService(users, jwter)

	hash, _ := utils.HashPassword("Password1")
	users.On("FindByEmail", "alice@example.com").Return(&domain.User{
		ID:           7,
		Email:        "alice@example.com",
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}, nil)

	token, u, err := svc.Login("alice@example.com", "Password1")

	assert.NoError(t, err)
	assert.Equal(t, uint(7), u.ID)

	// 签出的 token 要能被同一个 JWTer 接受
	claims, err := jwter.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestLogin_WrongPasswordAndUnknownEmailSameError(t *testing.T) {
	users := new(MockUserRepo)
	svc := NewAuthService(users, testJWTer())

	hash, _ := utils.HashPassword("Password1")
	users.On("FindByEmail", "alice@example.com").
		Return(&domain.User{ID: 7, Email: "alice@example.com", PasswordHash: hash}, nil)
	users.On("FindByEmail", "nobody@example.com").Return(nil, nil)

	_, _, errWrongPw := svc.Login("alice@example.com", "WrongPassword9")
	_, _, errUnknown := svc.Login("nobody@example.com", "Password1")

	// 不泄露用户是否存在
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.Equal(t, errWrongPw.Error(), errUnknown.Error())
}
