package service

import (
	"go-book-api/internal/core/auth"
	"go-book-api/internal/domain"
	"go-book-api/pkg/utils"
)

type AuthService interface {
	Register(name, email, password string) (*domain.User, error)
	Login(email, password string) (string, *domain.User, error)
}

type authService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer) AuthService {
	return &authService{users: users, jwter: jwter}
}

// Register 入参已经过 schema 清洗（trim、邮箱小写）
func (s *authService) Register(name, email, password string) (*domain.User, error) {
	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login 未知邮箱与密码错误返回同一个错误，避免泄露用户是否存在
func (s *authService) Login(email, password string) (string, *domain.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.jwter.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}
