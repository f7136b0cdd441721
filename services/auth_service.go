package services

import (
	"errors"
	"strings"
	"time"

	"restaurant-backend/entity"
	"restaurant-backend/repository"
	"restaurant-backend/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotStaff           = errors.New("no permission to access the admin dashboard")
)

type AuthService struct {
	Users     *repository.UserRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(users *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, JWTSecret: secret, JWTTTL: ttl}
}

func (s *AuthService) Signup(username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, errors.New("all fields are required")
	}

	if n, err := s.Users.CountByUsername(username); err != nil {
		return nil, err
	} else if n > 0 {
		return nil, ErrUsernameTaken
	}
	if n, err := s.Users.CountByEmail(email); err != nil {
		return nil, err
	} else if n > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     "customer",
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	user, err := s.Users.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// AdminLogin is Login plus a staff check; a valid customer gets a
// permission message, not a credentials one.
func (s *AuthService) AdminLogin(username, password string) (string, *entity.User, error) {
	token, user, err := s.Login(username, password)
	if err != nil {
		return "", nil, err
	}
	if user.Role != "admin" {
		return "", nil, ErrNotStaff
	}
	return token, user, nil
}
