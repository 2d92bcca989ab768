// Package account registers and authenticates storefront users and
// issues signed session tokens.
package account

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopquanao/storefront/internal/domain"
	"github.com/shopquanao/storefront/pkg/common"
)

// TokenTTL is the fixed lifetime of an issued session token.
const TokenTTL = 24 * time.Hour

var (
	// ErrEmailTaken is returned when the registration email already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so a caller cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service handles registration, login and token issuance.
type Service struct {
	users  UserRepository
	secret []byte
}

func NewService(users UserRepository, secret string) *Service {
	return &Service{users: users, secret: []byte(secret)}
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Address  string
}

// Register creates a new user unless the email is already taken. The
// password is stored as a bcrypt hash; the returned row never carries it.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	_, err := s.users.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		ID:        common.UUIDint64(),
		Email:     in.Email,
		Password:  string(hash),
		Name:      in.Name,
		Phone:     in.Phone,
		Address:   in.Address,
		Role:      domain.RoleUser,
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}

	zap.L().Info("user registered", zap.Int64("user_id", user.ID))
	user.Password = ""
	return &user, nil
}

// Login verifies the credentials and issues a signed 24-hour token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	zap.L().Info("user logged in", zap.Int64("user_id", user.ID))
	user.Password = ""
	return token, user, nil
}

// GetByID fetches a user row without the password hash.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (s *Service) issueToken(user *domain.User) (string, error) {
	// the id claim travels as a string: a snowflake id does not survive
	// the float64 round trip JSON numbers take
	claims := jwt.MapClaims{
		"userId": strconv.FormatInt(user.ID, 10),
		"email":  user.Email,
		"role":   user.Role,
		"exp":    time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
