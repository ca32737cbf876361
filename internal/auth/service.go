package auth

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	internal "github.com/yarnuri/stampclock/internal"
	"github.com/yarnuri/stampclock/internal/directory"
)

// UserRepository is the slice of the roster store the auth flow needs.
type UserRepository interface {
	GetByUsername(username string) (*directory.User, error)
}

type Service struct {
	userRepo UserRepository
	tokens   TokenGenerator
	logger   *slog.Logger
}

func NewService(userRepo UserRepository, tokens TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Authenticate validates credentials and returns an access token plus the
// user record. Unknown username and wrong password yield the same error so
// the response does not leak which usernames exist.
func (s *Service) Authenticate(dto LoginDTO) (*LoginResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(dto.Username)
	if err != nil {
		s.logger.Warn("login failed: unknown username", "username", dto.Username)
		return nil, internal.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		s.logger.Warn("login failed: wrong password", "username", dto.Username)
		return nil, internal.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		s.logger.Error("failed to sign access token", "error", err, "username", dto.Username)
		return nil, internal.NewInternalError("failed to issue token", err)
	}

	s.logger.Info("user authenticated", "user_id", user.ID, "username", user.Username, "role", user.Role)
	return &LoginResponse{
		AccessToken: token,
		User:        user,
	}, nil
}

// ValidateAccessToken validates the token and returns its claims.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.ValidateToken(tokenString)
}
