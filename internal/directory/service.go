package directory

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	errors "github.com/yarnuri/stampclock/internal"
)

// Repository defines the data access methods for the user roster
type Repository interface {
	List() ([]*User, error)
	GetByID(id int64) (*User, error)
	GetByUsername(username string) (*User, error)
	Create(u *User) error
	Update(u *User) error
	Delete(id int64) error
	Count() (int64, error)
}

// Service handles roster business logic
type Service struct {
	repo       Repository
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// ListUsers returns every roster entry, newest first.
func (s *Service) ListUsers() ([]*User, error) {
	users, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

func (s *Service) CreateUser(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("create user validation failed", "error", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password", err)
	}

	role := dto.Role
	if role == "" {
		role = RoleEmployee
	}

	user := &User{
		Username:     dto.Username,
		PasswordHash: string(hash),
		Name:         dto.Name,
		Role:         role,
	}

	if err := s.repo.Create(user); err != nil {
		s.logger.Error("failed to create user", "error", err, "username", dto.Username)
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID, "username", user.Username, "role", user.Role)
	return user, nil
}

func (s *Service) UpdateUser(dto UpdateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("update user validation failed", "error", err)
		return nil, err
	}

	user, err := s.repo.GetByID(dto.ID)
	if err != nil {
		s.logger.Warn("user not found for update", "error", err, "user_id", dto.ID)
		return nil, err
	}

	user.Username = dto.Username
	user.Name = dto.Name
	if dto.Role != "" {
		user.Role = dto.Role
	}
	if dto.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
		if err != nil {
			return nil, errors.NewInternalError("failed to hash password", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(user); err != nil {
		s.logger.Error("failed to update user", "error", err, "user_id", dto.ID)
		return nil, err
	}

	s.logger.Info("user updated", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (s *Service) DeleteUser(id int64) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Warn("user not found for delete", "error", err, "user_id", id)
		return err
	}

	if user.IsProtected() {
		s.logger.Warn("refusing to delete protected account", "user_id", id, "username", user.Username)
		return errors.ErrProtectedAccount
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete user", "error", err, "user_id", id)
		return err
	}

	s.logger.Info("user deleted", "user_id", id, "username", user.Username)
	return nil
}

// EnsureDefaults seeds the bootstrap admin and a demo employee when the
// roster is empty. Safe to run on every startup.
func (s *Service) EnsureDefaults() error {
	count, err := s.repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []CreateUserDTO{
		{Username: ReservedAdminUsername, Password: "admin123", Name: "Administratör", Role: RoleAdmin},
		{Username: "yar", Password: "password123", Name: "Yar Nuri", Role: RoleEmployee},
	}

	for _, dto := range defaults {
		if _, err := s.CreateUser(dto); err != nil {
			// a concurrent boot may have seeded the same row already
			if appErr, ok := errors.IsAppError(err); ok && appErr.Code == errors.ErrCodeDuplicateUsername {
				continue
			}
			return err
		}
	}

	s.logger.Info("seeded default accounts", "count", len(defaults))
	return nil
}
