// UserService: account registration, credential checks, updates, deletion.
//
// Authentication never reveals whether a username exists. Both the unknown
// user and wrong password branches return the identical Unauthenticated
// error, and the unknown-user branch still performs a bcrypt comparison
// against a fixed dummy hash so the two paths cost roughly the same.
package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/knazaryan/go-books-backend/internal/apperr"
	"github.com/knazaryan/go-books-backend/internal/domain"
	"github.com/knazaryan/go-books-backend/internal/repo"
)

// DefaultBcryptCost is used when the configured cost is out of range.
const DefaultBcryptCost = 12

// dummyHash is a valid bcrypt digest compared against when the username does
// not exist, so that lookup misses are not observably faster.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// UserRepo defines the repository contract required by UserService.
type UserRepo interface {
	CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) error
	GetUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error)
	GetUserByAPIKey(ctx context.Context, db *gorm.DB, key string) (*domain.User, error)
	SaveUser(ctx context.Context, db *gorm.DB, u *domain.User) error
	DeleteUser(ctx context.Context, db *gorm.DB, username string) error
}

// UserUpdate carries the optional fields of an account update. A nil field
// is left unchanged; NewPassword triggers a re-hash.
type UserUpdate struct {
	FirstName   *string
	LastName    *string
	NewPassword *string
}

// UserService provides account operations on top of the user repository.
type UserService struct {
	DB   *gorm.DB
	Repo UserRepo

	// BcryptCost is the work factor for password hashing.
	BcryptCost int
}

// NewUserService constructs a UserService with the given bcrypt cost.
// Out-of-range costs fall back to DefaultBcryptCost.
func NewUserService(db *gorm.DB, r UserRepo, cost int) *UserService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &UserService{DB: db, Repo: r, BcryptCost: cost}
}

// Authenticate verifies a username/password pair and returns the matching
// user. Any failure yields the same Unauthenticated error.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	u, err := s.Repo.GetUserByUsername(ctx, s.DB, username)
	if errors.Is(err, repo.ErrNotFound) {
		// Burn comparable time before answering.
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return nil, apperr.Unauthenticated(apperr.MsgIncorrectCredentials)
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, apperr.Unauthenticated(apperr.MsgIncorrectCredentials)
	}
	return u, nil
}

// Register creates a new account. The password is hashed and an API key is
// generated before persisting. A username collision yields AlreadyExists.
func (s *UserService) Register(ctx context.Context, username, password, firstName, lastName string) (*domain.User, error) {
	_, err := s.Repo.GetUserByUsername(ctx, s.DB, username)
	if err == nil {
		return nil, apperr.AlreadyExists(apperr.MsgUserExists)
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.BcryptCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Username:  username,
		Hash:      string(hash),
		FirstName: firstName,
		LastName:  lastName,
		APIKey:    uuid.NewString(),
	}
	if err := s.Repo.CreateUser(ctx, s.DB, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			// Lost an insert race on the username.
			return nil, apperr.AlreadyExists(apperr.MsgUserExists)
		}
		return nil, err
	}
	return u, nil
}

// Update applies the set fields of upd to an already authenticated user and
// persists the result. A new password is re-hashed with the service cost.
func (s *UserService) Update(ctx context.Context, u *domain.User, upd UserUpdate) (*domain.User, error) {
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = *upd.LastName
	}
	if upd.NewPassword != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.NewPassword), s.BcryptCost)
		if err != nil {
			return nil, err
		}
		u.Hash = string(hash)
	}
	if err := s.Repo.SaveUser(ctx, s.DB, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes an account by username.
func (s *UserService) Delete(ctx context.Context, username string) error {
	err := s.Repo.DeleteUser(ctx, s.DB, username)
	if errors.Is(err, repo.ErrNotFound) {
		// The account was authenticated moments ago; a concurrent delete
		// lost the race. Keep the credentials wording either way.
		return apperr.Unauthenticated(apperr.MsgIncorrectCredentials)
	}
	return err
}

// GetByAPIKey resolves a user from an opaque API key. An unknown key yields
// Unauthenticated, never a hint about which keys exist.
func (s *UserService) GetByAPIKey(ctx context.Context, key string) (*domain.User, error) {
	u, err := s.Repo.GetUserByAPIKey(ctx, s.DB, key)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, apperr.Unauthenticated(apperr.MsgIncorrectAPIKey)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
