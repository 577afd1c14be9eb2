package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/knazaryan/go-books-backend/internal/apperr"
	"github.com/knazaryan/go-books-backend/internal/domain"
	"github.com/knazaryan/go-books-backend/internal/repo"
)

// ----- Fake repo -----

type fakeUserRepo struct {
	createdUser *domain.User
	createErr   error

	byUsername    map[string]*domain.User
	byUsernameErr error

	byKey    map[string]*domain.User
	byKeyErr error

	savedUser *domain.User
	saveErr   error

	deletedUsername string
	deleteErr       error
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	r.createdUser = u
	return r.createErr
}

func (r *fakeUserRepo) GetUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	if r.byUsernameErr != nil {
		return nil, r.byUsernameErr
	}
	if u, ok := r.byUsername[username]; ok {
		return u, nil
	}
	return nil, repo.ErrNotFound
}

func (r *fakeUserRepo) GetUserByAPIKey(ctx context.Context, db *gorm.DB, key string) (*domain.User, error) {
	if r.byKeyErr != nil {
		return nil, r.byKeyErr
	}
	if u, ok := r.byKey[key]; ok {
		return u, nil
	}
	return nil, repo.ErrNotFound
}

func (r *fakeUserRepo) SaveUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	r.savedUser = u
	return r.saveErr
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, db *gorm.DB, username string) error {
	r.deletedUsername = username
	return r.deleteErr
}

// hashOf returns a low-cost bcrypt hash for test fixtures.
func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

// ----- Tests -----

func TestNewUserServiceCostBounds(t *testing.T) {
	if s := NewUserService(nil, &fakeUserRepo{}, 10); s.BcryptCost != 10 {
		t.Fatalf("cost = %d; want 10", s.BcryptCost)
	}
	if s := NewUserService(nil, &fakeUserRepo{}, 0); s.BcryptCost != DefaultBcryptCost {
		t.Fatalf("out-of-range cost not defaulted: %d", s.BcryptCost)
	}
	if s := NewUserService(nil, &fakeUserRepo{}, 99); s.BcryptCost != DefaultBcryptCost {
		t.Fatalf("out-of-range cost not defaulted: %d", s.BcryptCost)
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	account := &domain.User{Username: "fherbert", Hash: hashOf(t, "melange")}
	r := &fakeUserRepo{byUsername: map[string]*domain.User{"fherbert": account}}
	s := NewUserService(nil, r, bcrypt.MinCost)

	u, err := s.Authenticate(context.Background(), "fherbert", "melange")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u != account {
		t.Fatalf("user = %+v", u)
	}
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	account := &domain.User{Username: "fherbert", Hash: hashOf(t, "melange")}
	r := &fakeUserRepo{byUsername: map[string]*domain.User{"fherbert": account}}
	s := NewUserService(nil, r, bcrypt.MinCost)

	_, unknownUserErr := s.Authenticate(context.Background(), "nobody", "melange")
	_, wrongPasswordErr := s.Authenticate(context.Background(), "fherbert", "wrong")

	for _, err := range []error{unknownUserErr, wrongPasswordErr} {
		if !apperr.Is(err, apperr.KindUnauthenticated) {
			t.Fatalf("err = %v; want Unauthenticated", err)
		}
	}
	if unknownUserErr.Error() != wrongPasswordErr.Error() {
		t.Fatalf("messages differ: %q vs %q", unknownUserErr, wrongPasswordErr)
	}
}

func TestAuthenticatePropagatesStoreErrors(t *testing.T) {
	boom := errors.New("disk gone")
	r := &fakeUserRepo{byUsernameErr: boom}
	s := NewUserService(nil, r, bcrypt.MinCost)

	_, err := s.Authenticate(context.Background(), "fherbert", "melange")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v; want raw store error", err)
	}
}

func TestRegisterHashesPasswordAndGeneratesKey(t *testing.T) {
	r := &fakeUserRepo{byUsername: map[string]*domain.User{}}
	s := NewUserService(nil, r, bcrypt.MinCost)

	u, err := s.Register(context.Background(), "fherbert", "melange", "Frank", "Herbert")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Hash == "melange" || u.Hash == "" {
		t.Fatal("password stored unhashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte("melange")) != nil {
		t.Fatal("stored hash does not verify the password")
	}
	if len(u.APIKey) != 36 {
		t.Fatalf("api key = %q; want a UUID", u.APIKey)
	}
	if r.createdUser != u {
		t.Fatal("user not persisted")
	}
}

func TestRegisterTakenUsername(t *testing.T) {
	r := &fakeUserRepo{byUsername: map[string]*domain.User{
		"fherbert": {Username: "fherbert"},
	}}
	s := NewUserService(nil, r, bcrypt.MinCost)

	_, err := s.Register(context.Background(), "fherbert", "melange", "Frank", "Herbert")
	if !apperr.Is(err, apperr.KindAlreadyExists) {
		t.Fatalf("err = %v; want AlreadyExists", err)
	}
	if r.createdUser != nil {
		t.Fatal("duplicate user persisted")
	}
}

func TestRegisterInsertRaceIsAlreadyExists(t *testing.T) {
	// The username check passed, but a concurrent registration won the
	// insert. The unique violation must surface as AlreadyExists.
	r := &fakeUserRepo{byUsername: map[string]*domain.User{}, createErr: repo.ErrDuplicate}
	s := NewUserService(nil, r, bcrypt.MinCost)

	_, err := s.Register(context.Background(), "fherbert", "melange", "Frank", "Herbert")
	if !apperr.Is(err, apperr.KindAlreadyExists) {
		t.Fatalf("err = %v; want AlreadyExists", err)
	}
	var ae *apperr.Error
	if errors.As(err, &ae) && ae.Message != apperr.MsgUserExists {
		t.Fatalf("message = %q", ae.Message)
	}
}

func TestUpdateAppliesOnlySetFields(t *testing.T) {
	r := &fakeUserRepo{}
	s := NewUserService(nil, r, bcrypt.MinCost)

	oldHash := hashOf(t, "melange")
	u := &domain.User{Username: "fherbert", Hash: oldHash, FirstName: "Frank", LastName: "Herbert"}

	first := "Franklin"
	got, err := s.Update(context.Background(), u, UserUpdate{FirstName: &first})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.FirstName != "Franklin" {
		t.Fatalf("firstName = %q", got.FirstName)
	}
	if got.LastName != "Herbert" || got.Hash != oldHash {
		t.Fatal("unset fields changed")
	}
	if r.savedUser != u {
		t.Fatal("updated user not persisted")
	}
}

func TestUpdateRehashesNewPassword(t *testing.T) {
	r := &fakeUserRepo{}
	s := NewUserService(nil, r, bcrypt.MinCost)

	u := &domain.User{Username: "fherbert", Hash: hashOf(t, "melange")}
	newPassword := "spice"
	got, err := s.Update(context.Background(), u, UserUpdate{NewPassword: &newPassword})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(got.Hash), []byte("spice")) != nil {
		t.Fatal("new password does not verify against the stored hash")
	}
	if bcrypt.CompareHashAndPassword([]byte(got.Hash), []byte("melange")) == nil {
		t.Fatal("old password still verifies")
	}
}

func TestDeleteUserService(t *testing.T) {
	r := &fakeUserRepo{}
	s := NewUserService(nil, r, bcrypt.MinCost)

	if err := s.Delete(context.Background(), "fherbert"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if r.deletedUsername != "fherbert" {
		t.Fatalf("deleted = %q", r.deletedUsername)
	}
}

func TestDeleteRaceKeepsCredentialsWording(t *testing.T) {
	r := &fakeUserRepo{deleteErr: repo.ErrNotFound}
	s := NewUserService(nil, r, bcrypt.MinCost)

	err := s.Delete(context.Background(), "fherbert")
	if !apperr.Is(err, apperr.KindUnauthenticated) {
		t.Fatalf("err = %v; want Unauthenticated", err)
	}
	var ae *apperr.Error
	if errors.As(err, &ae) && ae.Message != apperr.MsgIncorrectCredentials {
		t.Fatalf("message = %q", ae.Message)
	}
}

func TestGetByAPIKey(t *testing.T) {
	account := &domain.User{Username: "fherbert", APIKey: "key-1"}
	r := &fakeUserRepo{byKey: map[string]*domain.User{"key-1": account}}
	s := NewUserService(nil, r, bcrypt.MinCost)

	u, err := s.GetByAPIKey(context.Background(), "key-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u != account {
		t.Fatalf("user = %+v", u)
	}

	_, err = s.GetByAPIKey(context.Background(), "bogus")
	if !apperr.Is(err, apperr.KindUnauthenticated) {
		t.Fatalf("unknown key err = %v; want Unauthenticated", err)
	}
	var ae *apperr.Error
	if errors.As(err, &ae) && ae.Message != apperr.MsgIncorrectAPIKey {
		t.Fatalf("message = %q", ae.Message)
	}
}
