// Package services defines the business logic for books and users. Services
// sit between HTTP handlers and the repositories: they enforce business
// rules and translate missing-record conditions into the application error
// taxonomy so that handlers and middleware can stay uniform.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/knazaryan/go-books-backend/internal/apperr"
	"github.com/knazaryan/go-books-backend/internal/domain"
	"github.com/knazaryan/go-books-backend/internal/repo"
)

// BookRepo defines the repository contract required by BookService.
type BookRepo interface {
	CreateBook(ctx context.Context, db *gorm.DB, data domain.BookData, creatorID *string) (*domain.Book, error)
	ListBooks(ctx context.Context, db *gorm.DB) ([]domain.Book, error)
	GetBook(ctx context.Context, db *gorm.DB, id string) (*domain.Book, error)
	SaveBook(ctx context.Context, db *gorm.DB, b *domain.Book) error
	DeleteBook(ctx context.Context, db *gorm.DB, b *domain.Book) error
}

// BookService provides book CRUD operations on top of the repository.
// Expected failures are returned as *apperr.Error; unexpected store errors
// are propagated raw and classified by the central error handler.
type BookService struct {
	DB   *gorm.DB
	Repo BookRepo
}

// NewBookService constructs a BookService bound to db.
func NewBookService(db *gorm.DB, r BookRepo) *BookService {
	return &BookService{DB: db, Repo: r}
}

// List returns all books in insertion order.
func (s *BookService) List(ctx context.Context) ([]domain.Book, error) {
	return s.Repo.ListBooks(ctx, s.DB)
}

// Get returns the book with the given id, or a NotFound error.
func (s *BookService) Get(ctx context.Context, id string) (*domain.Book, error) {
	b, err := s.Repo.GetBook(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, apperr.NotFound(apperr.MsgBookNotFound)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Create persists a new book, optionally linked to the creating user.
func (s *BookService) Create(ctx context.Context, data domain.BookData, creator *domain.User) (*domain.Book, error) {
	var creatorID *string
	if creator != nil {
		creatorID = &creator.ID
	}
	return s.Repo.CreateBook(ctx, s.DB, data, creatorID)
}

// Update applies the set fields of data to an already fetched book and
// persists the result. The record comes from the existence stage of the
// validation chain, so no second lookup is performed.
func (s *BookService) Update(ctx context.Context, b *domain.Book, data domain.BookData) (*domain.Book, error) {
	repo.ApplyBookData(b, data)
	if err := s.Repo.SaveBook(ctx, s.DB, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete removes an already fetched book and returns the deleted record.
func (s *BookService) Delete(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	if err := s.Repo.DeleteBook(ctx, s.DB, b); err != nil {
		return nil, err
	}
	return b, nil
}
