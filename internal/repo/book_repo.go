// Book repository.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// usable inside transactions. They follow the thin-repository approach: no
// business logic, only CRUD persistence and query composition.
//
// Error semantics:
//   - A missing book yields ErrNotFound (gorm.ErrRecordNotFound).
//   - Other DB errors are propagated raw; classification happens upstream.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/knazaryan/go-books-backend/internal/domain"
)

// CreateBook inserts a new book row with a freshly generated hex id. The
// creator reference is optional. On success the persisted book is returned.
func CreateBook(ctx context.Context, db *gorm.DB, data domain.BookData, creatorID *string) (*domain.Book, error) {
	b := &domain.Book{
		ID:        domain.NewID(),
		CreatorID: creatorID,
	}
	ApplyBookData(b, data)
	if err := db.WithContext(ctx).Create(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

// ListBooks returns every book ordered by creation time ascending, matching
// store insertion order. It returns an empty slice when the table is empty.
func ListBooks(ctx context.Context, db *gorm.DB) ([]domain.Book, error) {
	var out []domain.Book
	err := db.WithContext(ctx).Order("created_at asc").Find(&out).Error
	return out, err
}

// GetBook fetches a single book by id, or ErrNotFound when it is missing.
func GetBook(ctx context.Context, db *gorm.DB, id string) (*domain.Book, error) {
	var b domain.Book
	if err := db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// SaveBook persists all fields of an already loaded book row. The caller is
// expected to hold the record fetched earlier in the request (the existence
// stage attaches it to the context), so no second lookup happens here.
func SaveBook(ctx context.Context, db *gorm.DB, b *domain.Book) error {
	return db.WithContext(ctx).Save(b).Error
}

// DeleteBook removes an already loaded book row.
func DeleteBook(ctx context.Context, db *gorm.DB, b *domain.Book) error {
	return db.WithContext(ctx).Delete(b).Error
}

// ApplyBookData copies the set fields of data onto b.
func ApplyBookData(b *domain.Book, data domain.BookData) {
	if data.Name != nil {
		b.Name = *data.Name
	}
	if data.Author != nil {
		b.Author = *data.Author
	}
	if data.Genre != nil {
		b.Genre = *data.Genre
	}
	if data.PublishYear != nil {
		b.PublishYear = *data.PublishYear
	}
	if data.Description != nil {
		b.Description = *data.Description
	}
}
