package service

import (
	"go-book-api/internal/domain"
)

type BookService interface {
	Create(owner domain.Identity, b *domain.Book) error
	List(f domain.BookFilter, page, limit int) ([]domain.Book, Pagination, error)
	Get(id uint) (*domain.Book, error)
	Update(actor domain.Identity, id uint, patch domain.BookPatch) (*domain.Book, error)
	Delete(actor domain.Identity, id uint) error
	Like(actor domain.Identity, id uint) (int, error)
}

type bookService struct {
	books domain.BookRepository
}

func NewBookService(books domain.BookRepository) BookService {
	return &bookService{books: books}
}

func (s *bookService) Create(owner domain.Identity, b *domain.Book) error {
	b.OwnerID = owner.ID
	return s.books.Create(b)
}

func (s *bookService) List(f domain.BookFilter, page, limit int) ([]domain.Book, Pagination, error) {
	offset := (page - 1) * limit
	books, total, err := s.books.List(f, offset, limit)
	if err != nil {
		return nil, Pagination{}, err
	}
	if books == nil {
		books = []domain.Book{} // 超出页码范围返回空列表而不是 null
	}
	return books, NewPagination(page, limit, total), nil
}

func (s *bookService) Get(id uint) (*domain.Book, error) {
	b, err := s.books.FindByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (s *bookService) Update(actor domain.Identity, id uint, patch domain.BookPatch) (*domain.Book, error) {
	b, err := s.books.FindByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if !domain.CanMutate(actor, b.OwnerID) {
		return nil, ErrForbidden
	}
	patch.Apply(b)
	if err := s.books.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookService) Delete(actor domain.Identity, id uint) error {
	b, err := s.books.FindByID(id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	if !domain.CanMutate(actor, b.OwnerID) {
		return ErrForbidden
	}
	return s.books.Delete(id)
}

func (s *bookService) Like(actor domain.Identity, id uint) (int, error) {
	return s.books.Like(actor.ID, id)
}
