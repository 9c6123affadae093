package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"go-book-api/internal/domain"
)

type BookRepo struct{ db *gorm.DB }

func NewBookRepo(db *gorm.DB) *BookRepo { return &BookRepo{db: db} }

func (r *BookRepo) Create(b *domain.Book) error { return r.db.Create(b).Error }

func (r *BookRepo) FindByID(id uint) (*domain.Book, error) {
	var b domain.Book
	err := r.db.First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &b, err
}

func (r *BookRepo) List(f domain.BookFilter, offset, limit int) ([]domain.Book, int64, error) {
	q := r.db.Model(&domain.Book{})
	if f.Genre != "" {
		q = q.Where("genre = ?", f.Genre)
	}
	if f.Author != "" {
		q = q.Where("author = ?", f.Author)
	}
	if f.Year != nil {
		q = q.Where("year = ?", *f.Year)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var books []domain.Book
	if err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&books).Error; err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *BookRepo) Update(b *domain.Book) error { return r.db.Save(b).Error }

func (r *BookRepo) Delete(id uint) error {
	res := r.db.Where("id = ?", id).Delete(&domain.Book{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Like 台账写入 + 计数加一放在同一事务里；
// 并发兜底：唯一索引冲突 → 当作已点过赞处理。
func (r *BookRepo) Like(userID, bookID uint) (int, error) {
	var likes int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var b domain.Book
		if e := tx.First(&b, "id = ?", bookID).Error; e != nil {
			if errors.Is(e, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return e
		}

		var n int64
		if e := tx.Model(&domain.BookLike{}).
			Where("user_id = ? AND book_id = ?", userID, bookID).
			Count(&n).Error; e != nil {
			return e
		}
		if n > 0 {
			likes = b.LikesCount
			return domain.ErrAlreadyLiked
		}

		if e := tx.Create(&domain.BookLike{UserID: userID, BookID: bookID}).Error; e != nil {
			if IsDupKey(e) {
				likes = b.LikesCount
				return domain.ErrAlreadyLiked
			}
			return e
		}
		if e := tx.Model(&domain.Book{}).Where("id = ?", bookID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error; e != nil {
			return e
		}
		likes = b.LikesCount + 1
		return nil
	})
	return likes, err
}

// IsDupKey 不依赖 gorm.ErrDuplicatedKey，避免驱动版本差异
func IsDupKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}

func IsFKViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key")
}
