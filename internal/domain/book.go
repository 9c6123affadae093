package domain

import "time"

type Book struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Author      string    `gorm:"size:255;not null" json:"author"`
	Description string    `gorm:"type:text" json:"description"`
	Year        int       `json:"year"`
	Genre       string    `gorm:"size:100" json:"genre"`
	OwnerID     uint      `gorm:"not null;index" json:"ownerId"`
	Owner       *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	LikesCount  int       `gorm:"not null;default:0" json:"likesCount"` // 冗余计数，与 book_likes 同事务维护
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Book) TableName() string { return "books" }

// BookPatch 部分更新：nil 表示该字段不改
type BookPatch struct {
	Title       *string
	Author      *string
	Description *string
	Year        *int
	Genre       *string
}

func (p BookPatch) Apply(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Year != nil {
		b.Year = *p.Year
	}
	if p.Genre != nil {
		b.Genre = *p.Genre
	}
}

// BookFilter 列表筛选；空串不生效，Year 为 nil 不生效
type BookFilter struct {
	Genre  string
	Author string
	Year   *int
}

type BookRepository interface {
	Create(b *Book) error
	FindByID(id uint) (*Book, error)
	List(f BookFilter, offset, limit int) ([]Book, int64, error)
	Update(b *Book) error
	Delete(id uint) error
	// Like 原子地写入点赞并加一计数，返回最新计数；
	// 已点过赞返回 ErrAlreadyLiked（携带当前计数），书不存在返回 ErrNotFound。
	Like(userID, bookID uint) (int, error)
}
