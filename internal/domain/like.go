package domain

import (
	"errors"
	"time"
)

// BookLike 点赞台账，(user_id, book_id) 唯一
type BookLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uniq_user_book_like" json:"userId"`
	BookID    uint      `gorm:"not null;uniqueIndex:uniq_user_book_like" json:"bookId"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Book      *Book     `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

func (BookLike) TableName() string { return "book_likes" }

var (
	ErrNotFound     = errors.New("record not found")
	ErrAlreadyLiked = errors.New("already liked")
)
