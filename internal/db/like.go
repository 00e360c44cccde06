package db

import "time"

// PostLike keeps the like counter for one post. The counter is bumped with a
// single conditional UPDATE so concurrent likes never lose increments.
type PostLike struct {
	ID        uint   `gorm:"primaryKey"`
	PostID    uint   `gorm:"uniqueIndex"`
	Count     uint64 `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps the store collection name explicit.
func (PostLike) TableName() string {
	return "post_likes"
}

// PostLikeVisitor records the visitor token behind a counted like. The
// composite unique index makes a repeat like from the same visitor a no-op.
type PostLikeVisitor struct {
	ID           uint   `gorm:"primaryKey"`
	PostID       uint   `gorm:"uniqueIndex:idx_like_visitor_post_token"`
	VisitorToken string `gorm:"size:64;uniqueIndex:idx_like_visitor_post_token"`
	CreatedAt    time.Time
}

// TableName keeps the store collection name explicit.
func (PostLikeVisitor) TableName() string {
	return "post_like_visitors"
}
