package models

import "time"

// Friendship is one direction of a symmetric friend relation. A friendship
// between A and B is always stored as the two rows (A,B) and (B,A), written
// and removed together. The primary key is the composite (UserID, FriendID).
type Friendship struct {
	UserID    uint `gorm:"primaryKey"`
	FriendID  uint `gorm:"primaryKey"`
	CreatedAt time.Time

	User   User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Friend User `gorm:"foreignKey:FriendID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
