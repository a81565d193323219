package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Developer is a game studio, deduplicated by name within an import batch.
type Developer struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:255;not null"`
	Games []Game `gorm:"foreignKey:DeveloperID"`
}

// Genre classifies a game, deduplicated by name within an import batch.
type Genre struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:255;not null"`
	Games []Game `gorm:"foreignKey:GenreID"`
}

// Tag is a free-form label, deduplicated by name within an import batch.
type Tag struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;not null"`
}

// Game is a storefront title.
type Game struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:255;not null;index"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ReleaseDate time.Time       `gorm:"type:date;not null"`
	DeveloperID uint            `gorm:"not null"`
	Developer   *Developer
	GenreID     uint `gorm:"not null"`
	Genre       *Genre
	Tags        []*Tag `gorm:"many2many:game_tags"`
	Purchases   []Purchase
}

// GameTag is one row of the game_tags join table linking a Game to a Tag.
type GameTag struct {
	GameID uint `gorm:"primaryKey"`
	TagID  uint `gorm:"primaryKey"`
}

// User owns one or more payment cards.
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"size:20;not null"`
	FullName string `gorm:"size:255;not null"`
	Email    string `gorm:"size:255;not null"`
	Age      int    `gorm:"not null"`
	Cards    []Card
}

// Card is a payment card. Number is four space separated groups of four digits.
type Card struct {
	ID        uint     `gorm:"primaryKey"`
	Number    string   `gorm:"size:19;not null;index"`
	Cvc       string   `gorm:"column:cvc;size:3;not null"`
	Type      CardType `gorm:"size:16;not null"`
	UserID    uint     `gorm:"not null"`
	User      *User
	Purchases []Purchase
}

// Purchase records a game bought with a card.
type Purchase struct {
	ID         uint         `gorm:"primaryKey"`
	Type       PurchaseType `gorm:"size:16;not null"`
	ProductKey string       `gorm:"size:14;not null"`
	Date       time.Time    `gorm:"not null"`
	CardID     uint         `gorm:"not null"`
	Card       *Card
	GameID     uint `gorm:"not null"`
	Game       *Game
}

// All lists every persisted model, in migration order.
func All() []any {
	return []any{
		&Developer{},
		&Genre{},
		&Tag{},
		&Game{},
		&User{},
		&Card{},
		&Purchase{},
	}
}
