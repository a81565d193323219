package catalog

import (
	"context"
	"errors"
	"fmt"

	"vapor-store/feature/catalog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the persistence collaborator used by the importers.
// Lookups only see data committed by earlier calls.
type Store interface {
	// AddGames persists games together with their developers, genres, tags and links.
	AddGames(ctx context.Context, games []*models.Game) error
	// AddUsers persists users together with their cards.
	AddUsers(ctx context.Context, users []*models.User) error
	// AddPurchases persists purchases referencing existing cards and games.
	AddPurchases(ctx context.Context, purchases []*models.Purchase) error
	// FindCardByNumber returns the card with the exact number and its owner, or nil.
	FindCardByNumber(ctx context.Context, number string) (*models.Card, error)
	// FindGameByName returns the game with the exact name, or nil.
	FindGameByName(ctx context.Context, name string) (*models.Game, error)
}

// GormStore implements Store over a GORM connection.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store backed by db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate creates or updates the catalog schema.
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Game{}, "Tags", &models.GameTag{}); err != nil {
		return fmt.Errorf("failed to set up game_tags join table: %w", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}
	return nil
}

// AddGames writes referenced entities first so that shared developers, genres
// and tags are inserted exactly once, then the games, then the tag links.
func (s *GormStore) AddGames(ctx context.Context, games []*models.Game) error {
	if len(games) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		developers := distinct(games, func(g *models.Game) []*models.Developer { return []*models.Developer{g.Developer} })
		genres := distinct(games, func(g *models.Game) []*models.Genre { return []*models.Genre{g.Genre} })
		tags := distinct(games, func(g *models.Game) []*models.Tag { return g.Tags })

		if err := createNew(tx, developers); err != nil {
			return fmt.Errorf("failed to insert developers: %w", err)
		}
		if err := createNew(tx, genres); err != nil {
			return fmt.Errorf("failed to insert genres: %w", err)
		}
		if err := createNew(tx, tags); err != nil {
			return fmt.Errorf("failed to insert tags: %w", err)
		}

		for _, g := range games {
			g.DeveloperID = g.Developer.ID
			g.GenreID = g.Genre.ID
		}
		if err := tx.Omit(clause.Associations).Create(&games).Error; err != nil {
			return fmt.Errorf("failed to insert games: %w", err)
		}

		var links []models.GameTag
		for _, g := range games {
			for _, t := range g.Tags {
				links = append(links, models.GameTag{GameID: g.ID, TagID: t.ID})
			}
		}
		if len(links) > 0 {
			if err := tx.Create(&links).Error; err != nil {
				return fmt.Errorf("failed to insert game tags: %w", err)
			}
		}
		return nil
	})
}

// AddUsers writes users and their cards in one transaction.
func (s *GormStore) AddUsers(ctx context.Context, users []*models.User) error {
	if len(users) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("failed to insert users: %w", err)
		}
		return nil
	})
}

// AddPurchases writes purchases; the referenced card and game must already exist.
func (s *GormStore) AddPurchases(ctx context.Context, purchases []*models.Purchase) error {
	if len(purchases) == 0 {
		return nil
	}

	for _, p := range purchases {
		if p.Card != nil {
			p.CardID = p.Card.ID
		}
		if p.Game != nil {
			p.GameID = p.Game.ID
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&purchases).Error; err != nil {
			return fmt.Errorf("failed to insert purchases: %w", err)
		}
		return nil
	})
}

// FindCardByNumber returns nil, nil when no card has the number.
func (s *GormStore) FindCardByNumber(ctx context.Context, number string) (*models.Card, error) {
	var card models.Card
	err := s.db.WithContext(ctx).Preload("User").Where(s.exactMatch("number"), number).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find card: %w", err)
	}
	return &card, nil
}

// FindGameByName returns nil, nil when no game has the name.
func (s *GormStore) FindGameByName(ctx context.Context, name string) (*models.Game, error) {
	var game models.Game
	err := s.db.WithContext(ctx).Where(s.exactMatch("name"), name).First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find game: %w", err)
	}
	return &game, nil
}

// exactMatch returns a byte-exact equality condition on column. MySQL's
// default collation ignores case and trailing spaces; sqlite compares bytes.
func (s *GormStore) exactMatch(column string) string {
	if s.db.Dialector.Name() == "mysql" {
		return "BINARY " + column + " = ?"
	}
	return column + " = ?"
}

// distinct collects the entities referenced by games, once per instance.
func distinct[T any](games []*models.Game, refs func(*models.Game) []*T) []*T {
	seen := make(map[*T]struct{})
	var out []*T
	for _, g := range games {
		for _, ref := range refs(g) {
			if ref == nil {
				continue
			}
			if _, ok := seen[ref]; ok {
				continue
			}
			seen[ref] = struct{}{}
			out = append(out, ref)
		}
	}
	return out
}

// createNew inserts the given entities in one batch.
func createNew[T any](tx *gorm.DB, items []*T) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Omit(clause.Associations).Create(&items).Error
}
