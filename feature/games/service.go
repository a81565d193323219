package games

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vapor-store/core/logger"
	"vapor-store/core/registry"
	"vapor-store/core/report"
	"vapor-store/core/validation"
	"vapor-store/feature/catalog"
	"vapor-store/feature/catalog/models"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Service imports game batches.
type Service struct {
	store  catalog.Store
	logger *zap.Logger
}

// NewService creates a new game import service.
func NewService(store catalog.Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// batch holds the dedup registries of one import call.
type batch struct {
	developers *registry.Registry[models.Developer]
	genres     *registry.Registry[models.Genre]
	tags       *registry.Registry[models.Tag]
}

func newBatch() *batch {
	return &batch{
		developers: registry.New(func(name string) *models.Developer { return &models.Developer{Name: name} }),
		genres:     registry.New(func(name string) *models.Genre { return &models.Genre{Name: name} }),
		tags:       registry.New(func(name string) *models.Tag { return &models.Tag{Name: name} }),
	}
}

// ImportGames decodes a JSON array of games, validates each one and persists
// the accepted games in a single write. It returns one report line per record.
func (s *Service) ImportGames(ctx context.Context, payload string) (string, error) {
	l := logger.WithBatch(s.logger, "games")

	var records []Record
	if err := json.Unmarshal([]byte(catalog.TrimBOM(payload)), &records); err != nil {
		return "", fmt.Errorf("%w: %w", catalog.ErrMalformedPayload, err)
	}

	b := newBatch()
	var rb report.Builder
	games := make([]*models.Game, 0, len(records))

	for i, rec := range records {
		game, reason := b.build(rec)
		if game == nil {
			l.Debug("Game rejected", zap.Int("record", i), zap.String("reason", reason))
			rb.Invalid()
			continue
		}

		games = append(games, game)
		rb.Addf(report.GameAdded, game.Name, game.Genre.Name, len(game.Tags))
	}

	if err := s.store.AddGames(ctx, games); err != nil {
		return "", fmt.Errorf("failed to save games: %w", err)
	}

	l.Info("Games imported",
		zap.Int("accepted", rb.Accepted()),
		zap.Int("rejected", rb.Rejected()),
		zap.Int("developers", b.developers.Len()),
		zap.Int("genres", b.genres.Len()),
		zap.Int("tags", b.tags.Len()),
	)

	return rb.String(), nil
}

// build turns a record into a game, or returns nil and the rejection reason.
// Date and tag presence are checked before any entity is resolved.
func (b *batch) build(rec Record) (*models.Game, string) {
	rules := rec.Rules()
	if !validation.Check(rules...) {
		return nil, "invalid " + validation.FirstFailure(rules...)
	}

	releaseDate, err := time.Parse(releaseDateLayout, rec.ReleaseDate)
	if err != nil {
		return nil, "invalid ReleaseDate"
	}

	if len(rec.Tags) == 0 {
		return nil, "no tags"
	}

	game := &models.Game{
		Name:        rec.Name,
		Price:       rec.Price,
		ReleaseDate: releaseDate,
		Developer:   b.developers.Resolve(rec.Developer),
		Genre:       b.genres.Resolve(rec.Genre),
	}

	linked := make(map[*models.Tag]struct{}, len(rec.Tags))
	for _, name := range rec.Tags {
		if strings.TrimSpace(name) == "" {
			continue
		}
		tag := b.tags.Resolve(name)
		if _, ok := linked[tag]; ok {
			continue
		}
		linked[tag] = struct{}{}
		game.Tags = append(game.Tags, tag)
	}

	if len(game.Tags) == 0 {
		return nil, "only blank tags"
	}

	return game, ""
}
