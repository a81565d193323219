package users

import (
	"context"
	"fmt"

	"vapor-store/core/logger"
	"vapor-store/core/report"
	"vapor-store/core/validation"
	"vapor-store/feature/catalog"
	"vapor-store/feature/catalog/models"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Service imports user batches.
type Service struct {
	store  catalog.Store
	logger *zap.Logger
}

// NewService creates a new user import service.
func NewService(store catalog.Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// ImportUsers decodes a JSON array of users with their cards and persists the
// accepted users in a single write. A user with no cards, or with any card that
// fails validation or names an unknown type, is rejected as a whole.
func (s *Service) ImportUsers(ctx context.Context, payload string) (string, error) {
	l := logger.WithBatch(s.logger, "users")

	var records []Record
	if err := json.Unmarshal([]byte(catalog.TrimBOM(payload)), &records); err != nil {
		return "", fmt.Errorf("%w: %w", catalog.ErrMalformedPayload, err)
	}

	var rb report.Builder
	users := make([]*models.User, 0, len(records))

	for i, rec := range records {
		user, reason := build(rec)
		if user == nil {
			l.Debug("User rejected", zap.Int("record", i), zap.String("reason", reason))
			rb.Invalid()
			continue
		}

		users = append(users, user)
		rb.Addf(report.UserImported, user.Username, len(user.Cards))
	}

	if err := s.store.AddUsers(ctx, users); err != nil {
		return "", fmt.Errorf("failed to save users: %w", err)
	}

	l.Info("Users imported",
		zap.Int("accepted", rb.Accepted()),
		zap.Int("rejected", rb.Rejected()),
	)

	return rb.String(), nil
}

func build(rec Record) (*models.User, string) {
	rules := rec.Rules()
	if !validation.Check(rules...) {
		return nil, "invalid " + validation.FirstFailure(rules...)
	}

	cards := make([]models.Card, 0, len(rec.Cards))
	for j, c := range rec.Cards {
		cardRules := c.Rules()
		if !validation.Check(cardRules...) {
			return nil, fmt.Sprintf("card %d: invalid %s", j, validation.FirstFailure(cardRules...))
		}

		cardType, ok := models.ParseCardType(c.Type)
		if !ok {
			return nil, fmt.Sprintf("card %d: unknown type", j)
		}

		cards = append(cards, models.Card{
			Number: c.Number,
			Cvc:    c.CVC,
			Type:   cardType,
		})
	}

	if len(cards) == 0 {
		return nil, "no cards"
	}

	return &models.User{
		Username: rec.Username,
		FullName: rec.FullName,
		Email:    rec.Email,
		Age:      rec.Age,
		Cards:    cards,
	}, ""
}
