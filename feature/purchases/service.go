package purchases

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"vapor-store/core/logger"
	"vapor-store/core/report"
	"vapor-store/core/validation"
	"vapor-store/feature/catalog"
	"vapor-store/feature/catalog/models"

	"go.uber.org/zap"
)

// Service imports purchase batches.
type Service struct {
	store  catalog.Store
	logger *zap.Logger
}

// NewService creates a new purchase import service.
func NewService(store catalog.Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// ImportPurchases decodes a <Purchases> document and persists the accepted
// purchases in a single write.
//
// Field rule failures are reported per record as "Invalid Data". An unknown
// purchase type, an unparsable date, or a card or game missing from the store
// aborts the whole call with an error and nothing is written.
func (s *Service) ImportPurchases(ctx context.Context, payload string) (string, error) {
	l := logger.WithBatch(s.logger, "purchases")

	doc, err := decodeDocument(catalog.TrimBOM(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %w", catalog.ErrMalformedPayload, err)
	}

	var rb report.Builder
	purchases := make([]*models.Purchase, 0, len(doc.Purchases))

	for i, rec := range doc.Purchases {
		rules := rec.Rules()
		if !validation.Check(rules...) {
			l.Debug("Purchase rejected", zap.Int("record", i), zap.String("reason", "invalid "+validation.FirstFailure(rules...)))
			rb.Invalid()
			continue
		}

		purchase, err := s.build(ctx, rec)
		if err != nil {
			l.Error("Purchase import aborted", zap.Int("record", i), zap.Error(err))
			return "", fmt.Errorf("purchase %d: %w", i, err)
		}

		purchases = append(purchases, purchase)
		rb.Addf(report.PurchaseImported, purchase.Game.Name, purchase.Card.User.Username)
	}

	if err := s.store.AddPurchases(ctx, purchases); err != nil {
		return "", fmt.Errorf("failed to save purchases: %w", err)
	}

	l.Info("Purchases imported",
		zap.Int("accepted", rb.Accepted()),
		zap.Int("rejected", rb.Rejected()),
	)

	return rb.String(), nil
}

// decodeDocument decodes exactly one <Purchases> root. Only whitespace,
// comments and processing instructions may follow it.
func decodeDocument(payload string) (Document, error) {
	var doc Document
	dec := xml.NewDecoder(strings.NewReader(payload))
	if err := dec.Decode(&doc); err != nil {
		return Document{}, err
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return doc, nil
		}
		if err != nil {
			return Document{}, err
		}

		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return Document{}, errors.New("unexpected text after root element")
			}
		default:
			return Document{}, fmt.Errorf("unexpected %T after root element", tok)
		}
	}
}

// build parses the record and resolves its card and game against committed data.
func (s *Service) build(ctx context.Context, rec Record) (*models.Purchase, error) {
	purchaseType, err := models.ParsePurchaseType(rec.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalog.ErrUnknownPurchaseType, err)
	}

	date, err := time.Parse(purchaseDateLayout, rec.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", catalog.ErrMalformedDate, rec.Date)
	}

	card, err := s.store.FindCardByNumber(ctx, rec.Card)
	if err != nil {
		return nil, err
	}
	if card == nil || card.User == nil {
		return nil, fmt.Errorf("%w: card %q not found", catalog.ErrDanglingReference, rec.Card)
	}

	game, err := s.store.FindGameByName(ctx, rec.Title)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, fmt.Errorf("%w: game %q not found", catalog.ErrDanglingReference, rec.Title)
	}

	return &models.Purchase{
		Type:       purchaseType,
		ProductKey: rec.Key,
		Date:       date,
		Card:       card,
		Game:       game,
	}, nil
}
