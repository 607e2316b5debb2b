// Package impl contains the application-specific business rules implementations.
package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

const (
	cartPayloadVersion = 1
	legacyCartVersion  = 0

	cartKeyPrefix     = "cart:"
	themeKeyPrefix    = "theme:"
	languageKeyPrefix = "language:"
)

// errUnreadableCart marks stored content that cannot become a cart.
var errUnreadableCart = errors.New("unreadable cart payload")

// cartPayload is the stored shape of a cart. Only lines are persisted.
type cartPayload struct {
	Version int                   `json:"version"`
	Items   []entity.CartLineItem `json:"items"`
}

// cartStore is the persistence adapter between session carts and the key-value store.
type cartStore struct {
	kv     repository.KeyValueStore
	prefix string
	logger *slog.Logger
}

func newCartStore(kv repository.KeyValueStore, prefix string, logger *slog.Logger) *cartStore {
	return &cartStore{kv: kv, prefix: prefix, logger: logger}
}

func (s *cartStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *cartStore) key(sessionID string) string {
	return s.prefix + cartKeyPrefix + sessionID
}

// Load returns the stored lines for a session. It never fails: a missing, unreadable
// or unreachable entry restores as an empty cart.
func (s *cartStore) Load(ctx context.Context, sessionID string) []entity.CartLineItem {
	raw, err := s.kv.Get(ctx, s.key(sessionID))
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			s.log(ctx).Warn("Failed to read saved cart, starting empty",
				slog.String("session_id", sessionID),
				slog.Any("error", err),
			)
		}

		return nil
	}

	lines, version, err := decodeCart(raw)
	if err != nil {
		s.log(ctx).Warn("Discarding saved cart",
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)

		return nil
	}

	if version == legacyCartVersion {
		s.log(ctx).Info("Migrated unversioned saved cart",
			slog.String("session_id", sessionID),
			slog.Int("lines", len(lines)),
		)
	}

	return lines
}

// Save writes the current lines under the session's cart key.
func (s *cartStore) Save(ctx context.Context, sessionID string, lines []entity.CartLineItem) error {
	if lines == nil {
		lines = []entity.CartLineItem{}
	}

	raw, err := json.Marshal(cartPayload{Version: cartPayloadVersion, Items: lines})
	if err != nil {
		return errors.Wrap(err, "failed to encode cart")
	}

	if err := s.kv.Set(ctx, s.key(sessionID), raw); err != nil {
		return errors.Wrap(err, "failed to save cart")
	}

	return nil
}

// decodeCart accepts the versioned payload and the legacy bare array of lines.
func decodeCart(raw []byte) ([]entity.CartLineItem, int, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, 0, errors.Wrap(errUnreadableCart, "empty payload")
	}

	var (
		lines   []entity.CartLineItem
		version int
	)

	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &lines); err != nil {
			return nil, 0, errors.Wrapf(errUnreadableCart, "legacy payload: %v", err)
		}
		version = legacyCartVersion

	case '{':
		var payload cartPayload
		if err := json.Unmarshal(trimmed, &payload); err != nil {
			return nil, 0, errors.Wrapf(errUnreadableCart, "payload: %v", err)
		}
		if payload.Version != cartPayloadVersion {
			return nil, 0, errors.Wrapf(errUnreadableCart, "unknown version %d", payload.Version)
		}
		lines, version = payload.Items, payload.Version

	default:
		return nil, 0, errors.Wrap(errUnreadableCart, "not a JSON array or object")
	}

	for i := range lines {
		if lines[i].Product.ID == "" || lines[i].Quantity < 1 {
			return nil, 0, errors.Wrapf(errUnreadableCart, "line %d breaks line invariants", i)
		}
	}

	return lines, version, nil
}
