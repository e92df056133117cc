package postgres

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/haneul-dev/raidledger/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// parseUserUUID parses a user ID string to uuid.UUID with consistent error message.
// Use this instead of repeating uuid.Parse + error wrapping throughout the codebase.
func parseUserUUID(userID string) (uuid.UUID, error) {
	u, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id: %w", err)
	}
	return u, nil
}

// distributionLockKey derives the advisory-lock key that serializes
// resolve+commit sequences for one (party, item, week window).
func distributionLockKey(partyID, itemID int, weekStart time.Time) int64 {
	h := fnv.New64a()
	var buf [24]byte
	binary.BigEndian.PutUint64(buf[0:8], uint64(partyID))
	binary.BigEndian.PutUint64(buf[8:16], uint64(itemID))
	binary.BigEndian.PutUint64(buf[16:24], uint64(weekStart.Unix()))
	_, _ = h.Write(buf[:])
	return int64(h.Sum64())
}
