// Package id generates identifiers for transactions and pipeline runs.
package id

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/jstello/SMS-finance-sub000/internal/model"
)

// Stable returns a deterministic ID for a message. The same sender, body
// and timestamp always hash to the same ID, so re-running an extraction
// over an overlapping message window produces duplicate IDs instead of
// duplicate transactions.
func Stable(msg model.RawMessage) string {
	input := fmt.Sprintf("%d-%s-%s", msg.ReceivedAt.UnixMilli(), msg.Sender, msg.Body)
	sum := md5.Sum([]byte(input))
	return hex.EncodeToString(sum[:])
}

// NewRunID returns a fresh random ID for one pipeline run.
func NewRunID() string {
	return uuid.NewString()
}
