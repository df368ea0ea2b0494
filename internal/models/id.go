package models

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewEntityID returns an ID of the form "<prefix>-<unix millis>-<9 base36 chars>".
// The format is part of the external contract: other systems parse the prefix
// to classify records.
func NewEntityID(prefix string) string {
	buf := make([]byte, 9)
	for i := range buf {
		buf[i] = base36[rand.IntN(len(base36))] //nolint:gosec // uniqueness suffix, not a secret.
	}

	return prefix + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + string(buf)
}
