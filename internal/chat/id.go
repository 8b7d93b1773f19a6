package chat

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// NewMessageID returns a random UUID, or a time plus random composite when
// the system entropy source is unavailable.
func NewMessageID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fallbackID(time.Now())
	}
	return id.String()
}

func fallbackID(now time.Time) string {
	return fmt.Sprintf("m_%d_%x", now.UnixMilli(), rand.Uint64())
}
