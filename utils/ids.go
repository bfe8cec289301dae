package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns a short opaque identifier for new records. The nine
// hex characters carry ~36 bits of randomness; collisions are not checked
// against existing rows.
func GenerateID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return raw[:9]
}
