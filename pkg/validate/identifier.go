package validate

import (
	"strings"

	"github.com/google/uuid"
)

// UserCodePrefix marks NFC codes handed out by the rewards ledger.
const UserCodePrefix = "SB-"

// IsBinID reports whether s is a well-formed bin identifier (UUID).
func IsBinID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// IsUserCode reports whether s looks like a user code: either a bare UUID
// or an SB-prefixed NFC code with a non-empty remainder.
func IsUserCode(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, UserCodePrefix) {
		return len(s) > len(UserCodePrefix)
	}
	return true
}
