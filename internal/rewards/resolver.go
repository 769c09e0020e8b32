package rewards

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ecorecycle/smartbin/pkg/validate"
)

// Resolver produces one candidate identifier for the rewards ledger from a
// raw user code. The ledger resolves accounts by UUID, NFC code or username;
// the client walks an ordered resolver list instead of hardcoding the chain.
type Resolver interface {
	Candidate(code string) (string, bool)
}

// UUIDResolver yields the bare UUID when the code carries one.
type UUIDResolver struct{}

func (UUIDResolver) Candidate(code string) (string, bool) {
	raw := strings.TrimPrefix(code, validate.UserCodePrefix)
	if _, err := uuid.Parse(raw); err != nil {
		return "", false
	}
	return raw, true
}

// CodeResolver yields the SB-prefixed NFC code form.
type CodeResolver struct{}

func (CodeResolver) Candidate(code string) (string, bool) {
	if code == "" {
		return "", false
	}
	if strings.HasPrefix(code, validate.UserCodePrefix) {
		return code, true
	}
	return validate.UserCodePrefix + code, true
}

// NameResolver yields the bare remainder for a username lookup.
type NameResolver struct{}

func (NameResolver) Candidate(code string) (string, bool) {
	name := strings.TrimPrefix(code, validate.UserCodePrefix)
	if name == "" {
		return "", false
	}
	return name, true
}

// DefaultResolvers returns the ledger's documented resolution order:
// UUID first, then NFC code, then username.
func DefaultResolvers() []Resolver {
	return []Resolver{UUIDResolver{}, CodeResolver{}, NameResolver{}}
}
