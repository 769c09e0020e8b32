package rewards

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/ecorecycle/smartbin/pkg/clients"
)

// ErrUserNotFound is terminal: every resolution strategy was rejected by the
// ledger, retrying will not help.
var ErrUserNotFound = errors.New("user not found in rewards ledger")

type addPointsRequest struct {
	UserID      string `json:"user_id"`
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}

type Client struct {
	url       string
	client    clients.HTTPClientI
	resolvers []Resolver
}

func NewClient(url string, client clients.HTTPClientI, resolvers []Resolver) *Client {
	if len(resolvers) == 0 {
		resolvers = DefaultResolvers()
	}
	return &Client{
		url:       url,
		client:    client,
		resolvers: resolvers,
	}
}

// AddPoints credits the user behind code. Candidates from the resolver chain
// are tried in order; a 404 moves on to the next candidate, any other failure
// stops the chain. Retries with the same logical request are safe at the
// ledger's boundary.
func (c *Client) AddPoints(ctx context.Context, code string, amount int, description string) error {
	url := c.url + "/api/auth/points/add/"

	seen := make(map[string]struct{})
	for _, resolver := range c.resolvers {
		candidate, ok := resolver.Candidate(code)
		if !ok {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}

		status, body, err := c.client.PostJSON(ctx, url, addPointsRequest{
			UserID:      candidate,
			Amount:      amount,
			Description: description,
		})
		if err != nil {
			return fmt.Errorf("rewards call failed for %s: %w", candidate, err)
		}

		switch {
		case status >= http.StatusOK && status < http.StatusMultipleChoices:
			zap.L().Info("points awarded",
				zap.String("user_identifier", candidate), zap.Int("amount", amount))
			return nil
		case status == http.StatusNotFound:
			zap.L().Debug("rewards ledger does not know identifier, trying next",
				zap.String("user_identifier", candidate))
			continue
		default:
			return &clients.StatusError{Code: status, Body: string(body)}
		}
	}

	return fmt.Errorf("%w: %s", ErrUserNotFound, code)
}
