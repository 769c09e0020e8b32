// Package registry is the client for the bin-registry service that tracks
// physical bin capacity.
package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/ecorecycle/smartbin/pkg/clients"
)

// ErrBinNotFound is terminal: the registry does not know the bin.
var ErrBinNotFound = errors.New("bin not found in registry")

type addTrashRequest struct {
	BinID  string  `json:"bin_id"`
	Liters float64 `json:"liters"`
}

type Client struct {
	url    string
	client clients.HTTPClientI
}

func NewClient(url string, client clients.HTTPClientI) *Client {
	return &Client{
		url:    url,
		client: client,
	}
}

// AddTrash reports a deposit volume against the bin's capacity.
func (c *Client) AddTrash(ctx context.Context, binID uuid.UUID, liters float64) error {
	url := fmt.Sprintf("%s/api/bins/%s/add-trash", c.url, binID)

	status, body, err := c.client.PostJSON(ctx, url, addTrashRequest{
		BinID:  binID.String(),
		Liters: liters,
	})
	if err != nil {
		return fmt.Errorf("capacity call failed for bin %s: %w", binID, err)
	}

	switch {
	case status >= http.StatusOK && status < http.StatusMultipleChoices:
		return nil
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrBinNotFound, binID)
	default:
		return &clients.StatusError{Code: status, Body: string(body)}
	}
}
