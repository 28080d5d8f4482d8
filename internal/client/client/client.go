package client

import (
	"context"

	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
)

// Client is the remote ledger. HTTPClient is the production implementation;
// services tests substitute a fake.
type Client interface {
	// Diff sends local changes and returns everything changed on the server
	// since req.ServerTimestamp.
	Diff(ctx context.Context, req *models.DiffRequest) (*models.DiffResponse, error)

	// Suggest asks for the payee, merchant and tags matching a draft
	// transaction.
	Suggest(ctx context.Context, req *models.SuggestRequest) (*models.SuggestResponse, error)
}
