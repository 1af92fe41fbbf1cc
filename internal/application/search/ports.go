package search

import (
	"context"

	"github.com/bexiiiii/euroline-sub001/internal/domain/catalog"
)

// SearchPort is the remote catalog search collaborator.
type SearchPort interface {
	Search(ctx context.Context, query string, page, pageSize int) (catalog.ResultSet, error)
}
