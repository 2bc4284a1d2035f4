package contracts

import (
	"context"

	commitplan "github.com/murkotick/product-draft-service/internal/pkg/committer"
)

// Committer applies a collection of catalog mutations atomically. This
// keeps usecases independent of the Spanner driver.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
