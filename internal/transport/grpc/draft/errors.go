package draft

import (
	"context"
	"errors"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	commitplan "github.com/murkotick/product-draft-service/internal/pkg/committer"
)

// mapError translates domain sentinel errors into proper gRPC status codes.
// Unknown errors become codes.Internal.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	// Not found
	if errors.Is(err, domain.ErrDraftNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}

	// Invalid argument (malformed input)
	switch {
	case errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidMoney),
		errors.Is(err, domain.ErrEmptyLanguageID),
		errors.Is(err, domain.ErrEmptyCurrencyID),
		errors.Is(err, domain.ErrTooManyVariants):
		return status.Error(codes.InvalidArgument, err.Error())
	}

	// Failed precondition (session state)
	switch {
	case errors.Is(err, domain.ErrSubmissionInProgress),
		errors.Is(err, domain.ErrDraftInvalid):
		return status.Error(codes.FailedPrecondition, err.Error())
	}

	// Catalog storage
	if errors.Is(err, commitplan.ErrNoClient) {
		return status.Error(codes.Unavailable, err.Error())
	}
	if spanner.ErrCode(err) == codes.AlreadyExists {
		return status.Error(codes.AlreadyExists, err.Error())
	}

	return status.Error(codes.Internal, err.Error())
}
