package list_drafts

import (
	"context"
	"errors"

	"github.com/murkotick/product-draft-service/internal/app/draft/contracts"
	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/app/draft/dto"
	"github.com/murkotick/product-draft-service/internal/app/draft/store"
)

type Handler struct {
	sessions contracts.SessionRepo
	mapper   *dto.Mapper
}

func NewHandler(sessions contracts.SessionRepo, mapper *dto.Mapper) *Handler {
	return &Handler{sessions: sessions, mapper: mapper}
}

// Execute returns one page of open drafts ordered by id. Sessions closed
// while the page is assembled are left out.
func (h *Handler) Execute(ctx context.Context, limit, offset int) ([]*dto.DraftSummaryDTO, error) {
	ids := h.sessions.IDs()
	if offset >= len(ids) {
		return []*dto.DraftSummaryDTO{}, nil
	}
	ids = ids[offset:]
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	out := make([]*dto.DraftSummaryDTO, 0, len(ids))
	for _, id := range ids {
		err := h.sessions.With(ctx, id, func(s *store.Store) error {
			out = append(out, h.mapper.Summary(s.Snapshot()))
			return nil
		})
		if errors.Is(err, domain.ErrDraftNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
