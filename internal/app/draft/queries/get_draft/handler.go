package get_draft

import (
	"context"

	"github.com/murkotick/product-draft-service/internal/app/draft/contracts"
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

func (h *Handler) Execute(ctx context.Context, draftID string) (*dto.DraftDTO, error) {
	var out *dto.DraftDTO
	err := h.sessions.With(ctx, draftID, func(s *store.Store) error {
		out = h.mapper.Draft(s.Snapshot())
		return nil
	})
	return out, err
}
