package draft

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/app/draft/queries/get_draft"
	"github.com/murkotick/product-draft-service/internal/app/draft/queries/list_drafts"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/close_draft"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/discard_draft"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/edit_draft"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/generate_variants"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/start_draft"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/submit_draft"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/validate_draft"
)

// Commands groups write interactors.
// Keep transport layer depending on application layer only.
type Commands struct {
	Start    *start_draft.Interactor
	Edit     *edit_draft.Interactor
	Generate *generate_variants.Interactor
	Validate *validate_draft.Interactor
	Submit   *submit_draft.Interactor
	Discard  *discard_draft.Interactor
	Close    *close_draft.Interactor
}

// Queries groups read handlers.
type Queries struct {
	Get  *get_draft.Handler
	List *list_drafts.Handler
}

// Handler is a thin gRPC transport adapter.
// It decodes Struct messages, validates input and delegates to CQRS handlers.
type Handler struct {
	commands Commands
	queries  Queries
}

var _ DraftServiceServer = (*Handler)(nil)

func NewHandler(cmd Commands, qry Queries) *Handler {
	return &Handler{commands: cmd, queries: qry}
}

func (h *Handler) StartDraft(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req StartDraftRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	id, err := h.commands.Start.Execute(ctx, mapStartDraftRequest(req))
	if err != nil {
		return nil, mapError(err)
	}
	draft, err := h.queries.Get.Execute(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return reply(StartDraftReply{DraftID: id, Draft: draft})
}

func (h *Handler) GetDraft(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req DraftRef
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return h.draftReply(ctx, req.DraftID, nil)
}

func (h *Handler) ListDrafts(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ListDraftsRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	limit := req.PageSize
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	offset, err := decodePageToken(req.PageToken)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid pageToken")
	}

	items, err := h.queries.List.Execute(ctx, limit, offset)
	if err != nil {
		return nil, mapError(err)
	}

	next := ""
	if len(items) == limit {
		next = encodePageToken(offset + len(items))
	}
	return reply(ListDraftsReply{Drafts: items, NextPageToken: next})
}

func (h *Handler) SetBasicInfo(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req SetBasicInfoRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	info, err := mapBasicInfo(req)
	if err != nil {
		return nil, mapError(err)
	}
	if err := h.commands.Edit.SetBasicInfo(ctx, req.DraftID, info); err != nil {
		return nil, mapError(err)
	}
	return h.draftReply(ctx, req.DraftID, nil)
}

func (h *Handler) UpsertTranslation(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req UpsertTranslationRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := validateUpsertTranslation(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.commands.Edit.UpsertTranslation(ctx, req.DraftID, req.LanguageID, mapTranslationFields(req)); err != nil {
		return nil, mapError(err)
	}
	return h.draftReply(ctx, req.DraftID, nil)
}

func (h *Handler) UpsertPrice(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req UpsertPriceRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := validateUpsertPrice(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	fields, err := mapPriceFields(req)
	if err != nil {
		return nil, mapError(err)
	}
	if err := h.commands.Edit.UpsertPrice(ctx, req.DraftID, req.CurrencyID, fields); err != nil {
		return nil, mapError(err)
	}
	return h.draftReply(ctx, req.DraftID, nil)
}

func (h *Handler) SetMainImage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req MediaRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := validateMedia(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.commands.Edit.SetMainImage(ctx, req.DraftID, mapMedia(req.Media)); err != nil {
		return nil, mapError(err)
	}
	return h.draftReply(ctx, req.DraftID, nil)
}

func (h *Handler) ClearMainImage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req DraftRef
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	changed, err := h.commands.Edit.ClearMainImage(ctx, req.DraftID)
	if err != nil {
		return nil, mapError(err)
	}
	return h.draftReply(ctx, req.DraftID, &changed)
}

func (h *Handler) AppendGalleryImage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req MediaRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := validateMedia(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.commands.Edit.AppendGalleryImage(ctx, req.DraftID, mapMedia(req.Media)); err != nil {
		return nil, mapError(err)
	}
	return h.draftReply(ctx, req.DraftID, nil)
}

func (h *Handler) RemoveGalleryImage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req RemoveGalleryImageRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	removed, err := h.commands.Edit.RemoveGalleryImageAt(ctx, req.DraftID, req.Index)
	if err != nil {
		return nil, mapError(err)
	}
	return h.draftReply(ctx, req.DraftID, &removed)
}

func (h *Handler) SetInventory(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req SetInventoryRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.commands.Edit.SetInventory(ctx, req.DraftID, mapInventoryFields(req)); err != nil {
		return nil, mapError(err)
	}
	return h.draftReply(ctx, req.DraftID, nil)
}

func (h *Handler) SetAttributes(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req SetAttributesRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.commands.Edit.SetAttributes(ctx, req.DraftID, mapAttributes(req.Attributes)); err != nil {
		return nil, mapError(err)
	}
	return h.draftReply(ctx, req.DraftID, nil)
}

func (h *Handler) SetVariations(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req SetVariationsRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	variants, err := mapVariants(req.Variations)
	if err != nil {
		return nil, mapError(err)
	}
	if err := h.commands.Edit.SetVariations(ctx, req.DraftID, variants); err != nil {
		return nil, mapError(err)
	}
	return h.draftReply(ctx, req.DraftID, nil)
}

func (h *Handler) GenerateVariants(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req GenerateVariantsRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	appReq := generate_variants.Request{DraftID: req.DraftID}
	if req.Attributes != nil {
		appReq.Attributes = mapAttributes(*req.Attributes)
	}
	count, err := h.commands.Generate.Execute(ctx, appReq)
	if err != nil {
		return nil, mapError(err)
	}

	draft, err := h.queries.Get.Execute(ctx, req.DraftID)
	if err != nil {
		return nil, mapError(err)
	}
	return reply(GenerateVariantsReply{Count: count, Draft: draft})
}

func (h *Handler) UpdateVariant(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req UpdateVariantRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := validateUpdateVariant(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	fields, err := mapVariantFields(req)
	if err != nil {
		return nil, mapError(err)
	}
	found, err := h.commands.Edit.UpdateVariant(ctx, req.DraftID, req.VariantID, fields)
	if err != nil {
		return nil, mapError(err)
	}
	if !found {
		return nil, status.Errorf(codes.NotFound, "variant %s not found", req.VariantID)
	}
	return h.draftReply(ctx, req.DraftID, &found)
}

func (h *Handler) SetOrganization(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req SetOrganizationRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.commands.Edit.SetOrganization(ctx, req.DraftID, mapOrganizationFields(req)); err != nil {
		return nil, mapError(err)
	}
	return h.draftReply(ctx, req.DraftID, nil)
}

func (h *Handler) AddTag(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req TagRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := validateTag(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	added, err := h.commands.Edit.AddTag(ctx, req.DraftID, req.Tag)
	if err != nil {
		return nil, mapError(err)
	}
	return h.draftReply(ctx, req.DraftID, &added)
}

func (h *Handler) RemoveTag(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req TagRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := validateTag(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	removed, err := h.commands.Edit.RemoveTag(ctx, req.DraftID, req.Tag)
	if err != nil {
		return nil, mapError(err)
	}
	return h.draftReply(ctx, req.DraftID, &removed)
}

func (h *Handler) SetActiveLanguage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req SetActiveLanguageRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := validateSetActiveLanguage(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.commands.Edit.SetActiveLanguage(ctx, req.DraftID, mapLanguage(req.Language)); err != nil {
		return nil, mapError(err)
	}
	return h.draftReply(ctx, req.DraftID, nil)
}

func (h *Handler) SetActiveCurrency(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req SetActiveCurrencyRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := validateSetActiveCurrency(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.commands.Edit.SetActiveCurrency(ctx, req.DraftID, mapCurrency(req.Currency)); err != nil {
		return nil, mapError(err)
	}
	return h.draftReply(ctx, req.DraftID, nil)
}

func (h *Handler) SetErrors(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req SetErrorsRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.commands.Edit.SetErrors(ctx, req.DraftID, req.Errors); err != nil {
		return nil, mapError(err)
	}
	return h.draftReply(ctx, req.DraftID, nil)
}

func (h *Handler) ValidateDraft(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req DraftRef
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	errs, err := h.commands.Validate.Execute(ctx, validate_draft.Request{DraftID: req.DraftID})
	if err != nil {
		return nil, mapError(err)
	}
	draft, err := h.queries.Get.Execute(ctx, req.DraftID)
	if err != nil {
		return nil, mapError(err)
	}
	return reply(ValidateDraftReply{Valid: len(errs) == 0, Errors: errs, Draft: draft})
}

// SubmitDraft answers a rejected draft with its validation errors rather
// than a gRPC error, so the UI can show them next to the fields.
func (h *Handler) SubmitDraft(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req SubmitDraftRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	resp, err := h.commands.Submit.Execute(ctx, submit_draft.Request{DraftID: req.DraftID, Publish: req.Publish})
	if err != nil && !errors.Is(err, domain.ErrDraftInvalid) {
		return nil, mapError(err)
	}

	draft, qerr := h.queries.Get.Execute(ctx, req.DraftID)
	if qerr != nil {
		return nil, mapError(qerr)
	}
	out := SubmitDraftReply{
		Submitted: err == nil,
		ProductID: resp.ProductID,
		Errors:    resp.Errors,
		Draft:     draft,
	}
	return reply(out)
}

func (h *Handler) DiscardDraft(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req DraftRef
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.commands.Discard.Execute(ctx, discard_draft.Request{DraftID: req.DraftID}); err != nil {
		return nil, mapError(err)
	}
	return h.draftReply(ctx, req.DraftID, nil)
}

func (h *Handler) CloseDraft(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req DraftRef
	if err := decodeStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.commands.Close.Execute(ctx, close_draft.Request{DraftID: req.DraftID}); err != nil {
		return nil, mapError(err)
	}
	return reply(CloseDraftReply{Closed: true})
}

func (h *Handler) draftReply(ctx context.Context, draftID string, changed *bool) (*structpb.Struct, error) {
	draft, err := h.queries.Get.Execute(ctx, draftID)
	if err != nil {
		return nil, mapError(err)
	}
	return reply(DraftReply{Draft: draft, Changed: changed})
}

func reply(v interface{}) (*structpb.Struct, error) {
	out, err := encodeStruct(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}
