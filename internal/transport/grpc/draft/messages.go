package draft

import "github.com/murkotick/product-draft-service/internal/app/draft/dto"

// Money fields travel as decimal strings such as "19.99".

type LanguageMsg struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type CurrencyMsg struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Symbol       string  `json:"symbol"`
	ExchangeRate float64 `json:"exchangeRate"`
}

type MediaMsg struct {
	Type      string `json:"type"`
	URL       string `json:"url"`
	Alt       string `json:"alt,omitempty"`
	Title     string `json:"title,omitempty"`
	SortOrder int    `json:"sortOrder"`
}

type AttributeMsg struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

type VariantMsg struct {
	ID            string            `json:"id"`
	Attributes    map[string]string `json:"attributes"`
	SKU           string            `json:"sku"`
	Price         *string           `json:"price,omitempty"`
	DiscountPrice *string           `json:"discountPrice,omitempty"`
	ComparePrice  *string           `json:"comparePrice,omitempty"`
	Cost          *string           `json:"cost,omitempty"`
	Quantity      int               `json:"quantity"`
	Weight        *float64          `json:"weight,omitempty"`
}

// Requests

type StartDraftRequest struct {
	Language *LanguageMsg `json:"language,omitempty"`
	Currency *CurrencyMsg `json:"currency,omitempty"`
}

type DraftRef struct {
	DraftID string `json:"draftId"`
}

// ListDraftsRequest pages through the open drafts. PageToken is the
// NextPageToken of the previous reply.
type ListDraftsRequest struct {
	PageSize  int    `json:"pageSize,omitempty"`
	PageToken string `json:"pageToken,omitempty"`
}

type SetBasicInfoRequest struct {
	DraftID string  `json:"draftId"`
	SKU     *string `json:"sku,omitempty"`
	Barcode *string `json:"barcode,omitempty"`
	Status  *string `json:"status,omitempty"`
}

type UpsertTranslationRequest struct {
	DraftID         string  `json:"draftId"`
	LanguageID      string  `json:"languageId"`
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	MetaTitle       *string `json:"metaTitle,omitempty"`
	MetaDescription *string `json:"metaDescription,omitempty"`
	Keywords        *string `json:"keywords,omitempty"`
}

type UpsertPriceRequest struct {
	DraftID       string  `json:"draftId"`
	CurrencyID    string  `json:"currencyId"`
	OriginMarket  *string `json:"originMarket,omitempty"`
	Price         *string `json:"price,omitempty"`
	DiscountPrice *string `json:"discountPrice,omitempty"`
	ComparePrice  *string `json:"comparePrice,omitempty"`
	Cost          *string `json:"cost,omitempty"`
}

type MediaRequest struct {
	DraftID string   `json:"draftId"`
	Media   MediaMsg `json:"media"`
}

type RemoveGalleryImageRequest struct {
	DraftID string `json:"draftId"`
	Index   int    `json:"index"`
}

type SetInventoryRequest struct {
	DraftID   string   `json:"draftId"`
	Quantity  *int     `json:"quantity,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	IsActive  *bool    `json:"isActive,omitempty"`
	ChargeTax *bool    `json:"chargeTax,omitempty"`
	InStock   *bool    `json:"inStock,omitempty"`
}

type SetAttributesRequest struct {
	DraftID    string         `json:"draftId"`
	Attributes []AttributeMsg `json:"attributes"`
}

type SetVariationsRequest struct {
	DraftID    string       `json:"draftId"`
	Variations []VariantMsg `json:"variations"`
}

// GenerateVariantsRequest replaces the draft's attributes first when
// Attributes is present.
type GenerateVariantsRequest struct {
	DraftID    string          `json:"draftId"`
	Attributes *[]AttributeMsg `json:"attributes,omitempty"`
}

type UpdateVariantRequest struct {
	DraftID       string   `json:"draftId"`
	VariantID     string   `json:"variantId"`
	Price         *string  `json:"price,omitempty"`
	DiscountPrice *string  `json:"discountPrice,omitempty"`
	ComparePrice  *string  `json:"comparePrice,omitempty"`
	Cost          *string  `json:"cost,omitempty"`
	Quantity      *int     `json:"quantity,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
}

type SetOrganizationRequest struct {
	DraftID       string    `json:"draftId"`
	CategoryIDs   *[]string `json:"categoryIds,omitempty"`
	VendorIDs     *[]string `json:"vendorIds,omitempty"`
	StoreIDs      *[]string `json:"storeIds,omitempty"`
	CollectionIDs *[]string `json:"collectionIds,omitempty"`
	BrandID       *string   `json:"brandId,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
}

type TagRequest struct {
	DraftID string `json:"draftId"`
	Tag     string `json:"tag"`
}

type SetActiveLanguageRequest struct {
	DraftID  string      `json:"draftId"`
	Language LanguageMsg `json:"language"`
}

type SetActiveCurrencyRequest struct {
	DraftID  string      `json:"draftId"`
	Currency CurrencyMsg `json:"currency"`
}

type SetErrorsRequest struct {
	DraftID string            `json:"draftId"`
	Errors  map[string]string `json:"errors"`
}

type SubmitDraftRequest struct {
	DraftID string `json:"draftId"`
	Publish bool   `json:"publish"`
}

// Replies

// DraftReply is returned by every edit. Changed is set by the operations
// that may turn out to be no-ops.
type DraftReply struct {
	Draft   *dto.DraftDTO `json:"draft"`
	Changed *bool         `json:"changed,omitempty"`
}

type StartDraftReply struct {
	DraftID string        `json:"draftId"`
	Draft   *dto.DraftDTO `json:"draft"`
}

type ListDraftsReply struct {
	Drafts        []*dto.DraftSummaryDTO `json:"drafts"`
	NextPageToken string                 `json:"nextPageToken,omitempty"`
}

type GenerateVariantsReply struct {
	Count int           `json:"count"`
	Draft *dto.DraftDTO `json:"draft"`
}

type ValidateDraftReply struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
	Draft  *dto.DraftDTO     `json:"draft"`
}

// SubmitDraftReply reports either the new product id or the validation
// errors that kept the draft from being submitted.
type SubmitDraftReply struct {
	Submitted bool              `json:"submitted"`
	ProductID string            `json:"productId,omitempty"`
	Errors    map[string]string `json:"errors"`
	Draft     *dto.DraftDTO     `json:"draft"`
}

type CloseDraftReply struct {
	Closed bool `json:"closed"`
}
