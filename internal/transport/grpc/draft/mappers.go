package draft

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/start_draft"
)

func encodeStruct(v interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	m := map[string]interface{}{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	return structpb.NewStruct(m)
}

func decodeStruct(s *structpb.Struct, v interface{}) error {
	if s == nil {
		s = &structpb.Struct{}
	}
	raw, err := json.Marshal(s.AsMap())
	if err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	return nil
}

func parseMoney(field string, v *string) (*domain.Money, error) {
	if v == nil {
		return nil, nil
	}
	m, err := domain.NewMoneyFromDecimal(*v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, domain.ErrInvalidMoney)
	}
	return m, nil
}

func mapLanguage(l LanguageMsg) domain.Language {
	return domain.Language{ID: l.ID, Code: l.Code, Name: l.Name}
}

func mapCurrency(c CurrencyMsg) domain.Currency {
	return domain.Currency{ID: c.ID, Code: c.Code, Symbol: c.Symbol, ExchangeRate: c.ExchangeRate}
}

func mapMedia(m MediaMsg) domain.Media {
	return domain.Media{Type: m.Type, URL: m.URL, Alt: m.Alt, Title: m.Title, SortOrder: m.SortOrder}
}

func mapAttributes(in []AttributeMsg) []domain.Attribute {
	out := make([]domain.Attribute, 0, len(in))
	for _, a := range in {
		out = append(out, domain.Attribute{ID: a.ID, Type: a.Type, Value: a.Value})
	}
	return out
}

func mapStartDraftRequest(req StartDraftRequest) start_draft.Request {
	var out start_draft.Request
	if req.Language != nil {
		l := mapLanguage(*req.Language)
		out.Language = &l
	}
	if req.Currency != nil {
		c := mapCurrency(*req.Currency)
		out.Currency = &c
	}
	return out
}

func mapBasicInfo(req SetBasicInfoRequest) (domain.BasicInfo, error) {
	out := domain.BasicInfo{SKU: req.SKU, Barcode: req.Barcode}
	if req.Status != nil {
		st, err := domain.ParseProductStatus(*req.Status)
		if err != nil {
			return domain.BasicInfo{}, fmt.Errorf("status %q: %w", *req.Status, err)
		}
		out.Status = &st
	}
	return out, nil
}

func mapTranslationFields(req UpsertTranslationRequest) domain.TranslationFields {
	return domain.TranslationFields{
		Name:            req.Name,
		Description:     req.Description,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
	}
}

func mapPriceFields(req UpsertPriceRequest) (domain.PriceFields, error) {
	out := domain.PriceFields{OriginMarket: req.OriginMarket}
	var err error
	if out.Price, err = parseMoney("price", req.Price); err != nil {
		return domain.PriceFields{}, err
	}
	if out.DiscountPrice, err = parseMoney("discountPrice", req.DiscountPrice); err != nil {
		return domain.PriceFields{}, err
	}
	if out.ComparePrice, err = parseMoney("comparePrice", req.ComparePrice); err != nil {
		return domain.PriceFields{}, err
	}
	if out.Cost, err = parseMoney("cost", req.Cost); err != nil {
		return domain.PriceFields{}, err
	}
	return out, nil
}

func mapInventoryFields(req SetInventoryRequest) domain.InventoryFields {
	return domain.InventoryFields{
		Quantity:  req.Quantity,
		Weight:    req.Weight,
		IsActive:  req.IsActive,
		ChargeTax: req.ChargeTax,
		InStock:   req.InStock,
	}
}

func mapVariants(in []VariantMsg) ([]domain.Variant, error) {
	out := make([]domain.Variant, 0, len(in))
	for i, v := range in {
		prefix := fmt.Sprintf("variations.%d.", i)
		variant := domain.Variant{
			ID:         v.ID,
			Attributes: v.Attributes,
			SKU:        v.SKU,
			Quantity:   v.Quantity,
			Weight:     v.Weight,
		}
		var err error
		if variant.Price, err = parseMoney(prefix+"price", v.Price); err != nil {
			return nil, err
		}
		if variant.DiscountPrice, err = parseMoney(prefix+"discountPrice", v.DiscountPrice); err != nil {
			return nil, err
		}
		if variant.ComparePrice, err = parseMoney(prefix+"comparePrice", v.ComparePrice); err != nil {
			return nil, err
		}
		if variant.Cost, err = parseMoney(prefix+"cost", v.Cost); err != nil {
			return nil, err
		}
		if variant.Attributes == nil {
			variant.Attributes = map[string]string{}
		}
		out = append(out, variant)
	}
	return out, nil
}

func mapVariantFields(req UpdateVariantRequest) (domain.VariantFields, error) {
	out := domain.VariantFields{Quantity: req.Quantity, Weight: req.Weight}
	var err error
	if out.Price, err = parseMoney("price", req.Price); err != nil {
		return domain.VariantFields{}, err
	}
	if out.DiscountPrice, err = parseMoney("discountPrice", req.DiscountPrice); err != nil {
		return domain.VariantFields{}, err
	}
	if out.ComparePrice, err = parseMoney("comparePrice", req.ComparePrice); err != nil {
		return domain.VariantFields{}, err
	}
	if out.Cost, err = parseMoney("cost", req.Cost); err != nil {
		return domain.VariantFields{}, err
	}
	return out, nil
}

func mapOrganizationFields(req SetOrganizationRequest) domain.OrganizationFields {
	return domain.OrganizationFields{
		CategoryIDs:   req.CategoryIDs,
		VendorIDs:     req.VendorIDs,
		StoreIDs:      req.StoreIDs,
		CollectionIDs: req.CollectionIDs,
		BrandID:       req.BrandID,
		Tags:          req.Tags,
	}
}
