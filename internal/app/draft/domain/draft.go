package domain

import (
	"strings"
	"time"
)

// Draft is the aggregate root of an authoring session. It holds one Product
// being authored plus the session bookkeeping, and applies every mutation
// the admin UI can request. All operations are total: they never fail on
// well-typed input, missing keys simply produce absent lookups.
type Draft struct {
	id       string
	product  Product
	session  Session
	defaults Session
	changes  *ChangeTracker
	events   []DomainEvent
}

// NewDraft creates an empty draft edited in the given default context.
// Reset returns the draft to exactly this state.
func NewDraft(id string, defaults Session, now time.Time) *Draft {
	if defaults.Errors == nil {
		defaults.Errors = map[string]string{}
	}
	d := &Draft{
		id:       id,
		product:  NewProduct(),
		session:  defaults.clone(),
		defaults: defaults.clone(),
		changes:  NewChangeTracker(),
		events:   make([]DomainEvent, 0),
	}

	d.events = append(d.events, &DraftStartedEvent{
		DraftID:   id,
		Language:  defaults.ActiveLanguage.Code,
		Currency:  defaults.ActiveCurrency.Code,
		StartedAt: now,
	})

	return d
}

// Getters

func (d *Draft) ID() string {
	return d.id
}

// Product returns a copy of the business record.
func (d *Draft) Product() Product {
	return d.product.Clone()
}

// Session returns a copy of the session bookkeeping.
func (d *Draft) Session() Session {
	return d.session.clone()
}

func (d *Draft) IsDirty() bool {
	return d.changes.HasChanges()
}

func (d *Draft) IsSubmitting() bool {
	return d.session.Submitting
}

func (d *Draft) Changes() *ChangeTracker {
	return d.changes
}

func (d *Draft) DomainEvents() []DomainEvent {
	return d.events
}

// ClearEvents clears the accumulated domain events.
// Should be called after events have been handled.
func (d *Draft) ClearEvents() {
	d.events = make([]DomainEvent, 0)
}

// CurrentTranslation returns the translation for the active language code,
// or nil when the product has none yet.
func (d *Draft) CurrentTranslation() *Translation {
	t, ok := d.product.Translation(d.session.ActiveLanguage.Code)
	if !ok {
		return nil
	}
	return &t
}

// CurrentPrice returns the price for the active currency, or nil.
func (d *Draft) CurrentPrice() *Price {
	p, ok := d.product.Price(d.session.ActiveCurrency.ID)
	if !ok {
		return nil
	}
	return &p
}

// Snapshot composes the business record and the session into a read-only view.
func (d *Draft) Snapshot() Snapshot {
	return Snapshot{
		DraftID:            d.id,
		Product:            d.product.Clone(),
		Session:            d.session.clone(),
		Dirty:              d.IsDirty(),
		CurrentTranslation: d.CurrentTranslation(),
		CurrentPrice:       d.CurrentPrice(),
	}
}

// VariantTemplate returns the base values copied into generated variants:
// the price in the active currency plus the product's quantity and weight.
func (d *Draft) VariantTemplate() VariantTemplate {
	tpl := VariantTemplate{Quantity: d.product.Quantity}
	if d.product.Weight != nil {
		tpl.Weight = float64Ptr(*d.product.Weight)
	}
	if p := d.CurrentPrice(); p != nil {
		tpl.Price = p.Price
		tpl.DiscountPrice = p.DiscountPrice
		tpl.ComparePrice = p.ComparePrice
		tpl.Cost = p.Cost
	}
	return tpl
}

// Business Methods

// SetBasicInfo merges the provided identifying fields. An empty barcode clears it.
func (d *Draft) SetBasicInfo(info BasicInfo, now time.Time) {
	if info.SKU != nil {
		d.product.SKU = *info.SKU
	}
	if info.Barcode != nil {
		if *info.Barcode == "" {
			d.product.Barcode = nil
		} else {
			d.product.Barcode = stringPtr(*info.Barcode)
		}
	}
	if info.Status != nil {
		d.product.Status = *info.Status
	}
	d.markDirty(SectionBasicInfo, now)
}

// UpsertTranslation merges fields into the translation for languageID, or
// appends a new translation when the language has none.
func (d *Draft) UpsertTranslation(languageID string, fields TranslationFields, now time.Time) {
	if i := d.product.translationIndex(languageID); i >= 0 {
		d.product.Translations[i].merge(fields)
	} else {
		t := Translation{LanguageID: languageID}
		t.merge(fields)
		d.product.Translations = append(d.product.Translations, t)
	}
	d.markDirty(SectionTranslations, now)
}

// UpsertPrice merges fields into the price for currencyID, or appends a new
// price. Prices are keyed by currency alone; the origin market is a field.
func (d *Draft) UpsertPrice(currencyID string, fields PriceFields, now time.Time) {
	if i := d.product.priceIndex(currencyID); i >= 0 {
		d.product.Prices[i].merge(fields)
	} else {
		p := Price{CurrencyID: currencyID}
		p.merge(fields)
		d.product.Prices = append(d.product.Prices, p)
	}
	d.markDirty(SectionPrices, now)
}

// SetMainImage replaces the main image.
func (d *Draft) SetMainImage(media Media, now time.Time) {
	d.product.MainImage = &media
	d.markDirty(SectionMedia, now)
}

// ClearMainImage removes the main image and reports whether there was one.
func (d *Draft) ClearMainImage(now time.Time) bool {
	if d.product.MainImage == nil {
		return false
	}
	d.product.MainImage = nil
	d.markDirty(SectionMedia, now)
	return true
}

// AppendGalleryImage adds media at the end of the gallery.
func (d *Draft) AppendGalleryImage(media Media, now time.Time) {
	d.product.GalleryImages = append(d.product.GalleryImages, media)
	d.markDirty(SectionMedia, now)
}

// RemoveGalleryImageAt removes the gallery image at index. It reports false
// and leaves the draft untouched when index is out of range.
func (d *Draft) RemoveGalleryImageAt(index int, now time.Time) bool {
	if index < 0 || index >= len(d.product.GalleryImages) {
		return false
	}
	d.product.GalleryImages = append(d.product.GalleryImages[:index:index], d.product.GalleryImages[index+1:]...)
	d.markDirty(SectionMedia, now)
	return true
}

// SetInventory merges the provided inventory scalars.
func (d *Draft) SetInventory(fields InventoryFields, now time.Time) {
	if fields.Quantity != nil {
		d.product.Quantity = *fields.Quantity
	}
	if fields.Weight != nil {
		d.product.Weight = float64Ptr(*fields.Weight)
	}
	if fields.IsActive != nil {
		d.product.IsActive = *fields.IsActive
	}
	if fields.ChargeTax != nil {
		d.product.ChargeTax = *fields.ChargeTax
	}
	if fields.InStock != nil {
		d.product.InStock = *fields.InStock
	}
	d.markDirty(SectionInventory, now)
}

// SetAttributes replaces the attribute declarations.
func (d *Draft) SetAttributes(attrs []Attribute, now time.Time) {
	d.product.Attributes = append([]Attribute{}, attrs...)
	d.markDirty(SectionAttributes, now)
}

// SetVariations replaces the whole variation list.
func (d *Draft) SetVariations(variants []Variant, now time.Time) {
	out := make([]Variant, len(variants))
	for i, v := range variants {
		out[i] = v.Clone()
	}
	d.product.Variations = out
	d.markDirty(SectionVariations, now)
}

// ApplyGeneratedVariants replaces the variations with a generation result.
// An empty result leaves the draft untouched and reports false.
func (d *Draft) ApplyGeneratedVariants(variants []Variant, now time.Time) bool {
	if len(variants) == 0 {
		return false
	}
	d.SetVariations(variants, now)
	d.events = append(d.events, &VariantsGeneratedEvent{
		DraftID:     d.id,
		Count:       len(variants),
		GeneratedAt: now,
	})
	return true
}

// UpdateVariant merges per-variant overrides into the variant with the given
// id and reports whether it exists. The SKU stays as generated.
func (d *Draft) UpdateVariant(id string, fields VariantFields, now time.Time) bool {
	i := d.product.variantIndex(id)
	if i < 0 {
		return false
	}
	v := &d.product.Variations[i]
	if fields.Price != nil {
		v.Price = fields.Price
	}
	if fields.DiscountPrice != nil {
		v.DiscountPrice = fields.DiscountPrice
	}
	if fields.ComparePrice != nil {
		v.ComparePrice = fields.ComparePrice
	}
	if fields.Cost != nil {
		v.Cost = fields.Cost
	}
	if fields.Quantity != nil {
		v.Quantity = *fields.Quantity
	}
	if fields.Weight != nil {
		v.Weight = float64Ptr(*fields.Weight)
	}
	d.markDirty(SectionVariations, now)
	return true
}

// SetOrganization merges the provided organization fields. Id lists are
// deduplicated and tags are kept as an ordered set.
func (d *Draft) SetOrganization(fields OrganizationFields, now time.Time) {
	org := &d.product.Organization
	if fields.CategoryIDs != nil {
		org.CategoryIDs = uniqueIDs(*fields.CategoryIDs)
	}
	if fields.VendorIDs != nil {
		org.VendorIDs = uniqueIDs(*fields.VendorIDs)
	}
	if fields.StoreIDs != nil {
		org.StoreIDs = uniqueIDs(*fields.StoreIDs)
	}
	if fields.CollectionIDs != nil {
		org.CollectionIDs = uniqueIDs(*fields.CollectionIDs)
	}
	if fields.BrandID != nil {
		if brand := strings.TrimSpace(*fields.BrandID); brand == "" {
			org.BrandID = nil
		} else {
			org.BrandID = stringPtr(brand)
		}
	}
	if fields.Tags != nil {
		org.Tags = uniqueIDs(*fields.Tags)
	}
	d.markDirty(SectionOrganization, now)
}

// AddTag appends a trimmed tag. Empty and already present tags are ignored.
func (d *Draft) AddTag(tag string, now time.Time) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, t := range d.product.Organization.Tags {
		if t == tag {
			return false
		}
	}
	d.product.Organization.Tags = append(d.product.Organization.Tags, tag)
	d.markDirty(SectionOrganization, now)
	return true
}

// RemoveTag deletes a tag and reports whether it was present.
func (d *Draft) RemoveTag(tag string, now time.Time) bool {
	tag = strings.TrimSpace(tag)
	tags := d.product.Organization.Tags
	for i, t := range tags {
		if t == tag {
			d.product.Organization.Tags = append(tags[:i:i], tags[i+1:]...)
			d.markDirty(SectionOrganization, now)
			return true
		}
	}
	return false
}

// SetSubmitting toggles the submitting flag. It does not dirty the draft.
func (d *Draft) SetSubmitting(submitting bool) {
	d.session.Submitting = submitting
}

// SetErrors replaces the validation error mapping. It does not dirty the draft.
func (d *Draft) SetErrors(errs map[string]string) {
	out := make(map[string]string, len(errs))
	for k, v := range errs {
		out[k] = v
	}
	d.session.Errors = out
}

// SetActiveLanguage switches the language being edited.
func (d *Draft) SetActiveLanguage(lang Language, now time.Time) {
	d.session.ActiveLanguage = lang
	d.markDirty(SectionLanguage, now)
}

// SetActiveCurrency switches the currency being priced.
func (d *Draft) SetActiveCurrency(cur Currency, now time.Time) {
	d.session.ActiveCurrency = cur
	d.markDirty(SectionCurrency, now)
}

// Reset discards every edit and returns the draft to its initial defaults.
func (d *Draft) Reset(now time.Time) {
	d.product = NewProduct()
	d.session = d.defaults.clone()
	d.changes.Clear()
	d.events = append(d.events, &DraftResetEvent{
		DraftID: d.id,
		ResetAt: now,
	})
}

func (d *Draft) markDirty(section string, now time.Time) {
	d.changes.MarkDirty(section)
	d.events = append(d.events, &DraftChangedEvent{
		DraftID:   d.id,
		Section:   section,
		ChangedAt: now,
	})
}
