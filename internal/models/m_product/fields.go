package m_product

// Column constants for the catalog tables a draft is published into.
const (
	TableProducts = "products"

	ColProductID     = "product_id"
	ColSKU           = "sku"
	ColBarcode       = "barcode"
	ColStatus        = "status"
	ColQuantity      = "quantity"
	ColWeight        = "weight"
	ColIsActive      = "is_active"
	ColChargeTax     = "charge_tax"
	ColInStock       = "in_stock"
	ColBrandID       = "brand_id"
	ColCategoryIDs   = "category_ids"
	ColVendorIDs     = "vendor_ids"
	ColStoreIDs      = "store_ids"
	ColCollectionIDs = "collection_ids"
	ColTags          = "tags"
	ColCreatedAt     = "created_at"
)

const (
	TableTranslations = "product_translations"

	ColLanguageID      = "language_id"
	ColName            = "name"
	ColDescription     = "description"
	ColMetaTitle       = "meta_title"
	ColMetaDescription = "meta_description"
	ColKeywords        = "keywords"
)

// Price columns are shared by product_prices and product_variants.
const (
	TablePrices = "product_prices"

	ColCurrencyID    = "currency_id"
	ColOriginMarket  = "origin_market"
	ColPrice         = "price"
	ColDiscountPrice = "discount_price"
	ColComparePrice  = "compare_price"
	ColCost          = "cost"
)

const (
	TableMedia = "product_media"

	ColPosition  = "position"
	ColRole      = "role"
	ColMediaType = "media_type"
	ColURL       = "url"
	ColAlt       = "alt"
	ColTitle     = "title"
	ColSortOrder = "sort_order"

	MediaRoleMain    = "main"
	MediaRoleGallery = "gallery"
)

const (
	TableVariants = "product_variants"

	ColVariantID  = "variant_id"
	ColAttributes = "attributes"
)
