package mysql

const insertUserSQL = `
INSERT INTO users
  (id, email, full_name, password_hash, subscription_plan, subscription_status, admin_language)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
`

const hotelColumns = `
  id, name, slug, owner_id, description, address, phone, email, website,
  primary_language, secondary_language, supported_languages,
  custom_background_color, custom_accent_color, custom_text_color,
  custom_font_family, custom_welcome_title, custom_welcome_subtitle,
  custom_phone_instructions, logo_asset_id, created_at, updated_at`

const insertHotelSQL = `
INSERT INTO hotels
  (id, name, slug, owner_id, description, address, phone, email, website,
   primary_language, secondary_language, supported_languages,
   custom_background_color, custom_accent_color, custom_text_color,
   custom_font_family, custom_welcome_title, custom_welcome_subtitle,
   custom_phone_instructions, logo_asset_id)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// Whitelist for field-level hotel updates issued by the dashboard. Keys
// are the form field names, values the backing columns.
var hotelUpdateColumns = map[string]string{
	"name":                      "name",
	"description":               "description",
	"address":                   "address",
	"phone":                     "phone",
	"email":                     "email",
	"website":                   "website",
	"custom_background_color":   "custom_background_color",
	"custom_accent_color":       "custom_accent_color",
	"custom_text_color":         "custom_text_color",
	"custom_font_family":        "custom_font_family",
	"custom_welcome_title":      "custom_welcome_title",
	"custom_welcome_subtitle":   "custom_welcome_subtitle",
	"custom_phone_instructions": "custom_phone_instructions",
}

const insertSectionSQL = `
INSERT INTO accordion_sections
  (id, hotel_id, language, title, section_key, order_index, is_active)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
`

const sectionColumns = `
  id, hotel_id, language, title, section_key, order_index, is_active, created_at, updated_at`

const insertBlockSQL = `
INSERT INTO accordion_blocks
  (id, section_id, title, description, image_asset_id, external_url, order_index, is_active)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)
`

const blockColumns = `
  id, section_id, title, description, image_asset_id, external_url, order_index, is_active, created_at, updated_at`

const insertContentSQL = `
INSERT INTO hotel_content
  (id, hotel_id, language, section_type, title, content, order_index, is_active)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  title       = VALUES(title),
  content     = VALUES(content),
  order_index = VALUES(order_index),
  is_active   = VALUES(is_active)
`

const updateContentSQL = `
UPDATE hotel_content
SET title = ?, content = ?
WHERE hotel_id = ? AND language = ? AND section_type = ?
`

const insertAssetSQL = `
INSERT INTO hotel_assets
  (id, hotel_id, file_name, file_path, file_type, file_size, section_type, language)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)
`

const assetColumns = `
  id, hotel_id, file_name, file_path, file_type, file_size, section_type, language, created_at`
