package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	driver "github.com/go-sql-driver/mysql"

	"hotel_concierge/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valInt64(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}
func nullToPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// isDuplicate reports a MySQL unique-key violation (error 1062).
func isDuplicate(err error) bool {
	var me *driver.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// ---- users ----

func (r *Repo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, insertUserSQL,
		u.ID, u.Email, valStr(u.FullName), u.PasswordHash,
		u.SubscriptionPlan, u.SubscriptionStatus, u.AdminLanguage)
	return err
}

func (r *Repo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, email, full_name, password_hash, subscription_plan, subscription_status, admin_language, created_at
FROM users WHERE email = ?`, email)

	var u domain.User
	var fullName sql.NullString
	if err := row.Scan(&u.ID, &u.Email, &fullName, &u.PasswordHash,
		&u.SubscriptionPlan, &u.SubscriptionStatus, &u.AdminLanguage, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	u.FullName = nullToPtr(fullName)
	return u, nil
}

// ---- hotels ----

func (r *Repo) CreateHotel(ctx context.Context, h domain.Hotel) error {
	langs, _ := json.Marshal(h.SupportedLanguages)
	_, err := r.db.ExecContext(ctx, insertHotelSQL,
		h.ID, h.Name, h.Slug, h.OwnerID,
		valStr(h.Description), valStr(h.Address), valStr(h.Phone), valStr(h.Email), valStr(h.Website),
		h.PrimaryLanguage, h.SecondaryLanguage, string(langs),
		h.BackgroundColor, h.AccentColor, h.TextColor, h.FontFamily,
		h.WelcomeTitle, h.WelcomeSubtitle, h.PhoneInstructions,
		valStr(h.LogoAssetID),
	)
	if isDuplicate(err) {
		return domain.ErrSlugTaken
	}
	return err
}

func (r *Repo) scanHotel(row interface{ Scan(...any) error }) (domain.Hotel, error) {
	var h domain.Hotel
	var desc, addr, phone, email, website, logo sql.NullString
	var subtitle, instructions sql.NullString
	var langsJSON []byte
	if err := row.Scan(
		&h.ID, &h.Name, &h.Slug, &h.OwnerID,
		&desc, &addr, &phone, &email, &website,
		&h.PrimaryLanguage, &h.SecondaryLanguage, &langsJSON,
		&h.BackgroundColor, &h.AccentColor, &h.TextColor, &h.FontFamily,
		&h.WelcomeTitle, &subtitle, &instructions,
		&logo, &h.CreatedAt, &h.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.Hotel{}, domain.ErrNotFound
		}
		return domain.Hotel{}, err
	}
	h.Description = nullToPtr(desc)
	h.Address = nullToPtr(addr)
	h.Phone = nullToPtr(phone)
	h.Email = nullToPtr(email)
	h.Website = nullToPtr(website)
	h.LogoAssetID = nullToPtr(logo)
	if subtitle.Valid {
		h.WelcomeSubtitle = subtitle.String
	}
	if instructions.Valid {
		h.PhoneInstructions = instructions.String
	}
	_ = json.Unmarshal(langsJSON, &h.SupportedLanguages)
	return h, nil
}

func (r *Repo) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	row := r.db.QueryRowContext(ctx, `SELECT`+hotelColumns+` FROM hotels WHERE id = ?`, id)
	return r.scanHotel(row)
}

func (r *Repo) GetHotelBySlug(ctx context.Context, slug string) (domain.Hotel, error) {
	row := r.db.QueryRowContext(ctx, `SELECT`+hotelColumns+` FROM hotels WHERE slug = ?`, slug)
	return r.scanHotel(row)
}

func (r *Repo) ListHotelsByOwner(ctx context.Context, ownerID string) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT`+hotelColumns+` FROM hotels WHERE owner_id = ? ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		h, err := r.scanHotel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateHotelField(ctx context.Context, id, field, value string) error {
	col, ok := hotelUpdateColumns[field]
	if !ok {
		return fmt.Errorf("hotel field %q is not updatable", field)
	}
	_, err := r.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE hotels SET %s = ? WHERE id = ?", col), value, id)
	return err
}

func (r *Repo) UpdateSupportedLanguages(ctx context.Context, id string, langs []string) error {
	b, _ := json.Marshal(langs)
	_, err := r.db.ExecContext(ctx,
		`UPDATE hotels SET supported_languages = ? WHERE id = ?`, string(b), id)
	return err
}

func (r *Repo) SetLogoAsset(ctx context.Context, id, assetID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE hotels SET logo_asset_id = ? WHERE id = ?`, assetID, id)
	return err
}

// ---- sections ----

func (r *Repo) CreateSection(ctx context.Context, s domain.Section) error {
	_, err := r.db.ExecContext(ctx, insertSectionSQL,
		s.ID, s.HotelID, s.Language, s.Title, s.SectionKey, s.OrderIndex, s.IsActive)
	return err
}

func scanSection(row interface{ Scan(...any) error }) (domain.Section, error) {
	var s domain.Section
	if err := row.Scan(&s.ID, &s.HotelID, &s.Language, &s.Title, &s.SectionKey,
		&s.OrderIndex, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Section{}, domain.ErrNotFound
		}
		return domain.Section{}, err
	}
	return s, nil
}

func (r *Repo) GetSection(ctx context.Context, id string) (domain.Section, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT`+sectionColumns+` FROM accordion_sections WHERE id = ?`, id)
	return scanSection(row)
}

func (r *Repo) ListSections(ctx context.Context, hotelID, lang string, activeOnly bool) ([]domain.Section, error) {
	q := `SELECT` + sectionColumns + ` FROM accordion_sections WHERE hotel_id = ? AND language = ?`
	if activeOnly {
		q += ` AND is_active = 1`
	}
	q += ` ORDER BY order_index, created_at`

	rows, err := r.db.QueryContext(ctx, q, hotelID, lang)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Section
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) CountSections(ctx context.Context, hotelID, lang string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accordion_sections WHERE hotel_id = ? AND language = ?`,
		hotelID, lang).Scan(&n)
	return n, err
}

// ReorderSections writes the whole ordered id sequence in one
// transaction, so a partial swap can never be observed.
func (r *Repo) ReorderSections(ctx context.Context, hotelID, lang string, orderedIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for i, id := range orderedIDs {
		if _, err := tx.ExecContext(ctx,
			`UPDATE accordion_sections SET order_index = ? WHERE id = ? AND hotel_id = ? AND language = ?`,
			i, id, hotelID, lang); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *Repo) DeleteSection(ctx context.Context, id string) error {
	// child blocks go with it via ON DELETE CASCADE
	_, err := r.db.ExecContext(ctx, `DELETE FROM accordion_sections WHERE id = ?`, id)
	return err
}

// ---- blocks ----

func (r *Repo) CreateBlock(ctx context.Context, b domain.Block) error {
	_, err := r.db.ExecContext(ctx, insertBlockSQL,
		b.ID, b.SectionID, b.Title, valStr(b.Description),
		valStr(b.ImageAssetID), valStr(b.ExternalURL), b.OrderIndex, b.IsActive)
	return err
}

func scanBlock(row interface{ Scan(...any) error }) (domain.Block, error) {
	var b domain.Block
	var desc, asset, url sql.NullString
	if err := row.Scan(&b.ID, &b.SectionID, &b.Title, &desc, &asset, &url,
		&b.OrderIndex, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Block{}, domain.ErrNotFound
		}
		return domain.Block{}, err
	}
	b.Description = nullToPtr(desc)
	b.ImageAssetID = nullToPtr(asset)
	b.ExternalURL = nullToPtr(url)
	return b, nil
}

func (r *Repo) GetBlock(ctx context.Context, id string) (domain.Block, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT`+blockColumns+` FROM accordion_blocks WHERE id = ?`, id)
	return scanBlock(row)
}

func (r *Repo) ListBlocks(ctx context.Context, sectionIDs []string, activeOnly bool) (map[string][]domain.Block, error) {
	out := make(map[string][]domain.Block, len(sectionIDs))
	if len(sectionIDs) == 0 {
		return out, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(sectionIDs)), ",")
	q := `SELECT` + blockColumns + ` FROM accordion_blocks WHERE section_id IN (` + placeholders + `)`
	if activeOnly {
		q += ` AND is_active = 1`
	}
	q += ` ORDER BY order_index, created_at`

	args := make([]any, len(sectionIDs))
	for i, id := range sectionIDs {
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		out[b.SectionID] = append(out[b.SectionID], b)
	}
	return out, rows.Err()
}

func (r *Repo) CountBlocks(ctx context.Context, sectionID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accordion_blocks WHERE section_id = ?`, sectionID).Scan(&n)
	return n, err
}

func (r *Repo) UpdateBlock(ctx context.Context, id, title string, description, externalURL *string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE accordion_blocks SET title = ?, description = ?, external_url = ? WHERE id = ?`,
		title, valStr(description), valStr(externalURL), id)
	return err
}

func (r *Repo) SetBlockImage(ctx context.Context, id, assetID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE accordion_blocks SET image_asset_id = ? WHERE id = ?`, assetID, id)
	return err
}

func (r *Repo) DeleteBlock(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM accordion_blocks WHERE id = ?`, id)
	return err
}

// ---- legacy flat content ----

func (r *Repo) SeedContent(ctx context.Context, cs []domain.Content) error {
	for _, c := range cs {
		if _, err := r.db.ExecContext(ctx, insertContentSQL,
			c.ID, c.HotelID, c.Language, c.SectionType, c.Title,
			valStr(c.Body), c.OrderIndex, c.IsActive); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repo) ListContent(ctx context.Context, hotelID, lang string) ([]domain.Content, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, hotel_id, language, section_type, title, content, order_index, is_active
FROM hotel_content
WHERE hotel_id = ? AND language = ?
ORDER BY order_index`, hotelID, lang)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Content
	for rows.Next() {
		var c domain.Content
		var body sql.NullString
		if err := rows.Scan(&c.ID, &c.HotelID, &c.Language, &c.SectionType,
			&c.Title, &body, &c.OrderIndex, &c.IsActive); err != nil {
			return nil, err
		}
		c.Body = nullToPtr(body)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateContent(ctx context.Context, hotelID, lang, sectionType, title, body string) error {
	_, err := r.db.ExecContext(ctx, updateContentSQL, title, body, hotelID, lang, sectionType)
	return err
}

// ---- assets ----

func (r *Repo) InsertAsset(ctx context.Context, a domain.Asset) error {
	_, err := r.db.ExecContext(ctx, insertAssetSQL,
		a.ID, a.HotelID, a.FileName, a.FilePath, a.FileType,
		valInt64(a.FileSize), valStr(a.SectionType), valStr(a.Language))
	return err
}

func scanAsset(row interface{ Scan(...any) error }) (domain.Asset, error) {
	var a domain.Asset
	var size sql.NullInt64
	var sectionType, lang sql.NullString
	if err := row.Scan(&a.ID, &a.HotelID, &a.FileName, &a.FilePath, &a.FileType,
		&size, &sectionType, &lang, &a.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Asset{}, domain.ErrNotFound
		}
		return domain.Asset{}, err
	}
	if size.Valid {
		n := size.Int64
		a.FileSize = &n
	}
	a.SectionType = nullToPtr(sectionType)
	a.Language = nullToPtr(lang)
	return a, nil
}

func (r *Repo) GetAsset(ctx context.Context, id string) (domain.Asset, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT`+assetColumns+` FROM hotel_assets WHERE id = ?`, id)
	return scanAsset(row)
}

func (r *Repo) ListAssets(ctx context.Context, hotelID string) ([]domain.Asset, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT`+assetColumns+` FROM hotel_assets WHERE hotel_id = ? ORDER BY created_at DESC, id DESC`,
		hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repo) DeleteAsset(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM hotel_assets WHERE id = ?`, id)
	return err
}

// ---- blob intents ----

func (r *Repo) InsertBlobIntent(ctx context.Context, path string) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO blob_intents (path) VALUES (?)
ON DUPLICATE KEY UPDATE created_at = CURRENT_TIMESTAMP`, path)
	return err
}

func (r *Repo) DeleteBlobIntent(ctx context.Context, path string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM blob_intents WHERE path = ?`, path)
	return err
}

func (r *Repo) ListBlobIntents(ctx context.Context, olderThan time.Time) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT path FROM blob_intents WHERE created_at < ?`, olderThan)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
