package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	CreateUser(ctx context.Context, u User) error
	GetUserByEmail(ctx context.Context, email string) (User, error)
}

type HotelRepository interface {
	// Write paths
	CreateHotel(ctx context.Context, h Hotel) error
	UpdateHotelField(ctx context.Context, id, field, value string) error
	UpdateSupportedLanguages(ctx context.Context, id string, langs []string) error
	SetLogoAsset(ctx context.Context, id, assetID string) error

	// Read paths
	GetHotel(ctx context.Context, id string) (Hotel, error)
	GetHotelBySlug(ctx context.Context, slug string) (Hotel, error)
	ListHotelsByOwner(ctx context.Context, ownerID string) ([]Hotel, error)
}

type ContentRepository interface {
	// Section/block tree
	CreateSection(ctx context.Context, s Section) error
	GetSection(ctx context.Context, id string) (Section, error)
	ListSections(ctx context.Context, hotelID, lang string, activeOnly bool) ([]Section, error)
	CountSections(ctx context.Context, hotelID, lang string) (int, error)
	// ReorderSections persists the whole ordered id sequence for one
	// (hotel, language) in a single transaction.
	ReorderSections(ctx context.Context, hotelID, lang string, orderedIDs []string) error
	DeleteSection(ctx context.Context, id string) error

	CreateBlock(ctx context.Context, b Block) error
	GetBlock(ctx context.Context, id string) (Block, error)
	ListBlocks(ctx context.Context, sectionIDs []string, activeOnly bool) (map[string][]Block, error)
	CountBlocks(ctx context.Context, sectionID string) (int, error)
	UpdateBlock(ctx context.Context, id, title string, description, externalURL *string) error
	SetBlockImage(ctx context.Context, id, assetID string) error
	DeleteBlock(ctx context.Context, id string) error

	// Legacy flat content
	SeedContent(ctx context.Context, cs []Content) error
	ListContent(ctx context.Context, hotelID, lang string) ([]Content, error)
	UpdateContent(ctx context.Context, hotelID, lang, sectionType, title, body string) error
}

type AssetRepository interface {
	InsertAsset(ctx context.Context, a Asset) error
	GetAsset(ctx context.Context, id string) (Asset, error)
	ListAssets(ctx context.Context, hotelID string) ([]Asset, error)
	DeleteAsset(ctx context.Context, id string) error

	// Write-ahead markers for blob uploads; swept by the reconciler when
	// the matching asset record never materialized.
	InsertBlobIntent(ctx context.Context, path string) error
	DeleteBlobIntent(ctx context.Context, path string) error
	ListBlobIntents(ctx context.Context, olderThan time.Time) ([]string, error)
}

// BlobStore is the binary-asset collaborator. PublicURL is a pure
// derivation and must never fail.
type BlobStore interface {
	Upload(ctx context.Context, path, contentType string, data []byte) error
	Remove(ctx context.Context, path string) error
	PublicURL(path string) string
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
