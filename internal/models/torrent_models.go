// Package models defines data structures for torrent information returned by the info API.
package models

// TorrentInfo is the typed view of an info response.
type TorrentInfo struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	URL          string        `json:"url"`
	Submitter    string        `json:"submitter"`
	Information  string        `json:"information"`
	CreationDate string        `json:"creation_date"`
	Filesize     int64         `json:"filesize"`
	HashHex      string        `json:"hash_hex"`
	HashB32      string        `json:"hash_b32"`
	Magnet       string        `json:"magnet"`
	MainCategory string        `json:"main_category"`
	SubCategory  string        `json:"sub_category"`
	IsAnonymous  bool          `json:"is_anonymous"`
	IsTrusted    bool          `json:"is_trusted"`
	IsComplete   bool          `json:"is_complete"`
	IsRemake     bool          `json:"is_remake"`
	Stats        *TorrentStats `json:"stats,omitempty"`
	Errors       interface{}   `json:"errors,omitempty"`
}

// TorrentStats holds swarm counters
type TorrentStats struct {
	Seeders   int64 `json:"seeders"`
	Leechers  int64 `json:"leechers"`
	Downloads int64 `json:"downloads"`
}

// Document is an info response decoded without a schema, so every field
// can be printed exactly as the API sent it.
type Document map[string]interface{}

// Field keys consumed by the summary line.
const (
	FieldID           = "id"
	FieldName         = "name"
	FieldSubmitter    = "submitter"
	FieldFilesize     = "filesize"
	FieldCreationDate = "creation_date"
	FieldMainCategory = "main_category"
	FieldSubCategory  = "sub_category"
	FieldIsTrusted    = "is_trusted"
	FieldIsComplete   = "is_complete"
	FieldIsRemake     = "is_remake"
	FieldMagnet       = "magnet"
	FieldErrors       = "errors"
)
