package wallhaven

import (
	"encoding/json"
	"time"
)

// createdAtLayout is the timestamp format the API uses for created_at fields.
const createdAtLayout = "2006-01-02 15:04:05"

// Wallpaper is a single wallpaper as returned by the wallpaper, search and
// collection endpoints. Fields are decoded verbatim from the API response
// and never mutated by the library.
//
// Search results omit Tags and collection listings omit Uploader, so both
// may be zero.
type Wallpaper struct {
	ID         string   `json:"id"`
	URL        string   `json:"url"`
	ShortURL   string   `json:"short_url"`
	Views      int      `json:"views"`
	Favorites  int      `json:"favorites"`
	Source     string   `json:"source"`
	Purity     string   `json:"purity"`
	Category   string   `json:"category"`
	DimensionX int      `json:"dimension_x"`
	DimensionY int      `json:"dimension_y"`
	Resolution string   `json:"resolution"`
	Ratio      string   `json:"ratio"`
	FileSize   int      `json:"file_size"`
	FileType   string   `json:"file_type"`
	CreatedAt  string   `json:"created_at"`
	Colors     []string `json:"colors"`
	Path       string   `json:"path"`
	Thumbs     Thumbs   `json:"thumbs"`
	Tags       []Tag    `json:"tags,omitempty"`
	Uploader   Uploader `json:"uploader,omitempty"`
}

// CreatedAtTime parses the CreatedAt field into a time.Time.
func (w Wallpaper) CreatedAtTime() (time.Time, error) {
	return time.Parse(createdAtLayout, w.CreatedAt)
}

// Thumbs holds the thumbnail URLs of a wallpaper.
type Thumbs struct {
	Large    string `json:"large"`
	Original string `json:"original"`
	Small    string `json:"small"`
}

// Uploader is the user who uploaded a wallpaper.
type Uploader struct {
	Username string            `json:"username"`
	Group    string            `json:"group"`
	Avatar   map[string]string `json:"avatar"`
}

// Tag is a wallpaper tag. Tags appear inside Wallpaper objects and have
// their own endpoint. Alias is a comma-separated string of alternatives.
type Tag struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Alias      string `json:"alias"`
	CategoryID int    `json:"category_id"`
	Category   string `json:"category"`
	Purity     string `json:"purity"`
	CreatedAt  string `json:"created_at"`
}

// CreatedAtTime parses the CreatedAt field into a time.Time.
func (t Tag) CreatedAtTime() (time.Time, error) {
	return time.Parse(createdAtLayout, t.CreatedAt)
}

// UserSettings are the account browsing settings of the authenticated user.
// Purity and Categories arrive as name lists here, not as the 3-digit form
// the search parameters use; query.PurityString converts between the two.
type UserSettings struct {
	ThumbSize     string   `json:"thumb_size"`
	PerPage       int      `json:"per_page"`
	Purity        []string `json:"purity"`
	Categories    []string `json:"categories"`
	Resolutions   []string `json:"resolutions"`
	AspectRatios  []string `json:"aspect_ratios"`
	ToplistRange  string   `json:"toplist_range"`
	TagBlacklist  []string `json:"tag_blacklist"`
	UserBlacklist []string `json:"user_blacklist"`
}

// Collection describes one collection in a user's collection list. It is
// the collection's metadata, not its wallpapers; use CollectionPages for
// the contents.
type Collection struct {
	ID     int    `json:"id"`
	Label  string `json:"label"`
	Views  int    `json:"views"`
	Public int    `json:"public"`
	Count  int    `json:"count"`
}

// Meta is the pagination cursor attached to search and collection
// responses. Query and Seed are absent on collection responses.
type Meta struct {
	CurrentPage int       `json:"current_page"`
	LastPage    int       `json:"last_page"`
	PerPage     int       `json:"per_page"`
	Total       int       `json:"total"`
	Query       MetaQuery `json:"query,omitempty"`
	Seed        string    `json:"seed,omitempty"`
}

// MetaQuery is the echoed search query in Meta. The API returns a plain
// string for text searches but an {id, tag} object for tag-id searches, so
// both forms decode into this one type.
type MetaQuery struct {
	Value string
	TagID int
	Tag   string
}

// UnmarshalJSON accepts either the string or the object form.
func (q *MetaQuery) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		q.Value = s
		return nil
	}

	var obj struct {
		ID  int    `json:"id"`
		Tag string `json:"tag"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	q.TagID = obj.ID
	q.Tag = obj.Tag
	return nil
}

// String returns the text form of the query, whichever way it was encoded.
func (q MetaQuery) String() string {
	if q.Value != "" {
		return q.Value
	}
	return q.Tag
}
