package layout

import (
	"encoding/json"
)

// Config is a partial layout. Every field is optional; a nil field defers to
// the next layer during resolution.
type Config struct {
	Header *HeaderConfig `json:"header,omitempty"`
	Grid   *GridConfig   `json:"grid,omitempty"`
	Banner *BannerConfig `json:"banner,omitempty"`
	Theme  *Theme        `json:"theme,omitempty"`
}

type HeaderConfig struct {
	Visible   *bool     `json:"visible,omitempty"`
	ShowLogo  *bool     `json:"show_logo,omitempty"`
	ShowName  *bool     `json:"show_name,omitempty"`
	ShowClock *bool     `json:"show_clock,omitempty"`
	NameSize  *NameSize `json:"name_size,omitempty"`
}

type GridConfig struct {
	Columns            *int  `json:"columns,omitempty"`
	Rows               *int  `json:"rows,omitempty"`
	ShowCategoryLabels *bool `json:"show_category_labels,omitempty"`
}

type BannerConfig struct {
	Visible  *bool           `json:"visible,omitempty"`
	Position *BannerPosition `json:"position,omitempty"`
}

// Parse decodes a layout document leniently. Fields with the wrong JSON type
// are dropped one by one; a document that is not an object yields an empty
// Config. It never fails.
func Parse(raw []byte) Config {
	root := object(raw)
	if root == nil {
		return Config{}
	}

	var cfg Config
	if h := object(root["header"]); h != nil {
		cfg.Header = &HeaderConfig{
			Visible:   decodeField[bool](h, "visible"),
			ShowLogo:  decodeField[bool](h, "show_logo"),
			ShowName:  decodeField[bool](h, "show_name"),
			ShowClock: decodeField[bool](h, "show_clock"),
			NameSize:  decodeField[NameSize](h, "name_size"),
		}
	}
	if g := object(root["grid"]); g != nil {
		cfg.Grid = &GridConfig{
			Columns:            decodeField[int](g, "columns"),
			Rows:               decodeField[int](g, "rows"),
			ShowCategoryLabels: decodeField[bool](g, "show_category_labels"),
		}
	}
	if b := object(root["banner"]); b != nil {
		cfg.Banner = &BannerConfig{
			Visible:  decodeField[bool](b, "visible"),
			Position: decodeField[BannerPosition](b, "position"),
		}
	}
	cfg.Theme = decodeField[Theme](root, "theme")
	return cfg
}

func (c *Config) UnmarshalJSON(b []byte) error {
	*c = Parse(b)
	return nil
}

func (c Config) IsEmpty() bool {
	return c.Header == nil && c.Grid == nil && c.Banner == nil && c.Theme == nil
}

func object(raw []byte) map[string]json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

func decodeField[T any](m map[string]json.RawMessage, key string) *T {
	raw, ok := m[key]
	if !ok || string(raw) == "null" {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}
