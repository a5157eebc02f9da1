package layout

import (
	"encoding/json"
	"regexp"

	"github.com/google/uuid"
)

const (
	DefaultItemColor = "#FFFFFF"
	DefaultItemSize  = ItemSizeMedium
	DefaultFocus     = 0.5
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ItemStyle is a partial per-item override. Absent or invalid fields fall back
// to the built-in default for that field alone.
type ItemStyle struct {
	Color      *string     `json:"color,omitempty"`
	Size       *ItemSize   `json:"size,omitempty"`
	ShowTags   *bool       `json:"show_tags,omitempty"`
	ImageFocus *FocusPoint `json:"image_focus,omitempty"`
}

type FocusPoint struct {
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
}

type ResolvedItemStyle struct {
	Color      string   `json:"color"`
	Size       ItemSize `json:"size"`
	ShowTags   bool     `json:"show_tags"`
	ImageFocus Focus    `json:"image_focus"`
}

type Focus struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func DefaultItemStyle() ResolvedItemStyle {
	return ResolvedItemStyle{
		Color:      DefaultItemColor,
		Size:       DefaultItemSize,
		ShowTags:   true,
		ImageFocus: Focus{X: DefaultFocus, Y: DefaultFocus},
	}
}

func (s ItemStyle) Resolve() ResolvedItemStyle {
	out := DefaultItemStyle()
	if s.Color != nil && colorPattern.MatchString(*s.Color) {
		out.Color = *s.Color
	}
	if s.Size != nil && s.Size.IsValid() {
		out.Size = *s.Size
	}
	if s.ShowTags != nil {
		out.ShowTags = *s.ShowTags
	}
	if f := s.ImageFocus; f != nil {
		if validFocus(f.X) {
			out.ImageFocus.X = *f.X
		}
		if validFocus(f.Y) {
			out.ImageFocus.Y = *f.Y
		}
	}
	return out
}

func validFocus(v *float64) bool {
	return v != nil && *v >= 0 && *v <= 1
}

// ItemStyles maps item ids to their overrides. Entries are optional; For
// always returns a complete style.
type ItemStyles map[uuid.UUID]ItemStyle

func (s ItemStyles) For(itemID uuid.UUID) ResolvedItemStyle {
	style, ok := s[itemID]
	if !ok {
		return DefaultItemStyle()
	}
	return style.Resolve()
}

// ParseItemStyles decodes leniently: keys that are not item ids and values of
// the wrong shape are skipped, individual fields are kept when they decode.
func ParseItemStyles(raw []byte) ItemStyles {
	root := object(raw)
	if root == nil {
		return nil
	}
	out := make(ItemStyles, len(root))
	for key, value := range root {
		id, err := uuid.Parse(key)
		if err != nil {
			continue
		}
		fields := object(value)
		if fields == nil {
			continue
		}
		style := ItemStyle{
			Color:    decodeField[string](fields, "color"),
			Size:     decodeField[ItemSize](fields, "size"),
			ShowTags: decodeField[bool](fields, "show_tags"),
		}
		if focus := object(fields["image_focus"]); focus != nil {
			style.ImageFocus = &FocusPoint{
				X: decodeField[float64](focus, "x"),
				Y: decodeField[float64](focus, "y"),
			}
		}
		out[id] = style
	}
	return out
}

func (s *ItemStyles) UnmarshalJSON(b []byte) error {
	*s = ParseItemStyles(b)
	return nil
}

func (s ItemStyles) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[uuid.UUID]ItemStyle(s))
}
