package layout

type NameSize string

const (
	NameSizeSmall  NameSize = "sm"
	NameSizeMedium NameSize = "md"
	NameSizeLarge  NameSize = "lg"
	NameSizeXLarge NameSize = "xl"
)

func (s NameSize) IsValid() bool {
	switch s {
	case NameSizeSmall, NameSizeMedium, NameSizeLarge, NameSizeXLarge:
		return true
	}
	return false
}

type BannerPosition string

const (
	BannerTop    BannerPosition = "top"
	BannerBottom BannerPosition = "bottom"
)

func (p BannerPosition) IsValid() bool {
	return p == BannerTop || p == BannerBottom
}

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeSlate Theme = "slate"
	ThemeWarm  Theme = "warm"
)

func (t Theme) IsValid() bool {
	switch t {
	case ThemeDark, ThemeLight, ThemeSlate, ThemeWarm:
		return true
	}
	return false
}

type ItemSize string

const (
	ItemSizeSmall  ItemSize = "sm"
	ItemSizeMedium ItemSize = "md"
	ItemSizeLarge  ItemSize = "lg"
)

func (s ItemSize) IsValid() bool {
	switch s {
	case ItemSizeSmall, ItemSizeMedium, ItemSizeLarge:
		return true
	}
	return false
}

const (
	MinGridDimension = 1
	MaxGridDimension = 6
)

func validGridDimension(v int) bool {
	return v >= MinGridDimension && v <= MaxGridDimension
}
