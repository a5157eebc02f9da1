package layout

type Resolved struct {
	Header ResolvedHeader `json:"header"`
	Grid   ResolvedGrid   `json:"grid"`
	Banner ResolvedBanner `json:"banner"`
	Theme  Theme          `json:"theme"`
}

type ResolvedHeader struct {
	Visible   bool     `json:"visible"`
	ShowLogo  bool     `json:"show_logo"`
	ShowName  bool     `json:"show_name"`
	ShowClock bool     `json:"show_clock"`
	NameSize  NameSize `json:"name_size"`
}

type ResolvedGrid struct {
	Columns            int  `json:"columns"`
	Rows               int  `json:"rows"`
	ShowCategoryLabels bool `json:"show_category_labels"`
}

type ResolvedBanner struct {
	Visible  bool           `json:"visible"`
	Position BannerPosition `json:"position"`
}

// Capacity is the number of item cells one page or slide can show.
func (r Resolved) Capacity() int {
	return r.Grid.Columns * r.Grid.Rows
}

func Default() Resolved {
	return Resolved{
		Header: ResolvedHeader{
			Visible:   true,
			ShowLogo:  true,
			ShowName:  true,
			ShowClock: true,
			NameSize:  NameSizeLarge,
		},
		Grid: ResolvedGrid{
			Columns:            3,
			Rows:               3,
			ShowCategoryLabels: true,
		},
		Banner: ResolvedBanner{
			Visible:  true,
			Position: BannerBottom,
		},
		Theme: ThemeDark,
	}
}

// Resolve merges slide over template over Default, one field at a time.
// Either layer may be nil. Values outside their allowed range are ignored as
// if the field were absent.
func Resolve(slide, template *Config) Resolved {
	return ResolveLayers(slide, template)
}

// ResolveLayers is Resolve for any number of layers, most specific first.
func ResolveLayers(layers ...*Config) Resolved {
	flats := make([]fields, 0, len(layers))
	for _, layer := range layers {
		if layer != nil {
			flats = append(flats, flatten(layer))
		}
	}

	out := Default()
	out.Header.Visible = pick(flats, func(f fields) *bool { return f.headerVisible }, out.Header.Visible, anyBool)
	out.Header.ShowLogo = pick(flats, func(f fields) *bool { return f.showLogo }, out.Header.ShowLogo, anyBool)
	out.Header.ShowName = pick(flats, func(f fields) *bool { return f.showName }, out.Header.ShowName, anyBool)
	out.Header.ShowClock = pick(flats, func(f fields) *bool { return f.showClock }, out.Header.ShowClock, anyBool)
	out.Header.NameSize = pick(flats, func(f fields) *NameSize { return f.nameSize }, out.Header.NameSize, NameSize.IsValid)

	out.Grid.Columns = pick(flats, func(f fields) *int { return f.columns }, out.Grid.Columns, validGridDimension)
	out.Grid.Rows = pick(flats, func(f fields) *int { return f.rows }, out.Grid.Rows, validGridDimension)
	out.Grid.ShowCategoryLabels = pick(flats, func(f fields) *bool { return f.categoryLabels }, out.Grid.ShowCategoryLabels, anyBool)

	out.Banner.Visible = pick(flats, func(f fields) *bool { return f.bannerVisible }, out.Banner.Visible, anyBool)
	out.Banner.Position = pick(flats, func(f fields) *BannerPosition { return f.bannerPosition }, out.Banner.Position, BannerPosition.IsValid)

	out.Theme = pick(flats, func(f fields) *Theme { return f.theme }, out.Theme, Theme.IsValid)
	return out
}

// fields is one layer with its nesting removed.
type fields struct {
	headerVisible  *bool
	showLogo       *bool
	showName       *bool
	showClock      *bool
	nameSize       *NameSize
	columns        *int
	rows           *int
	categoryLabels *bool
	bannerVisible  *bool
	bannerPosition *BannerPosition
	theme          *Theme
}

func flatten(c *Config) fields {
	f := fields{theme: c.Theme}
	if h := c.Header; h != nil {
		f.headerVisible = h.Visible
		f.showLogo = h.ShowLogo
		f.showName = h.ShowName
		f.showClock = h.ShowClock
		f.nameSize = h.NameSize
	}
	if g := c.Grid; g != nil {
		f.columns = g.Columns
		f.rows = g.Rows
		f.categoryLabels = g.ShowCategoryLabels
	}
	if b := c.Banner; b != nil {
		f.bannerVisible = b.Visible
		f.bannerPosition = b.Position
	}
	return f
}

func pick[T any](layers []fields, get func(fields) *T, fallback T, valid func(T) bool) T {
	for _, layer := range layers {
		if v := get(layer); v != nil && valid(*v) {
			return *v
		}
	}
	return fallback
}

func anyBool(bool) bool { return true }
