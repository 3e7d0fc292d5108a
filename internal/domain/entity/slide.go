package entity

import "regexp"

// BlockKind tags a ContentBlock variant.
type BlockKind string

const (
	BlockParagraph BlockKind = "paragraph"
	BlockList      BlockKind = "list"
	BlockQuote     BlockKind = "quote"
	BlockStatistic BlockKind = "statistic"
)

// Valid reports whether k is one of the known block kinds.
func (k BlockKind) Valid() bool {
	switch k {
	case BlockParagraph, BlockList, BlockQuote, BlockStatistic:
		return true
	}
	return false
}

// ListItem is one bilingual entry of a list block.
type ListItem struct {
	Text   string `json:"text" yaml:"text"`
	TextVi string `json:"textVi" yaml:"textVi"`
}

// ContentBlock is a bilingual unit of slide body text.
// Items is only set for list blocks.
type ContentBlock struct {
	Kind   BlockKind  `json:"type" yaml:"type" jsonschema:"enum=paragraph,enum=list,enum=quote,enum=statistic"`
	Text   string     `json:"text" yaml:"text"`
	TextVi string     `json:"textVi" yaml:"textVi"`
	Items  []ListItem `json:"items,omitempty" yaml:"items,omitempty"`
}

// KeyFact is a labelled figure shown in the facts grid.
type KeyFact struct {
	Icon    Icon   `json:"icon" yaml:"icon"`
	Label   string `json:"label" yaml:"label"`
	LabelVi string `json:"labelVi" yaml:"labelVi"`
	Value   string `json:"value" yaml:"value"`
	ValueVi string `json:"valueVi,omitempty" yaml:"valueVi,omitempty"`
	Source  string `json:"source,omitempty" yaml:"source,omitempty"`
	Year    string `json:"year,omitempty" yaml:"year,omitempty"`
}

// ChartKind selects how chart data is drawn.
type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
	ChartPie  ChartKind = "pie"
	ChartArea ChartKind = "area"
)

// ChartConfig describes a small data series. Each Data row is keyed by
// XKey for the label and DataKey for the numeric value.
type ChartConfig struct {
	Kind    ChartKind        `json:"type" yaml:"type" jsonschema:"enum=bar,enum=line,enum=pie,enum=area"`
	Title   string           `json:"title" yaml:"title"`
	XKey    string           `json:"xAxisKey,omitempty" yaml:"xAxisKey,omitempty"`
	DataKey string           `json:"dataKey,omitempty" yaml:"dataKey,omitempty"`
	Data    []map[string]any `json:"data" yaml:"data"`
}

// Point is a single (label, value) pair extracted from chart data.
type Point struct {
	Label string
	Value float64
}

// Points extracts the plottable series. Rows missing either key are skipped.
func (c *ChartConfig) Points() []Point {
	if c == nil {
		return nil
	}
	xKey, dataKey := c.XKey, c.DataKey
	if xKey == "" {
		xKey = "name"
	}
	if dataKey == "" {
		dataKey = "value"
	}

	points := make([]Point, 0, len(c.Data))
	for _, row := range c.Data {
		label, ok := row[xKey]
		if !ok {
			continue
		}
		value, ok := toFloat(row[dataKey])
		if !ok {
			continue
		}
		points = append(points, Point{Label: toLabel(label), Value: value})
	}
	return points
}

// MapMarker is a labelled location on a map.
type MapMarker struct {
	Position      [2]float64 `json:"position" yaml:"position"`
	Title         string     `json:"title" yaml:"title"`
	TitleVi       string     `json:"titleVi" yaml:"titleVi"`
	Description   string     `json:"description" yaml:"description"`
	DescriptionVi string     `json:"descriptionVi" yaml:"descriptionVi"`
}

// MapConfig is a map viewport plus markers.
type MapConfig struct {
	Center  [2]float64  `json:"center" yaml:"center"`
	Zoom    int         `json:"zoom" yaml:"zoom"`
	Markers []MapMarker `json:"markers" yaml:"markers"`
}

// TimelineEvent is one dated entry on a timeline.
type TimelineEvent struct {
	Year          string `json:"year" yaml:"year"`
	Title         string `json:"title" yaml:"title"`
	TitleVi       string `json:"titleVi" yaml:"titleVi"`
	Description   string `json:"description" yaml:"description"`
	DescriptionVi string `json:"descriptionVi" yaml:"descriptionVi"`
}

// TimelineConfig is an ordered list of events.
type TimelineConfig struct {
	Events []TimelineEvent `json:"events" yaml:"events"`
}

// Visual groups the optional rich content of a slide.
type Visual struct {
	Chart    *ChartConfig    `json:"chart,omitempty" yaml:"chart,omitempty"`
	Map      *MapConfig      `json:"map,omitempty" yaml:"map,omitempty"`
	Timeline *TimelineConfig `json:"timeline,omitempty" yaml:"timeline,omitempty"`
	Facts    []KeyFact       `json:"facts,omitempty" yaml:"facts,omitempty"`
}

// Style carries presentational hints for a slide.
type Style struct {
	BackgroundColor string `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty" yaml:"textColor,omitempty"`
	Image           string `json:"image,omitempty" yaml:"image,omitempty"`
}

// Slide is one bilingual unit of presentation content.
// Its index is its position in the deck.
type Slide struct {
	ID           string         `json:"id" yaml:"id"`
	Slug         string         `json:"slug" yaml:"slug"`
	Category     string         `json:"category" yaml:"category"`
	Title        string         `json:"title" yaml:"title"`
	TitleVi      string         `json:"titleVi" yaml:"titleVi"`
	Subtitle     string         `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	SubtitleVi   string         `json:"subtitleVi,omitempty" yaml:"subtitleVi,omitempty"`
	Content      []ContentBlock `json:"content" yaml:"content"`
	SpeakerNotes string         `json:"speakerNotes" yaml:"speakerNotes"`
	Visual       Visual         `json:"visual,omitempty" yaml:"visual,omitempty"`
	Style        Style          `json:"style,omitempty" yaml:"style,omitempty"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidSlug reports whether s is a URL-safe slug.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}
