package model

// Theme is the persisted light/dark preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is one of the two supported themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// TextColor returns the tick/legend color for the theme.
func (t Theme) TextColor() string {
	if t == ThemeDark {
		return "#b0bec5"
	}
	return "#546e7a"
}

// GridColor returns the axis grid color for the theme.
func (t Theme) GridColor() string {
	if t == ThemeDark {
		return "rgba(255, 255, 255, 0.1)"
	}
	return "rgba(0, 0, 0, 0.1)"
}

// ScatterPoint is a single x/y sample for scatter charts.
type ScatterPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ChartDataset mirrors the charting collaborator's dataset shape. Data is
// either []float64 or []ScatterPoint; BackgroundColor is a string or a
// per-bar []string.
type ChartDataset struct {
	Label           string      `json:"label,omitempty"`
	Data            interface{} `json:"data"`
	BackgroundColor interface{} `json:"backgroundColor,omitempty"`
	BorderColor     string      `json:"borderColor,omitempty"`
	BorderDash      []int       `json:"borderDash,omitempty"`
	Fill            bool        `json:"fill"`
	Tension         float64     `json:"tension,omitempty"`
}

// ChartAxis holds per-axis styling and an optional title.
type ChartAxis struct {
	Title     string `json:"title,omitempty"`
	TickColor string `json:"tickColor"`
	GridColor string `json:"gridColor"`
}

// ChartOptions carries the theme-sensitive styling of a chart.
type ChartOptions struct {
	LegendColor    string     `json:"legendColor"`
	LegendPosition string     `json:"legendPosition,omitempty"`
	X              *ChartAxis `json:"x,omitempty"`
	Y              *ChartAxis `json:"y,omitempty"`
}

// ChartSpec is a declarative chart specification consumed by the charting
// collaborator.
type ChartSpec struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Labels   []string       `json:"labels,omitempty"`
	Datasets []ChartDataset `json:"datasets"`
	Options  ChartOptions   `json:"options"`
}
