package report

// Page geometry in millimeters (A4 portrait).
const (
	pageWidth    = 210.0
	marginX      = 20.0
	textWidth    = 170.0
	bodyLineStep = 6.0

	disclaimerY = 245.0
	footerY     = 292.0
)

// Measurer reports how many lines a text block wraps to at a given width
// and font size. The PDF renderer implements it on top of the drawing
// library; tests supply a deterministic stand-in.
type Measurer interface {
	Lines(text string, width, fontSize float64) int
}

// Section is a typed report section descriptor. Flowing sections are placed
// at a running vertical offset that accounts for the wrapped line count of
// every variable-length section before them; fixed sections (disclaimer,
// footer) keep their absolute position.
type Section interface {
	Height(m Measurer) float64
	FixedY() (float64, bool)
}

// Placement pairs a section with its resolved vertical position.
type Placement struct {
	Section Section
	Y       float64
}

// Layout resolves each section's Y position. The cursor starts at the top
// of the page and advances by each section's height, so content after a
// wrapped text block reflows instead of overlapping.
func Layout(sections []Section, m Measurer) []Placement {
	placements := make([]Placement, 0, len(sections))
	y := 0.0
	for _, s := range sections {
		pos := y
		if fy, ok := s.FixedY(); ok {
			pos = fy
		}
		placements = append(placements, Placement{Section: s, Y: pos})
		y = pos + s.Height(m)
	}
	return placements
}

// HeaderSection is the brand band at the top of the page.
type HeaderSection struct {
	Brand    string
	Subtitle string
	Meta     string
}

func (s *HeaderSection) Height(Measurer) float64 { return 55 }
func (s *HeaderSection) FixedY() (float64, bool) { return 0, true }

// KVPair is one label/value cell of the patient information table.
type KVPair struct {
	Label string
	Value string
}

// KeyValueSection renders pairs in a two-column layout.
type KeyValueSection struct {
	Title string
	Pairs []KVPair
}

func (s *KeyValueSection) rows() int { return (len(s.Pairs) + 1) / 2 }

func (s *KeyValueSection) Height(Measurer) float64 {
	return 10 + float64(s.rows())*7 + 8
}

func (s *KeyValueSection) FixedY() (float64, bool) { return 0, false }

// SummarySection renders the color-coded prediction summary.
type SummarySection struct {
	Title      string
	RiskLevel  string
	Confidence float64
	RiskScore  float64
}

func (s *SummarySection) Height(Measurer) float64 { return 12 + 7 + 7 + 15 }
func (s *SummarySection) FixedY() (float64, bool) { return 0, false }

// TextSection renders a titled, word-wrapped text block.
type TextSection struct {
	Title  string
	Body   string
	Italic bool
}

func (s *TextSection) Height(m Measurer) float64 {
	lines := m.Lines(s.Body, textWidth, 11)
	return 10 + float64(lines)*bodyLineStep + 10
}

func (s *TextSection) FixedY() (float64, bool) { return 0, false }

// DisclaimerSection is the fixed gray box near the bottom of the page.
type DisclaimerSection struct {
	Title string
	Body  string
}

func (s *DisclaimerSection) Height(Measurer) float64 { return footerY - disclaimerY }
func (s *DisclaimerSection) FixedY() (float64, bool) { return disclaimerY, true }

// FooterSection is the fixed attribution line.
type FooterSection struct {
	Left  string
	Right string
}

func (s *FooterSection) Height(Measurer) float64 { return 0 }
func (s *FooterSection) FixedY() (float64, bool) { return footerY, true }
