// Package catalog holds the in-memory phone catalog: record types, seed
// data, the ordered store, the filter/pagination engine and the comparison
// selection set.
package catalog

// SpecItem is a single labeled spec value within a section.
type SpecItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SpecSection groups related spec items under a titled section.
type SpecSection struct {
	Title string              `json:"title"`
	Specs map[string]SpecItem `json:"specs"`
}

// Phone is one catalog record. Specs is keyed by section ID; the canonical
// section set and order is SectionOrder.
type Phone struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	Price      int                    `json:"price"`
	Rating     int                    `json:"rating"`
	Image      string                 `json:"image"`
	LaunchDate string                 `json:"launchDate,omitempty"`
	StoreURL   string                 `json:"storeUrl,omitempty"`
	Specs      map[string]SpecSection `json:"specs"`
}

// Canonical section keys, in display order.
const (
	SectionSummary     = "summary"
	SectionGeneral     = "general"
	SectionPerformance = "performance"
	SectionDisplay     = "display"
	SectionDesign      = "design"
	SectionCamera      = "camera"
	SectionBattery     = "battery"
	SectionStorage     = "storage"
	SectionNetwork     = "network"
)

// SectionOrder is the fixed canonical ordering of spec sections. Renderers
// and the normalization boundary both iterate in this order.
var SectionOrder = []string{
	SectionSummary,
	SectionGeneral,
	SectionPerformance,
	SectionDisplay,
	SectionDesign,
	SectionCamera,
	SectionBattery,
	SectionStorage,
	SectionNetwork,
}

// Section returns the named spec section and whether it exists.
func (p Phone) Section(key string) (SpecSection, bool) {
	s, ok := p.Specs[key]
	return s, ok
}

// SummaryValue returns the value of a summary spec (performance, display,
// camera, battery), or "" when absent.
func (p Phone) SummaryValue(key string) string {
	summary, ok := p.Specs[SectionSummary]
	if !ok {
		return ""
	}
	item, ok := summary.Specs[key]
	if !ok {
		return ""
	}
	return item.Value
}

// Brand is an entry in the featured-brand roster.
type Brand struct {
	Name  string
	Image string
}

// NewsItem is one headline in the home-view news ticker.
type NewsItem struct {
	ID    string
	Title string
	Time  string
	Image string
}
