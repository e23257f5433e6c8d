package enrich

import (
	"fmt"
	"strings"

	"phonedex/internal/catalog"
)

// remotePhone is the untrusted shape a remote reply decodes into. Numbers
// arrive as float64, spec values may be numbers or strings, and any part of
// the structure may be missing. Nothing of this shape leaks past Normalize.
type remotePhone struct {
	ID         string                   `json:"id"`
	Name       string                   `json:"name"`
	Price      float64                  `json:"price"`
	Rating     float64                  `json:"rating"`
	LaunchDate string                   `json:"launchDate"`
	Specs      map[string]remoteSection `json:"specs"`
}

type remoteSection struct {
	Title string                `json:"title"`
	Specs map[string]remoteItem `json:"specs"`
}

type remoteItem struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

func itemValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case string:
		if strings.TrimSpace(t) == "" {
			return "-"
		}
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// slug derives a kebab-case identifier from a phone name, for remote
// records that omitted one.
func slug(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

func clampRating(r float64) int {
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return int(r)
}

// Normalize converts a remote record into an invariant-respecting catalog
// record: all nine canonical sections exist, missing values become "-",
// performance/display/camera/battery detail rows are seeded from the
// summary section when available, and the image and store link are
// synthesized deterministically from the name. Returns false when the
// record has no usable name.
func (r remotePhone) Normalize() (catalog.Phone, bool) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return catalog.Phone{}, false
	}
	id := strings.TrimSpace(r.ID)
	if id == "" {
		id = slug(name)
	}

	p := catalog.Phone{
		ID:         id,
		Name:       name,
		Price:      int(r.Price),
		Rating:     clampRating(r.Rating),
		Image:      catalog.ImageURL(name),
		LaunchDate: r.LaunchDate,
		StoreURL:   catalog.StoreURL(name),
		Specs:      make(map[string]catalog.SpecSection, len(catalog.SectionOrder)),
	}

	launch := r.LaunchDate
	if launch == "" {
		launch = "-"
	}
	summary := func(key string) string {
		if sec, ok := r.Specs[catalog.SectionSummary]; ok {
			if item, ok := sec.Specs[key]; ok {
				return itemValue(item.Value)
			}
		}
		return "-"
	}

	defaults := map[string]catalog.SpecSection{
		catalog.SectionSummary: {Title: "Summary", Specs: map[string]catalog.SpecItem{
			"performance": {Label: "Performance", Value: summary("performance")},
			"display":     {Label: "Display", Value: summary("display")},
			"camera":      {Label: "Camera", Value: summary("camera")},
			"battery":     {Label: "Battery", Value: summary("battery")},
		}},
		catalog.SectionGeneral: {Title: "General", Specs: map[string]catalog.SpecItem{
			"launchDate": {Label: "Launch Date", Value: launch},
			"os":         {Label: "Operating System", Value: "Android"},
			"customUi":   {Label: "Custom UI", Value: "-"},
		}},
		catalog.SectionPerformance: {Title: "Performance", Specs: map[string]catalog.SpecItem{
			"chipset":      {Label: "Chipset", Value: summary("performance")},
			"cpu":          {Label: "CPU", Value: "-"},
			"architecture": {Label: "Architecture", Value: "-"},
			"fabrication":  {Label: "Fabrication", Value: "-"},
			"graphics":     {Label: "Graphics", Value: "-"},
			"ram":          {Label: "RAM", Value: "-"},
		}},
		catalog.SectionDisplay: {Title: "Display", Specs: map[string]catalog.SpecItem{
			"type":         {Label: "Display Type", Value: "-"},
			"size":         {Label: "Screen Size", Value: summary("display")},
			"resolution":   {Label: "Resolution", Value: "-"},
			"aspectRatio":  {Label: "Aspect Ratio", Value: "-"},
			"pixelDensity": {Label: "Pixel Density", Value: "-"},
			"protection":   {Label: "Screen Protection", Value: "-"},
			"refreshRate":  {Label: "Refresh Rate", Value: "-"},
		}},
		catalog.SectionDesign: {Title: "Design", Specs: map[string]catalog.SpecItem{
			"height":     {Label: "Height", Value: "-"},
			"width":      {Label: "Width", Value: "-"},
			"thickness":  {Label: "Thickness", Value: "-"},
			"weight":     {Label: "Weight", Value: "-"},
			"build":      {Label: "Build Material", Value: "-"},
			"waterproof": {Label: "Waterproof", Value: "-"},
		}},
		catalog.SectionCamera: {Title: "Camera", Specs: map[string]catalog.SpecItem{
			"main":     {Label: "Main Camera", Value: summary("camera")},
			"front":    {Label: "Front Camera", Value: "-"},
			"flash":    {Label: "Flash", Value: "-"},
			"features": {Label: "Features", Value: "-"},
			"video":    {Label: "Video Recording", Value: "-"},
		}},
		catalog.SectionBattery: {Title: "Battery", Specs: map[string]catalog.SpecItem{
			"capacity": {Label: "Capacity", Value: summary("battery")},
			"type":     {Label: "Type", Value: "-"},
			"charging": {Label: "Quick Charging", Value: "-"},
			"wireless": {Label: "Wireless Charging", Value: "-"},
		}},
		catalog.SectionStorage: {Title: "Storage", Specs: map[string]catalog.SpecItem{
			"internal":   {Label: "Internal Memory", Value: "-"},
			"expandable": {Label: "Expandable Memory", Value: "-"},
		}},
		catalog.SectionNetwork: {Title: "Network & Connectivity", Specs: map[string]catalog.SpecItem{
			"sim":       {Label: "SIM Slot(s)", Value: "-"},
			"network":   {Label: "Network Support", Value: "5G"},
			"volte":     {Label: "VoLTE", Value: "-"},
			"wifi":      {Label: "Wi-Fi", Value: "-"},
			"bluetooth": {Label: "Bluetooth", Value: "-"},
			"nfc":       {Label: "NFC", Value: "-"},
			"usb":       {Label: "USB Connectivity", Value: "-"},
		}},
	}

	for _, key := range catalog.SectionOrder {
		def := defaults[key]
		remote, ok := r.Specs[key]
		if !ok || len(remote.Specs) == 0 {
			p.Specs[key] = def
			continue
		}
		// A remote-provided section keeps its values; rows it omitted fall
		// back to the defaults above so renderers never hit a hole.
		sec := catalog.SpecSection{Title: remote.Title, Specs: make(map[string]catalog.SpecItem, len(def.Specs))}
		if strings.TrimSpace(sec.Title) == "" {
			sec.Title = def.Title
		}
		for k, item := range def.Specs {
			sec.Specs[k] = item
		}
		for k, item := range remote.Specs {
			label := strings.TrimSpace(item.Label)
			if label == "" {
				if d, ok := def.Specs[k]; ok {
					label = d.Label
				} else {
					label = k
				}
			}
			sec.Specs[k] = catalog.SpecItem{Label: label, Value: itemValue(item.Value)}
		}
		p.Specs[key] = sec
	}

	return p, true
}
