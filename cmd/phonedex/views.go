package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"phonedex/cmd/phonedex/ui"
	"phonedex/internal/catalog"
	"phonedex/internal/session"
)

// formatPrice renders a rupee amount with Indian digit grouping, e.g.
// 129999 -> "₹1,29,999".
func formatPrice(p int) string {
	if p < 0 {
		p = 0
	}
	s := strconv.Itoa(p)
	if len(s) <= 3 {
		return "₹" + s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return "₹" + strings.Join(parts, ",") + "," + tail
}

// ratingStars renders a 0..100 score as a five-star gauge.
func ratingStars(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := (score + 10) / 20
	if filled > 5 {
		filled = 5
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

func (m appModel) renderHeader() string {
	title := m.styles.Header.Render(" 📱 phonedex ")

	var status string
	switch {
	case m.isLoading:
		status = m.styles.Warning.Render("● Working")
	case m.sess.Enabled():
		status = m.styles.Success.Render("● Online")
	default:
		status = m.styles.Muted.Render("● Offline catalog")
	}

	page := m.styles.Badge.Render(m.sess.Router.Current().String())

	headerLine := lipgloss.JoinHorizontal(
		lipgloss.Center,
		title,
		" ",
		page,
		"  ",
		status,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerLine,
		m.styles.RenderDivider(m.width),
	)
}

func (m appModel) renderFooter() string {
	var help string
	switch m.sess.Router.Current() {
	case session.ViewDetails:
		help = "c: compare • esc: back • ↑/↓: scroll • q: quit"
	case session.ViewCompare:
		help = "a: add phone • 1-4: remove column • s: full specs • esc: back • q: quit"
	default:
		help = "/: search • space: pick • c: compare • b: brand • +/-: price • 1-4: categories • m: more • r: refresh • ?: assistant • q: quit"
	}
	return m.styles.Footer.Render(help)
}

// renderHome renders the filter bar, category row and the paginated card
// list.
func (m appModel) renderHome() string {
	var sb strings.Builder

	// News ticker
	if news := catalog.SeedNews(); len(news) > 0 {
		headlines := make([]string, 0, 2)
		for _, item := range news[:min(2, len(news))] {
			headlines = append(headlines, fmt.Sprintf("%s (%s)", item.Title, item.Time))
		}
		sb.WriteString(m.styles.Subtitle.Render("📰 " + strings.Join(headlines, "  •  ")))
		sb.WriteString("\n\n")
	}

	// Filter bar
	ceiling := m.styles.Chip.Render("Up to " + formatPrice(m.sess.Ceiling()))
	chips := []string{ceiling}
	for _, b := range catalog.SeedBrands() {
		style := m.styles.Chip
		if strings.EqualFold(b.Name, m.sess.Brand()) {
			style = m.styles.ChipActive
		}
		chips = append(chips, style.Render(b.Name))
	}
	sb.WriteString(strings.Join(chips, " "))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("Categories: 1 Latest  2 Upcoming  3 Best 5G  4 Camera"))
	sb.WriteString("\n\n")

	visible := m.sess.Visible()
	filtered := m.sess.Filtered()

	if len(visible) == 0 {
		sb.WriteString(m.styles.Warning.Render("No phones match the current filters."))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("Press 0 to reset filters."))
		return sb.String()
	}

	for i, p := range visible {
		sb.WriteString(m.renderCard(p, i == m.cursor))
		sb.WriteString("\n")
	}

	switch {
	case len(visible) < len(filtered):
		sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("Showing %d of %d. Press m for more.", len(visible), len(filtered))))
	case m.sess.Enabled():
		sb.WriteString(m.styles.Muted.Render("Press m to fetch more popular phones."))
	}

	if n := m.sess.Selection().Len(); n > 0 {
		sb.WriteString("\n")
		names := make([]string, 0, n)
		for _, p := range m.sess.Selection().Phones() {
			names = append(names, truncate(p.Name, 24))
		}
		sb.WriteString(m.styles.Info.Render(fmt.Sprintf("Compare (%d/%d): %s",
			n, catalog.BrowseSelectionCap, strings.Join(names, ", "))))
	}

	return sb.String()
}

// renderCard renders one catalog row: name, price, rating and the four
// summary specs.
func (m appModel) renderCard(p catalog.Phone, highlighted bool) string {
	style := m.styles.Card
	if highlighted {
		style = m.styles.CardSelected
	}

	marker := "  "
	if m.sess.Selection().Contains(p.ID) {
		marker = m.styles.Success.Render("✓ ")
	}

	price := lipgloss.NewStyle().Foreground(ui.PriceTier(p.Price)).Bold(true).Render(formatPrice(p.Price))
	title := marker + m.styles.Bold.Render(truncate(p.Name, 40)) + "  " + price + "  " + m.styles.Rating.Render(ratingStars(p.Rating))

	summary := []string{}
	for _, key := range []string{"performance", "display", "camera", "battery"} {
		if v := p.SummaryValue(key); v != "" {
			summary = append(summary, truncate(v, 28))
		}
	}

	body := title
	if len(summary) > 0 {
		body += "\n" + m.styles.Muted.Render(strings.Join(summary, " · "))
	}
	return style.Render(body)
}

// renderDetail renders every spec section of the bound phone.
func (m appModel) renderDetail() string {
	p, ok := m.sess.Router.Detail()
	if !ok {
		return m.styles.Warning.Render("No phone selected.")
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(p.Name))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Price.Render(formatPrice(p.Price)))
	sb.WriteString("  " + m.styles.Rating.Render(ratingStars(p.Rating)) + m.styles.Muted.Render(fmt.Sprintf(" %d/100", p.Rating)))
	if p.LaunchDate != "" {
		sb.WriteString("  " + m.styles.Muted.Render("Launched "+p.LaunchDate))
	}
	sb.WriteString("\n")
	if p.StoreURL != "" {
		sb.WriteString(m.styles.Muted.Render(p.StoreURL))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for _, key := range catalog.SectionOrder {
		section, ok := p.Section(key)
		if !ok || len(section.Specs) == 0 {
			continue
		}
		sb.WriteString(m.styles.Bold.Render(section.Title))
		sb.WriteString("\n")
		for _, item := range orderedItems(section) {
			label := m.styles.Muted.Render(fmt.Sprintf("  %-18s", item.Label))
			sb.WriteString(label + m.styles.Body.Render(item.Value))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Info.Render("Press c to compare this phone."))
	return sb.String()
}

// orderedItems returns a section's specs in a stable label order.
func orderedItems(s catalog.SpecSection) []catalog.SpecItem {
	items := make([]catalog.SpecItem, 0, len(s.Specs))
	for _, item := range s.Specs {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Label < items[j].Label })
	return items
}

// renderCompare renders the side-by-side spec table for the compare list.
func (m appModel) renderCompare() string {
	list := m.sess.Compare().Phones()
	if len(list) == 0 {
		return m.styles.Warning.Render("Nothing to compare yet. Pick phones on the home page.")
	}

	headers := []string{"Spec"}
	for i, p := range list {
		headers = append(headers, fmt.Sprintf("%d. %s", i+1, truncate(p.Name, 22)))
	}

	table := ui.NewTable("Comparison", headers)
	table.MaxColWidth = 26

	row := func(label string, value func(catalog.Phone) string) {
		cells := []string{label}
		for _, p := range list {
			cells = append(cells, value(p))
		}
		table.AddRow(cells...)
	}

	row("Price", func(p catalog.Phone) string { return formatPrice(p.Price) })
	row("Rating", func(p catalog.Phone) string { return fmt.Sprintf("%s %d/100", ratingStars(p.Rating), p.Rating) })
	row("Performance", func(p catalog.Phone) string { return p.SummaryValue("performance") })
	row("Display", func(p catalog.Phone) string { return p.SummaryValue("display") })
	row("Camera", func(p catalog.Phone) string { return p.SummaryValue("camera") })
	row("Battery", func(p catalog.Phone) string { return p.SummaryValue("battery") })
	row("Launched", func(p catalog.Phone) string { return p.LaunchDate })

	if !m.compareFull {
		return table.View(m.styles) + "\n" + m.styles.Muted.Render("Press s for the full spec sheet.")
	}

	// Deeper sections follow the canonical order, skipping the summary
	// which is already covered above.
	for _, key := range catalog.SectionOrder {
		if key == catalog.SectionSummary {
			continue
		}
		labels := map[string]bool{}
		for _, p := range list {
			if section, ok := p.Section(key); ok {
				for _, item := range section.Specs {
					labels[item.Label] = true
				}
			}
		}
		for _, label := range sortedKeys(labels) {
			row(label, func(p catalog.Phone) string {
				section, ok := p.Section(key)
				if !ok {
					return ""
				}
				for _, item := range section.Specs {
					if item.Label == label {
						return item.Value
					}
				}
				return ""
			})
		}
	}

	return table.View(m.styles)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// renderChat renders the assistant panel under the current page.
func (m appModel) renderChat() string {
	var sb strings.Builder
	sb.WriteString(m.styles.RenderDivider(m.width))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Title.Render("🤖 Assistant"))
	sb.WriteString("\n")

	if len(m.history) == 0 {
		sb.WriteString(m.styles.Muted.Render("Ask anything about phones, budgets or specs."))
		sb.WriteString("\n")
		return sb.String()
	}

	for _, msg := range m.history {
		if msg.role == "user" {
			sb.WriteString(m.styles.Bold.Foreground(m.styles.Theme.Primary).Render("You") + "\n")
			sb.WriteString(m.styles.UserInput.Render(msg.content))
			sb.WriteString("\n\n")
			continue
		}
		sb.WriteString(m.styles.Bold.Foreground(m.styles.Theme.Accent).Render("Assistant") + "\n")
		if msg.content == "" {
			// A pending exchange awaiting its reply.
			sb.WriteString(m.styles.Muted.Render("…"))
			sb.WriteString("\n\n")
			continue
		}
		sb.WriteString(m.safeRenderMarkdown(msg.content))
		sb.WriteString("\n")
	}
	return sb.String()
}

// safeRenderMarkdown renders markdown with panic recovery; glamour can
// panic on malformed terminal profiles.
func (m appModel) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		rendered, err := m.renderer.Render(content)
		if err == nil {
			return rendered
		}
	}
	return content
}
