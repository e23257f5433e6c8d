package enrich

import (
	"fmt"
	"strings"
)

// listSchema describes the JSON array shape the list fetches ask for. Only
// the summary section is requested; normalization fills the rest with
// placeholders so the cards render before details are fetched.
const listSchema = `
Return a JSON ARRAY of objects. Each object must match:
{
  "id": "string (kebab-case-model-name)",
  "name": "string (Full Model Name)",
  "price": number (Estimated Price in INR),
  "rating": number (80-99),
  "launchDate": "string (e.g., Jan 2024)",
  "specs": {
    "summary": {
      "title": "Summary",
      "specs": {
        "performance": { "label": "Performance", "value": "string (Chipset name)" },
        "display": { "label": "Display", "value": "string (Size & Type)" },
        "camera": { "label": "Camera", "value": "string (MP count)" },
        "battery": { "label": "Battery", "value": "string (mAh & Charging)" }
      }
    }
  }
}`

// brandPrompt asks for a bounded list of phones for a brand name or a
// category phrase ("upcoming smartphones", "best 5G under 30000").
func brandPrompt(topic string, n int) string {
	return fmt.Sprintf(`List %d of the latest and most popular smartphones from the brand or category %q.
%s
Do NOT include placeholders. Use real data.`, n, topic, listSchema)
}

// morePopularPrompt asks for records disjoint from the exclusion list. The
// caller caps the list; a runaway catalog would otherwise blow the prompt.
func morePopularPrompt(exclude []string, n int) string {
	return fmt.Sprintf(`List %d popular smartphones released in 2023-2025 that are NOT in this list: %s.
Include a mix of Flagship and Budget phones.
%s`, n, strings.Join(exclude, ", "), listSchema)
}

// detailPrompt asks for one fully-populated record with all nine sections.
func detailPrompt(name string) string {
	return fmt.Sprintf(`Generate a JSON object for the smartphone %q.
It must match this EXACT structure. Use "Yes/No" or detailed string values.

{
  "id": "string (kebab-case name)",
  "name": "string",
  "price": number (in INR),
  "rating": number (80-100),
  "launchDate": "string",
  "specs": {
    "summary": { "title": "Summary", "specs": { "performance": {"label": "Performance", "value": "string"}, "display": {"label": "Display", "value": "string"}, "camera": {"label": "Camera", "value": "string"}, "battery": {"label": "Battery", "value": "string"} } },
    "general": { "title": "General", "specs": { "launchDate": {"label": "Launch Date", "value": "string"}, "os": {"label": "Operating System", "value": "string"}, "customUi": {"label": "Custom UI", "value": "string"} } },
    "performance": { "title": "Performance", "specs": { "chipset": {"label": "Chipset", "value": "string"}, "cpu": {"label": "CPU", "value": "string"}, "architecture": {"label": "Architecture", "value": "string"}, "fabrication": {"label": "Fabrication", "value": "string"}, "graphics": {"label": "Graphics", "value": "string"}, "ram": {"label": "RAM", "value": "string"} } },
    "display": { "title": "Display", "specs": { "type": {"label": "Display Type", "value": "string"}, "size": {"label": "Screen Size", "value": "string"}, "resolution": {"label": "Resolution", "value": "string"}, "aspectRatio": {"label": "Aspect Ratio", "value": "string"}, "pixelDensity": {"label": "Pixel Density", "value": "string"}, "protection": {"label": "Screen Protection", "value": "string"}, "refreshRate": {"label": "Refresh Rate", "value": "string"} } },
    "design": { "title": "Design", "specs": { "height": {"label": "Height", "value": "string"}, "width": {"label": "Width", "value": "string"}, "thickness": {"label": "Thickness", "value": "string"}, "weight": {"label": "Weight", "value": "string"}, "build": {"label": "Build Material", "value": "string"}, "waterproof": {"label": "Waterproof", "value": "string"} } },
    "camera": { "title": "Camera", "specs": { "main": {"label": "Main Camera", "value": "string"}, "front": {"label": "Front Camera", "value": "string"}, "flash": {"label": "Flash", "value": "string"}, "features": {"label": "Features", "value": "string"}, "video": {"label": "Video Recording", "value": "string"} } },
    "battery": { "title": "Battery", "specs": { "capacity": {"label": "Capacity", "value": "string"}, "type": {"label": "Type", "value": "string"}, "charging": {"label": "Quick Charging", "value": "string"}, "wireless": {"label": "Wireless Charging", "value": "string"} } },
    "storage": { "title": "Storage", "specs": { "internal": {"label": "Internal Memory", "value": "string"}, "expandable": {"label": "Expandable Memory", "value": "string"} } },
    "network": { "title": "Network & Connectivity", "specs": { "sim": {"label": "SIM Slot(s)", "value": "string"}, "network": {"label": "Network Support", "value": "string"}, "volte": {"label": "VoLTE", "value": "string"}, "wifi": {"label": "Wi-Fi", "value": "string"}, "bluetooth": {"label": "Bluetooth", "value": "string"}, "nfc": {"label": "NFC", "value": "string"}, "usb": {"label": "USB Connectivity", "value": "string"} } }
  }
}`, name)
}

// advicePrompt wraps a user question for the assistant. Answers are shown
// as-is in the chat overlay, so the prompt keeps them short.
func advicePrompt(question string) string {
	return fmt.Sprintf(`You are an expert mobile phone reviewer. Answer the user's question briefly and professionally about mobile phones.

User Question: %s

Keep the answer under 50 words. Focus on value for money and specs.`, question)
}
