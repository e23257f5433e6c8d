package catalog

import (
	"fmt"
	"net/url"
)

// ImageURL builds a deterministic image reference for a phone name. The
// image search proxy resolves the query to a product render at view time.
func ImageURL(name string) string {
	q := url.QueryEscape(name + " smartphone front official render white background")
	return fmt.Sprintf("https://tse2.mm.bing.net/th?q=%s&w=300&h=400&c=7&rs=1&p=0", q)
}

// StoreURL builds the deterministic store-search link for a phone name.
// Used both as the fallback when a record carries no explicit link and as
// the default "go to store" action.
func StoreURL(name string) string {
	return "https://www.amazon.in/s?k=" + url.QueryEscape(name+" smartphone")
}

// detailedSpecs builds the full nine-section spec map for a seed record.
// Values the compact seed rows do not carry are generic placeholders, same
// as remotely fetched records get.
func detailedSpecs(launch, chip, ram, screenSize, screenRes, mainCam, frontCam, batCap, charge string) map[string]SpecSection {
	return map[string]SpecSection{
		SectionSummary: {Title: "Summary", Specs: map[string]SpecItem{
			"performance": {Label: "Performance", Value: chip},
			"display":     {Label: "Display", Value: screenSize},
			"camera":      {Label: "Camera", Value: mainCam},
			"battery":     {Label: "Battery", Value: batCap},
		}},
		SectionGeneral: {Title: "General", Specs: map[string]SpecItem{
			"launchDate": {Label: "Launch Date", Value: launch},
			"os":         {Label: "Operating System", Value: "Android / iOS"},
			"customUi":   {Label: "Custom UI", Value: "Official UI"},
		}},
		SectionPerformance: {Title: "Performance", Specs: map[string]SpecItem{
			"chipset":      {Label: "Chipset", Value: chip},
			"cpu":          {Label: "CPU", Value: "Octa/Hexa core"},
			"architecture": {Label: "Architecture", Value: "64 bit"},
			"fabrication":  {Label: "Fabrication", Value: "4 nm / 5 nm"},
			"graphics":     {Label: "Graphics", Value: "Adreno / GPU"},
			"ram":          {Label: "RAM", Value: ram},
		}},
		SectionDisplay: {Title: "Display", Specs: map[string]SpecItem{
			"type":         {Label: "Display Type", Value: "AMOLED/LCD"},
			"size":         {Label: "Screen Size", Value: screenSize},
			"resolution":   {Label: "Resolution", Value: screenRes},
			"aspectRatio":  {Label: "Aspect Ratio", Value: "20:9"},
			"pixelDensity": {Label: "Pixel Density", Value: "High"},
			"protection":   {Label: "Screen Protection", Value: "Corning Gorilla Glass"},
			"refreshRate":  {Label: "Refresh Rate", Value: "120 Hz / 60 Hz"},
		}},
		SectionDesign: {Title: "Design", Specs: map[string]SpecItem{
			"height":     {Label: "Height", Value: "-"},
			"width":      {Label: "Width", Value: "-"},
			"thickness":  {Label: "Thickness", Value: "-"},
			"weight":     {Label: "Weight", Value: "-"},
			"build":      {Label: "Build Material", Value: "Glass/Plastic"},
			"waterproof": {Label: "Waterproof", Value: "Yes/No"},
		}},
		SectionCamera: {Title: "Camera", Specs: map[string]SpecItem{
			"main":     {Label: "Main Camera", Value: mainCam},
			"front":    {Label: "Front Camera", Value: frontCam},
			"flash":    {Label: "Flash", Value: "Yes, LED Flash"},
			"features": {Label: "Features", Value: "Digital Zoom, Auto Flash"},
			"video":    {Label: "Video Recording", Value: "4K / 1080p"},
		}},
		SectionBattery: {Title: "Battery", Specs: map[string]SpecItem{
			"capacity": {Label: "Capacity", Value: batCap},
			"type":     {Label: "Type", Value: "Li-Polymer"},
			"charging": {Label: "Quick Charging", Value: charge},
			"wireless": {Label: "Wireless Charging", Value: "Yes/No"},
		}},
		SectionStorage: {Title: "Storage", Specs: map[string]SpecItem{
			"internal":   {Label: "Internal Memory", Value: "128GB / 256GB"},
			"expandable": {Label: "Expandable Memory", Value: "No"},
		}},
		SectionNetwork: {Title: "Network & Connectivity", Specs: map[string]SpecItem{
			"sim":       {Label: "SIM Slot(s)", Value: "Dual SIM"},
			"network":   {Label: "Network Support", Value: "5G, 4G"},
			"volte":     {Label: "VoLTE", Value: "Yes"},
			"wifi":      {Label: "Wi-Fi", Value: "Yes"},
			"bluetooth": {Label: "Bluetooth", Value: "Yes"},
			"nfc":       {Label: "NFC", Value: "Yes"},
			"usb":       {Label: "USB Connectivity", Value: "USB-C"},
		}},
	}
}

func seedPhone(id, name string, price, rating int, launch, chip, ram, screenSize, screenRes, mainCam, frontCam, batCap, charge string) Phone {
	return Phone{
		ID:         id,
		Name:       name,
		Price:      price,
		Rating:     rating,
		Image:      ImageURL(name),
		LaunchDate: launch,
		StoreURL:   StoreURL(name),
		Specs:      detailedSpecs(launch, chip, ram, screenSize, screenRes, mainCam, frontCam, batCap, charge),
	}
}

// SeedPhones returns the static seed catalog: key flagships first, then
// mid-range and budget models, then older classics. The slice is freshly
// built on each call so callers can mutate their copy.
func SeedPhones() []Phone {
	flagships := []Phone{
		seedPhone("s24ultra", "Samsung Galaxy S24 Ultra", 129999, 98, "Jan 17, 2024", "Snapdragon 8 Gen 3", "12 GB", "6.8 inches", "1440x3120 px", "200 MP + 50 MP", "12 MP", "5000 mAh", "45W"),
		seedPhone("iphone15promax", "Apple iPhone 15 Pro Max", 148900, 97, "Sep 22, 2023", "Apple A17 Pro", "8 GB", "6.7 inches", "1290x2796 px", "48 MP + 12 MP", "12 MP", "4441 mAh", "20W"),
		seedPhone("oneplus12", "OnePlus 12", 64999, 93, "Jan 23, 2024", "Snapdragon 8 Gen 3", "12 GB", "6.82 inches", "1440x3168 px", "50 MP + 64 MP", "32 MP", "5400 mAh", "100W"),
		seedPhone("xiaomi14ultra", "Xiaomi 14 Ultra", 99999, 96, "Apr 12, 2024", "Snapdragon 8 Gen 3", "16 GB", "6.73 inches", "1440x3200 px", "50 MP Quad", "32 MP", "5000 mAh", "90W"),
		seedPhone("pixel8pro", "Google Pixel 8 Pro", 98999, 91, "Oct 04, 2023", "Tensor G3", "12 GB", "6.7 inches", "1344x2992 px", "50 MP + 48 MP", "10.5 MP", "5050 mAh", "30W"),
		seedPhone("iqoo12", "iQOO 12", 52999, 94, "Dec 12, 2023", "Snapdragon 8 Gen 3", "12 GB", "6.78 inches", "1260x2800 px", "50 MP + 50 MP", "16 MP", "5000 mAh", "120W"),
		seedPhone("motoedge50pro", "Motorola Edge 50 Pro", 31999, 88, "Apr 03, 2024", "Snapdragon 7 Gen 3", "8 GB", "6.7 inches", "1220x2712 px", "50 MP + 13 MP", "50 MP", "4500 mAh", "125W"),
		seedPhone("nothing2a", "Nothing Phone (2a)", 23999, 84, "Mar 05, 2024", "Dimensity 7200 Pro", "8 GB", "6.7 inches", "1080x2412 px", "50 MP + 50 MP", "32 MP", "5000 mAh", "45W"),
		seedPhone("vivo-x100", "Vivo X100", 63999, 92, "Jan 04, 2024", "Dimensity 9300", "12 GB", "6.78 inches", "1260x2800 px", "50 MP Triple", "32 MP", "5000 mAh", "120W"),
		seedPhone("realme-12-pro", "Realme 12 Pro+", 29999, 85, "Jan 29, 2024", "Snapdragon 7s Gen 2", "8 GB", "6.7 inches", "FHD+", "50 MP + 64 MP", "32 MP", "5000 mAh", "67W"),
	}

	midRange := []Phone{
		seedPhone("redmi-note-13-pro", "Redmi Note 13 Pro", 25999, 85, "Jan 2024", "Snapdragon 7s Gen 2", "8 GB", "6.67 inch", "1.5K", "200MP", "16MP", "5100mAh", "67W"),
		seedPhone("poco-x6-pro", "POCO X6 Pro", 26999, 88, "Jan 2024", "Dimensity 8300 Ultra", "8 GB", "6.67 inch", "1.5K", "64MP", "16MP", "5000mAh", "67W"),
		seedPhone("nord-ce4", "OnePlus Nord CE 4", 24999, 84, "Apr 2024", "Snapdragon 7 Gen 3", "8 GB", "6.7 inch", "FHD+", "50MP", "16MP", "5500mAh", "100W"),
		seedPhone("galaxy-a55", "Samsung Galaxy A55", 39999, 82, "Mar 2024", "Exynos 1480", "8 GB", "6.6 inch", "FHD+", "50MP", "32MP", "5000mAh", "25W"),
		seedPhone("galaxy-a35", "Samsung Galaxy A35", 30999, 80, "Mar 2024", "Exynos 1380", "8 GB", "6.6 inch", "FHD+", "50MP", "13MP", "5000mAh", "25W"),
		seedPhone("iphone-14", "Apple iPhone 14", 58999, 88, "Sep 2022", "A15 Bionic", "6 GB", "6.1 inch", "Retina", "12MP", "12MP", "3279mAh", "20W"),
		seedPhone("iphone-13", "Apple iPhone 13", 49999, 85, "Sep 2021", "A15 Bionic", "4 GB", "6.1 inch", "Retina", "12MP", "12MP", "3240mAh", "20W"),
		seedPhone("s23-ultra", "Samsung Galaxy S23 Ultra", 89999, 95, "Feb 2023", "Snapdragon 8 Gen 2", "12 GB", "6.8 inch", "QHD+", "200MP", "12MP", "5000mAh", "45W"),
		seedPhone("s23", "Samsung Galaxy S23", 54999, 90, "Feb 2023", "Snapdragon 8 Gen 2", "8 GB", "6.1 inch", "FHD+", "50MP", "12MP", "3900mAh", "25W"),
		seedPhone("pixel-7a", "Google Pixel 7a", 37999, 83, "May 2023", "Tensor G2", "8 GB", "6.1 inch", "FHD+", "64MP", "13MP", "4385mAh", "18W"),
		seedPhone("pixel-7", "Google Pixel 7", 44999, 86, "Oct 2022", "Tensor G2", "8 GB", "6.3 inch", "FHD+", "50MP", "10.8MP", "4355mAh", "20W"),
		seedPhone("moto-g84", "Motorola Moto G84", 18999, 78, "Sep 2023", "Snapdragon 695", "12 GB", "6.55 inch", "FHD+", "50MP", "16MP", "5000mAh", "30W"),
		seedPhone("realme-12x", "Realme 12x 5G", 11999, 72, "Apr 2024", "Dimensity 6100+", "4 GB", "6.72 inch", "FHD+", "50MP", "8MP", "5000mAh", "45W"),
		seedPhone("vivo-t3", "Vivo T3", 19999, 80, "Mar 2024", "Dimensity 7200", "8 GB", "6.67 inch", "FHD+", "50MP", "16MP", "5000mAh", "44W"),
		seedPhone("iqoo-z9", "iQOO Z9", 19999, 81, "Mar 2024", "Dimensity 7200", "8 GB", "6.67 inch", "FHD+", "50MP", "16MP", "5000mAh", "44W"),
		seedPhone("oppo-f25-pro", "Oppo F25 Pro", 23999, 82, "Feb 2024", "Dimensity 7050", "8 GB", "6.7 inch", "FHD+", "64MP", "32MP", "5000mAh", "67W"),
		seedPhone("narzo-70-pro", "Realme Narzo 70 Pro", 19999, 81, "Mar 2024", "Dimensity 7050", "8 GB", "6.67 inch", "FHD+", "50MP", "16MP", "5000mAh", "67W"),
		seedPhone("tecno-pova-6", "Tecno Pova 6 Pro", 19999, 76, "Mar 2024", "Dimensity 6080", "8 GB", "6.78 inch", "FHD+", "108MP", "32MP", "6000mAh", "70W"),
		seedPhone("lava-blaze-curve", "Lava Blaze Curve", 17999, 78, "Mar 2024", "Dimensity 7050", "8 GB", "6.67 inch", "FHD+", "64MP", "32MP", "5000mAh", "33W"),
		seedPhone("honor-x9b", "Honor X9b", 25999, 80, "Feb 2024", "Snapdragon 6 Gen 1", "8 GB", "6.78 inch", "1.5K", "108MP", "16MP", "5800mAh", "35W"),
	}

	classics := []Phone{
		seedPhone("oneplus-7t", "OnePlus 7T", 14999, 75, "Sep 2019", "Snapdragon 855+", "8 GB", "6.55 inch", "FHD+", "48MP", "16MP", "3800mAh", "30W"),
		seedPhone("iphone-xr", "Apple iPhone XR", 22999, 72, "Oct 2018", "A12 Bionic", "3 GB", "6.1 inch", "HD+", "12MP", "7MP", "2942mAh", "15W"),
		seedPhone("redmi-note-10-pro", "Redmi Note 10 Pro", 12999, 76, "Mar 2021", "Snapdragon 732G", "6 GB", "6.67 inch", "FHD+", "64MP", "16MP", "5020mAh", "33W"),
		seedPhone("s20-fe", "Samsung Galaxy S20 FE 5G", 24999, 82, "Oct 2020", "Snapdragon 865", "8 GB", "6.5 inch", "FHD+", "12MP", "32MP", "4500mAh", "25W"),
		seedPhone("realme-gt-6t", "Realme GT 6T", 30999, 89, "May 2024", "Snapdragon 7+ Gen 3", "8 GB", "6.78 inch", "1.5K", "50MP", "32MP", "5500mAh", "120W"),
		seedPhone("poco-f6", "POCO F6", 29999, 88, "May 2024", "Snapdragon 8s Gen 3", "8 GB", "6.67 inch", "1.5K", "50MP", "20MP", "5000mAh", "90W"),
		seedPhone("moto-edge-50-fusion", "Motorola Edge 50 Fusion", 22999, 85, "May 2024", "Snapdragon 7s Gen 2", "8 GB", "6.7 inch", "FHD+", "50MP", "32MP", "5000mAh", "68W"),
		seedPhone("vivo-v30", "Vivo V30", 33999, 84, "Mar 2024", "Snapdragon 7 Gen 3", "8 GB", "6.78 inch", "1.5K", "50MP", "50MP", "5000mAh", "80W"),
		seedPhone("oneplus-nord-3", "OnePlus Nord 3", 29999, 83, "Jul 2023", "Dimensity 9000", "8 GB", "6.74 inch", "1.5K", "50MP", "16MP", "5000mAh", "80W"),
		seedPhone("redmi-13c", "Redmi 13C", 8999, 70, "Dec 2023", "Helio G85", "4 GB", "6.74 inch", "HD+", "50MP", "8MP", "5000mAh", "18W"),
		seedPhone("samsung-m34", "Samsung Galaxy M34", 15999, 79, "Jul 2023", "Exynos 1280", "6 GB", "6.5 inch", "FHD+", "50MP", "13MP", "6000mAh", "25W"),
		seedPhone("iphone-12", "Apple iPhone 12", 39999, 80, "Oct 2020", "A14 Bionic", "4 GB", "6.1 inch", "Retina", "12MP", "12MP", "2815mAh", "20W"),
		seedPhone("pixel-6a", "Google Pixel 6a", 24999, 78, "May 2022", "Tensor", "6 GB", "6.1 inch", "FHD+", "12.2MP", "8MP", "4410mAh", "18W"),
		seedPhone("cmf-phone-1", "CMF Phone 1", 15999, 82, "Jul 2024", "Dimensity 7300", "6 GB", "6.67 inch", "FHD+", "50MP", "16MP", "5000mAh", "33W"),
	}

	all := make([]Phone, 0, len(flagships)+len(midRange)+len(classics))
	all = append(all, flagships...)
	all = append(all, midRange...)
	all = append(all, classics...)
	return all
}

// SeedBrands returns the featured-brand roster shown on the home view.
func SeedBrands() []Brand {
	names := []string{
		"Samsung", "Apple", "Xiaomi", "OnePlus", "Realme", "Vivo", "OPPO",
		"Motorola", "Google", "POCO", "iQOO", "Honor", "Tecno", "Lava",
	}
	brands := make([]Brand, len(names))
	for i, n := range names {
		brands[i] = Brand{Name: n, Image: ImageURL(n + " Logo")}
	}
	return brands
}

// SeedNews returns the static headlines for the home-view news ticker.
func SeedNews() []NewsItem {
	return []NewsItem{
		{ID: "1", Title: "Samsung Galaxy S25 Ultra renders leak showing flat display", Time: "2 hours ago", Image: ImageURL("Samsung Galaxy S25 Ultra Leak")},
		{ID: "2", Title: "iPhone 16 Pro Max battery capacity tipped to increase", Time: "5 hours ago", Image: ImageURL("iPhone 16 Pro Max Concept")},
		{ID: "3", Title: "Nothing Phone 3 teased with new transparent design", Time: "1 Day ago", Image: ImageURL("Nothing Phone 3")},
	}
}
