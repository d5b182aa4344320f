package folio

import (
	"encoding/json"
	"fmt"
)

// Item is one project in the gallery catalog.
type Item struct {
	Title string `json:"title"`
	Image string `json:"image"`
	Year  int    `json:"year"`
	// Href is the navigation destination. Empty means the item is not linked.
	Href string `json:"href"`
}

// Catalog is the ordered list of gallery items. Order defines the atlas slot
// of each item and the index the coordinate mapper folds grid cells onto.
type Catalog []Item

// LoadCatalog parses a JSON array of items:
//
//	[{"title": "Motion Study", "image": "/assets/img1.jpeg", "year": 2024, "href": "./p.html"}]
func LoadCatalog(jsonData []byte) (Catalog, error) {
	var items []Item
	if err := json.Unmarshal(jsonData, &items); err != nil {
		return nil, fmt.Errorf("folio: failed to parse catalog JSON: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, it := range items {
		if it.Title == "" {
			return nil, fmt.Errorf("folio: catalog item %d has no title", i)
		}
	}
	return Catalog(items), nil
}

// DefaultCatalog returns the studio's shipped project list.
func DefaultCatalog() Catalog {
	const href = "./sample-project.html"
	return Catalog{
		{Title: "Motion Study", Image: "/assets/img1.jpeg", Year: 2024, Href: href},
		{Title: "Idle Form", Image: "/assets/img2.png", Year: 2023, Href: href},
		{Title: "Blur Signal", Image: "/assets/img3.png", Year: 2024, Href: href},
		{Title: "Still Drift", Image: "/assets/img4.png", Year: 2023, Href: href},
		{Title: "Silent Horizon", Image: "/assets/img5.png", Year: 2024, Href: href},
		{Title: "Neon Pulse", Image: "/assets/img6.png", Year: 2022, Href: href},
		{Title: "Echo Frame", Image: "/assets/img7.png", Year: 2023, Href: href},
		{Title: "Lunar Static", Image: "/assets/img8.png", Year: 2024, Href: href},
		{Title: "Crimson Fade", Image: "/assets/img9.png", Year: 2021, Href: href},
		{Title: "Golden Offset", Image: "/assets/img10.png", Year: 2022, Href: href},
		{Title: "Phantom Grid", Image: "/assets/img11.png", Year: 2024, Href: href},
		{Title: "Velvet Noise", Image: "/assets/img12.png", Year: 2023, Href: href},
		{Title: "Glass Spectrum", Image: "/assets/img13.png", Year: 2022, Href: href},
		{Title: "Shadow Bloom", Image: "/assets/img14.png", Year: 2024, Href: href},
		{Title: "Digital Mirage", Image: "/assets/img15.png", Year: 2021, Href: href},
		{Title: "Static Bloom", Image: "/assets/img16.png", Year: 2023, Href: href},
		{Title: "Midnight Vector", Image: "/assets/img17.png", Year: 2024, Href: href},
		{Title: "Silver Current", Image: "/assets/img18.png", Year: 2022, Href: href},
		{Title: "Urban Flux", Image: "/assets/img19.png", Year: 2023, Href: href},
		{Title: "Aurora Shift", Image: "/assets/img20.png", Year: 2024, Href: href},
	}
}
