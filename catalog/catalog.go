package catalog

import (
	"sunsmart/models"
)

// parts is the fixed hardware inventory of the portal. Created at build
// time, never mutated at runtime.
var parts = []models.Part{
	{
		ID:          "1",
		Name:        "Satellite Antenna Dish",
		Category:    "Hardware",
		Description: "High-gain 60cm offset dish for superior signal reception even in rainy weather.",
		Cost:        850,
		ImageURL:    "https://picsum.photos/seed/dish/400/300",
		Stock:       45,
	},
	{
		ID:          "2",
		Name:        "Standard Remote Control",
		Category:    "Accessory",
		Description: "Original Sun Direct remote with ergonomic design and durable buttons.",
		Cost:        249,
		ImageURL:    "https://picsum.photos/seed/remote/400/300",
		Stock:       120,
	},
	{
		ID:          "3",
		Name:        "Universal Remote Control",
		Category:    "Accessory",
		Description: "Control both your TV and Sun Direct STB with a single smart remote.",
		Cost:        499,
		ImageURL:    "https://picsum.photos/seed/uremote/400/300",
		Stock:       85,
	},
	{
		ID:          "4",
		Name:        "RG6 Coaxial Cable (30m)",
		Category:    "Wiring",
		Description: "Low-loss shielded cable for crystal clear signal transmission from dish to STB.",
		Cost:        450,
		ImageURL:    "https://picsum.photos/seed/cable/400/300",
		Stock:       200,
	},
	{
		ID:          "5",
		Name:        "Dual LNB (Signal Receiver)",
		Category:    "Hardware",
		Description: "High-performance Low Noise Block downconverter for stable signal lock.",
		Cost:        599,
		ImageURL:    "https://picsum.photos/seed/lnb/400/300",
		Stock:       30,
	},
	{
		ID:          "6",
		Name:        "4K Ultra HD STB",
		Category:    "Receiver",
		Description: "Next-gen Set-Top Box supporting 4K resolution and surround sound.",
		Cost:        2999,
		ImageURL:    "https://picsum.photos/seed/stb4k/400/300",
		Stock:       15,
	},
	{
		ID:          "7",
		Name:        "HDMI 2.1 Cable (1.5m)",
		Category:    "Wiring",
		Description: "High-speed HDMI cable for uncompressed digital audio and video.",
		Cost:        299,
		ImageURL:    "https://picsum.photos/seed/hdmi/400/300",
		Stock:       150,
	},
}

// Parts returns a copy of the full catalog.
func Parts() []models.Part {
	out := make([]models.Part, len(parts))
	copy(out, parts)
	return out
}

// Find looks a part up by id.
func Find(id string) (models.Part, bool) {
	for _, p := range parts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Part{}, false
}
