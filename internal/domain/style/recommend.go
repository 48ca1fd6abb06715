package style

import (
	"perfect-fit/internal/domain/fit"
	"perfect-fit/internal/domain/sizing"
)

type Recommendation struct {
	Style       string `json:"style"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

const placeholderBase = "https://via.placeholder.com/200x250/"

func placeholder(bg, fg, text string) string {
	return placeholderBase + bg + "/" + fg + "?text=" + text
}

var catalog = map[sizing.Gender]map[sizing.Garment][2]Recommendation{
	sizing.GenderMale: {
		sizing.GarmentShirt: {
			{Style: "Classic Fit", Description: "Comfortable and versatile for everyday wear", Image: placeholder("007bff", "ffffff", "Classic+Fit")},
			{Style: "Slim Fit", Description: "Modern tailored look for a sleek appearance", Image: placeholder("28a745", "ffffff", "Slim+Fit")},
		},
		sizing.GarmentPant: {
			{Style: "Straight Leg", Description: "Timeless and comfortable cut", Image: placeholder("ffc107", "000000", "Straight+Leg")},
			{Style: "Tapered Fit", Description: "Contemporary style with narrower ankle", Image: placeholder("dc3545", "ffffff", "Tapered+Fit")},
		},
	},
	sizing.GenderFemale: {
		sizing.GarmentShirt: {
			{Style: "Regular Fit", Description: "Comfortable and flattering for all body types", Image: placeholder("e83e8c", "ffffff", "Regular+Fit")},
			{Style: "Fitted", Description: "Elegant silhouette that follows your curves", Image: placeholder("6f42c1", "ffffff", "Fitted")},
		},
		sizing.GarmentPant: {
			{Style: "High Waist", Description: "Flattering and on-trend style", Image: placeholder("fd7e14", "ffffff", "High+Waist")},
			{Style: "Bootcut", Description: "Classic and versatile fit", Image: placeholder("20c997", "ffffff", "Bootcut")},
		},
	},
}

// Recommend returns the two style suggestions for a garment category. The
// verdict does not influence the result.
func Recommend(gender sizing.Gender, garment sizing.Garment, _ fit.Verdict) [2]Recommendation {
	if gender != sizing.GenderMale {
		gender = sizing.GenderFemale
	}
	if garment != sizing.GarmentShirt {
		garment = sizing.GarmentPant
	}
	return catalog[gender][garment]
}
