package sizing

func shirt(chest, shoulder, length float64) MeasurementSet {
	return MeasurementSet{"chest": chest, "shoulder": shoulder, "length": length}
}

func pant(waist, hip, inseam float64) MeasurementSet {
	return MeasurementSet{"waist": waist, "hip": hip, "inseam": inseam}
}

// DefaultChart returns the standard size table. Pant tables are keyed by
// waist size and have no "M" row, so their reference is the middle waist.
func DefaultChart() *Chart {
	return NewChart(map[Gender]map[Garment]GarmentChart{
		GenderMale: {
			GarmentShirt: {
				Reference: "M",
				Sizes: []Size{
					{Label: "S", Measurements: shirt(36, 17, 28)},
					{Label: "M", Measurements: shirt(40, 18, 29)},
					{Label: "L", Measurements: shirt(44, 19, 30)},
					{Label: "XL", Measurements: shirt(48, 20, 31)},
				},
			},
			GarmentPant: {
				Reference: "32",
				Sizes: []Size{
					{Label: "30", Measurements: pant(30, 38, 30)},
					{Label: "32", Measurements: pant(32, 40, 32)},
					{Label: "34", Measurements: pant(34, 42, 34)},
					{Label: "36", Measurements: pant(36, 44, 36)},
				},
			},
		},
		GenderFemale: {
			GarmentShirt: {
				Reference: "M",
				Sizes: []Size{
					{Label: "S", Measurements: shirt(34, 15, 26)},
					{Label: "M", Measurements: shirt(36, 16, 27)},
					{Label: "L", Measurements: shirt(38, 17, 28)},
					{Label: "XL", Measurements: shirt(40, 18, 29)},
				},
			},
			GarmentPant: {
				Reference: "30",
				Sizes: []Size{
					{Label: "28", Measurements: pant(28, 36, 28)},
					{Label: "30", Measurements: pant(30, 38, 30)},
					{Label: "32", Measurements: pant(32, 40, 32)},
					{Label: "34", Measurements: pant(34, 42, 34)},
				},
			},
		},
	})
}
