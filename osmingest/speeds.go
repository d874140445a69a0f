package osmingest

// speedMPS is a fixed per-highway-class speed table in meters/second,
// used only so weight.TravelTime has something non-degenerate to divide
// by. There is no live or variable speed sourcing — matching spec.md's
// "Open question — TravelTime speed sourcing", which treats the
// original's hard-coded-at-construction speed as a known limitation
// rather than something to fix here.
var speedMPS = map[string]float64{
	"motorway":      33.3, // 120 km/h
	"trunk":         27.8, // 100 km/h
	"primary":       22.2, // 80 km/h
	"secondary":     19.4, // 70 km/h
	"tertiary":      15.3, // 55 km/h
	"unclassified":  12.5, // 45 km/h
	"residential":   8.3,  // 30 km/h
	"living_street": 4.2,  // 15 km/h
	"service":       4.2,
	"track":         4.2,
}

const defaultSpeedMPS = 8.3

func highwaySpeed(highway string) float64 {
	if s, ok := speedMPS[highway]; ok {
		return s
	}
	return defaultSpeedMPS
}
