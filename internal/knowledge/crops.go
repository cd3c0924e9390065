// Package knowledge holds the compiled-in crop catalogue served on /crops.
// The records mirror the label vocabulary of the trained classifier and are
// immutable at runtime.
package knowledge

// CropRecord describes a single crop in the knowledge base.
type CropRecord struct {
	ImageFile   string
	Description string
	Soil        string
	Temperature string
	Rainfall    string
	PH          string
	Benefits    string
	Notes       string
}

var crops = map[string]CropRecord{
	"apple": {
		ImageFile:   "apple.jpg",
		Description: "Temperate fruit tree grown in cool hilly regions.",
		Soil:        "Well-drained loamy soil rich in organic matter",
		Temperature: "21-24 degrees C during growing season",
		Rainfall:    "1000-1250 mm annually",
		PH:          "5.5-6.5",
		Benefits:    "Rich in fibre and antioxidants",
		Notes:       "Requires a chilling period for proper fruiting.",
	},
	"banana": {
		ImageFile:   "banana.jpg",
		Description: "Tropical herbaceous plant producing fruit year-round.",
		Soil:        "Deep, rich loamy soil with good drainage",
		Temperature: "26-30 degrees C",
		Rainfall:    "1700-2500 mm annually",
		PH:          "6.0-7.5",
		Benefits:    "High in potassium and quick energy",
	},
	"blackgram": {
		ImageFile:   "blackgram.jpg",
		Description: "Short-duration pulse crop grown in warm seasons.",
		Soil:        "Loamy to clayey soil with moderate fertility",
		Temperature: "25-35 degrees C",
		Rainfall:    "600-800 mm annually",
		PH:          "6.5-7.8",
		Benefits:    "Fixes nitrogen and improves soil fertility",
	},
	"chickpea": {
		ImageFile:   "chickpea.jpg",
		Description: "Cool-season pulse crop tolerant of dry conditions.",
		Soil:        "Sandy loam to clay loam",
		Temperature: "20-25 degrees C",
		Rainfall:    "400-600 mm annually",
		PH:          "6.0-7.5",
		Benefits:    "High-protein legume suited to rainfed farming",
	},
	"coconut": {
		ImageFile:   "coconut.jpg",
		Description: "Coastal palm cultivated for copra, oil and water.",
		Soil:        "Sandy coastal alluvium with good drainage",
		Temperature: "27-32 degrees C",
		Rainfall:    "1500-2500 mm annually",
		PH:          "5.2-8.0",
		Benefits:    "Every part of the palm has commercial use",
	},
	"coffee": {
		ImageFile:   "coffee.jpg",
		Description: "Shade-loving plantation crop of humid highlands.",
		Soil:        "Deep, friable loam rich in humus",
		Temperature: "15-28 degrees C",
		Rainfall:    "1500-2500 mm annually",
		PH:          "6.0-6.5",
		Benefits:    "High-value export crop",
		Notes:       "Grown under shade trees at 600-1600 m elevation.",
	},
	"cotton": {
		ImageFile:   "cotton.jpg",
		Description: "Fibre crop of warm semi-arid regions.",
		Soil:        "Deep black cotton soil or alluvial loam",
		Temperature: "21-30 degrees C",
		Rainfall:    "500-1000 mm annually",
		PH:          "5.8-8.0",
		Benefits:    "Primary natural fibre for textiles",
	},
	"grapes": {
		ImageFile:   "grapes.jpg",
		Description: "Perennial vine grown on trellises in mild climates.",
		Soil:        "Well-drained sandy loam",
		Temperature: "15-35 degrees C",
		Rainfall:    "500-800 mm annually",
		PH:          "6.5-7.5",
		Benefits:    "Table fruit, raisins and wine production",
	},
	"jute": {
		ImageFile:   "jute.jpg",
		Description: "Bast fibre crop of hot, humid deltas.",
		Soil:        "New grey alluvial soil of good depth",
		Temperature: "24-37 degrees C",
		Rainfall:    "1200-2500 mm annually",
		PH:          "6.0-7.5",
		Benefits:    "Biodegradable packaging fibre",
	},
	"kidneybeans": {
		ImageFile:   "kidneybeans.jpg",
		Description: "Warm-season legume grown for dry beans.",
		Soil:        "Friable loam with good drainage",
		Temperature: "18-27 degrees C",
		Rainfall:    "600-1200 mm annually",
		PH:          "6.0-7.0",
		Benefits:    "Protein-rich staple pulse",
	},
	"lentil": {
		ImageFile:   "lentil.jpg",
		Description: "Hardy cool-season pulse for light soils.",
		Soil:        "Sandy loam to clay loam",
		Temperature: "18-30 degrees C",
		Rainfall:    "350-550 mm annually",
		PH:          "6.0-8.0",
		Benefits:    "Drought tolerant and soil enriching",
	},
	"maize": {
		ImageFile:   "maize.jpg",
		Description: "Versatile cereal grown across warm regions.",
		Soil:        "Deep fertile loam with good drainage",
		Temperature: "21-30 degrees C",
		Rainfall:    "500-900 mm annually",
		PH:          "5.5-7.0",
		Benefits:    "Food, feed and industrial starch crop",
	},
	"mango": {
		ImageFile:   "mango.jpg",
		Description: "Tropical fruit tree with a long productive life.",
		Soil:        "Deep alluvial or lateritic soil",
		Temperature: "24-30 degrees C",
		Rainfall:    "750-2500 mm annually",
		PH:          "5.5-7.5",
		Benefits:    "Premium table fruit and pulp industry",
	},
	"mothbeans": {
		ImageFile:   "mothbeans.jpg",
		Description: "Drought-hardy pulse of arid tracts.",
		Soil:        "Light sandy soil",
		Temperature: "27-35 degrees C",
		Rainfall:    "300-600 mm annually",
		PH:          "6.0-8.5",
		Benefits:    "Survives where few other crops grow",
	},
	"mungbean": {
		ImageFile:   "mungbean.jpg",
		Description: "Quick-maturing summer pulse.",
		Soil:        "Well-drained loam",
		Temperature: "25-35 degrees C",
		Rainfall:    "400-700 mm annually",
		PH:          "6.2-7.2",
		Benefits:    "Fits well into crop rotations",
	},
	"muskmelon": {
		ImageFile:   "muskmelon.jpg",
		Description: "Warm-season cucurbit grown on river beds.",
		Soil:        "Sandy loam rich in organic matter",
		Temperature: "24-30 degrees C",
		Rainfall:    "400-600 mm annually",
		PH:          "6.0-7.0",
		Benefits:    "High market value in summer months",
	},
	"orange": {
		ImageFile:   "orange.jpg",
		Description: "Subtropical citrus grown for fresh fruit and juice.",
		Soil:        "Well-drained sandy loam",
		Temperature: "15-30 degrees C",
		Rainfall:    "1000-1200 mm annually",
		PH:          "6.0-7.5",
		Benefits:    "Vitamin C rich fruit with steady demand",
	},
	"papaya": {
		ImageFile:   "papaya.jpg",
		Description: "Fast-growing tropical fruit plant.",
		Soil:        "Rich, well-drained loam",
		Temperature: "22-32 degrees C",
		Rainfall:    "1000-2000 mm annually",
		PH:          "6.0-6.5",
		Benefits:    "Bears fruit within a year of planting",
		Notes:       "Very sensitive to waterlogging and frost.",
	},
	"pigeonpeas": {
		ImageFile:   "pigeonpeas.jpg",
		Description: "Deep-rooted perennial pulse for dryland farming.",
		Soil:        "Well-drained medium soil",
		Temperature: "26-30 degrees C",
		Rainfall:    "600-1000 mm annually",
		PH:          "6.0-7.5",
		Benefits:    "Tolerates drought once established",
	},
	"pomegranate": {
		ImageFile:   "pomegranate.jpg",
		Description: "Hardy fruit shrub of semi-arid climates.",
		Soil:        "Deep loamy soil, tolerates mild salinity",
		Temperature: "25-35 degrees C",
		Rainfall:    "500-800 mm annually",
		PH:          "6.5-7.5",
		Benefits:    "Long storage life and export demand",
	},
	"rice": {
		ImageFile:   "rice.jpg",
		Description: "Staple cereal of flooded lowland fields.",
		Soil:        "Clayey soil that retains standing water",
		Temperature: "20-35 degrees C",
		Rainfall:    "1200-2500 mm annually or assured irrigation",
		PH:          "5.5-7.0",
		Benefits:    "Feeds more than half the world's population",
		Notes:       "Needs high humidity during the vegetative phase.",
	},
	"watermelon": {
		ImageFile:   "watermelon.jpg",
		Description: "Trailing summer cucurbit with high water content.",
		Soil:        "Sandy loam with good drainage",
		Temperature: "24-32 degrees C",
		Rainfall:    "400-600 mm annually",
		PH:          "6.0-7.0",
		Benefits:    "Short-duration cash crop for hot months",
	},
}

// List returns a copy of the full crop catalogue keyed by crop name.
func List() map[string]CropRecord {
	out := make(map[string]CropRecord, len(crops))
	for name, rec := range crops {
		out[name] = rec
	}
	return out
}

// Get looks up a single crop by name.
func Get(name string) (CropRecord, bool) {
	rec, ok := crops[name]
	return rec, ok
}
