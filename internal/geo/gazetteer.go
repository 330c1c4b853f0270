package geo

// Place is a gazetteer entry: a named location events get pinned to.
// Strategic marks sites whose targeting is itself significant (nuclear
// facilities, chokepoints, major bases).
type Place struct {
	Name      string
	Country   string // Actor code
	Lat       float64
	Lon       float64
	Strategic bool
}

func builtinPlaces() []Place {
	return []Place{
		{Name: "kyiv", Country: "UA", Lat: 50.45, Lon: 30.52},
		{Name: "kharkiv", Country: "UA", Lat: 49.99, Lon: 36.23},
		{Name: "odesa", Country: "UA", Lat: 46.48, Lon: 30.73},
		{Name: "zaporizhzhia", Country: "UA", Lat: 47.84, Lon: 35.14, Strategic: true},
		{Name: "sevastopol", Country: "RU", Lat: 44.62, Lon: 33.53, Strategic: true},
		{Name: "belgorod", Country: "RU", Lat: 50.60, Lon: 36.59},
		{Name: "moscow", Country: "RU", Lat: 55.76, Lon: 37.62},
		{Name: "kaliningrad", Country: "RU", Lat: 54.71, Lon: 20.45, Strategic: true},
		{Name: "tehran", Country: "IR", Lat: 35.69, Lon: 51.39},
		{Name: "natanz", Country: "IR", Lat: 33.72, Lon: 51.73, Strategic: true},
		{Name: "isfahan", Country: "IR", Lat: 32.65, Lon: 51.67, Strategic: true},
		{Name: "fordow", Country: "IR", Lat: 34.88, Lon: 50.99, Strategic: true},
		{Name: "bandar abbas", Country: "IR", Lat: 27.18, Lon: 56.27, Strategic: true},
		{Name: "strait of hormuz", Country: "IR", Lat: 26.57, Lon: 56.25, Strategic: true},
		{Name: "tel aviv", Country: "IL", Lat: 32.09, Lon: 34.78},
		{Name: "haifa", Country: "IL", Lat: 32.79, Lon: 34.99, Strategic: true},
		{Name: "dimona", Country: "IL", Lat: 31.07, Lon: 35.03, Strategic: true},
		{Name: "gaza city", Country: "PS", Lat: 31.50, Lon: 34.47},
		{Name: "rafah", Country: "PS", Lat: 31.29, Lon: 34.25},
		{Name: "beirut", Country: "LB", Lat: 33.89, Lon: 35.50},
		{Name: "damascus", Country: "SY", Lat: 33.51, Lon: 36.29},
		{Name: "taipei", Country: "TW", Lat: 25.03, Lon: 121.57},
		{Name: "hsinchu", Country: "TW", Lat: 24.80, Lon: 120.97, Strategic: true},
		{Name: "taiwan strait", Country: "TW", Lat: 24.00, Lon: 119.00, Strategic: true},
		{Name: "pyongyang", Country: "KP", Lat: 39.02, Lon: 125.74},
		{Name: "punggye-ri", Country: "KP", Lat: 41.28, Lon: 129.09, Strategic: true},
		{Name: "seoul", Country: "KR", Lat: 37.57, Lon: 126.98},
		{Name: "srinagar", Country: "IN", Lat: 34.08, Lon: 74.80},
		{Name: "islamabad", Country: "PK", Lat: 33.68, Lon: 73.05},
		{Name: "riyadh", Country: "SA", Lat: 24.71, Lon: 46.68},
		{Name: "hodeidah", Country: "YE", Lat: 14.80, Lon: 42.95, Strategic: true},
		{Name: "bab el-mandeb", Country: "YE", Lat: 12.58, Lon: 43.33, Strategic: true},
		{Name: "stepanakert", Country: "AZ", Lat: 39.82, Lon: 46.75},
		{Name: "mitrovica", Country: "XK", Lat: 42.89, Lon: 20.87},
		{Name: "suwalki", Country: "PL", Lat: 54.11, Lon: 22.93, Strategic: true},
	}
}
