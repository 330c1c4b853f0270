package catalog

// Actor is a fixed reference entity: a state or major non-state party the
// classifier can attribute events to. Centroid coordinates back the geo
// resolver's country fallback.
type Actor struct {
	Code    string   `toml:"code" json:"code" validate:"required"`
	Name    string   `toml:"name" json:"name" validate:"required"`
	Aliases []string `toml:"aliases" json:"aliases"`
	Lat     float64  `toml:"lat" json:"lat"`
	Lon     float64  `toml:"lon" json:"lon"`
}

func builtinActors() []Actor {
	return []Actor{
		{Code: "US", Name: "United States", Aliases: []string{"america", "american", "washington", "pentagon", "u.s.", "us forces"}, Lat: 39.8, Lon: -98.6},
		{Code: "RU", Name: "Russia", Aliases: []string{"russian", "moscow", "kremlin"}, Lat: 61.5, Lon: 105.3},
		{Code: "UA", Name: "Ukraine", Aliases: []string{"ukrainian", "kyiv", "kiev"}, Lat: 48.4, Lon: 31.2},
		{Code: "IR", Name: "Iran", Aliases: []string{"iranian", "tehran", "irgc"}, Lat: 32.4, Lon: 53.7},
		{Code: "IL", Name: "Israel", Aliases: []string{"israeli", "idf", "jerusalem", "tel aviv"}, Lat: 31.0, Lon: 34.9},
		{Code: "CN", Name: "China", Aliases: []string{"chinese", "beijing", "pla"}, Lat: 35.9, Lon: 104.2},
		{Code: "TW", Name: "Taiwan", Aliases: []string{"taiwanese", "taipei"}, Lat: 23.7, Lon: 121.0},
		{Code: "KP", Name: "North Korea", Aliases: []string{"north korean", "pyongyang", "dprk"}, Lat: 40.3, Lon: 127.5},
		{Code: "KR", Name: "South Korea", Aliases: []string{"south korean", "seoul"}, Lat: 35.9, Lon: 127.8},
		{Code: "IN", Name: "India", Aliases: []string{"indian", "new delhi"}, Lat: 20.6, Lon: 79.0},
		{Code: "PK", Name: "Pakistan", Aliases: []string{"pakistani", "islamabad"}, Lat: 30.4, Lon: 69.3},
		{Code: "SA", Name: "Saudi Arabia", Aliases: []string{"saudi", "riyadh"}, Lat: 23.9, Lon: 45.1},
		{Code: "YE", Name: "Yemen", Aliases: []string{"yemeni", "houthi", "houthis", "sanaa"}, Lat: 15.6, Lon: 48.0},
		{Code: "LB", Name: "Lebanon", Aliases: []string{"lebanese", "hezbollah", "beirut"}, Lat: 33.9, Lon: 35.9},
		{Code: "PS", Name: "Gaza", Aliases: []string{"palestinian", "hamas", "gaza strip"}, Lat: 31.4, Lon: 34.4},
		{Code: "AM", Name: "Armenia", Aliases: []string{"armenian", "yerevan"}, Lat: 40.1, Lon: 45.0},
		{Code: "AZ", Name: "Azerbaijan", Aliases: []string{"azerbaijani", "baku"}, Lat: 40.1, Lon: 47.6},
		{Code: "RS", Name: "Serbia", Aliases: []string{"serbian", "belgrade"}, Lat: 44.0, Lon: 21.0},
		{Code: "XK", Name: "Kosovo", Aliases: []string{"kosovar", "pristina"}, Lat: 42.6, Lon: 20.9},
		{Code: "SY", Name: "Syria", Aliases: []string{"syrian", "damascus"}, Lat: 34.8, Lon: 38.9},
		{Code: "TR", Name: "Turkey", Aliases: []string{"turkish", "ankara"}, Lat: 38.9, Lon: 35.2},
		{Code: "UK", Name: "United Kingdom", Aliases: []string{"britain", "british", "london", "royal navy"}, Lat: 55.3, Lon: -3.4},
		{Code: "FR", Name: "France", Aliases: []string{"french", "paris"}, Lat: 46.2, Lon: 2.2},
		{Code: "DE", Name: "Germany", Aliases: []string{"german", "berlin"}, Lat: 51.1, Lon: 10.4},
		{Code: "PL", Name: "Poland", Aliases: []string{"polish", "warsaw"}, Lat: 51.9, Lon: 19.1},
		{Code: "BY", Name: "Belarus", Aliases: []string{"belarusian", "minsk"}, Lat: 53.7, Lon: 27.9},
	}
}
