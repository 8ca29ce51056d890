package palette

import "image/color"

const DefaultKey = "kexp_default"

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xFF} }

func scheme(name string, artist, song, info color.RGBA) ColorScheme {
	return ColorScheme{Name: name, Artist: artist, Song: song, Info: info}
}

// StationSchemes is the static color table keyed by scheme key.
var StationSchemes = map[string]ColorScheme{
	"morning_show":           scheme("Morning Show", rgb(255, 127, 80), rgb(255, 215, 0), rgb(135, 206, 250)),
	"afternoon":              scheme("Afternoon", rgb(255, 255, 255), rgb(70, 130, 180), rgb(255, 195, 77)),
	"drive_time":             scheme("Drive Time", rgb(200, 10, 0), rgb(255, 198, 0), rgb(0, 179, 84)),
	"midnight_perfect_world": scheme("Midnight in a Perfect World", rgb(138, 43, 226), rgb(0, 191, 255), rgb(186, 85, 211)),
	"audioasis":              scheme("Audioasis", rgb(84, 112, 103), rgb(64, 89, 94), rgb(142, 160, 145)),
	"street_sounds":          scheme("Street Sounds", rgb(255, 20, 147), rgb(0, 255, 255), rgb(255, 215, 0)),
	"expansions":             scheme("Expansions", rgb(138, 98, 154), rgb(95, 158, 160), rgb(210, 105, 30)),
	"seek_destroy":           scheme("Seek and Destroy", rgb(255, 0, 0), rgb(255, 255, 255), rgb(128, 128, 128)),
	"sonic_reducer":          scheme("Sonic Reducer", rgb(255, 255, 0), rgb(255, 0, 255), rgb(0, 255, 0)),
	"pacific_notions":        scheme("Pacific Notions", rgb(176, 196, 222), rgb(198, 213, 216), rgb(169, 169, 169)),
	"wo_pop":                 scheme("Wo' Pop", rgb(255, 105, 180), rgb(64, 224, 208), rgb(255, 215, 0)),
	"el_sonido":              scheme("El Sonido", rgb(255, 69, 0), rgb(255, 215, 0), rgb(148, 0, 211)),
	"mechanical_breakdown":   scheme("Mechanical Breakdown", rgb(192, 192, 192), rgb(255, 99, 71), rgb(0, 206, 209)),
	"ninety_teen":            scheme("90.TEEN", rgb(255, 0, 127), rgb(0, 255, 255), rgb(255, 255, 0)),
	"astral_plane":           scheme("Astral Plane", rgb(138, 43, 226), rgb(255, 0, 255), rgb(0, 191, 255)),
	"early":                  scheme("Early", rgb(255, 182, 193), rgb(255, 218, 185), rgb(255, 239, 213)),
	"eastern_echoes":         scheme("Eastern Echoes", rgb(220, 20, 60), rgb(255, 215, 0), rgb(0, 128, 128)),
	"live_on_kexp":           scheme("Live on KEXP", rgb(234, 224, 241), rgb(248, 199, 98), rgb(211, 140, 251)),
	"positive_vibrations":    scheme("Positive Vibrations", rgb(252, 209, 22), rgb(0, 155, 58), rgb(206, 17, 38)),
	"sounds_survivance":      scheme("Sounds of Survivance", rgb(139, 69, 19), rgb(210, 180, 140), rgb(135, 206, 235)),
	"sound_vision":           scheme("Sound & Vision", rgb(255, 20, 147), rgb(0, 255, 127), rgb(255, 165, 0)),
	"sunday_soul":            scheme("Sunday Soul", rgb(184, 134, 11), rgb(219, 112, 147), rgb(255, 218, 185)),
	"the_continent":          scheme("The Continent", rgb(255, 140, 0), rgb(34, 139, 34), rgb(220, 20, 60)),
	"midday_show":            scheme("The Midday Show", rgb(255, 255, 0), rgb(255, 165, 0), rgb(135, 206, 250)),
	"roadhouse":              scheme("The Roadhouse", rgb(139, 69, 19), rgb(210, 105, 30), rgb(255, 215, 0)),
	"variety_mix":            scheme("Variety Mix", rgb(255, 99, 71), rgb(64, 224, 208), rgb(255, 215, 0)),
	"vinelands":              scheme("Vinelands", rgb(128, 0, 32), rgb(107, 142, 35), rgb(218, 165, 32)),
	DefaultKey:               scheme("KEXP Default", rgb(255, 255, 255), rgb(100, 200, 255), rgb(255, 200, 100)),
}

// StationMapping lists program names as the KEXP programs API reports them.
var StationMapping = []ShowMapping{
	// Mornings and daytime
	{"The Morning Show", "morning_show"},
	{"Early", "early"},
	{"The Midday Show", "midday_show"},
	{"The Afternoon Show", "afternoon"},
	{"Drive Time", "drive_time"},

	// Electronic
	{"Midnight in a Perfect World", "midnight_perfect_world"},
	{"Mechanical Breakdown", "mechanical_breakdown"},
	{"Astral Plane", "astral_plane"},

	// World
	{"Audioasis", "audioasis"},
	{"Wo' Pop", "wo_pop"},
	{"El Sonido", "el_sonido"},
	{"Eastern Echoes", "eastern_echoes"},
	{"Sounds of Survivance", "sounds_survivance"},
	{"The Continent", "the_continent"},

	{"Positive Vibrations", "positive_vibrations"},

	{"Street Sounds", "street_sounds"},
	{"Sunday Soul", "sunday_soul"},

	// Jazz, roots
	{"Expansions", "expansions"},
	{"Jazz Theatre", "expansions"},
	{"The Roadhouse", "roadhouse"},

	// Rock, metal, punk
	{"Seek & Destroy", "seek_destroy"},
	{"Sonic Reducer", "sonic_reducer"},
	{"90.TEEN", "ninety_teen"},

	{"Pacific Notions", "pacific_notions"},
	{"Vinelands", "vinelands"},

	// Live and specials
	{"Live on KEXP", "live_on_kexp"},
	{"Sound & Vision", "sound_vision"},
	{"Variety Mix", "variety_mix"},
}
