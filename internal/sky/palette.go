package sky

// RGB is a color with components in [0, 1]
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// gradientRow defines one canonical phase interval and the palettes at its
// ends. Colors(phase) interpolates stop-wise between From and To.
type gradientRow struct {
	Start float64
	End   float64
	From  []RGB
	To    []RGB
}

// Palettes are zenith-to-horizon stop lists. Adjacent rows reuse the same
// named palette at their shared boundary, which makes continuity across row
// edges hold by construction instead of by duplicated literals.

// Clear-sky palettes
var (
	clearDeepNight = []RGB{{0.012, 0.016, 0.055}, {0.027, 0.035, 0.098}, {0.055, 0.063, 0.141}}
	clearAstroDawn = []RGB{{0.024, 0.031, 0.086}, {0.047, 0.059, 0.141}, {0.090, 0.098, 0.196}}
	clearNautDawn  = []RGB{{0.047, 0.067, 0.141}, {0.098, 0.122, 0.235}, {0.184, 0.169, 0.290}}
	clearCivilDawn = []RGB{{0.102, 0.157, 0.302}, {0.259, 0.259, 0.416}, {0.475, 0.333, 0.365}}
	clearSunrise   = []RGB{{0.239, 0.380, 0.596}, {0.545, 0.467, 0.510}, {0.918, 0.635, 0.404}}
	clearMorning   = []RGB{{0.278, 0.510, 0.800}, {0.455, 0.651, 0.871}, {0.722, 0.827, 0.925}}
	clearMidday    = []RGB{{0.333, 0.592, 0.886}, {0.541, 0.729, 0.929}, {0.792, 0.882, 0.957}}
	clearAfternoon = []RGB{{0.302, 0.545, 0.839}, {0.506, 0.690, 0.898}, {0.780, 0.851, 0.918}}
	clearGolden    = []RGB{{0.275, 0.443, 0.690}, {0.584, 0.545, 0.576}, {0.929, 0.671, 0.416}}
	clearSunset    = []RGB{{0.196, 0.282, 0.494}, {0.529, 0.376, 0.471}, {0.902, 0.475, 0.337}}
	clearCivilDusk = []RGB{{0.110, 0.149, 0.322}, {0.298, 0.224, 0.412}, {0.600, 0.325, 0.357}}
	clearNautDusk  = []RGB{{0.051, 0.071, 0.176}, {0.118, 0.125, 0.267}, {0.243, 0.188, 0.318}}
)

// Rainy/overcast palettes: desaturated grey-blues with muted warm tones and
// a brighter near-white band at midday
var (
	rainyDeepNight = []RGB{{0.043, 0.051, 0.075}, {0.063, 0.071, 0.098}, {0.086, 0.094, 0.122}}
	rainyAstroDawn = []RGB{{0.059, 0.067, 0.094}, {0.086, 0.094, 0.125}, {0.118, 0.125, 0.157}}
	rainyNautDawn  = []RGB{{0.086, 0.098, 0.129}, {0.125, 0.137, 0.169}, {0.173, 0.180, 0.208}}
	rainyCivilDawn = []RGB{{0.141, 0.161, 0.204}, {0.208, 0.220, 0.251}, {0.298, 0.286, 0.298}}
	rainySunrise   = []RGB{{0.235, 0.271, 0.325}, {0.345, 0.357, 0.384}, {0.490, 0.443, 0.424}}
	rainyMorning   = []RGB{{0.357, 0.408, 0.467}, {0.490, 0.522, 0.565}, {0.647, 0.667, 0.698}}
	rainyMidday    = []RGB{{0.451, 0.475, 0.545}, {0.624, 0.655, 0.694}, {0.820, 0.835, 0.855}}
	rainyAfternoon = []RGB{{0.408, 0.443, 0.506}, {0.553, 0.584, 0.631}, {0.737, 0.757, 0.788}}
	rainyGolden    = []RGB{{0.322, 0.345, 0.400}, {0.443, 0.443, 0.463}, {0.584, 0.525, 0.486}}
	rainySunset    = []RGB{{0.220, 0.239, 0.290}, {0.333, 0.325, 0.353}, {0.459, 0.388, 0.369}}
	rainyCivilDusk = []RGB{{0.141, 0.157, 0.200}, {0.212, 0.216, 0.247}, {0.298, 0.271, 0.275}}
	rainyNautDusk  = []RGB{{0.086, 0.098, 0.133}, {0.129, 0.137, 0.169}, {0.180, 0.176, 0.196}}
)

// clearRows and rainyRows share one interval structure; the weather flag only
// selects which array is walked.
var clearRows = []gradientRow{
	{0, 4, clearDeepNight, clearDeepNight},
	{4, 5, clearDeepNight, clearAstroDawn},
	{5, 6, clearAstroDawn, clearNautDawn},
	{6, 7, clearNautDawn, clearCivilDawn},
	{7, 8, clearCivilDawn, clearSunrise},
	{8, 11, clearSunrise, clearMorning},
	{11, 14, clearMorning, clearMidday},
	{14, 17, clearMidday, clearAfternoon},
	{17, 18, clearAfternoon, clearGolden},
	{18, 19, clearGolden, clearSunset},
	{19, 20, clearSunset, clearCivilDusk},
	{20, 21, clearCivilDusk, clearNautDusk},
	{21, 24, clearNautDusk, clearDeepNight},
}

var rainyRows = []gradientRow{
	{0, 4, rainyDeepNight, rainyDeepNight},
	{4, 5, rainyDeepNight, rainyAstroDawn},
	{5, 6, rainyAstroDawn, rainyNautDawn},
	{6, 7, rainyNautDawn, rainyCivilDawn},
	{7, 8, rainyCivilDawn, rainySunrise},
	{8, 11, rainySunrise, rainyMorning},
	{11, 14, rainyMorning, rainyMidday},
	{14, 17, rainyMidday, rainyAfternoon},
	{17, 18, rainyAfternoon, rainyGolden},
	{18, 19, rainyGolden, rainySunset},
	{19, 20, rainySunset, rainyCivilDusk},
	{20, 21, rainyCivilDusk, rainyNautDusk},
	{21, 24, rainyNautDusk, rainyDeepNight},
}
