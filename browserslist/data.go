package browserslist

// releases maps each browserslist name to its known release versions in
// ascending order. The snapshot is trimmed to releases that still appear in
// usage statistics; ancient releases resolve identically to the oldest one
// kept here.
var releases = map[string][]string{
	"chrome": {
		"40", "41", "42", "43", "44", "45", "46", "47", "48", "49",
		"50", "51", "52", "53", "54", "55", "56", "57", "58", "59",
		"60", "61", "62", "63", "64", "65", "66", "67", "68", "69",
		"70", "71", "72", "73", "74", "75",
	},
	"firefox": {
		"30", "31", "32", "33", "34", "35", "36", "37", "38", "39",
		"40", "41", "42", "43", "44", "45", "46", "47", "48", "49",
		"50", "51", "52", "53", "54", "55", "56", "57", "58", "59",
		"60", "61", "62", "63", "64", "65", "66", "67",
	},
	"edge": {"12", "13", "14", "15", "16", "17", "18"},
	"safari": {
		"5", "6", "7", "7.1", "8", "9", "9.1", "10", "10.1",
		"11", "11.1", "12", "12.1",
	},
	"ie": {"6", "7", "8", "9", "10", "11"},
	"ios_saf": {
		"8", "8.1", "9", "9.3", "10", "10.3", "11", "11.4", "12", "12.2",
	},
	"opera": {
		"30", "31", "32", "33", "34", "35", "36", "37", "38", "39",
		"40", "41", "42", "43", "44", "45", "46", "47", "48", "49",
		"50", "51", "52", "53", "54", "55", "56", "57", "58",
	},
	"android": {"4.2", "4.4", "67"},
	"and_chr": {"75"},
	"and_ff":  {"67"},
	"op_mob":  {"46"},
	"ie_mob":  {"10", "11"},
}

// browserOrder fixes the iteration order over the release table so resolver
// output is deterministic.
var browserOrder = []string{
	"and_chr", "and_ff", "android", "chrome", "edge", "firefox",
	"ie", "ie_mob", "ios_saf", "op_mob", "opera", "safari",
}
