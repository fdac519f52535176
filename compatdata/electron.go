package compatdata

// ElectronToChromium maps an Electron "MAJOR.MINOR" release series to the
// Chromium version it embeds. Electron targets are rewritten to chrome
// targets through this table.
//
// Keys cover released series only; a lookup miss means the Electron version
// is older or newer than the table and cannot be translated.
var ElectronToChromium = map[string]float64{
	"0.20": 39,
	"0.21": 40,
	"0.22": 41,
	"0.23": 41,
	"0.24": 41,
	"0.25": 42,
	"0.26": 42,
	"0.27": 43,
	"0.28": 43,
	"0.29": 43,
	"0.30": 44,
	"0.31": 45,
	"0.32": 45,
	"0.33": 45,
	"0.34": 45,
	"0.35": 45,
	"0.36": 47,
	"0.37": 49,
	"1.0":  49,
	"1.1":  50,
	"1.2":  51,
	"1.3":  52,
	"1.4":  53,
	"1.5":  54,
	"1.6":  56,
	"1.7":  58,
	"1.8":  59,
	"2.0":  61,
	"2.1":  61,
	"3.0":  66,
	"3.1":  66,
	"4.0":  69,
	"4.1":  69,
	"4.2":  69,
	"5.0":  73,
}
