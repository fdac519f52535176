package compatdata

// ModuleTransforms maps a module-system identifier to the transform unit
// implementing it. Identifiers outside this table are rejected during
// option validation.
var ModuleTransforms = map[string]string{
	"amd":      "transform-es2015-modules-amd",
	"commonjs": "transform-es2015-modules-commonjs",
	"systemjs": "transform-es2015-modules-systemjs",
	"umd":      "transform-es2015-modules-umd",
}

// BrowserNames maps browserslist release names to canonical environment
// names. Names outside this table are dropped during query normalization.
var BrowserNames = map[string]string{
	"android": "android",
	"chrome":  "chrome",
	"and_chr": "chrome",
	"edge":    "edge",
	"firefox": "firefox",
	"and_ff":  "firefox",
	"ie":      "ie",
	"ie_mob":  "ie",
	"ios_saf": "ios",
	"node":    "node",
	"opera":   "opera",
	"op_mob":  "opera",
	"safari":  "safari",
}
