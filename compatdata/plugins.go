package compatdata

// VersionMap records, per environment, the first version that natively
// supports a feature. An absent environment never supports it natively.
type VersionMap map[string]float64

// PluginVersions maps each syntax-transform name to the environment versions
// that make the transform unnecessary.
//
// Data follows the upstream compat-table snapshot; environments use canonical
// names (see BrowserNames for the browserslist aliases).
var PluginVersions = map[string]VersionMap{
	"check-es2015-constants": {
		"chrome": 49, "edge": 14, "firefox": 51, "safari": 10,
		"node": 6, "ios": 10, "opera": 36, "android": 49,
	},
	"transform-es2015-arrow-functions": {
		"chrome": 47, "edge": 13, "firefox": 45, "safari": 10,
		"node": 6, "ios": 10, "opera": 34, "android": 47,
	},
	"transform-es2015-block-scoped-functions": {
		"chrome": 41, "edge": 12, "firefox": 46, "safari": 10,
		"node": 4, "ie": 11, "ios": 10, "opera": 28, "android": 41,
	},
	"transform-es2015-block-scoping": {
		"chrome": 49, "edge": 14, "firefox": 51, "safari": 10,
		"node": 6, "ios": 10, "opera": 36, "android": 49,
	},
	"transform-es2015-classes": {
		"chrome": 46, "edge": 13, "firefox": 45, "safari": 10,
		"node": 5, "ios": 10, "opera": 33, "android": 46,
	},
	"transform-es2015-computed-properties": {
		"chrome": 44, "edge": 12, "firefox": 34, "safari": 7.1,
		"node": 4, "ios": 8, "opera": 31, "android": 44,
	},
	"transform-es2015-destructuring": {
		"chrome": 51, "edge": 15, "firefox": 53, "safari": 10,
		"node": 6.5, "ios": 10, "opera": 38, "android": 51,
	},
	"transform-es2015-duplicate-keys": {
		"chrome": 42, "edge": 12, "firefox": 34, "safari": 9,
		"node": 4, "ios": 9, "opera": 29, "android": 42,
	},
	"transform-es2015-for-of": {
		"chrome": 51, "edge": 15, "firefox": 53, "safari": 10,
		"node": 6.5, "ios": 10, "opera": 38, "android": 51,
	},
	"transform-es2015-function-name": {
		"chrome": 51, "edge": 14, "firefox": 53, "safari": 10,
		"node": 6.5, "ios": 10, "opera": 38, "android": 51,
	},
	"transform-es2015-literals": {
		"chrome": 44, "edge": 12, "firefox": 53, "safari": 9,
		"node": 4, "ios": 9, "opera": 31, "android": 44,
	},
	"transform-es2015-object-super": {
		"chrome": 46, "edge": 13, "firefox": 45, "safari": 10,
		"node": 5, "ios": 10, "opera": 33, "android": 46,
	},
	"transform-es2015-parameters": {
		"chrome": 49, "edge": 14, "firefox": 53, "safari": 10,
		"node": 6, "ios": 10, "opera": 36, "android": 49,
	},
	"transform-es2015-shorthand-properties": {
		"chrome": 43, "edge": 12, "firefox": 33, "safari": 9,
		"node": 4, "ios": 9, "opera": 30, "android": 43,
	},
	"transform-es2015-spread": {
		"chrome": 46, "edge": 13, "firefox": 36, "safari": 10,
		"node": 5, "ios": 10, "opera": 33, "android": 46,
	},
	"transform-es2015-sticky-regex": {
		"chrome": 49, "edge": 13, "firefox": 3, "safari": 10,
		"node": 6, "ios": 10, "opera": 36, "android": 49,
	},
	"transform-es2015-template-literals": {
		"chrome": 41, "edge": 13, "firefox": 34, "safari": 9,
		"node": 4, "ios": 9, "opera": 28, "android": 41,
	},
	"transform-es2015-typeof-symbol": {
		"chrome": 38, "edge": 12, "firefox": 36, "safari": 9,
		"node": 0.12, "ios": 9, "opera": 25, "android": 38,
	},
	"transform-es2015-unicode-regex": {
		"chrome": 50, "edge": 13, "firefox": 46, "safari": 10,
		"node": 6, "ios": 10, "opera": 37, "android": 50,
	},
	"transform-regenerator": {
		"chrome": 50, "edge": 13, "firefox": 53, "safari": 10,
		"node": 6, "ios": 10, "opera": 37, "android": 50,
	},
	"transform-exponentiation-operator": {
		"chrome": 52, "edge": 14, "firefox": 52, "safari": 10.1,
		"node": 7, "ios": 10.3, "opera": 39, "android": 52,
	},
	"transform-async-to-generator": {
		"chrome": 55, "edge": 15, "firefox": 52, "safari": 10.1,
		"node": 7.6, "ios": 10.3, "opera": 42, "android": 55,
	},
	"syntax-trailing-function-commas": {
		"chrome": 58, "edge": 14, "firefox": 52, "safari": 10,
		"node": 8, "ios": 10, "opera": 45, "android": 58,
	},
}

// PluginNames lists the transform names in their canonical application order.
// Selection iterates this slice so output ordering is deterministic.
var PluginNames = []string{
	"check-es2015-constants",
	"transform-es2015-arrow-functions",
	"transform-es2015-block-scoped-functions",
	"transform-es2015-block-scoping",
	"transform-es2015-classes",
	"transform-es2015-computed-properties",
	"transform-es2015-destructuring",
	"transform-es2015-duplicate-keys",
	"transform-es2015-for-of",
	"transform-es2015-function-name",
	"transform-es2015-literals",
	"transform-es2015-object-super",
	"transform-es2015-parameters",
	"transform-es2015-shorthand-properties",
	"transform-es2015-spread",
	"transform-es2015-sticky-regex",
	"transform-es2015-template-literals",
	"transform-es2015-typeof-symbol",
	"transform-es2015-unicode-regex",
	"transform-regenerator",
	"transform-exponentiation-operator",
	"transform-async-to-generator",
	"syntax-trailing-function-commas",
}
