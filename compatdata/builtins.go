package compatdata

// BuiltInVersions maps each polyfillable built-in to the environment versions
// that ship it natively. Names follow the es<edition>.* / web.* convention
// used by the polyfill registry.
var BuiltInVersions = map[string]VersionMap{
	"es6.map": {
		"chrome": 51, "edge": 15, "firefox": 53, "safari": 10,
		"node": 6.5, "ios": 10, "opera": 38, "android": 51,
	},
	"es6.set": {
		"chrome": 51, "edge": 15, "firefox": 53, "safari": 10,
		"node": 6.5, "ios": 10, "opera": 38, "android": 51,
	},
	"es6.weak-map": {
		"chrome": 51, "edge": 15, "firefox": 53, "safari": 9,
		"node": 6.5, "ios": 9, "opera": 38, "android": 51,
	},
	"es6.weak-set": {
		"chrome": 51, "edge": 15, "firefox": 53, "safari": 9,
		"node": 6.5, "ios": 9, "opera": 38, "android": 51,
	},
	"es6.promise": {
		"chrome": 51, "edge": 14, "firefox": 45, "safari": 10,
		"node": 6.5, "ios": 10, "opera": 38, "android": 51,
	},
	"es6.symbol": {
		"chrome": 51, "edge": 15, "firefox": 51, "safari": 10,
		"node": 6.5, "ios": 10, "opera": 38, "android": 51,
	},
	"es6.object.assign": {
		"chrome": 49, "edge": 13, "firefox": 36, "safari": 10,
		"node": 6, "ios": 10, "opera": 36, "android": 49,
	},
	"es6.object.is": {
		"chrome": 30, "edge": 12, "firefox": 22, "safari": 9,
		"node": 0.12, "ios": 9, "opera": 17, "android": 30,
	},
	"es6.array.copy-within": {
		"chrome": 45, "edge": 12, "firefox": 32, "safari": 9,
		"node": 4, "ios": 9, "opera": 32, "android": 45,
	},
	"es6.array.fill": {
		"chrome": 45, "edge": 12, "firefox": 31, "safari": 7.1,
		"node": 4, "ios": 8, "opera": 32, "android": 45,
	},
	"es6.array.find": {
		"chrome": 45, "edge": 12, "firefox": 25, "safari": 7.1,
		"node": 4, "ios": 8, "opera": 32, "android": 45,
	},
	"es6.array.find-index": {
		"chrome": 45, "edge": 12, "firefox": 25, "safari": 7.1,
		"node": 4, "ios": 8, "opera": 32, "android": 45,
	},
	"es6.array.from": {
		"chrome": 51, "edge": 15, "firefox": 36, "safari": 10,
		"node": 6.5, "ios": 10, "opera": 38, "android": 51,
	},
	"es6.array.of": {
		"chrome": 45, "edge": 12, "firefox": 25, "safari": 9,
		"node": 4, "ios": 9, "opera": 32, "android": 45,
	},
	"es6.array.iterator": {
		"chrome": 51, "edge": 13, "firefox": 28, "safari": 10,
		"node": 6.5, "ios": 10, "opera": 38, "android": 51,
	},
	"es6.string.includes": {
		"chrome": 41, "edge": 12, "firefox": 40, "safari": 9,
		"node": 4, "ios": 9, "opera": 28, "android": 41,
	},
	"es6.string.repeat": {
		"chrome": 41, "edge": 12, "firefox": 24, "safari": 9,
		"node": 4, "ios": 9, "opera": 28, "android": 41,
	},
	"es6.string.starts-with": {
		"chrome": 41, "edge": 12, "firefox": 17, "safari": 9,
		"node": 4, "ios": 9, "opera": 28, "android": 41,
	},
	"es6.string.ends-with": {
		"chrome": 41, "edge": 12, "firefox": 17, "safari": 9,
		"node": 4, "ios": 9, "opera": 28, "android": 41,
	},
	"es6.number.is-integer": {
		"chrome": 34, "edge": 12, "firefox": 16, "safari": 9,
		"node": 0.12, "ios": 9, "opera": 21, "android": 34,
	},
	"es6.number.is-nan": {
		"chrome": 19, "edge": 12, "firefox": 15, "safari": 9,
		"node": 0.12, "ios": 9, "opera": 15, "android": 19,
	},
	"es6.math.trunc": {
		"chrome": 38, "edge": 12, "firefox": 25, "safari": 7.1,
		"node": 0.12, "ios": 8, "opera": 25, "android": 38,
	},
	"es7.array.includes": {
		"chrome": 47, "edge": 14, "firefox": 43, "safari": 10,
		"node": 6, "ios": 10, "opera": 34, "android": 47,
	},
	"es7.object.values": {
		"chrome": 54, "edge": 14, "firefox": 47, "safari": 10.1,
		"node": 7, "ios": 10.3, "opera": 41, "android": 54,
	},
	"es7.object.entries": {
		"chrome": 54, "edge": 14, "firefox": 47, "safari": 10.1,
		"node": 7, "ios": 10.3, "opera": 41, "android": 54,
	},
	"es7.string.pad-start": {
		"chrome": 57, "edge": 15, "firefox": 48, "safari": 10,
		"node": 7.5, "ios": 10, "opera": 44, "android": 57,
	},
	"es7.string.pad-end": {
		"chrome": 57, "edge": 15, "firefox": 48, "safari": 10,
		"node": 7.5, "ios": 10, "opera": 44, "android": 57,
	},
}

// BuiltInNames lists polyfill names in canonical order for deterministic
// selection output.
var BuiltInNames = []string{
	"es6.map",
	"es6.set",
	"es6.weak-map",
	"es6.weak-set",
	"es6.promise",
	"es6.symbol",
	"es6.object.assign",
	"es6.object.is",
	"es6.array.copy-within",
	"es6.array.fill",
	"es6.array.find",
	"es6.array.find-index",
	"es6.array.from",
	"es6.array.of",
	"es6.array.iterator",
	"es6.string.includes",
	"es6.string.repeat",
	"es6.string.starts-with",
	"es6.string.ends-with",
	"es6.number.is-integer",
	"es6.number.is-nan",
	"es6.math.trunc",
	"es7.array.includes",
	"es7.object.values",
	"es7.object.entries",
	"es7.string.pad-start",
	"es7.string.pad-end",
}

// DefaultInclude lists polyfills pulled in regardless of version evidence.
// The web-platform shims have never shipped uniformly across environments,
// so they carry no capability entries and are excluded only by an explicit
// exclude entry.
var DefaultInclude = []string{
	"web.timers",
	"web.immediate",
	"web.dom.iterable",
}
