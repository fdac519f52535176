// Package browserslist resolves browser-support queries against a bundled
// snapshot of browser release data.
//
// It implements the subset of the browserslist query grammar the preset
// builder needs:
//
//	chrome 50             exact release
//	firefox >= 20         comparison against a release number
//	last 2 versions       newest releases of every browser
//	last 3 safari versions newest releases of one browser
//	defaults              alias for "last 2 versions"
//
// Multiple queries are unioned. Results are "name version" strings using the
// raw browserslist names (and_chr, ios_saf, ...); callers normalize names
// themselves.
//
// The snapshot is static. Hosts that need live release data can supply their
// own resolver to the preset builder instead of this package.
package browserslist
