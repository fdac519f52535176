// Package compatdata holds the static compatibility tables consumed by the
// preset builder: per-feature minimum-version support data for syntax
// transforms and built-in polyfills, the Electron-to-Chromium version
// translation table, the module-transform name table, and the browserslist
// name normalization map.
//
// All tables are read-only lookup data. They are generated from upstream
// compatibility sources and checked in; nothing in this package computes.
//
// Version values are floating point so that point releases compare naturally
// (safari 10.1 targets a later release than safari 10).
package compatdata
