// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typedocmd

package typedocmd

import "maps"

// ReferenceTable holds the static lookup data for external references.
// A table must not be modified once it is passed to a Resolver.
type ReferenceTable struct {
	// URLs maps well-known external symbol names to documentation URLs.
	URLs map[string]string
	// Unknown lists names that are expected to stay unresolved; no warning is logged for them.
	Unknown map[string]struct{}
	// PackageSearch maps package names to search URL prefixes; the query string is appended.
	PackageSearch map[string]string
}

// builtinReferenceURLs covers runtime and platform built-ins commonly seen in typings.
var builtinReferenceURLs = map[string]string{
	// MDN
	"BigInt64Array": "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/BigInt64Array",
	"Blob":          "https://developer.mozilla.org/en-US/docs/Web/API/Blob",
	"Date":          "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/Date",
	"Error":         "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/Error",
	"Float32Array":  "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/Float32Array",
	"Float64Array":  "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/Float64Array",
	"Function":      "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/Function",
	"Int16Array":    "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/Int16Array",
	"Int32Array":    "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/Int32Array",
	"Int8Array":     "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/Int8Array",
	"Iterable":      "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Iteration_protocols#the_iterable_protocol",
	"Iterator":      "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Iteration_protocols#the_iterator_protocol",
	"Map":           "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/Map",
	"Promise":       "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/Promise",
	"RegExp":        "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/RegExp",
	"Response":      "https://developer.mozilla.org/en-US/docs/Web/API/Response",
	"Set":           "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/Set",
	"URL":           "https://developer.mozilla.org/en-US/docs/Web/API/URL",

	// Node.js
	"global.Buffer":                       "https://nodejs.org/api/buffer.html",
	"EventEmitter":                        "https://nodejs.org/api/events.html#events_class_eventemitter",
	"global.NodeJS.EventEmitter":          "https://nodejs.org/api/events.html#events_class_eventemitter",
	"EventEmitter.captureRejectionSymbol": "https://nodejs.org/api/events.html#eventscapturerejectionsymbol",
	"EventEmitter.errorMonitor":           "https://nodejs.org/api/events.html#eventserrormonitor",
	"NodeEventTarget":                     "https://nodejs.org/api/events.html#class-nodeeventtarget",
	"PathLike":                            "https://nodejs.org/api/path.html#path_pathlike",
	"global.NodeJS.Timeout":               "https://nodejs.org/api/timers.html#timers_class_timeout",
	"global.NodeJS.Timer":                 "https://nodejs.org/api/timers.html#timers_class_timeout",
	"internal.Stream":                     "https://nodejs.org/api/stream.html#stream_class_stream",

	// TypeScript
	"Exclude":      "https://www.typescriptlang.org/docs/handbook/utility-types.html#excludeuniontype-excludedmembers",
	"InstanceType": "https://www.typescriptlang.org/docs/handbook/utility-types.html#instancetype",
	"Omit":         "https://www.typescriptlang.org/docs/handbook/utility-types.html#omittype-keys",
	"Partial":      "https://www.typescriptlang.org/docs/handbook/utility-types.html#partialtype",
	"Readonly":     "https://www.typescriptlang.org/docs/handbook/utility-types.html#readonlytype",
	"Record":       "https://www.typescriptlang.org/docs/handbook/utility-types.html#recordkeys-type",
}

// builtinUnknownReferences are TypeScript lib names without a stable documentation page.
var builtinUnknownReferences = []string{
	"ArrayLike",
	"AsyncIterableIterator",
	"ClassDecorator",
	"DOMEventTarget",
	"InspectOptionsStylized",
	"IterableIterator",
	"IteratorResult",
	"MapConstructor",
	"MethodDecorator",
	"PropertyKey",
	"ObjectConstructor",
	"ReadonlyMap",
}

// builtinPackageSearch maps packages with a searchable documentation site.
var builtinPackageSearch = map[string]string{
	"discord.js":            "https://discord.js.org/#/docs/discord.js/main/search?",
	"@discordjs/collection": "https://discord.js.org/#/docs/collection/main/search?",
}

// DefaultReferences returns a fresh copy of the built-in reference tables.
func DefaultReferences() *ReferenceTable {
	unknown := make(map[string]struct{}, len(builtinUnknownReferences))
	for _, name := range builtinUnknownReferences {
		unknown[name] = struct{}{}
	}

	return &ReferenceTable{
		URLs:          maps.Clone(builtinReferenceURLs),
		Unknown:       unknown,
		PackageSearch: maps.Clone(builtinPackageSearch),
	}
}

// Merge returns a new table with extra entries laid over the receiver.
// Entries from the arguments win on name collisions.
func (t *ReferenceTable) Merge(urls map[string]string, unknown []string, packageSearch map[string]string) *ReferenceTable {
	out := &ReferenceTable{
		URLs:          make(map[string]string),
		Unknown:       make(map[string]struct{}),
		PackageSearch: make(map[string]string),
	}

	if t != nil {
		maps.Copy(out.URLs, t.URLs)
		maps.Copy(out.Unknown, t.Unknown)
		maps.Copy(out.PackageSearch, t.PackageSearch)
	}

	maps.Copy(out.URLs, urls)
	maps.Copy(out.PackageSearch, packageSearch)
	for _, name := range unknown {
		out.Unknown[name] = struct{}{}
	}

	return out
}

// lookupURL returns the documentation URL registered for an exact name.
func (t *ReferenceTable) lookupURL(name string) (string, bool) {
	if t == nil {
		return "", false
	}

	url, ok := t.URLs[name]
	return url, ok
}

// isUnknown reports whether name is allow-listed as permanently unresolvable.
func (t *ReferenceTable) isUnknown(name string) bool {
	if t == nil {
		return false
	}

	_, ok := t.Unknown[name]
	return ok
}

// searchPrefix returns the search URL prefix registered for a package.
func (t *ReferenceTable) searchPrefix(packageName string) (string, bool) {
	if t == nil {
		return "", false
	}

	prefix, ok := t.PackageSearch[packageName]
	return prefix, ok
}
