// Package recorded finds, measures and removes recorded video files on the
// configured storage roots.
//
// Searches are never cached: every call to Searcher.Search lists each root
// again, one level deep, and yields matching paths lazily. Sizes are
// reported in decimal gigabytes (1 GB = 1000^3 bytes) rounded to one
// decimal place.
package recorded
