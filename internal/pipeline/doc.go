// Package pipeline is the core transformation: it filters scan records by
// environment and severity, ranks and stably sorts them, partitions the
// sorted sequence into (synopsis, severity) ticket groups, and renders one
// title and multi-line description per group.
//
// Every function here is pure: lookup tables come in as arguments, no I/O
// happens, and identical inputs always produce byte-identical output.
package pipeline
