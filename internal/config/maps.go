package config

import "github.com/vulnticket/vulnticket/internal/types"

// UnknownApp is the placeholder application label used when a hostname has
// no entry in the application map.
const UnknownApp = "unknown"

// Maps bundles the static lookup tables the pipeline needs. They are built
// once at startup and passed explicitly into the pipeline functions so the
// pipeline stays a pure function of its arguments.
type Maps struct {
	// Environments maps short environment codes (Dev, TST, ACP, PRD) to
	// canonical sortable labels. The numeric prefix enforces
	// production-first ordering downstream.
	Environments map[string]string

	// Applications maps hostnames to application names. Hostnames absent
	// from the map resolve to UnknownApp.
	Applications map[string]string

	// SeverityOrder maps VPR labels to sort ranks (lower = more urgent).
	// Labels absent from the map rank types.UnknownRank, after all known
	// severities.
	SeverityOrder map[string]int
}

// DefaultMaps returns the built-in lookup tables. The application map starts
// empty; it is populated from configuration.
func DefaultMaps() Maps {
	return Maps{
		Environments: map[string]string{
			"Dev": "4. Development",
			"TST": "3. Test",
			"ACP": "2. Acceptance",
			"PRD": "1. Production",
		},
		Applications: map[string]string{},
		SeverityOrder: map[string]int{
			string(types.SevUndefined): 0,
			string(types.SevCritical):  1,
			string(types.SevHigh):      2,
			string(types.SevMedium):    3,
			string(types.SevLow):       4,
		},
	}
}

// BuildMaps overlays file configuration onto the defaults.
func BuildMaps(cfg FileConfig) Maps {
	m := DefaultMaps()
	for k, v := range cfg.Applications {
		m.Applications[k] = v
	}
	for k, v := range cfg.Environments {
		m.Environments[k] = v
	}
	for k, v := range cfg.SeverityOrder {
		m.SeverityOrder[k] = v
	}
	return m
}

// Rank returns the sort rank for a VPR label, falling back to
// types.UnknownRank for labels missing from the order map.
func (m Maps) Rank(vpr string) int {
	if r, ok := m.SeverityOrder[vpr]; ok {
		return r
	}
	return types.UnknownRank
}

// Application resolves a hostname to its application name, or UnknownApp.
func (m Maps) Application(hostname string) string {
	if app, ok := m.Applications[hostname]; ok {
		return app
	}
	return UnknownApp
}
