// Package core provides a small, stable facade over vulnticket's internal
// pipeline for external integrations. It deliberately re-exports a narrow
// API surface so other tools can depend on a stable import path without
// reaching into internal implementation packages.
//
// Example:
//
//	records, err := core.Load("scan.xlsx", "")
//	if err != nil { /* handle */ }
//	sel := core.Selection{Environments: []string{"PRD"}}
//	tickets, err := core.BuildTickets(records, sel, core.DefaultMaps(), core.RenderOptions{})
//	if err != nil { /* handle */ }
//	_ = core.MarshalTickets(os.Stdout, tickets)
package core
