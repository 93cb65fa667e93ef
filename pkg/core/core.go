package core

import (
	"github.com/vulnticket/vulnticket/internal/config"
	"github.com/vulnticket/vulnticket/internal/pipeline"
	"github.com/vulnticket/vulnticket/internal/table"
	"github.com/vulnticket/vulnticket/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type (
	Record        = types.Record
	Ticket        = types.Ticket
	Selection     = types.Selection
	Maps          = config.Maps
	RenderOptions = pipeline.RenderOptions
)

// Sentinel errors and error types re-exported for callers that branch on
// the defined outcomes.
var (
	ErrNoMatchingRecords = pipeline.ErrNoMatchingRecords
	ErrNoEnvironments    = pipeline.ErrNoEnvironments
)

type (
	InvalidEnvironmentError = pipeline.InvalidEnvironmentError
	MissingColumnsError     = table.MissingColumnsError
)

// DefaultMaps returns the built-in environment and severity lookup tables
// with an empty application map.
func DefaultMaps() Maps { return config.DefaultMaps() }

// Load reads a scan export (.xlsx or .csv) into records, validating the
// required columns.
func Load(path, sheet string) ([]Record, error) { return table.Load(path, sheet) }

// BuildTickets is the stable entrypoint for other programs: filter, rank,
// group and render in one call.
func BuildTickets(records []Record, sel Selection, maps Maps, opts RenderOptions) ([]Ticket, error) {
	return pipeline.BuildTickets(records, sel, maps, opts)
}
