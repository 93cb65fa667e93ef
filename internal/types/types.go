package types

// Severity is the VPR (Vulnerability Priority Rating) label attached to a
// scanner finding. The set is small and ordered; values outside it are kept
// as-is and sort last.
type Severity string

const (
	SevUndefined Severity = "Undefined"
	SevCritical  Severity = "Critical"
	SevHigh      Severity = "High"
	SevMedium    Severity = "Medium"
	SevLow       Severity = "Low"
)

// UnknownRank is the sort rank assigned to severities absent from the
// severity order map. It is larger than any defined rank so unrecognized
// severities trail the known ones.
const UnknownRank = 99

// Severities lists the known VPR labels in rank order.
var Severities = []Severity{SevUndefined, SevCritical, SevHigh, SevMedium, SevLow}

// EnvCodes lists the selectable environment codes in production-first order.
var EnvCodes = []string{"PRD", "ACP", "TST", "Dev"}

// Record is one scanner finding for one host, as loaded from the input table.
// All fields are kept as strings; display coercion happens at load time.
// Duplicate records are distinct rows and all appear in their group's
// description.
type Record struct {
	Hostname        string `json:"hostname"`
	Vulnerability   string `json:"vulnerability"`
	Remediation     string `json:"remediation"`
	Role            string `json:"role"`
	Environment     string `json:"environment"` // canonical label, e.g. "1. Production"
	Synopsis        string `json:"synopsis"`    // primary grouping key
	PluginText      string `json:"plugin_text"`
	VPR             string `json:"vpr"`
	VPRScore        string `json:"vpr_score,omitempty"`
	FirstDiscovered string `json:"first_discovered,omitempty"`
	CVE             string `json:"cve,omitempty"`
}

// Ticket is one ticket-ready output row: a title and a multi-line
// description covering every record in its (synopsis, severity) group.
type Ticket struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Selection holds the user-chosen filter values handed to the pipeline.
// Environments must be non-empty; an empty Severities slice means no
// severity filtering.
type Selection struct {
	Environments []string
	Severities   []string
}
