package table

import "strings"

// Input column names, exactly as the scan export spells them.
const (
	ColHostname        = "Hostname"
	ColVulnerability   = "Vulnerability"
	ColRemediation     = "Remediation (Solution)"
	ColRole            = "Role"
	ColEnvironment     = "Environment"
	ColSynopsis        = "Synopsis"
	ColPluginText      = "Plugin Text"
	ColVPR             = "VPR"
	ColVPRScore        = "VPR Score"
	ColFirstDiscovered = "First Discovered"
	ColCVE             = "CVE"
)

// RequiredColumns lists every column the input table must carry. Missing any
// of these is a precondition failure reported before filtering begins.
var RequiredColumns = []string{
	ColHostname,
	ColVulnerability,
	ColRemediation,
	ColRole,
	ColEnvironment,
	ColSynopsis,
	ColPluginText,
	ColVPR,
	ColVPRScore,
	ColFirstDiscovered,
	ColCVE,
}

// MissingColumnsError reports the exact required columns absent from the
// table header.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}

// checkHeader builds a column-name -> index map and verifies the required
// set, preserving RequiredColumns order in the reported missing names.
func checkHeader(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}
	return idx, nil
}
