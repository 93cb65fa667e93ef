package pipeline

import (
	"sort"

	"github.com/vulnticket/vulnticket/internal/config"
	"github.com/vulnticket/vulnticket/internal/types"
)

// FilterRank applies the environment and severity selections to records and
// returns the survivors stably sorted by (synopsis ascending, severity rank
// ascending). The stable order matters: grouping and description rendering
// later iterate rows in exactly this order, so records with equal keys keep
// their original relative position.
//
// The input slice is not modified. Returns ErrNoEnvironments for an empty
// environment selection, an *InvalidEnvironmentError for a code missing from
// the environment map, and ErrNoMatchingRecords when nothing survives.
func FilterRank(records []types.Record, sel types.Selection, maps config.Maps) ([]types.Record, error) {
	if len(sel.Environments) == 0 {
		return nil, ErrNoEnvironments
	}

	// Map selected codes (e.g. "PRD") to canonical labels (e.g. "1. Production").
	allowedEnvs := make(map[string]bool, len(sel.Environments))
	for _, code := range sel.Environments {
		label, ok := maps.Environments[code]
		if !ok {
			return nil, &InvalidEnvironmentError{Code: code}
		}
		allowedEnvs[label] = true
	}

	var allowedSevs map[string]bool
	if len(sel.Severities) > 0 {
		allowedSevs = make(map[string]bool, len(sel.Severities))
		for _, s := range sel.Severities {
			allowedSevs[s] = true
		}
	}

	filtered := make([]types.Record, 0, len(records))
	for _, r := range records {
		if !allowedEnvs[r.Environment] {
			continue
		}
		if allowedSevs != nil && !allowedSevs[r.VPR] {
			continue
		}
		filtered = append(filtered, r)
	}
	if len(filtered) == 0 {
		return nil, ErrNoMatchingRecords
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Synopsis != filtered[j].Synopsis {
			return filtered[i].Synopsis < filtered[j].Synopsis
		}
		return maps.Rank(filtered[i].VPR) < maps.Rank(filtered[j].VPR)
	})
	return filtered, nil
}
