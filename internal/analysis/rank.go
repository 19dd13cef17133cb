package analysis

import (
	"sort"

	"wellecon/internal/model"
)

// GroupRanking is a group-level summary you can use to compare capital efficiency.
type GroupRanking struct {
	GroupID   string
	Name      string
	WellCount int

	NPV10        float64
	TotalCapex   float64
	EUR          float64
	PayoutMonths int

	// Efficiency is NPV10 per dollar of capex.
	Efficiency float64
	// DevelopmentCost is capex per barrel recovered ($/bbl).
	DevelopmentCost float64
}

func ComputeRanking(g model.WellGroup, r model.GroupResult) GroupRanking {
	out := GroupRanking{
		GroupID:      g.ID,
		Name:         g.Name,
		WellCount:    r.Metrics.WellCount,
		NPV10:        r.Metrics.NPV10,
		TotalCapex:   r.Metrics.TotalCapex,
		EUR:          r.Metrics.EUR,
		PayoutMonths: r.Metrics.PayoutMonths,
	}
	if out.TotalCapex > 0 {
		out.Efficiency = out.NPV10 / out.TotalCapex
	}
	if out.EUR > 0 {
		out.DevelopmentCost = out.TotalCapex / out.EUR
	}
	return out
}

// RankGroups pairs each group with its result by ID and sorts descending by NPV10.
// Groups without a result are skipped.
func RankGroups(groups []model.WellGroup, results []model.GroupResult) []GroupRanking {
	byID := make(map[string]model.GroupResult, len(results))
	for _, r := range results {
		byID[r.GroupID] = r
	}

	out := make([]GroupRanking, 0, len(groups))
	for _, g := range groups {
		r, ok := byID[g.ID]
		if !ok {
			continue
		}
		out = append(out, ComputeRanking(g, r))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NPV10 > out[j].NPV10
	})
	return out
}
