package handlers

import (
	"fmt"

	"wellecon/internal/api/models"
	"wellecon/internal/model"
)

// buildPortfolio converts and checks a multi-group request: every group's
// assumptions are valid, every member exists, and no well is in two groups.
func buildPortfolio(presets *TypeCurveHandler, wellsIn []models.WellInput, groupsIn []models.GroupInput) ([]model.Well, []model.WellGroup, error) {
	wells := models.ToModelWells(wellsIn)
	known := make(map[string]bool, len(wells))
	for _, w := range wells {
		known[w.ID] = true
	}

	groups := make([]model.WellGroup, 0, len(groupsIn))
	owner := make(map[string]string)
	for _, gi := range groupsIn {
		g := gi.ToModel()
		tc, err := presets.Resolve(gi.TypeCurveID, gi.TypeCurve)
		if err != nil {
			return nil, nil, fmt.Errorf("group %s: %w", g.ID, err)
		}
		g.TypeCurve = tc

		for _, id := range g.WellIDs.IDs() {
			if !known[id] {
				return nil, nil, fmt.Errorf("group %s: unknown well %s", g.ID, id)
			}
			if prev, ok := owner[id]; ok {
				return nil, nil, fmt.Errorf("well %s is in groups %s and %s", id, prev, g.ID)
			}
			owner[id] = g.ID
		}
		if err := model.ValidateInputs(g.WellIDs.Select(wells), g.TypeCurve, g.Capex, g.Pricing, nil, nil); err != nil {
			return nil, nil, fmt.Errorf("group %s: %w", g.ID, err)
		}
		groups = append(groups, g)
	}
	return wells, groups, nil
}
