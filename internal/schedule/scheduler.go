package schedule

import (
	"math"
	"sort"

	"wellecon/internal/model"
)

// Assignment is one well's place in the drilling program.
// StartMonth is months from program start and may be fractional.
type Assignment struct {
	Well       model.Well
	RigIndex   int
	StartMonth float64
}

// Scheduler owns a rig availability timeline.
// Each slot holds the month at which that rig is next free.
// A Scheduler is single-use per evaluation and not safe for concurrent use.
type Scheduler struct {
	cycleMonths float64
	available   []float64
}

// CycleMonths is the time one rig is tied up per well (drill + completion).
func CycleMonths(drillDays, stimDays float64) float64 {
	return (drillDays + stimDays) / model.DaysPerMonth
}

// NewFlat builds round(rigCount) rigs, all free at month 0. Counts below 1 clamp to 1.
func NewFlat(rigCount, drillDays, stimDays float64) *Scheduler {
	n := int(math.Round(rigCount))
	if n < 1 {
		n = 1
	}
	return &Scheduler{
		cycleMonths: CycleMonths(drillDays, stimDays),
		available:   make([]float64, n),
	}
}

// NewRamp builds a timeline from a per-year rig plan.
// Year 1 rigs are free at month 0. Each later year that raises the count adds
// the extra rigs at month 12*year. A year that lowers the count removes nothing.
// Fractional counts round up.
func NewRamp(annualRigs []float64, drillDays, stimDays float64) *Scheduler {
	first := 1.0
	if len(annualRigs) > 0 && annualRigs[0] > 0 {
		first = annualRigs[0]
	}
	n := int(math.Ceil(first))
	if n < 1 {
		n = 1
	}
	available := make([]float64, n)

	for y := 1; y < len(annualRigs); y++ {
		prev, curr := annualRigs[y-1], annualRigs[y]
		if curr <= prev {
			continue
		}
		added := int(math.Ceil(curr - prev))
		startAt := float64(y * 12)
		for k := 0; k < added; k++ {
			available = append(available, startAt)
		}
	}

	return &Scheduler{
		cycleMonths: CycleMonths(drillDays, stimDays),
		available:   available,
	}
}

// New picks the ramp override when present, else the group's flat rig count.
func New(capex model.CapexAssumptions, override *model.ScheduleParams) *Scheduler {
	if override != nil {
		return NewRamp(override.AnnualRigs, override.DrillDurationDays, override.StimDurationDays)
	}
	return NewFlat(capex.RigCount, capex.DrillDurationDays, capex.StimDurationDays)
}

// Rigs is the number of rig slots on the timeline.
func (s *Scheduler) Rigs() int { return len(s.available) }

// Next claims the earliest free rig (lowest index on ties) for one well
// and returns that rig and the well's start month.
func (s *Scheduler) Next() (int, float64) {
	best := 0
	for i := 1; i < len(s.available); i++ {
		if s.available[i] < s.available[best] {
			best = i
		}
	}
	start := s.available[best]
	s.available[best] += s.cycleMonths
	return best, start
}

// Assign drills the longest laterals first. Equal laterals keep input order.
func (s *Scheduler) Assign(wells []model.Well) []Assignment {
	ordered := append([]model.Well(nil), wells...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].LateralLength > ordered[j].LateralLength
	})

	out := make([]Assignment, 0, len(ordered))
	for _, w := range ordered {
		rig, start := s.Next()
		out = append(out, Assignment{Well: w, RigIndex: rig, StartMonth: start})
	}
	return out
}
