package growth_curves

import (
	"cmp"
	"fmt"
	"slices"
)

// Record is one row of a Dataset
type Record struct {
	CurveID int
	Time    int
	Value   float64
}

// Dataset is a table of curves ordered by curve id, then time ascending
type Dataset struct {
	Horizon int
	Records []Record
	Params  []CurveParams
}

// Batch draws n independent curves with ids 0..n-1
func (s *Simulator) Batch(n int) (Dataset, error) {
	if n <= 0 {
		return Dataset{}, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}
	ds := Dataset{
		Horizon: s.cfg.Horizon,
		Records: make([]Record, 0, n*s.cfg.Horizon),
		Params:  make([]CurveParams, 0, n),
	}
	for id := 0; id < n; id++ {
		curve, params := s.Curve()
		params.CurveID = id
		ds.Params = append(ds.Params, params)
		for t, v := range curve {
			ds.Records = append(ds.Records, Record{CurveID: id, Time: t, Value: v})
		}
	}
	return ds, nil
}

// GenerateGrowthCurves builds a seeded simulator and draws n curves from it
func GenerateGrowthCurves(n int, cfg Config, seed uint64) (Dataset, error) {
	sim, err := NewSeeded(cfg, seed)
	if err != nil {
		return Dataset{}, err
	}
	return sim.Batch(n)
}

func (d Dataset) Len() int { return len(d.Records) }

// CurveIDs lists distinct ids in first-seen order
func (d Dataset) CurveIDs() []int {
	seen := make(map[int]bool)
	var ids []int
	for _, r := range d.Records {
		if !seen[r.CurveID] {
			seen[r.CurveID] = true
			ids = append(ids, r.CurveID)
		}
	}
	return ids
}

// Curve returns the values for id ordered by time, or nil if id is absent
func (d Dataset) Curve(id int) Curve {
	return values(d.rows(id))
}

func (d Dataset) Curves() map[int]Curve {
	ids, groups := d.groups()
	out := make(map[int]Curve, len(ids))
	for _, id := range ids {
		out[id] = values(groups[id])
	}
	return out
}

// Head returns up to n leading records
func (d Dataset) Head(n int) []Record {
	return d.Records[:min(n, len(d.Records))]
}

// rows returns the records for id sorted by time
func (d Dataset) rows(id int) []Record {
	var rows []Record
	for _, r := range d.Records {
		if r.CurveID == id {
			rows = append(rows, r)
		}
	}
	sortByTime(rows)
	return rows
}

// groups splits the records by curve id in one pass. ids keeps first-seen
// order and every group is sorted by time.
func (d Dataset) groups() ([]int, map[int][]Record) {
	var ids []int
	groups := make(map[int][]Record)
	for _, r := range d.Records {
		g, ok := groups[r.CurveID]
		if !ok {
			ids = append(ids, r.CurveID)
			if d.Horizon > 0 {
				g = make([]Record, 0, d.Horizon)
			}
		}
		groups[r.CurveID] = append(g, r)
	}
	for _, id := range ids {
		sortByTime(groups[id])
	}
	return ids, groups
}

func sortByTime(rows []Record) {
	byTime := func(a, b Record) int { return cmp.Compare(a.Time, b.Time) }
	// Batch output is already ordered
	if !slices.IsSortedFunc(rows, byTime) {
		slices.SortStableFunc(rows, byTime)
	}
}

func values(rows []Record) Curve {
	if len(rows) == 0 {
		return nil
	}
	out := make(Curve, len(rows))
	for i, r := range rows {
		out[i] = r.Value
	}
	return out
}
