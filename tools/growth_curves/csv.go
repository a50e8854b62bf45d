package growth_curves

import (
	"encoding/csv"
	"io"
	"slices"
	"strconv"
)

// WriteCSV writes the dataset as curve_id,time,value rows
func WriteCSV(w io.Writer, ds Dataset) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"curve_id", "time", "value"}); err != nil {
		return err
	}
	for _, r := range ds.Records {
		row := []string{
			strconv.Itoa(r.CurveID),
			strconv.Itoa(r.Time),
			strconv.FormatFloat(r.Value, 'f', 4, 64),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteThresholdCSV writes curve_id,threshold_time sorted by id; NA marks NotReached
func WriteThresholdCSV(w io.Writer, times map[int]int) error {
	ids := make([]int, 0, len(times))
	for id := range times {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"curve_id", "threshold_time"}); err != nil {
		return err
	}
	for _, id := range ids {
		t := "NA"
		if times[id] != NotReached {
			t = strconv.Itoa(times[id])
		}
		if err := writer.Write([]string{strconv.Itoa(id), t}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
