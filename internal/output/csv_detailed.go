package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// CSVDetailedExporter writes the yearly trajectory, one row per year.
// Years where a series has no value are left empty.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.CalculationResult, _ FormatOptions) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	traj := results.Trajectory
	header := []string{"Year", "Age", traj.SavingsPhase.Label, traj.CoastingPhase.Label, traj.TraditionalPath.Label, "CoastFIRENumber", "FutureFIRENumber"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := 0; i < traj.Len(); i++ {
		record := []string{
			intToString(i),
			fixed2(traj.TraditionalPath.Points[i].Age),
			optionalCell(traj.SavingsPhase.Points[i].Balance),
			optionalCell(traj.CoastingPhase.Points[i].Balance),
			optionalCell(traj.TraditionalPath.Points[i].Balance),
			fixed2(traj.CoastFIRENumber),
			fixed2(traj.FutureFIRENumber),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func optionalCell(v *float64) string {
	if v == nil {
		return ""
	}
	return fixed2(*v)
}
