package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/tmcasey/channelflow/pkg/hydraulics"
	"github.com/tmcasey/channelflow/pkg/units"
)

// WriteCSV renders the profile's station table as CSV. Column headers carry
// the display unit labels for the profile's unit system.
func WriteCSV(w io.Writer, p *hydraulics.WaterSurfaceProfile) error {
	labels := units.LabelsFor(p.Params.Units)

	cw := csv.NewWriter(w)
	header := []string{
		fmt.Sprintf("station (%s)", labels.Length),
		fmt.Sprintf("depth (%s)", labels.Length),
		fmt.Sprintf("velocity (%s)", labels.Velocity),
		"froude",
		fmt.Sprintf("specific energy (%s)", labels.Energy),
		fmt.Sprintf("critical depth (%s)", labels.Length),
		fmt.Sprintf("normal depth (%s)", labels.Length),
		fmt.Sprintf("top width (%s)", labels.Length),
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, s := range p.Stations {
		row := []string{
			formatFloat(s.Station),
			formatFloat(s.Depth),
			formatFloat(s.Velocity),
			formatFloat(s.Froude),
			formatFloat(s.SpecificEnergy),
			formatFloat(s.CriticalDepth),
			formatFloat(s.NormalDepth),
			formatFloat(s.TopWidth),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
