package export

import (
	"fmt"
	htmltemplate "html/template"
	"io"

	"github.com/tmcasey/channelflow/pkg/hydraulics"
	"github.com/tmcasey/channelflow/pkg/units"
)

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Water Surface Profile Report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 0.3em 0.6em; text-align: right; }
th { background: #eee; }
.warn { color: #a33; }
</style>
</head>
<body>
<h1>Water Surface Profile</h1>
<p>
Channel class: <strong>{{.Profile.ChannelClass}}</strong> ·
Curve type: <strong>{{.Profile.CurveType}}</strong> ·
Critical depth: {{printf "%.4f" .Profile.CriticalDepth}} {{.Labels.Length}} ·
Normal depth: {{printf "%.4f" .Profile.NormalDepth}} {{.Labels.Length}}
</p>
{{if not .Profile.SolverConverged}}<p class="warn">One or more solver loops hit the iteration cap; results are best-effort estimates.</p>{{end}}
{{if .Profile.Choking}}<p class="warn">Choking detected: the section cannot pass the discharge with the available specific energy.</p>{{end}}
{{with .Profile.Jump}}
<h2>Hydraulic Jump</h2>
<p>{{.Type}} jump at station {{printf "%.2f" .Station}} {{$.Labels.Length}}:
depth {{printf "%.4f" .UpstreamDepth}} → {{printf "%.4f" .DownstreamDepth}} {{$.Labels.Length}},
upstream Froude {{printf "%.2f" .UpstreamFroude}},
energy loss {{printf "%.4f" .EnergyLoss}} {{$.Labels.Energy}}.</p>
{{end}}
<h2>Summary</h2>
<table>
<tr><th>Stations</th><th>Depth min/mean/max ({{.Labels.Length}})</th><th>Velocity min/mean/max ({{.Labels.Velocity}})</th><th>Max Froude</th></tr>
<tr>
<td>{{.Summary.StationCount}}</td>
<td>{{printf "%.4f / %.4f / %.4f" .Summary.MinDepth .Summary.MeanDepth .Summary.MaxDepth}}</td>
<td>{{printf "%.4f / %.4f / %.4f" .Summary.MinVelocity .Summary.MeanVelocity .Summary.MaxVelocity}}</td>
<td>{{printf "%.3f" .Summary.MaxFroude}}</td>
</tr>
</table>
<h2>Stations</h2>
<table>
<tr>
<th>Station ({{.Labels.Length}})</th><th>Depth ({{.Labels.Length}})</th>
<th>Velocity ({{.Labels.Velocity}})</th><th>Froude</th>
<th>Energy ({{.Labels.Energy}})</th><th>Top width ({{.Labels.Length}})</th>
</tr>
{{range .Profile.Stations}}
<tr>
<td>{{printf "%.2f" .Station}}</td>
<td>{{printf "%.4f" .Depth}}</td>
<td>{{printf "%.4f" .Velocity}}</td>
<td>{{printf "%.3f" .Froude}}</td>
<td>{{printf "%.4f" .SpecificEnergy}}</td>
<td>{{printf "%.4f" .TopWidth}}</td>
</tr>
{{end}}
</table>
</body>
</html>
`

var reportTmpl = htmltemplate.Must(htmltemplate.New("report").Parse(reportTemplate))

// WriteHTML renders the profile as a standalone HTML report.
func WriteHTML(w io.Writer, p *hydraulics.WaterSurfaceProfile) error {
	data := struct {
		Profile *hydraulics.WaterSurfaceProfile
		Summary Summary
		Labels  units.Labels
	}{
		Profile: p,
		Summary: Summarize(p),
		Labels:  units.LabelsFor(p.Params.Units),
	}
	if err := reportTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering HTML report: %w", err)
	}
	return nil
}
