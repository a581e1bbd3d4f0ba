package export

import (
	"encoding/json"
	"io"

	"github.com/tmcasey/channelflow/pkg/hydraulics"
)

// Document is the JSON export payload: the complete profile plus the
// aggregate summary.
type Document struct {
	Profile *hydraulics.WaterSurfaceProfile `json:"profile"`
	Summary Summary                         `json:"summary"`
}

// WriteJSON renders the profile and its summary as an indented JSON
// document.
func WriteJSON(w io.Writer, p *hydraulics.WaterSurfaceProfile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Document{Profile: p, Summary: Summarize(p)})
}
