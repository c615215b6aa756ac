package report

import (
	"encoding/json"
	"io"
)

// WriteJSON renders the summary as indented JSON. Records are omitted
// unless details are requested.
func WriteJSON(w io.Writer, s Summary, opts Options) error {
	if !opts.Details {
		s.Records = nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
