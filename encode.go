package carteira

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// The snapshot is persisted as one JSON object; decimals are written as
// plain JSON numbers so the blob stays readable and compatible with the
// historical data shape.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeSnapshot writes the snapshot as indented JSON.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot from JSON and refreshes every derived
// field, so a blob with stale derived values heals on load.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	s := NewSnapshot()
	if err := json.NewDecoder(r).Decode(s); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if s.Assets == nil {
		s.Assets = []Asset{}
	}
	if s.CashMovements == nil {
		s.CashMovements = []CashMovement{}
	}
	return s.Refresh(), nil
}

// Export wraps the snapshot in an envelope tagged with the export time.
type Export struct {
	ExportedAt time.Time `json:"exportedAt"`
	Snapshot   *Snapshot `json:"snapshot"`
}

// ExportSnapshot writes the snapshot in the import/export envelope.
func ExportSnapshot(w io.Writer, s *Snapshot, at time.Time) error {
	var ow jsonObjectWriter
	ow.Append("exportedAt", at.Format(time.RFC3339))
	ow.Append("snapshot", s)
	data, err := ow.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// ImportSnapshot reads an exported envelope, or a bare snapshot for data
// predating the envelope, and returns the refreshed snapshot.
func ImportSnapshot(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading import: %w", err)
	}
	var envelope struct {
		Snapshot *Snapshot `json:"snapshot"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Snapshot != nil {
		return envelope.Snapshot.Refresh(), nil
	}
	return DecodeSnapshot(bytes.NewReader(data))
}

// jsonID decodes an id that historical data stored as a JSON number
// (a millisecond timestamp) and current data stores as a string.
type jsonID string

func (id *jsonID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = jsonID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = jsonID(n.String())
	return nil
}
