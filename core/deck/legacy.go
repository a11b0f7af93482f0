package deck

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// looseID decodes a deck id written either as a JSON string or a number.
// Artifacts from the first pipeline stored the numeric database id.
type looseID string

func (id *looseID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = looseID(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("deck id: expected string or number, got %s", data)
		}
		*id = looseID(n.String())
		return nil
	}
}

// UnmarshalJSON reads the current layout and the first pipeline's one,
// which used a numeric deck_id and a "formato" key.
func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document
	aux := struct {
		*plain
		DeckID  looseID `json:"deck_id"`
		Formato *string `json:"formato"`
	}{plain: (*plain)(d)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	d.DeckID = string(aux.DeckID)
	if d.Format == "" && aux.Formato != nil {
		d.Format = *aux.Formato
	}
	return nil
}

// UnmarshalJSON accepts string or numeric deck ids in the posting lists.
func (ix *Index) UnmarshalJSON(data []byte) error {
	var raw map[string][]looseID
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*ix = nil
		return nil
	}
	out := make(Index, len(raw))
	for name, ids := range raw {
		list := make([]string, len(ids))
		for i, id := range ids {
			list[i] = string(id)
		}
		out[name] = list
	}
	*ix = out
	return nil
}
