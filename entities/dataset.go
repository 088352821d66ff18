package entities

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Dataset is the whole persisted state: all farms and all production records,
// loaded and saved as one JSON document. Top-level keys other than "fazendas"
// and "producao" are kept verbatim so restored backups survive a re-export.
type Dataset struct {
	Farms      []Farm
	Production []ProductionRecord

	extra map[string]json.RawMessage
}

func (d *Dataset) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Farms = nil
	d.Production = nil
	d.extra = nil
	for k, v := range raw {
		switch k {
		case "fazendas":
			if err := json.Unmarshal(v, &d.Farms); err != nil {
				return err
			}
		case "producao":
			if err := json.Unmarshal(v, &d.Production); err != nil {
				return err
			}
		default:
			if d.extra == nil {
				d.extra = map[string]json.RawMessage{}
			}
			d.extra[k] = v
		}
	}
	return nil
}

func (d Dataset) MarshalJSON() ([]byte, error) {
	farms := d.Farms
	if farms == nil {
		farms = []Farm{}
	}
	production := d.Production
	if production == nil {
		production = []ProductionRecord{}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.WriteString(`"fazendas":`)
	fb, err := json.Marshal(farms)
	if err != nil {
		return nil, err
	}
	buf.Write(fb)
	buf.WriteString(`,"producao":`)
	pb, err := json.Marshal(production)
	if err != nil {
		return nil, err
	}
	buf.Write(pb)

	keys := make([]string, 0, len(d.extra))
	for k := range d.extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		buf.WriteByte(',')
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(d.extra[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FindFarm returns the farm with the given id, or nil.
func (d *Dataset) FindFarm(id int) *Farm {
	for i := range d.Farms {
		if d.Farms[i].ID == id {
			return &d.Farms[i]
		}
	}
	return nil
}
