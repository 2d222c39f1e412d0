package request_models

import (
	"encoding/json"
	"strings"
)

type GenerateItineraryRequest struct {
	City     string    `json:"city"`
	Days     int       `json:"days"`
	MustSees []MustSee `json:"must_sees"`
}

// MustSee arrives either as a bare string or as {"name": ..., "address": ...}
// depending on which client sent it.
type MustSee struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

func (m *MustSee) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		m.Name = name
		m.Address = ""
		return nil
	}

	type mustSeeObject MustSee
	var obj mustSeeObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*m = MustSee(obj)
	return nil
}

// MustSeeNames extracts the non-empty names in order.
func MustSeeNames(mustSees []MustSee) []string {
	var names []string
	for _, ms := range mustSees {
		if name := strings.TrimSpace(ms.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
