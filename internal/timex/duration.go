// Package timex provides a time.Duration wrapper that can be decoded from
// config files either as a Go duration string ("10m", "1.5s") or as an
// integer number of nanoseconds.
package timex

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return d.set(v)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if n, err := time.ParseDuration(s); err == nil {
		d.Duration = n
		return nil
	}
	var i int64
	if err := node.Decode(&i); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	d.Duration = time.Duration(i)
	return nil
}

func (d *Duration) set(v any) error {
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		n, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = n
		return nil
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
}
