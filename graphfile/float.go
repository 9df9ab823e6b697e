// SPDX-License-Identifier: MIT
//
// File: float.go
// Role: Float type that encodes +Inf portably in JSON and YAML.

package graphfile

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Float is a float64 whose JSON and YAML forms can carry +Inf.
type Float float64

// infText is the JSON spelling of +Inf.
const infText = "+Inf"

// MarshalJSON emits finite values as numbers and +Inf as "+Inf".
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsInf(v, 1):
		return json.Marshal(infText)
	case math.IsInf(v, -1) || math.IsNaN(v):
		return nil, fmt.Errorf("graphfile: cannot encode %v", v)
	}

	return []byte(strconv.FormatFloat(v, 'g', -1, 64)), nil
}

// UnmarshalJSON accepts a number or an infinity string.
func (f *Float) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return f.parse(s)
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Float(v)

	return nil
}

// UnmarshalYAML accepts .inf as well as the JSON spelling, so JSON result
// documents decode through the YAML path too.
func (f *Float) UnmarshalYAML(n *yaml.Node) error {
	var v float64
	if err := n.Decode(&v); err == nil {
		*f = Float(v)
		return nil
	}

	return f.parse(n.Value)
}

func (f *Float) parse(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+inf", "inf", "infinity", ".inf", "+.inf":
		*f = Float(math.Inf(1))
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("graphfile: bad number %q: %w", s, err)
	}
	*f = Float(v)

	return nil
}

// IsInf reports whether f is +Inf.
func (f Float) IsInf() bool { return math.IsInf(float64(f), 1) }
