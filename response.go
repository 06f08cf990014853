// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemdemo

import (
	"encoding/json"
	"fmt"
)

// SelectedKey is the Dataset key whose Item is reported as Response.Item.
const SelectedKey = "1"

// DerivedMapping maps each distinct Item onto itself.
//
// Serialized forms use Item.Key for map keys, since neither JSON nor most YAML
// consumers can represent a structured key.
type DerivedMapping map[Item]Item

// Derive re-keys a Dataset by value.  Value-equal Items collapse into one
// entry; since key and value are identical, which entry wins does not matter.
func Derive(d Dataset) DerivedMapping {
	dm := make(DerivedMapping, len(d))
	for _, item := range d {
		dm[item] = item
	}

	return dm
}

// Contains tests if the given Item is a key of this mapping.
func (dm DerivedMapping) Contains(i Item) bool {
	_, ok := dm[i]
	return ok
}

func (dm DerivedMapping) keyed() map[string]Item {
	m := make(map[string]Item, len(dm))
	for k, v := range dm {
		m[k.Key()] = v
	}

	return m
}

// MarshalJSON writes this mapping as a JSON object keyed by Item.Key.
func (dm DerivedMapping) MarshalJSON() ([]byte, error) {
	return json.Marshal(dm.keyed())
}

// UnmarshalJSON reads the form written by MarshalJSON.  Each key must parse
// with ParseItemKey and must equal its value.
func (dm *DerivedMapping) UnmarshalJSON(b []byte) error {
	var keyed map[string]Item
	if err := json.Unmarshal(b, &keyed); err != nil {
		return err
	}

	m := make(DerivedMapping, len(keyed))
	for k, v := range keyed {
		item, err := ParseItemKey(k)
		if err != nil {
			return err
		}

		if item != v {
			return fmt.Errorf("%w: key %q does not match value %s", ErrInvalidItemKey, k, v)
		}

		m[item] = v
	}

	*dm = m
	return nil
}

// MarshalYAML implements yaml.Marshaler, using the same keys as MarshalJSON.
func (dm DerivedMapping) MarshalYAML() (interface{}, error) {
	return dm.keyed(), nil
}

// Response is the aggregate returned to clients of the mapString endpoint.
type Response struct {
	ItemMap     Dataset        `json:"itemMap" yaml:"itemMap"`
	ItemItemMap DerivedMapping `json:"itemItemMap" yaml:"itemItemMap"`
	Item        Item           `json:"item" yaml:"item"`
}

// Assemble builds a Response from a Dataset.  If the Dataset has no entry
// for SelectedKey, the returned error is a *NotFoundError.
func Assemble(d Dataset) (r Response, err error) {
	r.ItemMap = d
	r.ItemItemMap = Derive(d)
	r.Item, err = d.Lookup(SelectedKey)
	if err != nil {
		r = Response{}
	}

	return
}
