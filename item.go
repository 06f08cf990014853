// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemdemo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// KeySeparator separates the name and price in an Item's canonical key.
const KeySeparator = ":"

// ErrInvalidItemKey is returned by ParseItemKey when its input is not
// of the form produced by Item.Key.
var ErrInvalidItemKey = errors.New("invalid item key")

// Item is an immutable demo catalog entry.  Two Items are equal when both
// their names and prices are equal, which makes Item usable as a map key.
type Item struct {
	Name  string `json:"name" yaml:"name" mapstructure:"name"`
	Price int    `json:"price" yaml:"price" mapstructure:"price"`
}

// Key returns the canonical string form of this Item, "<name>:<price>".
// This is the form used wherever an Item must act as a string key, e.g. the
// keys of a serialized DerivedMapping.
func (i Item) Key() string {
	return i.Name + KeySeparator + strconv.Itoa(i.Price)
}

// String returns the same value as Key.
func (i Item) String() string {
	return i.Key()
}

// ParseItemKey is the inverse of Item.Key.  The price is taken from the text
// after the last separator, so names that themselves contain the separator
// still parse.
func ParseItemKey(v string) (i Item, err error) {
	pos := strings.LastIndex(v, KeySeparator)
	if pos < 0 {
		err = fmt.Errorf("%w: %q has no price", ErrInvalidItemKey, v)
		return
	}

	i.Name = v[:pos]
	if i.Price, err = strconv.Atoi(v[pos+len(KeySeparator):]); err != nil {
		err = fmt.Errorf("%w: %q: %s", ErrInvalidItemKey, v, err)
	}

	return
}
