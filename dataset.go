// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemdemo

import "strconv"

// DefaultPrice is the price of every item in the demo catalog.
const DefaultPrice = 1000

// catalog is the ordered sequence the demo Dataset is built from.
var catalog = []Item{
	{Name: "item1", Price: DefaultPrice},
	{Name: "item2", Price: DefaultPrice},
	{Name: "item3", Price: DefaultPrice},
	{Name: "item4", Price: DefaultPrice},
}

// Dataset maps string identifiers onto Items.
type Dataset map[string]Item

// NewDataset keys a sequence of Items by position.  The first item has the key "1",
// the second "2", and so on.
func NewDataset(items ...Item) Dataset {
	d := make(Dataset, len(items))
	for i, item := range items {
		d[strconv.Itoa(i+1)] = item
	}

	return d
}

// BuildDataset returns a fresh copy of the fixed demo Dataset:
//
//	"1" => item1:1000
//	"2" => item2:1000
//	"3" => item3:1000
//	"4" => item4:1000
//
// Callers own the returned map and may modify it freely.
func BuildDataset() Dataset {
	return NewDataset(catalog...)
}

// Lookup returns the Item with the given key.  If no such key exists,
// a *NotFoundError is returned.
func (d Dataset) Lookup(key string) (Item, error) {
	item, ok := d[key]
	if !ok {
		return Item{}, &NotFoundError{Key: key}
	}

	return item, nil
}
