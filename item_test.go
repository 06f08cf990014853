// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemdemo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemKey(t *testing.T) {
	testData := []struct {
		item     Item
		expected string
	}{
		{
			item:     Item{Name: "item1", Price: 1000},
			expected: "item1:1000",
		},
		{
			item:     Item{},
			expected: ":0",
		},
		{
			item:     Item{Name: "a:b", Price: -5},
			expected: "a:b:-5",
		},
	}

	for _, record := range testData {
		t.Run(record.expected, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(record.expected, record.item.Key())
			assert.Equal(record.expected, record.item.String())
		})
	}
}

func testParseItemKeyValid(t *testing.T) {
	for _, expected := range []Item{
		{Name: "item1", Price: 1000},
		{Name: "", Price: 0},
		{Name: "a:b", Price: -5},
		{Name: "with space", Price: 123456},
	} {
		t.Run(expected.Key(), func(t *testing.T) {
			var (
				assert  = assert.New(t)
				require = require.New(t)
			)

			actual, err := ParseItemKey(expected.Key())
			require.NoError(err)
			assert.Equal(expected, actual)
		})
	}
}

func testParseItemKeyInvalid(t *testing.T) {
	for _, v := range []string{"", "item1", "item1:", "item1:abc", "item1:1000x"} {
		t.Run(v, func(t *testing.T) {
			_, err := ParseItemKey(v)
			assert.ErrorIs(t, err, ErrInvalidItemKey)
		})
	}
}

func TestParseItemKey(t *testing.T) {
	t.Run("Valid", testParseItemKeyValid)
	t.Run("Invalid", testParseItemKeyInvalid)
}

func TestItemEquality(t *testing.T) {
	var (
		assert = assert.New(t)
		m      = map[Item]bool{}
	)

	m[Item{Name: "item1", Price: 1000}] = true
	assert.True(m[Item{Name: "item1", Price: 1000}])
	assert.False(m[Item{Name: "item1", Price: 999}])
	assert.False(m[Item{Name: "item2", Price: 1000}])
}
