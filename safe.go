// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemdemo

import "reflect"

// Safe returns candidate if it is a valid, non-nil instance.  Otherwise, def is returned.
//
//	logger := itemdemo.Safe(in.Logger, zap.NewNop()) // never nil
func Safe[T any](candidate, def T) T {
	cv := reflect.ValueOf(candidate)
	if !cv.IsValid() {
		return def
	}

	switch cv.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Interface:
		if cv.IsNil() {
			return def
		}
	}

	return candidate
}
