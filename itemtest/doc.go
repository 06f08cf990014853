// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package itemtest has test helpers for fx applications built from this module.
*/
package itemtest
