// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package itemhttp serves the item catalog over HTTP.  The http.Server is
built from an unmarshaled ServerConfig and bound to the lifecycle of the
enclosing fx.App by Provide.
*/
package itemhttp
