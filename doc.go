// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package itemdemo holds the demo item catalog and the infrastructure shared by
the rest of this module.

# The catalog

BuildDataset produces the fixed Dataset of four Items keyed "1" through "4".
Assemble re-keys a Dataset by Item value and packages it, together with the
Item for SelectedKey, into a Response.

# Configuration and logging

Components are unmarshaled from viper through an Unmarshaler, typically
supplied to an fx.App with ForViper.  Logger supplies a *zap.Logger and routes
uber/fx events through it.
*/
package itemdemo
