//go:build deps

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cartrade

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
