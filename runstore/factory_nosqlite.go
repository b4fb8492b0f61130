//go:build !sqlite

// SPDX-License-Identifier: MIT

package runstore

import "errors"

func newSQLiteStore(_ string) (Store, error) {
	return nil, errors.New("sqlite backend unavailable in this build; rebuild with -tags sqlite")
}
