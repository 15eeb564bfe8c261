// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

// Tx represents a database transaction. It is unsafe to be used
// concurrently. All statements which are executed in a single
// transaction observe the ACID properties; a READ-COMMITTED isolation
// level is expected from a PostgreSQL DBMS server by default.
// For statement execution methods, see the Queryer interface.
type Tx interface {
	Queryer

	// IsTx method prevents a non-Tx object (such as a Conn) to
	// mistakenly implement the Tx interface.
	IsTx()
}
