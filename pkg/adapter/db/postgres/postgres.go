// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres adapts the core repo ports to a PostgreSQL DBMS
// server using the GORM framework over the pgx driver. The Pool, Conn,
// and Tx types realize the repo.Pool, repo.Conn, and repo.Tx
// interfaces respectively, while per-table repository packages (such
// as carsrp) run their queries through the Queryer type set.
package postgres
