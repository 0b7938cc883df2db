// SPDX-License-Identifier: Apache-2.0

package store

const (
	upsertPortfolioSnapshot = `
		INSERT INTO portfolios (id, name, snapshot, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			snapshot = excluded.snapshot,
			updated_at = excluded.updated_at;`

	getPortfolioSnapshot = `
		SELECT snapshot
		FROM portfolios
		WHERE id = $1;`

	listPortfolioSnapshots = `
		SELECT snapshot
		FROM portfolios
		ORDER BY updated_at DESC;`

	upsertQuote = `
		INSERT INTO quotes (symbol, price, at)
		VALUES ($1, $2, $3)
		ON CONFLICT(symbol) DO UPDATE SET
			price = excluded.price,
			at = excluded.at;`

	getQuote = `
		SELECT price
		FROM quotes
		WHERE symbol = $1;`
)
