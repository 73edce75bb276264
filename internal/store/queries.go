// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package store

const (
	saveLocation = `
		INSERT INTO locations (
			id,
			name,
			lat,
			lng,
			category,
			description,
			address,
			image_url,
			thumbnail_url,
			icon,
			source
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name          = excluded.name,
			lat           = excluded.lat,
			lng           = excluded.lng,
			category      = excluded.category,
			description   = excluded.description,
			address       = excluded.address,
			image_url     = excluded.image_url,
			thumbnail_url = excluded.thumbnail_url,
			icon          = excluded.icon,
			source        = excluded.source;`

	getAllLocations = `
		SELECT
			id,
			name,
			lat,
			lng,
			category,
			description,
			address,
			image_url,
			thumbnail_url,
			icon,
			source
		FROM locations
		ORDER BY id;`

	getKVValue = `
		SELECT value
		FROM kv
		WHERE key = $1;`

	setKVValue = `
		INSERT INTO kv (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`
)
