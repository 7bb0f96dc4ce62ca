package mysql

const upsertHotelSQL = `
INSERT INTO hotels
  (code, local_name, global_name, type, address, star, service_scope, area, key_features, seasons, rooms)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  local_name    = VALUES(local_name),
  global_name   = VALUES(global_name),
  type          = VALUES(type),
  address       = VALUES(address),
  star          = VALUES(star),
  service_scope = VALUES(service_scope),
  area          = VALUES(area),
  key_features  = VALUES(key_features),
  seasons       = VALUES(seasons),
  rooms         = VALUES(rooms),
  updated_at    = CURRENT_TIMESTAMP
`

const insertMissSQL = `
INSERT INTO convert_misses (record_id, http_status, reason)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE seen_at = CURRENT_TIMESTAMP, http_status = VALUES(http_status), reason = VALUES(reason)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const getHotelSQL = `
SELECT
  code,
  local_name,
  global_name,
  type,
  address,
  star,
  service_scope,
  area,
  key_features,
  seasons,
  rooms
FROM hotels
WHERE code = ?
`

// Room counts come from the stored JSON document; cheap enough at list sizes.
const listHotelsSQL = `
SELECT
  code,
  global_name,
  type,
  star,
  area,
  JSON_LENGTH(rooms)
FROM hotels
WHERE (? IS NULL OR global_name LIKE CONCAT('%', ?, '%'))
  AND (? IS NULL OR type = ?)
ORDER BY code
LIMIT ?
`
