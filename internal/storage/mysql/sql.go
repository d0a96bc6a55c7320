package mysql

const upsertGymSQL = `
INSERT INTO gyms
  (id, name, local_name, address, description, city, district, country,
   lat, lng, type, certified, programs, tags, rating, review_count,
   schedule, verified, featured, images, raw)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name         = VALUES(name),
  local_name   = VALUES(local_name),
  address      = VALUES(address),
  description  = VALUES(description),
  city         = VALUES(city),
  district     = VALUES(district),
  country      = VALUES(country),
  lat          = VALUES(lat),
  lng          = VALUES(lng),
  type         = VALUES(type),
  certified    = VALUES(certified),
  programs     = VALUES(programs),
  tags         = VALUES(tags),
  rating       = VALUES(rating),
  review_count = VALUES(review_count),
  schedule     = VALUES(schedule),
  verified     = VALUES(verified),
  featured     = VALUES(featured),
  images       = VALUES(images),
  raw          = VALUES(raw),
  updated_at   = CURRENT_TIMESTAMP
`

const insertMissSQL = `
INSERT INTO ingest_misses (id, http_status, reason)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE seen_at = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// Shared column list for candidate reads; scanGym depends on this order.
const gymColumns = `
  id, name, local_name, address, description, city, district, country,
  lat, lng, type, certified, programs, tags, rating, review_count,
  schedule, verified, featured, images
`

const getGymSQL = `SELECT` + gymColumns + `FROM gyms WHERE id = ?`

// Candidate reads share a WHERE clause built from the coarse filters; a
// deterministic base order keeps paging stable, the engine re-ranks in memory.
const findCandidatesSQL = `SELECT` + gymColumns + `FROM gyms`
const countCandidatesSQL = `SELECT COUNT(*) FROM gyms`
const candidatesOrderSQL = ` ORDER BY id`

const listCitiesSQL = `
SELECT city, COUNT(*) AS cnt
FROM gyms
WHERE city IS NOT NULL AND city <> ''
GROUP BY city
ORDER BY cnt DESC, city ASC
`

const listCountriesSQL = `
SELECT country, city, COUNT(*) AS cnt
FROM gyms
WHERE country IS NOT NULL AND country <> ''
  AND city IS NOT NULL AND city <> ''
GROUP BY country, city
ORDER BY country ASC, cnt DESC, city ASC
`
