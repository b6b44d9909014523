package constants

const (
	CreateSearchHistoryTable = `
	CREATE TABLE IF NOT EXISTS search_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filters TEXT NOT NULL,
		result_count INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	)
	`

	InsertSearchHistory = `
	INSERT INTO search_history (filters, result_count, duration_ms, created_at)
	VALUES (?, ?, ?, ?)
	`

	SelectRecentSearches = `
	SELECT id, filters, result_count, duration_ms, created_at
	FROM search_history ORDER BY id DESC LIMIT ?
	`
)
