package db

import (
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"fr24/spotter/internal/constants"
)

var HistoryDB *sqlx.DB

// InitHistoryDB opens the sqlite store for the search history log and
// creates the table when missing.
func InitHistoryDB() error {
	path := os.Getenv("HISTORY_DB_PATH")
	if path == "" {
		path = "search_history.db"
	}

	var err error
	HistoryDB, err = sqlx.Connect("sqlite3", path)
	if err != nil {
		return err
	}

	_, err = HistoryDB.Exec(constants.CreateSearchHistoryTable)
	return err
}
