package database

import (
	"context"
	"database/sql"
)

// schema holds the three collections in dependency order. Uniqueness
// on username and table_number is enforced here; the FK ties every
// reservation to an existing table.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(191) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_username (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS tables (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		table_number INT UNSIGNED NOT NULL,
		seats INT UNSIGNED NOT NULL,
		status ENUM('Available','Reserved') NOT NULL DEFAULT 'Available',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_tables_number (table_number)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		table_id BIGINT UNSIGNED NOT NULL,
		customer_name VARCHAR(191) NOT NULL,
		date VARCHAR(32) NOT NULL,
		time VARCHAR(32) NOT NULL,
		status ENUM('Pending','Confirmed') NOT NULL DEFAULT 'Pending',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_reservations_table (table_id),
		CONSTRAINT fk_reservations_table FOREIGN KEY (table_id) REFERENCES tables(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the users, tables and reservations tables when
// they do not exist yet. Statements are idempotent so running it at
// every startup is safe.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
