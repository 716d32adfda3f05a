package database

// migrations holds the ordered SQL migration groups per driver. Each entry is
// a slice of statements executed together in a single transaction; the
// version number is the 1-based index into the slice. Both dialects must
// describe the same tables and constraints.
var migrations = map[string][][]string{
	DriverSQLite: {
		// Migration 1: SeedBot core tables
		{
			`CREATE TABLE users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT UNIQUE NOT NULL,
				password TEXT NOT NULL,
				full_name TEXT NOT NULL,
				role TEXT NOT NULL DEFAULT 'petani',
				status TEXT NOT NULL DEFAULT 'Aktif',
				created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE INDEX idx_users_role ON users(role)`,

			`CREATE TABLE news (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				title TEXT NOT NULL,
				content TEXT NOT NULL,
				image_url TEXT,
				date TEXT NOT NULL,
				status TEXT NOT NULL DEFAULT 'Draft',
				created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,

			`CREATE TABLE system_parameters (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				parameter_name TEXT UNIQUE NOT NULL,
				parameter_value REAL NOT NULL,
				unit TEXT,
				description TEXT,
				updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,

			`CREATE TABLE sensor_realtime (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER UNIQUE NOT NULL,
				suhu REAL,
				kelembapan REAL,
				ph REAL,
				nitrogen REAL,
				phospor REAL,
				kalium REAL,
				updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
			)`,

			`CREATE TABLE robot_status (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER UNIQUE NOT NULL,
				connection_status TEXT NOT NULL DEFAULT 'terhubung',
				operation_status TEXT NOT NULL DEFAULT 'Standby',
				benih_tertanam INTEGER NOT NULL DEFAULT 0,
				baterai INTEGER NOT NULL DEFAULT 100,
				updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
			)`,
		},
	},
	DriverPostgres: {
		// Migration 1: SeedBot core tables
		{
			`CREATE TABLE users (
				id SERIAL PRIMARY KEY,
				username VARCHAR(100) UNIQUE NOT NULL,
				password VARCHAR(255) NOT NULL,
				full_name VARCHAR(255) NOT NULL,
				role VARCHAR(20) NOT NULL DEFAULT 'petani',
				status VARCHAR(20) NOT NULL DEFAULT 'Aktif',
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE INDEX idx_users_role ON users(role)`,

			`CREATE TABLE news (
				id SERIAL PRIMARY KEY,
				title VARCHAR(255) NOT NULL,
				content TEXT NOT NULL,
				image_url TEXT,
				date DATE NOT NULL,
				status VARCHAR(20) NOT NULL DEFAULT 'Draft',
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,

			`CREATE TABLE system_parameters (
				id SERIAL PRIMARY KEY,
				parameter_name VARCHAR(100) UNIQUE NOT NULL,
				parameter_value DOUBLE PRECISION NOT NULL,
				unit VARCHAR(20),
				description TEXT,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,

			`CREATE TABLE sensor_realtime (
				id SERIAL PRIMARY KEY,
				user_id INTEGER UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				suhu DOUBLE PRECISION,
				kelembapan DOUBLE PRECISION,
				ph DOUBLE PRECISION,
				nitrogen DOUBLE PRECISION,
				phospor DOUBLE PRECISION,
				kalium DOUBLE PRECISION,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,

			`CREATE TABLE robot_status (
				id SERIAL PRIMARY KEY,
				user_id INTEGER UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				connection_status VARCHAR(20) NOT NULL DEFAULT 'terhubung',
				operation_status VARCHAR(20) NOT NULL DEFAULT 'Standby',
				benih_tertanam INTEGER NOT NULL DEFAULT 0,
				baterai INTEGER NOT NULL DEFAULT 100,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
		},
	},
}
