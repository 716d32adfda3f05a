package seed

// Statements are written with ? placeholders and rebound per driver with
// sqlx before use; lib/pq needs $n.
const (
	insertUserSQL = `INSERT INTO users (username, password, full_name, role, status)
			VALUES (?, ?, ?, ?, ?)`

	insertNewsSQL = `INSERT INTO news (title, content, image_url, date, status)
			VALUES (?, ?, ?, ?, ?)`

	insertParameterSQL = `INSERT INTO system_parameters (parameter_name, parameter_value, unit, description)
			VALUES (?, ?, ?, ?)`

	selectOperatorsSQL = `SELECT id FROM users WHERE role = ? ORDER BY id`

	insertSnapshotSQL = `INSERT INTO sensor_realtime
			(user_id, suhu, kelembapan, ph, nitrogen, phospor, kalium)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (user_id) DO NOTHING`

	insertRobotStatusSQL = `INSERT INTO robot_status
			(user_id, connection_status, operation_status, benih_tertanam, baterai)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (user_id) DO NOTHING`
)
