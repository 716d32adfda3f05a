package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// SensorSnapshots gives every operator account one sensor_realtime row and
// one robot_status row. Rows are keyed on user_id and existing ones are left
// alone, so accounts that already have data are skipped individually.
func (s *Seeder) SensorSnapshots(ctx context.Context) Result {
	return s.runGroup(ctx, GroupSensorSnapshots, func(ctx context.Context, tx *sqlx.Tx, log *slog.Logger) (int, error) {
		var userIDs []int64
		if err := tx.SelectContext(ctx, &userIDs,
			tx.Rebind(selectOperatorsSQL), RoleOperator,
		); err != nil {
			return 0, fmt.Errorf("list operators: %w", err)
		}
		if len(userIDs) == 0 {
			log.Info("no operator accounts found, skipping")
			return 0, nil
		}

		snap, dev := s.fixtures.Snapshot, s.fixtures.Device

		insertSnapshot := tx.Rebind(insertSnapshotSQL)
		insertStatus := tx.Rebind(insertRobotStatusSQL)

		inserted := 0
		for _, id := range userIDs {
			res, err := tx.ExecContext(ctx, insertSnapshot,
				id, snap.Temperature, snap.Humidity, snap.PH, snap.Nitrogen, snap.Phosphorus, snap.Potassium,
			)
			if err != nil {
				return 0, fmt.Errorf("insert sensor snapshot for user %d: %w", id, err)
			}
			snapRows, err := res.RowsAffected()
			if err != nil {
				return 0, fmt.Errorf("rows affected: %w", err)
			}

			res, err = tx.ExecContext(ctx, insertStatus,
				id, dev.Connection, dev.Operation, dev.SeedsPlanted, dev.Battery,
			)
			if err != nil {
				return 0, fmt.Errorf("insert robot status for user %d: %w", id, err)
			}
			statusRows, err := res.RowsAffected()
			if err != nil {
				return 0, fmt.Errorf("rows affected: %w", err)
			}

			if snapRows+statusRows == 0 {
				log.Debug("operator already has sensor data", "user_id", id)
				continue
			}
			inserted += int(snapRows + statusRows)
			log.Info("created demo sensor data", "user_id", id)
		}

		return inserted, nil
	})
}
