package jobs

import (
	"context"
	"time"

	"rentafleet-backend/internal/logger"
)

// ReconcileVehicleStatuses re-derives every vehicle's status from its rental
// and maintenance records as of today. Runs nightly so statuses catch up with
// rentals that started, rentals that ended and maintenance windows that closed
// since the last pass.
func (jr *JobRunner) ReconcileVehicleStatuses() {
	jr.runWithRecovery("ReconcileVehicleStatuses", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		report, err := jr.services.Reconciler.ReconcileVehicleStatuses(ctx, "")
		if err != nil {
			logger.Error("Vehicle status reconciliation failed", "error", err)
			return
		}
		logger.Info("Vehicle status reconciliation finished",
			"reference_date", report.ReferenceDate,
			"transitions", len(report.Transitions),
			"unchanged", report.Unchanged,
		)
	})
}
