package reconcile

import (
	"go.uber.org/zap"
)

// LogPlan writes a plan report using the logger.
func LogPlan(l *zap.Logger, plan *Plan) {
	fields := []zap.Field{
		zap.String("step", plan.Step),
		zap.String("run_id", plan.RunID),
		zap.Int("inspected", plan.Summary.Inspected),
		zap.Int("actions", len(plan.Actions)),
	}
	if plan.Summary.Issues > 0 {
		fields = append(fields,
			zap.Int("issues", plan.Summary.Issues),
			zap.Int("unresolved", plan.Summary.Unresolved))
	}
	l.Info("Plan report", fields...)

	// Show sample of actions (max 5 for logger)
	maxShow := min(5, len(plan.Actions))
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Planned action",
			zap.String("type", string(action.Type)),
			zap.String("stack", action.StackID),
			zap.String("album", action.AlbumID),
			zap.Strings("assets", action.AssetIDs),
			zap.String("reason", action.Reason))
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}
