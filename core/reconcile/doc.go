// Package reconcile provides the plan/apply model used by every feature that
// mutates the Photo Service.
//
// Features compute a Plan from a snapshot of the Photo Service without
// performing any I/O themselves. The plan lists the mutations (Actions) in
// execution order and the findings (Issues) that motivated them, some of which
// may be left unresolved.
//
// # Architecture
//
// 1. Planning: feature packages (feature/stacks, feature/albums) turn snapshots
//    into []Action and wrap them with NewPlan, which stamps a run id and
//    computes the PlanSummary.
//
// 2. Execution: ApplyPlan executes the actions in order through a Mutator
//    (photos.Client). It stops at the first failure and reports how many
//    actions ran. Nothing runs unless Options.Confirmed is set and
//    Options.DryRun is not.
//
// 3. Reporting: LogPlan writes the summary and a sample of actions to the logger.
//
// 4. Export: Exporter uploads plans as JSON to S3/MinIO for later inspection.
//    Exported plans are never read back; every run plans from a fresh fetch.
//
// # Usage Example
//
//	plan := reconcile.NewPlan("prune", len(stacks), actions, nil)
//	executed, err := reconcile.ApplyPlan(ctx, client, plan, reconcile.Options{Confirmed: true})
package reconcile
