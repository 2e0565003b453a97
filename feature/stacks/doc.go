// Package stacks keeps the stack structure of a photo collection consistent.
//
// A stack groups assets that are the same physical capture under one primary
// asset. The package holds pure decision components, each working on a
// snapshot fetched from the Photo Service and returning planned actions:
//
//  1. Catalog: asset→stack and stack→primary lookups built from ListStacks.
//  2. GroupDuplicates: groups assets by exact (file name, local capture time).
//  3. PlanConsolidation: creates a stack for each group not already in one stack.
//  4. SelectPrimary / PlanPrimaries: makes the lowest-resolution member primary.
//  5. AuditAlbum / PlanAlbumRepairs: removes non-primary members from albums
//     that show several assets of one stack.
//  6. PlanPrune: deletes stacks with a single member.
//
// # Driver
//
// Service fetches the snapshot a step needs, calls the components and applies
// the resulting plan through core/reconcile. Every decision rule converges:
// applying a plan and planning again yields no further actions, so re-running
// is the recovery path after a failure.
//
// NewScheduler runs the whole Pipeline on a cron schedule in server mode.
//
// # HTTP Endpoints
//
//   - GET /stacks/plan/:step : Plan a step (or "all") without applying it.
//   - POST /stacks/run/:step : Plan and apply (supports ?dry_run=true).
package stacks
