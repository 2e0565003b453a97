// Package albums keeps album display order consistent across the library.
//
// The Photo Service lets every album choose whether its assets are shown
// oldest or newest first. PlanOrder compares each album against a target
// order and emits one order_album action per album that differs, so running
// it twice is a no-op.
//
// # Surfaces
//
//   - CLI: stack-manager albums order [--order asc] [--dry-run] [--yes]
//   - HTTP: GET /albums/order/plan and POST /albums/order/run, both taking ?order=
package albums
