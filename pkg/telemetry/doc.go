// Package telemetry exports reconciliation metrics to Prometheus and
// traces patches with OpenTelemetry.
//
// Metrics implements reconcile.Observer and host.Observer; Tracer
// implements reconcile.Tracer. Wire them into an engine and a document:
//
//	m := telemetry.NewMetrics(telemetry.WithNamespace("myapp"))
//	engine := reconcile.New(
//	    reconcile.WithObserver(m),
//	    reconcile.WithTracer(telemetry.NewTracer()),
//	)
//	doc.Observe(m.ObserveMutation)
//
// Metrics collected (default namespace "keepfocus"):
//   - keepfocus_patches_total: patches by outcome
//   - keepfocus_patch_errors_total: failed patches by error code
//   - keepfocus_patch_duration_seconds: patch latency by outcome
//   - keepfocus_fallbacks_total: wholesale replacements by reason
//   - keepfocus_spine_depth: focus spine length of reconciled patches
//   - keepfocus_mutations_total: applied host mutations by op
//   - keepfocus_active_sessions: open playground sessions
//
// The tracer uses the global OpenTelemetry tracer provider unless one is
// passed with WithTracerProvider.
package telemetry
