// Package tracing wraps OpenTelemetry so that simulation runs and safety checks
// can be traced without the rest of the code importing the upstream packages.
// Until Init or InitWithExporter is called every span is a no-op.
package tracing
