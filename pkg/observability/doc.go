/*
Package observability provides tools for monitoring constraint evaluation.

It includes a Prometheus recorder that plugs into the evaluator's lifecycle
hooks, counting function/Jacobian calls and tracking residual norms and
evaluation latency per constrained link.
*/
package observability
