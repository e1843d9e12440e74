/*
Package observability provides Prometheus instrumentation for turing engines.

Metrics are fed through domain.LifecycleHooks, so the engine itself stays free of
any metrics dependency:

	m := observability.NewMetrics(prometheus.DefaultRegisterer)
	eng, _ := turing.New(def, turing.WithLifecycleHooks(m.Hooks("adder")))
*/
package observability
