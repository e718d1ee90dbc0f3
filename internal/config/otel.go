package config

type Otel struct {
	TracesEndpoint  string  `env:"EXPORTER_OTLP_TRACES_ENDPOINT"`
	MetricsEndpoint string  `env:"EXPORTER_OTLP_METRICS_ENDPOINT"`
	SamplingRatio   float64 `env:"TRACES_SAMPLER_ARG" envDefault:"1"`
}
