package otel

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace"
)

func TestInit_Disabled(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "true")

	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	shutdown, err := Init(context.Background(), "doclib", log)
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"tracing_enabled":false`)
}

func TestInit_UnsupportedProtocolDegrades(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "carrier-pigeon")

	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)

	shutdown, err := Init(context.Background(), "doclib", log)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "unsupported OTLP protocol")
}

func TestSampler(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{name: "always_on", want: trace.AlwaysSample().Description()},
		{name: "always_off", want: trace.NeverSample().Description()},
		{name: "traceidratio", arg: "0.25", want: trace.TraceIDRatioBased(0.25).Description()},
		{name: "traceidratio", arg: "garbage", want: trace.TraceIDRatioBased(1).Description()},
		{name: "parentbased_always_off", want: trace.ParentBased(trace.NeverSample()).Description()},
		{name: "unknown", want: trace.ParentBased(trace.AlwaysSample()).Description()},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sampler(tt.name, tt.arg).Description(), tt.name+"/"+tt.arg)
	}
}
