// SPDX-License-Identifier: MIT
package telemetry_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/katalvlaran/vcgpath/internal/telemetry"
)

func TestInit_Stdout(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	shutdown, err := telemetry.Init(context.Background(), telemetry.Config{
		ServiceName: "vcgpath-test",
		Exporter:    telemetry.ExporterStdout,
		Writer:      &buf,
	})
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "vcg.Calculator.ComputePayments")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	require.Contains(t, buf.String(), "vcg.Calculator.ComputePayments")
	require.Contains(t, buf.String(), "vcgpath-test")
}

func TestInit_NoneAndUnknown(t *testing.T) {
	shutdown, err := telemetry.Init(context.Background(), telemetry.Config{})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))

	_, err = telemetry.Init(context.Background(), telemetry.Config{Exporter: "jaeger"})
	require.ErrorIs(t, err, telemetry.ErrUnknownExporter)
}
