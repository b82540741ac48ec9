package aws

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCloudWatch struct {
	inputs []*cloudwatch.PutMetricDataInput
}

func (m *mockCloudWatch) PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	m.inputs = append(m.inputs, params)
	return &cloudwatch.PutMetricDataOutput{}, nil
}

func TestMetricsWriter_PutDecisionCounts(t *testing.T) {
	mock := &mockCloudWatch{}
	w := NewMetricsWriter(mock, "FlightRefunds")
	fixed := time.Date(2020, 1, 15, 12, 0, 0, 0, time.UTC)
	w.nowFunc = func() time.Time { return fixed }

	err := w.PutDecisionCounts(context.Background(), map[string]int{"on time": 2, "cancelled": 1, "": 1}, 300)
	require.NoError(t, err)
	require.Len(t, mock.inputs, 1)

	in := mock.inputs[0]
	assert.Equal(t, "FlightRefunds", *in.Namespace)
	require.Len(t, in.MetricData, 4)

	// statuses are written in sorted order, refund total last
	assert.Equal(t, "unknown", *in.MetricData[0].Dimensions[0].Value)
	assert.Equal(t, "cancelled", *in.MetricData[1].Dimensions[0].Value)
	assert.Equal(t, "on time", *in.MetricData[2].Dimensions[0].Value)
	assert.Equal(t, 2.0, *in.MetricData[2].Value)
	assert.Equal(t, "RefundAmount", *in.MetricData[3].MetricName)
	assert.Equal(t, 300.0, *in.MetricData[3].Value)
	assert.Equal(t, fixed, *in.MetricData[3].Timestamp)
}

func TestMetricsWriter_NoCounts(t *testing.T) {
	mock := &mockCloudWatch{}
	w := NewMetricsWriter(mock, "FlightRefunds")

	require.NoError(t, w.PutDecisionCounts(context.Background(), nil, 0))
	assert.Empty(t, mock.inputs)
}
