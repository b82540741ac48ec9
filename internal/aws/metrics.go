package aws

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// MetricsWriter publishes refund decision aggregates to CloudWatch.
type MetricsWriter struct {
	CloudWatch CloudWatchAPI
	Namespace  string
	nowFunc    func() time.Time
}

func NewMetricsWriter(cw CloudWatchAPI, namespace string) *MetricsWriter {
	return &MetricsWriter{
		CloudWatch: cw,
		Namespace:  namespace,
		nowFunc:    time.Now,
	}
}

// PutDecisionCounts writes one Decisions datum per status plus the summed RefundAmount.
func (w *MetricsWriter) PutDecisionCounts(ctx context.Context, counts map[string]int, refundTotal int) error {
	if len(counts) == 0 {
		return nil
	}
	now := w.nowFunc()

	statuses := make([]string, 0, len(counts))
	for status := range counts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	data := make([]cwtypes.MetricDatum, 0, len(counts)+1)
	for _, status := range statuses {
		data = append(data, cwtypes.MetricDatum{
			MetricName: awsString("Decisions"),
			Dimensions: []cwtypes.Dimension{
				{Name: awsString("FlightStatus"), Value: awsString(dimensionValue(status))},
			},
			Timestamp: &now,
			Unit:      cwtypes.StandardUnitCount,
			Value:     awsFloat(float64(counts[status])),
		})
	}
	data = append(data, cwtypes.MetricDatum{
		MetricName: awsString("RefundAmount"),
		Timestamp:  &now,
		Unit:       cwtypes.StandardUnitNone,
		Value:      awsFloat(float64(refundTotal)),
	})

	_, err := w.CloudWatch.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  &w.Namespace,
		MetricData: data,
	})
	if err != nil {
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}

// CloudWatch rejects empty dimension values.
func dimensionValue(status string) string {
	if status == "" {
		return "unknown"
	}
	return status
}

func awsFloat(f float64) *float64 { return &f }
