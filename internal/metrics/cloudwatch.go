// Package metrics publishes batch conversion counters to CloudWatch,
// the same aws-sdk-go-v2 client construction and async put pattern the
// rest of the corpus uses for custom metrics, repointed at conversion
// outcomes instead of API/LLM usage.
package metrics

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/linkyourbin/nlbn-gui/internal/logging"
)

const cloudwatchTimeout = 5 * time.Second

// Publisher emits conversion outcome counters. NullPublisher is the
// disabled implementation; its methods do nothing.
type Publisher interface {
	ConversionCompleted(lcscID string)
	ConversionFailed(lcscID string)
	BatchFinished(total, succeeded, failed int)
}

// NullPublisher discards every metric; used when MetricsNamespace is
// unset.
type NullPublisher struct{}

func (NullPublisher) ConversionCompleted(string)  {}
func (NullPublisher) ConversionFailed(string)     {}
func (NullPublisher) BatchFinished(int, int, int) {}

// CloudWatchPublisher publishes conversion counters under a configured
// namespace.
type CloudWatchPublisher struct {
	client      *cloudwatch.Client
	namespace   string
	environment string
}

// NewCloudWatchPublisher builds a publisher against namespace/region. It
// loads AWS credentials the standard SDK way (environment, shared
// config, instance role); callers that can't reach AWS should fall
// back to NullPublisher rather than call this.
func NewCloudWatchPublisher(ctx context.Context, namespace, region, environment string) (*CloudWatchPublisher, error) {
	opts := []func(*config.LoadOptions) error{}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &CloudWatchPublisher{
		client:      cloudwatch.NewFromConfig(cfg),
		namespace:   namespace,
		environment: environment,
	}, nil
}

// ConversionCompleted records one successful per-component conversion.
func (p *CloudWatchPublisher) ConversionCompleted(lcscID string) {
	p.putCount("ConversionsCompleted", 1, p.dimensions())
}

// ConversionFailed records one failed per-component conversion.
func (p *CloudWatchPublisher) ConversionFailed(lcscID string) {
	p.putCount("ConversionsFailed", 1, p.dimensions())
}

// BatchFinished records the aggregate outcome of one batch run.
func (p *CloudWatchPublisher) BatchFinished(total, succeeded, failed int) {
	dims := p.dimensions()
	p.putCount("BatchTotal", float64(total), dims)
	p.putCount("BatchSucceeded", float64(succeeded), dims)
	p.putCount("BatchFailed", float64(failed), dims)
}

func (p *CloudWatchPublisher) dimensions() []types.Dimension {
	return []types.Dimension{
		{Name: aws.String("Environment"), Value: aws.String(p.environment)},
	}
}

func (p *CloudWatchPublisher) putCount(metricName string, value float64, dimensions []types.Dimension) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cloudwatchTimeout)
		defer cancel()

		_, err := p.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
			Namespace: aws.String(p.namespace),
			MetricData: []types.MetricDatum{
				{
					MetricName: aws.String(metricName),
					Value:      aws.Float64(value),
					Unit:       types.StandardUnitCount,
					Timestamp:  aws.Time(time.Now()),
					Dimensions: dimensions,
				},
			},
		})
		if err != nil {
			logging.Warn("failed to publish metric", logging.Fields{"metric": metricName, "err": err.Error()})
		}
	}()
}
