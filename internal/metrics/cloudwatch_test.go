package metrics

import (
	"testing"
)

func TestNullPublisherSatisfiesInterface(t *testing.T) {
	var p Publisher = NullPublisher{}
	p.ConversionCompleted("C12345")
	p.ConversionFailed("C12345")
	p.BatchFinished(3, 2, 1)
}

func TestCloudWatchPublisherSatisfiesInterface(t *testing.T) {
	var _ Publisher = (*CloudWatchPublisher)(nil)
}
