package logmodule

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

type capabilities struct{}

func (capabilities) Reporting() bool { return true }
func (capabilities) Tagging() bool   { return true }

// StatsReporter writes tally metrics into the log
type StatsReporter struct {
	logger *log.Entry
}

func NewStatsReporter(prefix string) *StatsReporter {
	return &StatsReporter{
		logger: log.WithField("prefix", prefix),
	}
}

func (r *StatsReporter) entry(name string, tags map[string]string) *log.Entry {
	fields := log.Fields{"metric": name}
	for k, v := range tags {
		fields["tag."+k] = v
	}
	return r.logger.WithFields(fields)
}

func (r *StatsReporter) Capabilities() tally.Capabilities {
	return capabilities{}
}

func (r *StatsReporter) Flush() {}

func (r *StatsReporter) ReportCounter(name string, tags map[string]string, value int64) {
	r.entry(name, tags).WithField("value", value).Info("counter")
}

func (r *StatsReporter) ReportGauge(name string, tags map[string]string, value float64) {
	r.entry(name, tags).WithField("value", value).Info("gauge")
}

func (r *StatsReporter) ReportTimer(name string, tags map[string]string, interval time.Duration) {
	r.entry(name, tags).WithField("value", interval).Info("timer")
}

func (r *StatsReporter) ReportHistogramValueSamples(
	name string,
	tags map[string]string,
	buckets tally.Buckets,
	bucketLowerBound, bucketUpperBound float64,
	samples int64,
) {
	r.entry(name, tags).
		WithField("lower", bucketLowerBound).
		WithField("upper", bucketUpperBound).
		WithField("samples", samples).
		Info("histogram")
}

func (r *StatsReporter) ReportHistogramDurationSamples(
	name string,
	tags map[string]string,
	buckets tally.Buckets,
	bucketLowerBound, bucketUpperBound time.Duration,
	samples int64,
) {
	r.entry(name, tags).
		WithField("lower", bucketLowerBound).
		WithField("upper", bucketUpperBound).
		WithField("samples", samples).
		Info("histogram")
}
