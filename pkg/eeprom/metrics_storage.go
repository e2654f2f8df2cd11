package eeprom

import (
	"time"

	"github.com/emufs/eefile/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	storageOperationsStartedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eefile",
			Subsystem: "eeprom",
			Name:      "storage_operations_started_total",
			Help:      "Total number of operations started on storage objects.",
		},
		[]string{"name", "operation"})
	storageOperationsDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "eefile",
			Subsystem: "eeprom",
			Name:      "storage_operations_duration_seconds",
			Help:      "Amount of time spent per operation on storage objects, in seconds.",
			Buckets:   util.DecimalExponentialBuckets(-6, 6, 2),
		},
		[]string{"name", "operation"})
)

func init() {
	prometheus.MustRegister(storageOperationsStartedTotal)
	prometheus.MustRegister(storageOperationsDurationSeconds)
}

type metricsStorage struct {
	storage Storage

	readByteStarted    prometheus.Counter
	readByteDuration   prometheus.Observer
	writeByteStarted   prometheus.Counter
	writeByteDuration  prometheus.Observer
	updateByteStarted  prometheus.Counter
	updateByteDuration prometheus.Observer

	readBlockStarted    prometheus.Counter
	readBlockDuration   prometheus.Observer
	writeBlockStarted   prometheus.Counter
	writeBlockDuration  prometheus.Observer
	updateBlockStarted  prometheus.Counter
	updateBlockDuration prometheus.Observer
	verifyBlockStarted  prometheus.Counter
	verifyBlockDuration prometheus.Observer

	formatStarted  prometheus.Counter
	formatDuration prometheus.Observer
	flushStarted   prometheus.Counter
	flushDuration  prometheus.Observer
}

// NewMetricsStorage creates an adapter for Storage that adds basic
// instrumentation in the form of Prometheus metrics.
func NewMetricsStorage(storage Storage, name string) Storage {
	return &metricsStorage{
		storage: storage,

		readByteStarted:    storageOperationsStartedTotal.WithLabelValues(name, "ReadByte"),
		readByteDuration:   storageOperationsDurationSeconds.WithLabelValues(name, "ReadByte"),
		writeByteStarted:   storageOperationsStartedTotal.WithLabelValues(name, "WriteByte"),
		writeByteDuration:  storageOperationsDurationSeconds.WithLabelValues(name, "WriteByte"),
		updateByteStarted:  storageOperationsStartedTotal.WithLabelValues(name, "UpdateByte"),
		updateByteDuration: storageOperationsDurationSeconds.WithLabelValues(name, "UpdateByte"),

		readBlockStarted:    storageOperationsStartedTotal.WithLabelValues(name, "ReadBlock"),
		readBlockDuration:   storageOperationsDurationSeconds.WithLabelValues(name, "ReadBlock"),
		writeBlockStarted:   storageOperationsStartedTotal.WithLabelValues(name, "WriteBlock"),
		writeBlockDuration:  storageOperationsDurationSeconds.WithLabelValues(name, "WriteBlock"),
		updateBlockStarted:  storageOperationsStartedTotal.WithLabelValues(name, "UpdateBlock"),
		updateBlockDuration: storageOperationsDurationSeconds.WithLabelValues(name, "UpdateBlock"),
		verifyBlockStarted:  storageOperationsStartedTotal.WithLabelValues(name, "VerifyBlock"),
		verifyBlockDuration: storageOperationsDurationSeconds.WithLabelValues(name, "VerifyBlock"),

		formatStarted:  storageOperationsStartedTotal.WithLabelValues(name, "Format"),
		formatDuration: storageOperationsDurationSeconds.WithLabelValues(name, "Format"),
		flushStarted:   storageOperationsStartedTotal.WithLabelValues(name, "Flush"),
		flushDuration:  storageOperationsDurationSeconds.WithLabelValues(name, "Flush"),
	}
}

func (s *metricsStorage) GetSizeBytes() uint32 {
	return s.storage.GetSizeBytes()
}

func (s *metricsStorage) ReadByte(address uint32) (byte, error) {
	s.readByteStarted.Inc()
	timeStart := time.Now()
	value, err := s.storage.ReadByte(address)
	s.readByteDuration.Observe(time.Since(timeStart).Seconds())
	return value, err
}

func (s *metricsStorage) WriteByte(address uint32, value byte) error {
	s.writeByteStarted.Inc()
	timeStart := time.Now()
	err := s.storage.WriteByte(address, value)
	s.writeByteDuration.Observe(time.Since(timeStart).Seconds())
	return err
}

func (s *metricsStorage) UpdateByte(address uint32, value byte) error {
	s.updateByteStarted.Inc()
	timeStart := time.Now()
	err := s.storage.UpdateByte(address, value)
	s.updateByteDuration.Observe(time.Since(timeStart).Seconds())
	return err
}

func (s *metricsStorage) ReadBlock(address uint32, p []byte) error {
	s.readBlockStarted.Inc()
	timeStart := time.Now()
	err := s.storage.ReadBlock(address, p)
	s.readBlockDuration.Observe(time.Since(timeStart).Seconds())
	return err
}

func (s *metricsStorage) WriteBlock(address uint32, p []byte) error {
	s.writeBlockStarted.Inc()
	timeStart := time.Now()
	err := s.storage.WriteBlock(address, p)
	s.writeBlockDuration.Observe(time.Since(timeStart).Seconds())
	return err
}

func (s *metricsStorage) UpdateBlock(address uint32, p []byte) error {
	s.updateBlockStarted.Inc()
	timeStart := time.Now()
	err := s.storage.UpdateBlock(address, p)
	s.updateBlockDuration.Observe(time.Since(timeStart).Seconds())
	return err
}

func (s *metricsStorage) VerifyBlock(address uint32, p []byte) error {
	s.verifyBlockStarted.Inc()
	timeStart := time.Now()
	err := s.storage.VerifyBlock(address, p)
	s.verifyBlockDuration.Observe(time.Since(timeStart).Seconds())
	return err
}

func (s *metricsStorage) Format(fillValue byte) error {
	s.formatStarted.Inc()
	timeStart := time.Now()
	err := s.storage.Format(fillValue)
	s.formatDuration.Observe(time.Since(timeStart).Seconds())
	return err
}

func (s *metricsStorage) Flush() error {
	s.flushStarted.Inc()
	timeStart := time.Now()
	err := s.storage.Flush()
	s.flushDuration.Observe(time.Since(timeStart).Seconds())
	return err
}

func (s *metricsStorage) Close() error {
	return s.storage.Close()
}
