package broadcast

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"signage-sync/internal/domain/change"
	"signage-sync/internal/pkg/errs"
	"signage-sync/internal/usecase/shared"

	"github.com/IBM/sarama"
)

// KafkaRelay lets several server instances share one logical bus. Publish
// hands the signal to an async producer; every instance consumes all
// partitions from the newest offset and replays the signals into its local
// hub.
type KafkaRelay struct {
	producer sarama.AsyncProducer
	consumer sarama.Consumer
	topic    string
	source   string
	local    shared.ChangePublisher
	logger   *slog.Logger

	mu     sync.RWMutex
	closed bool

	cancel  context.CancelFunc
	wg      sync.WaitGroup
	drained chan struct{}
}

// NewKafkaRelay starts draining the producer's errors right away; Stop must
// be called to release it.
func NewKafkaRelay(producer sarama.AsyncProducer, consumer sarama.Consumer, topic, source string, local shared.ChangePublisher, logger *slog.Logger) *KafkaRelay {
	r := &KafkaRelay{
		producer: producer,
		consumer: consumer,
		topic:    topic,
		source:   source,
		local:    local,
		logger:   logger.With("topic", topic),
		drained:  make(chan struct{}),
	}
	go r.drainErrors()
	return r
}

func NewSaramaConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Retry.Backoff = 100 * time.Millisecond
	cfg.Producer.Return.Successes = false
	cfg.Producer.Return.Errors = true
	cfg.Consumer.Return.Errors = true
	cfg.Net.DialTimeout = 30 * time.Second
	cfg.Net.ReadTimeout = 30 * time.Second
	cfg.Net.WriteTimeout = 30 * time.Second
	return cfg
}

// DialKafkaRelay connects a producer and a consumer to brokers.
func DialKafkaRelay(brokers []string, topic, source string, local shared.ChangePublisher, logger *slog.Logger) (*KafkaRelay, error) {
	cfg := NewSaramaConfig()
	producer, err := sarama.NewAsyncProducer(brokers, cfg)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create kafka producer")
	}
	consumer, err := sarama.NewConsumer(brokers, cfg)
	if err != nil {
		_ = producer.Close()
		return nil, errs.Wrap(err, "failed to create kafka consumer")
	}
	logger.Info("kafka relay connected", "brokers", brokers, "topic", topic)
	return NewKafkaRelay(producer, consumer, topic, source, local, logger), nil
}

// Publish queues sig for the topic without waiting for the broker. When
// the producer queue is full, or the broker later rejects the message, the
// signal is delivered to the local hub only so this instance's displays
// still hear it.
func (r *KafkaRelay) Publish(ctx context.Context, sig change.Signal) {
	payload, err := sig.Encode(r.source)
	if err != nil {
		r.logger.Error("failed to encode change signal", "store_id", sig.StoreID, "error", err)
		return
	}
	msg := &sarama.ProducerMessage{
		Topic:    r.topic,
		Key:      sarama.StringEncoder(sig.StoreID.String()),
		Value:    sarama.ByteEncoder(payload),
		Metadata: sig,
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		r.local.Publish(ctx, sig)
		return
	}
	select {
	case r.producer.Input() <- msg:
	default:
		r.logger.Warn("kafka producer queue full, delivering locally", "store_id", sig.StoreID)
		r.local.Publish(ctx, sig)
	}
}

func (r *KafkaRelay) drainErrors() {
	defer close(r.drained)
	for perr := range r.producer.Errors() {
		sig, ok := perr.Msg.Metadata.(change.Signal)
		if !ok {
			r.logger.Error("kafka publish failed", "error", perr.Err)
			continue
		}
		r.logger.Warn("kafka publish failed, delivering locally", "store_id", sig.StoreID, "error", perr.Err)
		r.local.Publish(context.Background(), sig)
	}
}

// Start begins consuming every partition of the topic.
func (r *KafkaRelay) Start(ctx context.Context) error {
	partitions, err := r.consumer.Partitions(r.topic)
	if err != nil {
		return errs.Wrap(err, "failed to list kafka partitions")
	}

	ctx, r.cancel = context.WithCancel(context.WithoutCancel(ctx))
	for _, p := range partitions {
		pc, err := r.consumer.ConsumePartition(r.topic, p, sarama.OffsetNewest)
		if err != nil {
			r.cancel()
			r.wg.Wait()
			return errs.Wrapf(err, "failed to consume partition %d", p)
		}
		r.wg.Add(1)
		go r.pump(ctx, pc)
	}
	return nil
}

func (r *KafkaRelay) pump(ctx context.Context, pc sarama.PartitionConsumer) {
	defer r.wg.Done()
	defer func() {
		if err := pc.Close(); err != nil {
			r.logger.Warn("failed to close partition consumer", "error", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-pc.Messages():
			if !ok {
				return
			}
			sig, err := change.Decode(msg.Value)
			if err != nil {
				r.logger.Warn("skipping malformed relay message", "partition", msg.Partition, "offset", msg.Offset, "error", err)
				continue
			}
			r.local.Publish(ctx, sig)
		case cerr, ok := <-pc.Errors():
			if !ok {
				return
			}
			r.logger.Error("kafka consumer error", "error", cerr)
		}
	}
}

// Stop ends consumption and closes the Kafka clients.
func (r *KafkaRelay) Stop() error {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()

	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	// AsyncClose flushes queued messages; failures still reach drainErrors.
	r.producer.AsyncClose()
	<-r.drained

	if err := r.consumer.Close(); err != nil {
		return errs.Wrap(err, "failed to close kafka consumer")
	}
	return nil
}
