package notify

import (
	"context"
	"sync"
	"time"

	"gosalon/internal/pkg/logger"
)

// sendTimeout limita cada entrega individual.
const sendTimeout = 30 * time.Second

// Dispatcher entrega e-mails fora da goroutine da requisição.
// Submit nunca bloqueia: com a fila cheia a mensagem é descartada e registrada.
// Falhas de entrega só aparecem no log.
type Dispatcher struct {
	mailer Mailer
	logger logger.Logger
	queue  chan Email
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher inicia workers goroutines consumindo uma fila de tamanho queueSize.
func NewDispatcher(mailer Mailer, log logger.Logger, workers, queueSize int) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}

	d := &Dispatcher{
		mailer: mailer,
		logger: log,
		queue:  make(chan Email, queueSize),
	}

	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go d.work()
	}
	return d
}

// Submit enfileira a mensagem. Retorna false se ela foi descartada.
func (d *Dispatcher) Submit(msg Email) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("Dispatcher encerrado, e-mail descartado.", map[string]interface{}{"to": msg.To})
		return false
	}

	select {
	case d.queue <- msg:
		return true
	default:
		d.logger.Warn("Fila de e-mails cheia, mensagem descartada.", map[string]interface{}{"to": msg.To, "subject": msg.Subject})
		return false
	}
}

// Close impede novos envios e espera a fila esvaziar ou o ctx expirar.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()

	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg Email) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			d.logger.Warn("Pânico durante envio de e-mail.", map[string]interface{}{"to": msg.To, "panic": r})
		}
	}()

	if err := d.mailer.Send(ctx, msg); err != nil {
		d.logger.Error("Falha ao enviar e-mail.", err)
		return
	}
	d.logger.Debug("E-mail enviado.", map[string]interface{}{"to": msg.To, "subject": msg.Subject})
}
