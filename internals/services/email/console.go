package email

import (
	"sync"

	"go.uber.org/zap"
)

// ConsoleService logs mail instead of delivering it. Used when no sendgrid
// key is configured, and by tests to observe what would have been sent.
type ConsoleService struct {
	sugar *zap.SugaredLogger

	mu   sync.Mutex
	sent []Message
}

var _ Service = (*ConsoleService)(nil)

func NewConsoleService(sugar *zap.SugaredLogger) *ConsoleService {
	return &ConsoleService{sugar: sugar}
}

func (svc *ConsoleService) Send(msg Message) error {
	svc.mu.Lock()
	svc.sent = append(svc.sent, msg)
	svc.mu.Unlock()
	if svc.sugar != nil {
		svc.sugar.Infow("email (console)", "to", msg.To, "subject", msg.Subject, "text", msg.TextContent)
	}
	return nil
}

func (svc *ConsoleService) Sent() []Message {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	out := make([]Message, len(svc.sent))
	copy(out, svc.sent)
	return out
}
