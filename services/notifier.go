package services

import (
	"context"
	"sync"
	"time"

	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg/email"
	"github.com/akinalp/parkapp/pkg/logger"
	"github.com/rs/zerolog"
)

// notifyTimeout, tek bir bildirim mailinin gönderim süresi üst sınırı.
const notifyTimeout = 15 * time.Second

// Notifier, yeni şikayetleri sorumlu birimin posta kutusuna bildirir.
// Gönderim asenkron ve best-effort'tur; hata şikayet oluşturmayı etkilemez.
type Notifier interface {
	ComplaintCreated(complaint *models.Complaint)
	// Close, devam eden gönderimlerin bitmesini bekler.
	Close()
}

type notifier struct {
	sender email.Sender
	log    zerolog.Logger
	wg     sync.WaitGroup
}

// NewNotifier, constructor. sender nil ise bildirimler kapalıdır.
func NewNotifier(sender email.Sender) Notifier {
	return &notifier{
		sender: sender,
		log:    logger.For("notifier"),
	}
}

func (n *notifier) ComplaintCreated(complaint *models.Complaint) {
	if n.sender == nil || complaint == nil {
		return
	}

	to := complaint.Department.Mailbox()
	if to == "" {
		return
	}

	notice := email.ComplaintNotice{
		ComplaintID: complaint.ID,
		Department:  complaint.Department.String(),
		ParkName:    complaint.ParkName,
		IssueType:   complaint.IssueType,
		Description: complaint.Description,
		ReportedAt:  complaint.ReportedAt,
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := n.sender.SendComplaintNotice(ctx, to, notice); err != nil {
			n.log.Error().Err(err).Str("complaint_id", notice.ComplaintID).Str("to", to).Msg("complaint notice failed")
			return
		}
		n.log.Debug().Str("complaint_id", notice.ComplaintID).Str("to", to).Msg("complaint notice sent")
	}()
}

func (n *notifier) Close() {
	n.wg.Wait()
}
