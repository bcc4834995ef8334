package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu     sync.Mutex
	sent   map[string]email.ComplaintNotice
	resets map[string]email.PasswordReset
	err    error
}

func (s *recordingSender) SendComplaintNotice(_ context.Context, to string, notice email.ComplaintNotice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	if s.sent == nil {
		s.sent = make(map[string]email.ComplaintNotice)
	}
	s.sent[to] = notice
	return nil
}

func (s *recordingSender) SendPasswordReset(_ context.Context, to string, reset email.PasswordReset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	if s.resets == nil {
		s.resets = make(map[string]email.PasswordReset)
	}
	s.resets[to] = reset
	return nil
}

func (s *recordingSender) reset(to string) (email.PasswordReset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.resets[to]
	return r, ok
}

func TestNotifier_SendsToDepartmentMailbox(t *testing.T) {
	sender := &recordingSender{}
	n := NewNotifier(sender)

	n.ComplaintCreated(&models.Complaint{
		ID:          "c1",
		ParkName:    "Kernek Parkı",
		Department:  models.DeptRoads,
		IssueType:   "Yol Arızası",
		Description: "Çukur var",
		ReportedAt:  time.Now(),
	})
	n.Close()

	require.Contains(t, sender.sent, "yol@malatya.gov.tr")
	notice := sender.sent["yol@malatya.gov.tr"]
	assert.Equal(t, "c1", notice.ComplaintID)
	assert.Equal(t, "Yol ve Altyapı", notice.Department)
}

func TestNotifier_SendErrorIsSwallowed(t *testing.T) {
	n := NewNotifier(&recordingSender{err: errors.New("resend down")})

	assert.NotPanics(t, func() {
		n.ComplaintCreated(&models.Complaint{ID: "c1", Department: models.DeptParks})
		n.Close()
	})
}

func TestNotifier_NilSenderIsNoop(t *testing.T) {
	n := NewNotifier(nil)
	n.ComplaintCreated(&models.Complaint{ID: "c1", Department: models.DeptParks})
	n.Close()
}

func TestComplaintService_NotifiesOnCreate(t *testing.T) {
	env := newScopedEnv(t)
	sender := &recordingSender{}
	n := NewNotifier(sender)
	svc := NewComplaintService(env.complaints, env.policy, env.stats, n)

	_, err := svc.Create(context.Background(), nil, &models.CreateComplaintRequest{
		ParkName:    "Kernek Parkı",
		IssueType:   "Sokak Lambası Kırık",
		Description: "Gece karanlık",
	})
	require.NoError(t, err)
	n.Close()

	assert.Contains(t, sender.sent, models.DeptLighting.Mailbox())
}
