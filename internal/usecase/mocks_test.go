package usecase

import (
	"context"
	"time"

	"flightcal-service/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

type mockEmailRepository struct {
	mock.Mock
}

func (m *mockEmailRepository) Save(ctx context.Context, email *entity.Email) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockEmailRepository) FindUnprocessed(ctx context.Context, limit int) ([]*entity.Email, error) {
	args := m.Called(ctx, limit)
	emails, _ := args.Get(0).([]*entity.Email)
	return emails, args.Error(1)
}

func (m *mockEmailRepository) GetLastEmail(ctx context.Context) (*entity.Email, error) {
	args := m.Called(ctx)
	email, _ := args.Get(0).(*entity.Email)
	return email, args.Error(1)
}

func (m *mockEmailRepository) ResetProcessingEmails(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockEmailRepository) FindByEmailIDs(ctx context.Context, emailIDs []string) (map[string]*entity.Email, error) {
	args := m.Called(ctx, emailIDs)
	found, _ := args.Get(0).(map[string]*entity.Email)
	return found, args.Error(1)
}

func (m *mockEmailRepository) ClaimByEmailID(ctx context.Context, emailID string, startedAt time.Time) (bool, error) {
	args := m.Called(ctx, emailID, startedAt)
	return args.Bool(0), args.Error(1)
}

func (m *mockEmailRepository) MarkAsProcessedByEmailID(ctx context.Context, emailID, status, processorType, errorDetail string, extractedData map[string]interface{}) error {
	return m.Called(ctx, emailID, status, processorType, errorDetail, extractedData).Error(0)
}

func (m *mockEmailRepository) UpdateProcessStepsByEmailID(ctx context.Context, emailID string, steps entity.ProcessSteps) error {
	return m.Called(ctx, emailID, steps).Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Send(ctx context.Context, notification *entity.Notification) (string, error) {
	args := m.Called(ctx, notification)
	return args.String(0), args.Error(1)
}

type stubHandler struct {
	name    string
	match   bool
	err     error
	handled []string
}

func (h *stubHandler) Name() string                  { return h.name }
func (h *stubHandler) CanHandle(subject string) bool { return h.match }

func (h *stubHandler) Process(ctx context.Context, email *entity.Email) error {
	h.handled = append(h.handled, email.EmailID)
	return h.err
}

type stubRouter struct {
	handler TemplateHandler
}

func (r *stubRouter) Register(handler TemplateHandler) { r.handler = handler }

func (r *stubRouter) GetHandler(subject string) TemplateHandler {
	if r.handler != nil && r.handler.CanHandle(subject) {
		return r.handler
	}
	return nil
}
