package router

import (
	"context"
	"strings"
	"testing"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type keywordHandler struct {
	name    string
	keyword string
}

func (h keywordHandler) Name() string { return h.name }

func (h keywordHandler) CanHandle(subject string) bool {
	return strings.Contains(strings.ToLower(subject), h.keyword)
}

func (h keywordHandler) Process(ctx context.Context, email *entity.Email) error { return nil }

func TestSubjectRouter_FirstMatchWins(t *testing.T) {
	r := NewSubjectRouter(logger.NewNopLogger())
	r.Register(keywordHandler{name: "boarding", keyword: "boarding pass"})
	r.Register(keywordHandler{name: "confirmation", keyword: "confirmation"})

	h := r.GetHandler("Your Boarding Pass and Confirmation")
	if assert.NotNil(t, h) {
		assert.Equal(t, "boarding", h.Name())
	}

	h = r.GetHandler("Flight Confirmation - ABC123")
	if assert.NotNil(t, h) {
		assert.Equal(t, "confirmation", h.Name())
	}

	assert.Nil(t, r.GetHandler("Weekly newsletter"))
}
