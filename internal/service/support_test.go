package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylianerp/onboarding-portal/internal/mocks/portal"
	"github.com/kylianerp/onboarding-portal/internal/ports"
)

func TestSupportService_Submit_Delivers(t *testing.T) {
	sender := &portal.CaptureMailSender{}
	svc := NewSupportService(SupportServiceOptions{Mailer: sender})

	err := svc.Submit(context.Background(), ports.SupportTicket{
		Name:    "  Ada Lovelace ",
		Email:   "ada@example.com",
		Subject: "Offer letter question",
		Message: " When does my offer expire? ",
	})
	require.NoError(t, err)

	tickets := sender.Tickets()
	require.Len(t, tickets, 1)
	assert.Equal(t, "Ada Lovelace", tickets[0].Name)
	assert.Equal(t, "When does my offer expire?", tickets[0].Message)
	assert.Equal(t, "general", tickets[0].Category)
}

func TestSupportService_Submit_KeepsChosenCategory(t *testing.T) {
	sender := &portal.CaptureMailSender{}
	svc := NewSupportService(SupportServiceOptions{Mailer: sender})

	err := svc.Submit(context.Background(), ports.SupportTicket{
		Name:     "Ada",
		Email:    "a@b.c",
		Category: "billing",
		Message:  "help",
	})
	require.NoError(t, err)

	tickets := sender.Tickets()
	require.Len(t, tickets, 1)
	assert.Equal(t, "billing", tickets[0].Category)
}

func TestSupportService_Submit_MissingFields(t *testing.T) {
	sender := &portal.CaptureMailSender{}
	svc := NewSupportService(SupportServiceOptions{Mailer: sender})
	ctx := context.Background()

	cases := []ports.SupportTicket{
		{},
		{Name: "Ada", Email: "a@b.c"},
		{Name: "Ada", Message: "help"},
		{Email: "a@b.c", Message: "help"},
		{Name: "  ", Email: "a@b.c", Message: "help"},
	}
	for _, ticket := range cases {
		err := svc.Submit(ctx, ticket)
		assert.Equal(t, ErrSupportFieldsRequired, err)
	}
	assert.Empty(t, sender.Tickets())
}

func TestSupportService_Submit_DeliveryFailure(t *testing.T) {
	sender := &portal.CaptureMailSender{Err: errors.New("relay refused")}
	svc := NewSupportService(SupportServiceOptions{Mailer: sender})

	err := svc.Submit(context.Background(), ports.SupportTicket{
		Name:    "Ada",
		Email:   "a@b.c",
		Message: "help",
	})
	require.Error(t, err)
	assert.Equal(t, ErrSupportDeliveryFailed, err)
}
