package services

import (
	"context"
	"errors"
	"testing"

	"cms-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockContactRepo struct {
	insertErr error
	inserted  []models.ContactMessage
}

func (m *mockContactRepo) Insert(_ context.Context, msg models.ContactMessage) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, msg)
	return nil
}

type mockEmailSender struct {
	sendErr error
	to      string
	subject string
	body    string
	calls   int
}

func (m *mockEmailSender) SendEmail(_ context.Context, to, subject, body string) error {
	m.calls++
	m.to = to
	m.subject = subject
	m.body = body
	return m.sendErr
}

func message() models.ContactMessage {
	return models.ContactMessage{
		Name:    "Jamie",
		Email:   "jamie@example.com",
		Message: "Is the Fridge X in stock?",
	}
}

func TestContactSubmitStoresThenSends(t *testing.T) {
	repo := &mockContactRepo{}
	mail := &mockEmailSender{}
	svc := NewContactService(repo, mail, "sales@whitegoods.example")

	result, err := svc.Submit(context.Background(), message())
	require.NoError(t, err)

	assert.True(t, result.Stored)
	assert.True(t, result.EmailSent)
	assert.Nil(t, result.Error)

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, 1, mail.calls)
	assert.Equal(t, "sales@whitegoods.example", mail.to)
	assert.Equal(t, "New contact message from Jamie", mail.subject)
	assert.Contains(t, mail.body, "jamie@example.com")
	assert.Contains(t, mail.body, "Is the Fridge X in stock?")
}

func TestContactSubmitRelayUnconfigured(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewContactService(repo, nil, "")

	result, err := svc.Submit(context.Background(), message())
	require.NoError(t, err)

	assert.True(t, result.Stored)
	assert.False(t, result.EmailSent)
	require.NotNil(t, result.Error)
	assert.Equal(t, "SMTP not configured on server", *result.Error)
	assert.Len(t, repo.inserted, 1, "message must be stored even without a relay")
}

func TestContactSubmitRelayFailureIsNonFatal(t *testing.T) {
	repo := &mockContactRepo{}
	mail := &mockEmailSender{sendErr: errors.New("connection refused")}
	svc := NewContactService(repo, mail, "sales@whitegoods.example")

	result, err := svc.Submit(context.Background(), message())
	require.NoError(t, err, "a relay failure must not fail the submission")

	assert.True(t, result.Stored)
	assert.False(t, result.EmailSent)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "connection refused")
	assert.Len(t, repo.inserted, 1)
}

func TestContactSubmitStorageFailureIsFatal(t *testing.T) {
	repo := &mockContactRepo{insertErr: errors.New("write refused")}
	mail := &mockEmailSender{}
	svc := NewContactService(repo, mail, "sales@whitegoods.example")

	_, err := svc.Submit(context.Background(), message())
	require.Error(t, err)
	assert.Zero(t, mail.calls, "no notification may be attempted when storage failed")
}
