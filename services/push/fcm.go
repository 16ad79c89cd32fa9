package push

import (
	"context"
	"fmt"

	"fundi/utils"

	"firebase.google.com/go/v4/messaging"
)

// FCMService is the production implementation backed by Firebase Cloud
// Messaging.
type FCMService struct{}

// NewFCMService returns a Service that sends through the global FCM client.
// utils.FirebaseInit must have run first.
func NewFCMService() *FCMService {
	return &FCMService{}
}

func (s *FCMService) SendToToken(ctx context.Context, token, title, body string, data map[string]string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("push: empty device token")
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("push: failed to send FCM message: %w", err)
	}
	return response, nil
}
