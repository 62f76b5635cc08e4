// Package mailer abstracts outbound email. Delivery itself is an external
// concern; the API only needs a Mailer it can hand invitation details to.
package mailer

import (
	"context"

	"go.uber.org/zap"
)

type Invitation struct {
	To        string
	Token     string
	RoleKey   string
	EventName string
}

type Mailer interface {
	SendInvitation(ctx context.Context, inv Invitation) error
}

// LogMailer writes invitations to the log instead of sending them. Used in
// development and as the default until a real provider is configured.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendInvitation(_ context.Context, inv Invitation) error {
	zap.L().Info("invitation email",
		zap.String("to", inv.To),
		zap.String("role", inv.RoleKey),
		zap.String("event", inv.EventName),
		zap.String("token", inv.Token),
	)

	return nil
}
