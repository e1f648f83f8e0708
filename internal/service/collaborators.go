package service

import (
	"context"

	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/model"
)

// RoomProvisioner obtains a video room for an interview session. The
// returned reference is an opaque handle; provisioning failures leave the
// interview untouched in its current status.
type RoomProvisioner interface {
	Provision(ctx context.Context, interviewID string) (string, error)
}

// InviteTokenIssuer mints a one-time token the external candidate booking
// page uses to claim a slot. Validation and expiry live outside this core.
type InviteTokenIssuer interface {
	Issue(ctx context.Context, candidateID string) (string, error)
}

// NotificationSender delivers reminders. Fire-and-forget: a send failure
// must never roll back a booking or cancellation.
type NotificationSender interface {
	SendReminder(ctx context.Context, iv *model.Interview) error
}
