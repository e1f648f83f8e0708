package app

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/model"
	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/service"
)

// Default collaborator implementations. Real deployments swap these for
// the actual token, video-room and notification integrations; the facade
// only sees the interfaces.

// UUIDInviteIssuer mints opaque one-time invite tokens.
type UUIDInviteIssuer struct{}

var _ service.InviteTokenIssuer = UUIDInviteIssuer{}

func (UUIDInviteIssuer) Issue(_ context.Context, _ string) (string, error) {
	return uuid.NewString(), nil
}

// UUIDRoomProvisioner hands out opaque room references.
type UUIDRoomProvisioner struct{}

var _ service.RoomProvisioner = UUIDRoomProvisioner{}

func (UUIDRoomProvisioner) Provision(_ context.Context, _ string) (string, error) {
	return "room-" + uuid.NewString(), nil
}

// LogNotifier records reminders in the log instead of delivering them.
type LogNotifier struct {
	Logger *zap.Logger
}

var _ service.NotificationSender = (*LogNotifier)(nil)

func (n *LogNotifier) SendReminder(_ context.Context, iv *model.Interview) error {
	n.Logger.Info("Reminder",
		zap.String("interview_id", iv.ID),
		zap.String("candidate_id", iv.CandidateID),
		zap.String("date", iv.ScheduledDate),
		zap.String("time", iv.ScheduledTime),
	)
	return nil
}
