package repository

import (
	"context"

	"flightcal-service/internal/domain/entity"
)

// NotificationRepository delivers flight notifications to an external messaging service
type NotificationRepository interface {
	Send(ctx context.Context, notification *entity.Notification) (string, error)
}
