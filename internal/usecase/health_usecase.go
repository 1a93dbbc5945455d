package usecase

import (
	"context"

	"go-agency-backend/pkg/redis"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	mailerProvider string
}

func NewHealthUsecase(mailerProvider string) HealthUsecase {
	return &healthUsecase{mailerProvider: mailerProvider}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status": "ok",
		"mailer": u.mailerProvider,
	}
	if err := redis.HealthCheck(ctx); err != nil {
		status["redis"] = "unavailable"
	} else {
		status["redis"] = "ok"
	}
	return status
}
