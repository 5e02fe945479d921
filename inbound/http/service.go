package http

import (
	"context"
	"event-registration/allocation"
	"event-registration/model"
	"time"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type RegistrationService interface {
	Register(ctx context.Context, cmd allocation.RegisterCommand) (model.Registration, error)
	Checkout(ctx context.Context, cmd allocation.RegisterCommand) (model.Registration, *model.Payment, error)
	InitiatePayment(ctx context.Context, tenantID, confirmationCode string) (model.Payment, error)
}

type AdminService interface {
	Cancel(ctx context.Context, tenantID, registrationID string) (model.Registration, error)
	MoveToWaitlist(ctx context.Context, tenantID, registrationID string) (model.Registration, error)
	Confirm(ctx context.Context, tenantID, registrationID string, override bool) (model.Registration, error)
	AssignTable(ctx context.Context, tenantID, registrationID, tableID string, override bool) (model.Registration, error)
	CompletePayment(ctx context.Context, tenantID, registrationID string) (model.Registration, error)
	UpdateCapacity(ctx context.Context, tenantID, eventID string, capacity int32, override bool) (model.Event, error)
	WaitlistRecommendations(ctx context.Context, tenantID, eventID string) ([]model.WaitlistRecommendation, error)
}

type CatalogService interface {
	CreateEvent(ctx context.Context, event model.Event) (model.Event, error)
	CreateTable(ctx context.Context, tenantID, eventID string, table model.Table) (model.Table, error)
	CreateBan(ctx context.Context, ban model.Ban) (model.Ban, error)
	LiftBan(ctx context.Context, tenantID, banID string) error
	CheckBan(ctx context.Context, tenantID, phoneNumber string) (model.BanCheck, error)
}

type FeedService interface {
	RegistrationsSince(ctx context.Context, tenantID, eventID string, since time.Time) ([]model.Registration, error)
	StatusCounts(ctx context.Context, tenantID, eventID string) (model.StatusCounts, error)
}

var (
	_ RegistrationService = (*allocation.Orchestrator)(nil)
	_ AdminService        = (*allocation.Orchestrator)(nil)
	_ CatalogService      = (*allocation.Catalog)(nil)
	_ FeedService         = allocation.Feed{}
)
