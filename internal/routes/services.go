package routes

import (
	"logistics-backoffice/internal/config"
	"logistics-backoffice/internal/domain/carrier"
	"logistics-backoffice/internal/domain/client"
	"logistics-backoffice/internal/domain/document"
	"logistics-backoffice/internal/domain/event"
	"logistics-backoffice/internal/domain/notification"
	"logistics-backoffice/internal/domain/order"
	"logistics-backoffice/internal/domain/route"
	"logistics-backoffice/internal/domain/session"
	"logistics-backoffice/internal/domain/task"
	"logistics-backoffice/internal/domain/transaction"
	"logistics-backoffice/internal/domain/transportation"
	"logistics-backoffice/internal/domain/user"
	"logistics-backoffice/internal/domain/vehicle"
	"logistics-backoffice/internal/infrastructure/database/postgres"
	authUC "logistics-backoffice/internal/usecase/auth"
	carrierUC "logistics-backoffice/internal/usecase/carrier"
	clientUC "logistics-backoffice/internal/usecase/client"
	dashboardUC "logistics-backoffice/internal/usecase/dashboard"
	documentUC "logistics-backoffice/internal/usecase/document"
	notificationUC "logistics-backoffice/internal/usecase/notification"
	orderUC "logistics-backoffice/internal/usecase/order"
	routeUC "logistics-backoffice/internal/usecase/route"
	taskUC "logistics-backoffice/internal/usecase/task"
	transportationUC "logistics-backoffice/internal/usecase/transportation"
	userUC "logistics-backoffice/internal/usecase/user"
	vehicleUC "logistics-backoffice/internal/usecase/vehicle"
)

// Repositories is the persistence side the services are built on.
type Repositories struct {
	Clients       client.Repository
	Carriers      carrier.Repository
	Vehicles      vehicle.Repository
	Orders        order.Repository
	Routes        route.Repository
	Requests      transportation.Repository
	Tasks         task.Repository
	Notifications notification.Repository
	Documents     document.Repository
	Users         user.Repository
}

// NewPostgresRepositories binds every repository to db.
func NewPostgresRepositories(db *postgres.DB) Repositories {
	return Repositories{
		Clients:       postgres.NewClientRepository(db),
		Carriers:      postgres.NewCarrierRepository(db),
		Vehicles:      postgres.NewVehicleRepository(db),
		Orders:        postgres.NewOrderRepository(db),
		Routes:        postgres.NewRouteRepository(db),
		Requests:      postgres.NewTransportationRequestRepository(db),
		Tasks:         postgres.NewTaskRepository(db),
		Notifications: postgres.NewNotificationRepository(db),
		Documents:     postgres.NewDocumentRepository(db),
		Users:         postgres.NewUserRepository(db),
	}
}

type Services struct {
	Auth          *authUC.Service
	Clients       *clientUC.Service
	Carriers      *carrierUC.Service
	Vehicles      *vehicleUC.Service
	Orders        *orderUC.Service
	Routes        *routeUC.Service
	Requests      *transportationUC.Service
	Tasks         *taskUC.Service
	Notifications *notificationUC.Service
	Documents     *documentUC.Service
	Users         *userUC.Service
	Dashboard     *dashboardUC.Service
}

func NewServices(
	cfg *config.Config,
	repos Repositories,
	tx transaction.Manager,
	sessions session.Store,
	publisher event.Publisher,
) *Services {
	return &Services{
		Auth:     authUC.NewService(repos.Users, sessions, cfg.Session),
		Clients:  clientUC.NewService(repos.Clients),
		Carriers: carrierUC.NewService(repos.Carriers),
		Vehicles: vehicleUC.NewService(repos.Vehicles, repos.Carriers),
		Orders: orderUC.NewService(orderUC.Repositories{
			Orders:        repos.Orders,
			Clients:       repos.Clients,
			Carriers:      repos.Carriers,
			Users:         repos.Users,
			Vehicles:      repos.Vehicles,
			Routes:        repos.Routes,
			Notifications: repos.Notifications,
		}, tx, publisher),
		Routes:        routeUC.NewService(repos.Routes, repos.Orders, repos.Vehicles),
		Requests:      transportationUC.NewService(repos.Requests, repos.Orders, repos.Carriers, publisher),
		Tasks:         taskUC.NewService(repos.Tasks, repos.Users, repos.Orders),
		Notifications: notificationUC.NewService(repos.Notifications, repos.Users, repos.Orders, publisher),
		Documents:     documentUC.NewService(repos.Documents, repos.Orders, repos.Users),
		Users:         userUC.NewService(repos.Users, sessions),
		Dashboard:     dashboardUC.NewService(repos.Orders, repos.Routes, repos.Requests, repos.Tasks),
	}
}
