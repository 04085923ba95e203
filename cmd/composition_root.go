package cmd

import (
	httpin "swiftdrop/internal/adapters/in/http"
	"swiftdrop/internal/adapters/out/postgres"
	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterRiderCommandHandler() commands.RegisterRiderCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateUserRoleCommandHandler() commands.UpdateUserRoleCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.UserDeliveryUoWFactory = FuncUserDeliveryUoWFactory(func() commands.UserDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.RiderDeliveryUoWFactory = FuncRiderDeliveryUoWFactory(func() commands.RiderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAppendStatusImageCommandHandler() commands.AppendStatusImageCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendStatusImageCommandHandler(f)
}

func (c *CompositionRoot) CreateSetRiderLocationCommandHandler() commands.SetRiderLocationCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetRiderLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileRiderAvailabilityCommandHandler() commands.ReconcileRiderAvailabilityCommandHandler {
	var f commands.RiderDeliveryUoWFactory = FuncRiderDeliveryUoWFactory(func() commands.RiderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileRiderAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateAuthenticateQueryHandler() queries.AuthenticateQueryHandler {
	return queries.NewAuthenticateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindUserByPhoneQueryHandler() queries.FindUserByPhoneQueryHandler {
	return queries.NewFindUserByPhoneQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyDeliveriesQueryHandler() queries.GetMyDeliveriesQueryHandler {
	return queries.NewGetMyDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableDeliveriesQueryHandler() queries.GetAvailableDeliveriesQueryHandler {
	return queries.NewGetAvailableDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRiderDeliveriesQueryHandler() queries.GetRiderDeliveriesQueryHandler {
	return queries.NewGetRiderDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryStatusQueryHandler() queries.GetDeliveryStatusQueryHandler {
	return queries.NewGetDeliveryStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRiderLocationQueryHandler() queries.GetRiderLocationQueryHandler {
	return queries.NewGetRiderLocationQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the full HTTP surface.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRegisterUserCommandHandler(),
		c.CreateRegisterRiderCommandHandler(),
		c.CreateUpdateUserRoleCommandHandler(),
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.CreateAppendStatusImageCommandHandler(),
		c.CreateSetRiderLocationCommandHandler(),
		c.CreateAuthenticateQueryHandler(),
		c.CreateFindUserByPhoneQueryHandler(),
		c.CreateGetMyDeliveriesQueryHandler(),
		c.CreateGetAvailableDeliveriesQueryHandler(),
		c.CreateGetRiderDeliveriesQueryHandler(),
		c.CreateGetDeliveryStatusQueryHandler(),
		c.CreateGetRiderLocationQueryHandler(),
		c.config.JWTSecret,
		c.config.UnifyLoginErrors,
	)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncUserDeliveryUoWFactory func() commands.UserDeliveryUoW

func (f FuncUserDeliveryUoWFactory) Create() commands.UserDeliveryUoW {
	return f()
}

type FuncRiderDeliveryUoWFactory func() commands.RiderDeliveryUoW

func (f FuncRiderDeliveryUoWFactory) Create() commands.RiderDeliveryUoW {
	return f()
}
