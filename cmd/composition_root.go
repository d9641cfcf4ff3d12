package cmd

import (
	"log/slog"

	"shipping/internal/adapters/out/carriers"
	"shipping/internal/adapters/out/fedex"
	"shipping/internal/adapters/out/geocodes"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/adapters/out/postgres/directory"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	directory *directory.GormDirectory
	registry  *carriers.Registry
	assembler services.ParticipantAssembler
	logger    *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	gormDirectory := directory.NewGormDirectory(gormDB)
	geoResolver := geocodes.NewResolver()

	registry := carriers.NewRegistry()
	registry.Register(shipment.CarrierFedex, fedex.NewGateway(fedex.Config{
		Key:                  config.FedexKey,
		Password:             config.FedexPassword,
		AccountNumber:        config.FedexAccountNumber,
		MeterNumber:          config.FedexMeterNumber,
		FreightAccountNumber: config.FedexFreightAccountNumber,
		UseTestServer:        config.FedexUseTestServer,
	}))

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		directory:  gormDirectory,
		registry:   registry,
		assembler:  services.NewParticipantAssembler(gormDirectory, geoResolver, geoResolver),
		logger:     logger,
	}
}

func (c *CompositionRoot) CarrierRegistry() ports.CarrierRegistry {
	return c.registry
}

func (c *CompositionRoot) CreateCreateShipmentNoteCommandHandler() commands.CreateShipmentNoteCommandHandler {
	var f commands.ShipmentNoteUoWFactory = FuncShipmentNoteUoWFactory(func() commands.ShipmentNoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentNoteCommandHandler(f, c.directory)
}

func (c *CompositionRoot) CreateCreateCarrierShipmentCommandHandler() commands.CreateCarrierShipmentCommandHandler {
	var f commands.CarrierShipmentUoWFactory = FuncCarrierShipmentUoWFactory(func() commands.CarrierShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCarrierShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateBookCarrierShipmentCommandHandler() commands.BookCarrierShipmentCommandHandler {
	var f commands.CarrierShipmentUoWFactory = FuncCarrierShipmentUoWFactory(func() commands.CarrierShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBookCarrierShipmentCommandHandler(f, c.assembler, c.directory, c.registry)
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelShipmentCommandHandler(f, c.registry, c.logger)
}

func (c *CompositionRoot) CreateSyncShipmentStatusesCommandHandler() commands.SyncShipmentStatusesCommandHandler {
	var f commands.CarrierShipmentUoWFactory = FuncCarrierShipmentUoWFactory(func() commands.CarrierShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSyncShipmentStatusesCommandHandler(f, c.registry, c.logger)
}

func (c *CompositionRoot) CreateGetShipperQueryHandler() queries.GetShipperQueryHandler {
	return queries.NewGetShipperQueryHandler(c.assembler)
}

func (c *CompositionRoot) CreateGetRecipientQueryHandler() queries.GetRecipientQueryHandler {
	return queries.NewGetRecipientQueryHandler(c.assembler)
}

func (c *CompositionRoot) CreateGetDeliveryItemsQueryHandler() queries.GetDeliveryItemsQueryHandler {
	return queries.NewGetDeliveryItemsQueryHandler(c.directory)
}

func (c *CompositionRoot) CreateGetCarriersQueryHandler() queries.GetCarriersQueryHandler {
	return queries.NewGetCarriersQueryHandler(c.registry)
}

type FuncShipmentNoteUoWFactory func() commands.ShipmentNoteUoW

func (f FuncShipmentNoteUoWFactory) Create() commands.ShipmentNoteUoW {
	return f()
}

type FuncCarrierShipmentUoWFactory func() commands.CarrierShipmentUoW

func (f FuncCarrierShipmentUoWFactory) Create() commands.CarrierShipmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
