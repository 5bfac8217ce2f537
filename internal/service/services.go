package service

import (
	"github.com/estoque-digital/estoque-server/internal/config"
	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/internal/store"
)

type Services struct {
	AuthService      AuthService
	InventoryService InventoryService
	SalesService     SalesService
	BackupService    BackupService
	TeamService      TeamService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.Team, cfg.App, logger),
		InventoryService: NewInventoryService(storages.Inventory, logger),
		SalesService:     NewSalesService(storages.Sales, logger),
		BackupService:    NewBackupService(storages.Backups, storages.Inventory, logger),
		TeamService:      NewTeamService(storages.Team, logger),
	}
}
