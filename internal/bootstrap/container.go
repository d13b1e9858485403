package bootstrap

import (
	"gorm.io/gorm"

	"imobiliaria-crm-be/internal/config"
	"imobiliaria-crm-be/internal/controller"
	"imobiliaria-crm-be/internal/pkg/logger"
	"imobiliaria-crm-be/internal/repository/unitofwork"
	"imobiliaria-crm-be/internal/service"
)

type Container struct {
	Logger logger.ILogger

	CaracteristicaController controller.ICaracteristicaController
	CorretorController       controller.ICorretorController
	ClienteController        controller.IClienteController
	ImovelController         controller.IImovelController
	ImagemController         controller.IImagemController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	caracteristicaService := service.NewCaracteristicaService(uowFactory, cfg.Cache.CaracteristicaTTL)
	corretorService := service.NewCorretorService(uowFactory)
	clienteService := service.NewClienteService(uowFactory)
	imovelService := service.NewImovelService(uowFactory)
	imagemService := service.NewImagemService(uowFactory)

	baseURL := cfg.App.BaseURL

	return &Container{
		Logger: sysLogger,

		CaracteristicaController: controller.NewCaracteristicaController(caracteristicaService, baseURL),
		CorretorController:       controller.NewCorretorController(corretorService, baseURL),
		ClienteController:        controller.NewClienteController(clienteService, baseURL),
		ImovelController:         controller.NewImovelController(imovelService, baseURL),
		ImagemController:         controller.NewImagemController(imagemService, baseURL),
	}
}
