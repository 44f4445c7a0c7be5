package pkg

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/config"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/handler"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

func NewApp(conf *config.Config, router *gin.Engine, hand *handler.Handler) *App {
	return &App{
		Config:  conf,
		Router:  router,
		Handler: hand,
	}
}

func (a *App) RunApp() {
	a.Handler.SetupRoutes(a.Router)
	a.Handler.RegisterStatic(a.Router)

	addr := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("server listening on %s", addr)
	if err := a.Router.Run(addr); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
