package main

// go run cmd/aydocorp/main.go

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/catalog"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/config"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/dsn"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/fleetyards"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/handler"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/handler/middleware"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/imagecache"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/pkg"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/repository"

	_ "github.com/DasBluEyedDevil/AltAydoSite-sub004/docs" // Swagger docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	postgresString := dsn.FromEnv()

	rep, errRep := repository.New(postgresString, conf.RedisEndpoint, conf.RedisPassword)
	if errRep != nil {
		logrus.Fatalf("error initializing repository: %v", errRep)
	}
	rep.SetMaxPageSize(conf.MaxPageSize)

	cache, err := imagecache.New(conf.MinioEndpoint, conf.MinioAccessKey,
		conf.MinioSecretKey, conf.MinioBucket, conf.MinioUseSSL)
	if err != nil {
		logrus.Fatalf("error initializing image cache: %v", err)
	}

	client := fleetyards.NewClient(conf.FleetyardsBaseURL, conf.FleetyardsPerPage)
	syncer := catalog.NewSyncer(client, rep, rep)

	warmBaseURL := conf.WarmBaseURL
	if warmBaseURL == "" {
		warmBaseURL = fmt.Sprintf("http://localhost:%d", conf.ServicePort)
	}
	warmer := catalog.NewWarmer(rep, warmBaseURL, conf.WarmWidths, conf.WarmConcurrency)

	hand := handler.NewHandler(rep, syncer, warmer, cache, conf.CronSecret)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	application := pkg.NewApp(conf, router, hand)
	application.RunApp()
}
