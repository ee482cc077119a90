package main

import (
	"fmt"
	"log"
	"os"

	"github.com/campaignhub/campaignhub/internal/apiserver/database"
	"github.com/campaignhub/campaignhub/internal/apiserver/handler"
	"github.com/campaignhub/campaignhub/internal/auth/jwt"
	"github.com/campaignhub/campaignhub/internal/common/cnst"
	"github.com/campaignhub/campaignhub/internal/common/config"
	"github.com/campaignhub/campaignhub/internal/consistency"
	"github.com/campaignhub/campaignhub/internal/i18n"
	"github.com/campaignhub/campaignhub/internal/invitation"
	"github.com/campaignhub/campaignhub/pkg/logger"
	"github.com/campaignhub/campaignhub/pkg/utils"
	"github.com/campaignhub/campaignhub/pkg/version"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of apiserver",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("apiserver version %s\n", version.Get())
		},
	}

	rootCmd = &cobra.Command{
		Use:   cnst.CommandName,
		Short: "CampaignHub API Server",
		Long:  `CampaignHub API Server provides the account, authorization and campaign management API`,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "conf", "c", cnst.ApiServerYaml, "path to configuration file, like /etc/campaignhub/apiserver.yaml")
	rootCmd.AddCommand(versionCmd)
}

func run() {
	// Load configuration
	cfg, cfgPath, err := config.LoadConfig[config.APIServerConfig](configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	lg, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	lg.Info("Starting apiserver",
		zap.String("version", version.Get()),
		zap.String("config", cfgPath))

	if cfg.PID != "" {
		pf := utils.NewPIDFile(cfg.PID)
		if err := pf.Write(); err != nil {
			lg.Fatal("Failed to write PID file", zap.String("path", pf.Path()), zap.Error(err))
		}
		defer func() { _ = pf.Remove() }()
	}

	// Initialize i18n translator
	if err := i18n.InitTranslator(cfg.I18n.Path); err != nil {
		lg.Warn("Failed to load translations, falling back to message ids", zap.Error(err))
	}

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		lg.Fatal("Failed to initialize database",
			zap.String("type", cfg.Database.Type),
			zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	if err := database.InitSuperAdmin(db, &cfg.SuperAdmin); err != nil {
		lg.Fatal("Failed to initialize super admin", zap.Error(err))
	}

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		SecretKey: cfg.JWT.SecretKey,
		Duration:  cfg.JWT.Duration,
	})
	if err != nil {
		lg.Fatal("Failed to initialize JWT service", zap.Error(err))
	}

	h := handler.NewHandler(
		db,
		jwtService,
		consistency.NewCoordinator(db, lg),
		invitation.NewService(db, invitation.SystemClock{}, invitation.RandomTokenGenerator{}, cfg.Invitation.TTL, lg),
		cfg,
		lg,
	)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	h.Routes(r)

	port := cfg.Port
	if port == 0 {
		port = 5234
	}
	lg.Info("Server starting", zap.Int("port", port))
	if err := r.Run(fmt.Sprintf(":%d", port)); err != nil {
		lg.Fatal("Server exited", zap.Error(err))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
