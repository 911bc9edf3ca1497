// Server hosts the collective ledger over gRPC and, when HTTP_ADDR is set, the HTTP gateway.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"collective-ledger/internal/audit"
	auditrepo "collective-ledger/internal/audit/repository"
	"collective-ledger/internal/config"
	"collective-ledger/internal/db"
	"collective-ledger/internal/gateway"
	healthhandler "collective-ledger/internal/health/handler"
	"collective-ledger/internal/ledger"
	"collective-ledger/internal/ledger/service"
	"collective-ledger/internal/observability"
	"collective-ledger/internal/policy/engine"
	"collective-ledger/internal/security"
	"collective-ledger/internal/server"
	"collective-ledger/internal/server/interceptors"
	"collective-ledger/internal/telemetry"
	telemetryotel "collective-ledger/internal/telemetry/otel"
	"collective-ledger/internal/telemetry/producer"
)

const httpShutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	logger := observability.InitLogger("ledger-server", cfg.LogLevel, cfg.LogFormat)
	observability.RegisterMetrics()
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	providers, err := telemetryotel.NewProviders(ctx, cfg.OTelEndpoint, cfg.OTelServiceName, cfg.OTelInsecure)
	if err != nil {
		log.Fatal().Err(err).Msg("otel: failed to create providers")
	}
	providers.SetGlobal()

	var (
		ledgerOpts    []ledger.Option
		policyChecker healthhandler.PolicyChecker
	)
	if cfg.ExecutionPolicy == config.PolicyOPA {
		var rule *engine.OPARule
		if cfg.ExecutionPolicyFile != "" {
			rule, err = engine.LoadPolicyFile(ctx, cfg.ExecutionPolicyFile)
		} else {
			rule, err = engine.NewOPARule(ctx, "")
		}
		if err != nil {
			log.Fatal().Err(err).Msg("policy: failed to load execution policy")
		}
		ledgerOpts = append(ledgerOpts, ledger.WithRule(rule))
		policyChecker = rule
		log.Info().Str("file", cfg.ExecutionPolicyFile).Msg("policy: using OPA execution policy")
	}

	var (
		auditRepo auditrepo.Repository = auditrepo.NewMemoryRepository()
		pinger    healthhandler.Pinger
	)
	if cfg.DatabaseURL != "" {
		sqlDB, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("db: failed to open")
		}
		defer sqlDB.Close()
		auditRepo = auditrepo.NewPostgresRepository(sqlDB)
		pinger = sqlDB
		log.Info().Msg("audit: writing to postgres")
	} else {
		log.Warn().Msg("audit: DATABASE_URL not set, keeping audit logs in memory")
	}
	auditLogger := audit.NewLogger(auditRepo, interceptors.ClientIP)

	emitters := []telemetry.EventEmitter{telemetryotel.NewEventEmitter(providers.LoggerProvider)}
	kafkaProducer := producer.NewKafkaProducer(cfg.KafkaBrokersList(), cfg.LedgerEventsTopic)
	if kafkaProducer != nil {
		emitters = append(emitters, kafkaProducer)
		log.Info().Str("topic", kafkaProducer.Topic()).Msg("telemetry: publishing ledger events to kafka")
	}

	svc := service.NewLedgerService(ledger.New(ledgerOpts...), auditLogger, telemetry.Multi(emitters...))

	auth := &interceptors.Authenticator{}
	switch {
	case cfg.AuthEnabled():
		tokens, err := security.NewTokenProviderFromPEM(cfg.JWTPrivateKey, cfg.JWTPublicKey, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL())
		if err != nil {
			log.Fatal().Err(err).Msg("auth: failed to load JWT keys")
		}
		auth.Tokens = tokens
		if cfg.AuthInsecureHeader {
			log.Warn().Msg("auth: AUTH_INSECURE_HEADER ignored because JWT_PUBLIC_KEY is set")
		}
	case cfg.AuthInsecureHeader:
		auth.AllowActorHeader = true
		log.Warn().Msg("auth: trusting x-actor header (dev only)")
	default:
		log.Warn().Msg("auth: no JWT_PUBLIC_KEY and AUTH_INSECURE_HEADER=false; every command will be rejected")
	}

	proxies := cfg.TrustedProxiesList()
	if proxies == nil {
		proxies = []string{}
	}
	trusted, err := interceptors.NewTrustedProxies(proxies)
	if err != nil {
		log.Fatal().Err(err).Msg("config: invalid TRUSTED_PROXIES")
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatal().Err(err).Msg("listen")
	}
	defer lis.Close()

	s := server.NewServer(logger, auth, trusted)
	server.RegisterServices(s, server.Deps{
		Ledger:              svc,
		HealthPinger:        pinger,
		HealthPolicyChecker: policyChecker,
	})

	go func() {
		log.Info().Str("addr", cfg.GRPCAddr).Msg("gRPC server listening")
		if err := s.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("serve")
		}
	}()

	var httpSrv *http.Server
	if cfg.HTTPAddr != "" {
		gw := gateway.New(gateway.Deps{
			Ledger:         svc,
			Auth:           auth,
			Audit:          auditRepo,
			Readiness:      healthhandler.NewServer(pinger, policyChecker),
			CORSOrigins:    cfg.CORSOriginsList(),
			TrustedProxies: proxies,
		})
		httpSrv = &http.Server{Addr: cfg.HTTPAddr, Handler: gw.Handler(), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			log.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP gateway listening")
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("http serve")
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")
	if httpSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, httpShutdownTimeout)
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("http shutdown")
		}
		cancel()
	}
	s.GracefulStop()

	// Let in-flight async emits finish before closing their sinks.
	time.Sleep(telemetry.ShutdownDrainDuration)
	if err := kafkaProducer.Close(); err != nil {
		log.Warn().Err(err).Msg("telemetry: kafka producer close")
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, httpShutdownTimeout)
	defer cancel()
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("otel: shutdown")
	}
	log.Info().Msg("server stopped")
}
