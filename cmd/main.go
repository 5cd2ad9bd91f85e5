package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	// Nossos pacotes de infraestrutura e utilitários
	"gosalon/config"
	"gosalon/internal/pkg/cache"
	"gosalon/internal/pkg/database"
	"gosalon/internal/pkg/logger"
	"gosalon/internal/pkg/notify"
	"gosalon/internal/pkg/password"
	"gosalon/internal/pkg/token"

	// Camadas para Injeção de Dependências
	"gosalon/internal/api/account"
	"gosalon/internal/api/appointment"
	"gosalon/internal/api/catalog"
	"gosalon/internal/api/complaint"
	"gosalon/internal/api/coupon"
	"gosalon/internal/api/faq"
	"gosalon/internal/api/pqrs"
	"gosalon/internal/api/router"
	"gosalon/internal/api/suggestion"
	"gosalon/internal/repository/accountrepo"
	"gosalon/internal/repository/appointmentrepo"
	"gosalon/internal/repository/catalogrepo"
	"gosalon/internal/repository/complaintrepo"
	"gosalon/internal/repository/couponrepo"
	"gosalon/internal/repository/faqrepo"
	"gosalon/internal/repository/pqrsrepo"
	"gosalon/internal/repository/suggestionrepo"
	"gosalon/internal/service/appointmentservice"
	"gosalon/internal/service/authservice"
	"gosalon/internal/service/catalogservice"
	"gosalon/internal/service/complaintservice"
	"gosalon/internal/service/couponservice"
	"gosalon/internal/service/faqservice"
	"gosalon/internal/service/pqrsservice"
	"gosalon/internal/service/suggestionservice"
)

// @title GoSalon API
// @version 1.0
// @description API do salão: contas, citas, quejas, sugerencias, cupones, FAQs e PQRS.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	// Sem .env seguimos com o ambiente do sistema (ex: Docker).
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado. Usando apenas o ambiente do sistema.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}
	appLog := logger.NewLogger(cfg.Environment, cfg.LogLevel)
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	// Percentuais e preços saem como número no JSON.
	decimal.MarshalJSONWithoutQuotes = true

	// 1. Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL, database.DefaultPool)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	appLog.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis). Opcional: sem ele o catálogo vai direto ao banco e não há rate limit.
	var cacheClient cache.Client
	redisClient, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		appLog.Warn("Redis indisponível; seguindo sem cache e sem rate limit.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
	} else {
		defer redisClient.Close()
		cacheClient = redisClient
		appLog.Info("Conexão Redis estabelecida.", nil)
	}

	// C. E-mail: fila assíncrona sobre SMTP ou, sem SMTP, sobre o log.
	var mailer notify.Mailer = notify.NewLogMailer(appLog)
	if cfg.MailEnabled() {
		mailer = notify.NewSMTPMailer(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.MailFrom,
		})
	}
	dispatcher := notify.NewDispatcher(mailer, appLog, cfg.MailWorkers, cfg.MailQueueSize)

	// D. Tokens e senhas
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	hasher := password.NewBcryptHasher(cfg.BcryptCost)

	// 2. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler

	accountRepo := accountrepo.NewAccountRepository(db, cfg.DBTimeout, appLog)
	appointmentRepo := appointmentrepo.NewAppointmentRepository(db, cfg.DBTimeout, appLog)
	catalogRepo := catalogrepo.NewCatalogRepository(db, cacheClient, cfg.DBTimeout, cfg.CatalogTTL, appLog)
	complaintRepo := complaintrepo.NewComplaintRepository(db, cfg.DBTimeout, appLog)
	couponRepo := couponrepo.NewCouponRepository(db, cfg.DBTimeout, appLog)
	faqRepo := faqrepo.NewFAQRepository(db, cfg.DBTimeout, appLog)
	pqrsRepo := pqrsrepo.NewPQRSRepository(db, cfg.DBTimeout, appLog)
	suggestionRepo := suggestionrepo.NewSuggestionRepository(db, cfg.DBTimeout, appLog)
	appLog.Debug("Repositórios inicializados.", nil)

	policy := authservice.Policy{
		MaxFailedAttempts: cfg.MaxFailedAttempts,
		LockDuration:      cfg.LockDuration,
		CodeTTL:           cfg.CodeTTL,
		CodeLength:        cfg.CodeLength,
	}
	authSvc := authservice.NewService(accountRepo, hasher, tokenSvc, dispatcher, policy, appLog)
	catalogSvc := catalogservice.NewService(catalogRepo, appLog)
	appointmentSvc := appointmentservice.NewService(appointmentRepo, catalogSvc, appLog)
	complaintSvc := complaintservice.NewService(complaintRepo, appLog)
	couponSvc := couponservice.NewService(couponRepo, appLog)
	faqSvc := faqservice.NewService(faqRepo, appLog)
	pqrsSvc := pqrsservice.NewService(pqrsRepo, accountRepo, appLog)
	suggestionSvc := suggestionservice.NewService(suggestionRepo, appLog)
	appLog.Debug("Serviços inicializados.", nil)

	handlers := router.Handlers{
		Account:     account.NewHandler(authSvc, appLog),
		Appointment: appointment.NewHandler(appointmentSvc, appLog),
		Catalog:     catalog.NewHandler(catalogSvc, appLog),
		Complaint:   complaint.NewHandler(complaintSvc, appLog),
		Coupon:      coupon.NewHandler(couponSvc, appLog),
		FAQ:         faq.NewHandler(faqSvc, appLog),
		PQRS:        pqrs.NewHandler(pqrsSvc, appLog),
		Suggestion:  suggestion.NewHandler(suggestionSvc, appLog),
	}

	// 3. Roteador e Servidor
	r := router.NewRouter(handlers, router.Options{
		Tokens:          tokenSvc,
		Cache:           cacheClient,
		RateLimit:       cfg.RateLimitMaxRequests,
		RateLimitPeriod: cfg.RateLimitPeriod,
		Logger:          appLog,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 4. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor GoSalon ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}
	// Entrega o que ainda estiver na fila de e-mails.
	if err := dispatcher.Close(ctx); err != nil {
		appLog.Error("Fila de e-mails não esvaziou a tempo.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
