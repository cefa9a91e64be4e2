package main

import (
	"context"
	"log"
	"os"

	"github.com/registrarhq/registrar/internal/application/service"
	"github.com/registrarhq/registrar/internal/config"
	domainRepo "github.com/registrarhq/registrar/internal/domain/repository"
	"github.com/registrarhq/registrar/internal/infrastructure/database"
	"github.com/registrarhq/registrar/internal/infrastructure/store"
	"github.com/registrarhq/registrar/internal/presentation/cli"
)

func main() {
	// Load configuration
	cfg := config.Load()

	dataDir := cfg.Storage.DataDir
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// Initialize snapshot repositories
	studentRepo, err := store.NewStudentRepository(dataDir)
	if err != nil {
		log.Fatalf("Failed to open student store: %v", err)
	}
	teacherRepo, err := store.NewTeacherRepository(dataDir)
	if err != nil {
		log.Fatalf("Failed to open teacher store: %v", err)
	}
	courseRepo, err := store.NewCourseRepository(dataDir)
	if err != nil {
		log.Fatalf("Failed to open course store: %v", err)
	}
	particularRepo, err := store.NewParticularRepository(dataDir)
	if err != nil {
		log.Fatalf("Failed to open particular store: %v", err)
	}
	structureRepo, err := store.NewFeeStructureRepository(dataDir)
	if err != nil {
		log.Fatalf("Failed to open fee structure store: %v", err)
	}
	payrollRepo, err := store.NewPayrollRepository(dataDir)
	if err != nil {
		log.Fatalf("Failed to open payroll store: %v", err)
	}
	payrollConfigRepo, err := store.NewPayrollConfigRepository(dataDir)
	if err != nil {
		log.Fatalf("Failed to open payroll config store: %v", err)
	}
	adminRepo, err := store.NewAdminRepository(dataDir)
	if err != nil {
		log.Fatalf("Failed to open admin store: %v", err)
	}
	accountRepo, err := store.NewAccountRepository(dataDir)
	if err != nil {
		log.Fatalf("Failed to open account store: %v", err)
	}
	parentRepo, err := store.NewParentRepository(dataDir)
	if err != nil {
		log.Fatalf("Failed to open parent store: %v", err)
	}
	notificationRepo, err := store.NewNotificationRepository(dataDir)
	if err != nil {
		log.Fatalf("Failed to open notification store: %v", err)
	}
	evaluationRepo, err := store.NewEvaluationRepository(dataDir)
	if err != nil {
		log.Fatalf("Failed to open evaluation store: %v", err)
	}

	// The invoice/payment ledger can run on Postgres instead of snapshot files
	var invoiceRepo domainRepo.InvoiceRepository
	var paymentRepo domainRepo.PaymentRepository
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		invoiceRepo = database.NewInvoiceRepository(db)
		paymentRepo = database.NewPaymentRepository(db)
	default:
		invoiceRepo, err = store.NewInvoiceRepository(dataDir)
		if err != nil {
			log.Fatalf("Failed to open invoice store: %v", err)
		}
		paymentRepo, err = store.NewPaymentRepository(dataDir)
		if err != nil {
			log.Fatalf("Failed to open payment store: %v", err)
		}
	}

	// Initialize services
	app := cli.New(os.Stdin, os.Stdout, cli.Services{
		Auth:        service.NewAuthService(adminRepo, accountRepo),
		Students:    service.NewStudentService(studentRepo),
		Teachers:    service.NewTeacherService(teacherRepo),
		Courses:     service.NewCourseService(courseRepo),
		Fees:        service.NewFeeService(particularRepo, structureRepo, invoiceRepo, paymentRepo, studentRepo, payrollRepo),
		Payroll:     service.NewPayrollService(payrollRepo, payrollConfigRepo, teacherRepo),
		Parents:     service.NewParentService(parentRepo, studentRepo, notificationRepo),
		Evaluations: service.NewEvaluationService(evaluationRepo, teacherRepo, studentRepo),
	})

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Fatal: %v", err)
	}
}
