package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ccc-smartassist/internal/models"
	"ccc-smartassist/internal/repository"
	"ccc-smartassist/internal/service"
	"ccc-smartassist/pkg/auth"
	"ccc-smartassist/pkg/config"
	"ccc-smartassist/pkg/logger"
	"ccc-smartassist/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(100) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'student',
		full_name VARCHAR(255) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		student_id VARCHAR(50) NOT NULL DEFAULT '',
		course VARCHAR(100) NOT NULL DEFAULT '',
		year_level VARCHAR(50) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS knowledge_base (
		id UUID PRIMARY KEY,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		category VARCHAR(50) NOT NULL DEFAULT 'general',
		source VARCHAR(20) NOT NULL DEFAULT 'manual',
		date_added BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS manual_rules (
		seq BIGSERIAL,
		id UUID PRIMARY KEY,
		trigger TEXT NOT NULL,
		response TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT true
	)`,
	`CREATE TABLE IF NOT EXISTS chat_sessions (
		id UUID PRIMARY KEY,
		user_id UUID REFERENCES users(id) ON DELETE CASCADE,
		title VARCHAR(100) NOT NULL,
		last_updated BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id UUID PRIMARY KEY,
		session_id UUID NOT NULL REFERENCES chat_sessions(id) ON DELETE CASCADE,
		role VARCHAR(20) NOT NULL,
		content TEXT NOT NULL,
		timestamp BIGINT NOT NULL,
		is_error BOOLEAN NOT NULL DEFAULT false,
		feedback INT
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id INT PRIMARY KEY,
		system_name VARCHAR(100) NOT NULL,
		theme_color VARCHAR(20) NOT NULL,
		api_key TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS faq_questions (
		id UUID PRIMARY KEY,
		question TEXT NOT NULL,
		category VARCHAR(50) NOT NULL DEFAULT 'general',
		date_added BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_user ON chat_sessions(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id)`,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Starting database seeding...")

	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			appLogger.Fatal("Schema migration failed", zap.Error(err))
		}
	}
	appLogger.Info("Schema is up to date")

	userRepo := repository.NewUserRepository(db, appLogger)
	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)
	ruleRepo := repository.NewRuleRepository(db, appLogger)
	faqRepo := repository.NewFAQRepository(db, appLogger)

	if err := seedSettings(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to seed settings", zap.Error(err))
	}
	if err := seedAdmin(ctx, userRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed admin account", zap.Error(err))
	}
	if err := seedKnowledgeBase(ctx, knowledgeRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed knowledge base", zap.Error(err))
	}
	if err := seedRules(ctx, ruleRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed rules", zap.Error(err))
	}
	if err := seedFAQs(ctx, faqRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed FAQs", zap.Error(err))
	}

	// PDF handbooks dropped into cmd/seed are imported as knowledge items.
	pdfService := service.NewPDFService(appLogger)
	if err := seedKnowledgeBaseFromPDFs(ctx, filepath.Join("cmd", "seed"), knowledgeRepo, pdfService, appLogger); err != nil {
		appLogger.Fatal("Failed to seed knowledge base from PDFs", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

func seedSettings(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) error {
	tag, err := db.Exec(ctx,
		`INSERT INTO settings (id, system_name, theme_color, api_key)
		 VALUES (1, 'CCC SmartAssist', 'blue', '')
		 ON CONFLICT (id) DO NOTHING`,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		logger.Info("Seeded default settings")
	}
	return nil
}

func seedAdmin(ctx context.Context, repo *repository.UserRepository, logger *zap.Logger) error {
	if existing, _ := repo.GetByUsername(ctx, "admin"); existing != nil {
		logger.Info("Admin account already exists, skipping")
		return nil
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		logger.Warn("SEED_ADMIN_PASSWORD not set, using default credentials")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := time.Now()
	admin := &models.User{
		ID:        uuid.New(),
		Username:  "admin",
		Password:  hashed,
		Role:      models.RoleAdmin,
		FullName:  "Portal Administrator",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("Seeded admin account", zap.String("username", admin.Username))
	return nil
}

func seedKnowledgeBase(ctx context.Context, repo *repository.KnowledgeRepository, logger *zap.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Knowledge base already seeded, skipping", zap.Int("count", count))
		return nil
	}

	items := []struct {
		question string
		answer   string
		category models.KnowledgeCategory
	}{
		{
			"Enrollment Requirements",
			"To enroll at Cainta Catholic College you need: (1) Form 138 / Report Card, (2) Certificate of Good Moral Character, (3) PSA Birth Certificate, (4) two 2x2 ID photos. Submit these to the Registrar's Office during the enrollment period.",
			models.CategoryEnrollment,
		},
		{
			"Enrollment Period",
			"Enrollment for the first semester usually opens in June and for the second semester in November. Exact dates are posted on the official bulletin board and the school's social media pages.",
			models.CategoryEnrollment,
		},
		{
			"Tuition Payment Options",
			"Tuition can be paid in full at the start of the semester or on an installment basis (upon enrollment, before prelims, before midterms, and before finals). Payments are accepted at the Cashier's Office.",
			models.CategoryTuition,
		},
		{
			"Scholarship Programs",
			"Academic scholarships are awarded to students with a general average of 90 and above. Additional grants are available for student assistants, varsity players, and members of select performing groups. Apply at the Student Affairs Office.",
			models.CategoryScholarship,
		},
		{
			"Uniform Policy",
			"The prescribed school uniform must be worn from Monday to Thursday. Friday is wash day: decent civilian attire is allowed. ID must be worn visibly at all times inside the campus.",
			models.CategoryPolicy,
		},
		{
			"Office Hours",
			"The Registrar's Office and Cashier's Office are open Monday to Friday, 8:00 AM to 5:00 PM, and Saturday 8:00 AM to 12:00 NN.",
			models.CategoryGeneral,
		},
	}

	now := time.Now().UnixMilli()
	for _, seed := range items {
		item := &models.KnowledgeItem{
			ID:        uuid.New(),
			Question:  seed.question,
			Answer:    seed.answer,
			Category:  seed.category,
			Source:    models.SourceSystem,
			DateAdded: now,
		}
		if err := repo.Create(ctx, item); err != nil {
			return err
		}
	}

	logger.Info("Seeded knowledge base", zap.Int("items", len(items)))
	return nil
}

func seedRules(ctx context.Context, repo *repository.RuleRepository, logger *zap.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Rules already seeded, skipping", zap.Int("count", count))
		return nil
	}

	rules := []struct {
		trigger  string
		response string
	}{
		{"hello", "Hello! Welcome to CCC SmartAssist. How can I help you today?"},
		{"thank you", "You're very welcome! Let me know if there's anything else I can help you with."},
	}

	for _, seed := range rules {
		rule := &models.ManualRule{
			ID:       uuid.New(),
			Trigger:  seed.trigger,
			Response: seed.response,
			Active:   true,
		}
		if err := repo.Create(ctx, rule); err != nil {
			return err
		}
	}

	logger.Info("Seeded manual rules", zap.Int("rules", len(rules)))
	return nil
}

func seedFAQs(ctx context.Context, repo *repository.FAQRepository, logger *zap.Logger) error {
	faqs, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(faqs) > 0 {
		logger.Info("FAQs already seeded, skipping", zap.Int("count", len(faqs)))
		return nil
	}

	questions := []struct {
		question string
		category string
	}{
		{"What are the requirements for enrollment?", "enrollment"},
		{"When does enrollment start?", "enrollment"},
		{"How much is the tuition fee?", "tuition"},
		{"Are there scholarship programs available?", "scholarship"},
		{"What are the office hours of the Registrar?", "general"},
	}

	now := time.Now().UnixMilli()
	for _, seed := range questions {
		faq := &models.FAQ{
			ID:        uuid.New(),
			Question:  seed.question,
			Category:  seed.category,
			DateAdded: now,
		}
		if err := repo.Create(ctx, faq); err != nil {
			return err
		}
	}

	logger.Info("Seeded FAQs", zap.Int("faqs", len(questions)))
	return nil
}

// seedKnowledgeBaseFromPDFs imports every PDF in seedDir as a knowledge item.
// Files whose title already exists in the knowledge base are skipped, so the
// seeder stays idempotent across runs.
func seedKnowledgeBaseFromPDFs(
	ctx context.Context,
	seedDir string,
	repo *repository.KnowledgeRepository,
	pdfService *service.PDFService,
	logger *zap.Logger,
) error {
	paths, err := filepath.Glob(filepath.Join(seedDir, "*.pdf"))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		logger.Info("No seed PDFs found, skipping", zap.String("dir", seedDir))
		return nil
	}

	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, item := range existing {
		seen[item.Question] = true
	}

	now := time.Now().UnixMilli()
	for _, path := range paths {
		title := titleFromFilename(filepath.Base(path))
		if seen[title] {
			logger.Info("PDF already imported, skipping", zap.String("path", path))
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("Failed to read PDF", zap.String("path", path), zap.Error(err))
			continue
		}

		text, err := pdfService.ExtractText(data)
		if err != nil {
			logger.Warn("Failed to extract text from PDF, skipping",
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}

		item := &models.KnowledgeItem{
			ID:        uuid.New(),
			Question:  title,
			Answer:    text,
			Category:  models.CategoryGeneral,
			Source:    models.SourcePDF,
			DateAdded: now,
		}
		if err := repo.Create(ctx, item); err != nil {
			logger.Error("Failed to store PDF knowledge item", zap.String("path", path), zap.Error(err))
			continue
		}

		logger.Info("Imported knowledge from PDF",
			zap.String("title", title),
			zap.Int("content_length", len(text)),
		)
	}

	return nil
}

// titleFromFilename turns "student_handbook.pdf" into "Student Handbook".
func titleFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")

	words := strings.Fields(name)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(string(word[0])) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}
