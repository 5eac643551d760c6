package infra

import (
	"fmt"

	"github.com/zorguiala/domdom/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL that GORM cannot
// express (sequences, partial indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates / updates all tables and applies schema patches.
// Safe to re-run; also used by integration tests against a scratch database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.StockMovement{},
		&model.Expense{},
		&model.ExpensePayment{},
		&model.BillOfMaterials{},
		&model.BomComponent{},
		&model.ProductionOrder{},
		&model.Client{},
		&model.Supplier{},
		&model.Commercial{},
		&model.Sale{},
		&model.SaleItem{},
		&model.PurchaseOrder{},
		&model.PurchaseItem{},
		&model.Employee{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot handle.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Production order numbers are drawn from a dedicated sequence inside
		// the create transaction, so concurrent creates never collide.
		`CREATE SEQUENCE IF NOT EXISTS production_order_number_seq START 1`,
		// Partial index for the low-stock alert query.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_products_below_min') THEN
		    CREATE INDEX idx_products_below_min
		        ON products (qty_on_hand)
		        WHERE active = true AND min_qty IS NOT NULL;
		  END IF;
		END $$`,
		// Partial index for the recurrence cron query.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_expenses_due_recurring') THEN
		    CREATE INDEX idx_expenses_due_recurring
		        ON expenses (next_due_date)
		        WHERE is_recurring = true AND next_due_date IS NOT NULL;
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("schema patch: %w", err)
		}
	}
	return nil
}
