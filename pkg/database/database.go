package database

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/clinova/clinova/internal/config"
	"github.com/clinova/clinova/internal/domain/appointment"
	"github.com/clinova/clinova/internal/domain/doctor"
	"github.com/clinova/clinova/internal/domain/history"
	"github.com/clinova/clinova/internal/domain/patient"
	"github.com/clinova/clinova/internal/domain/specialty"
)

func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
		PrepareStmt:          true,
		DisableAutomaticPing: false,
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: false,
	}), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("running database migrations")
	start := time.Now()

	models := []any{
		&specialty.Specialty{},
		&patient.Patient{},
		&doctor.Doctor{},
		&history.History{},
		&appointment.Appointment{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migrating models: %w", err)
	}

	if err := createConstraints(db); err != nil {
		return fmt.Errorf("creating constraints: %w", err)
	}

	log.Info("migrations completed", zap.Duration("duration", time.Since(start)))
	return nil
}

// createConstraints adds the foreign keys and supporting indexes that
// AutoMigrate does not derive from the struct tags. Deletes never
// cascade: a referenced patient, doctor, or specialty cannot be removed.
//
// There is deliberately no unique index on (doctor_id, scheduled_at);
// the availability check and the booking insert are separate statements
// and can race. See DESIGN.md.
func createConstraints(db *gorm.DB) error {
	stmts := []string{
		`ALTER TABLE doctors ADD CONSTRAINT fk_doctors_specialty
			FOREIGN KEY (specialty_id) REFERENCES specialties (id)`,
		`ALTER TABLE history ADD CONSTRAINT fk_history_patient
			FOREIGN KEY (patient_id) REFERENCES patients (id)`,
		`ALTER TABLE history ADD CONSTRAINT fk_history_doctor
			FOREIGN KEY (doctor_id) REFERENCES doctors (id)`,
		`ALTER TABLE appointments ADD CONSTRAINT fk_appointments_patient
			FOREIGN KEY (patient_id) REFERENCES patients (id)`,
		`ALTER TABLE appointments ADD CONSTRAINT fk_appointments_doctor
			FOREIGN KEY (doctor_id) REFERENCES doctors (id)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_scheduled_at
			ON appointments (scheduled_at)`,
	}

	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			// Constraints already present on re-run are fine.
			if isDuplicateObject(err) {
				continue
			}
			return err
		}
	}

	return nil
}

func isDuplicateObject(err error) bool {
	// Postgres 42710 (duplicate_object) / 42P07 (duplicate_table).
	msg := err.Error()
	return strings.Contains(msg, "already exists") ||
		strings.Contains(msg, "SQLSTATE 42710") ||
		strings.Contains(msg, "SQLSTATE 42P07")
}
