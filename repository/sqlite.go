package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"soffit-quote/domain"
)

// SQLiteStore persists calculator runs and estimate submissions. It
// implements both EstimateRepository and SubmissionRepository.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.Mutex
	logger *zap.Logger
}

// NewSQLiteStore opens (or creates) the database and runs migrations.
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets the dashboard export read while the site writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db, logger: logger}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info("sqlite store opened", zap.String("path", dbPath))
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS quote_runs (
			id                     INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp              INTEGER NOT NULL,
			installation_type      TEXT,
			material_type          TEXT,
			service_type           TEXT,
			zip_code               TEXT,
			linear_feet            REAL,
			overhang_feet          REAL,
			material_cost          REAL,
			labor_cost             REAL,
			discount_amount        REAL,
			total_cost             REAL,
			tax_amount             REAL,
			final_total            REAL,
			volume_discount        INTEGER,
			repair_minimum         INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quote_runs_ts ON quote_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS submissions (
			id                TEXT PRIMARY KEY,
			created_at        INTEGER NOT NULL,
			client_ip         TEXT,
			spam_score        REAL,
			first_name        TEXT,
			last_name         TEXT,
			email             TEXT,
			phone             TEXT,
			contact_method    TEXT,
			notes             TEXT,
			linear_feet       REAL,
			overhang          REAL,
			installation_type TEXT,
			material_type     TEXT,
			service_type      TEXT,
			zip_code          TEXT,
			total_price       REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, rec domain.QuoteRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	est := rec.Estimate
	_, err := s.db.ExecContext(ctx, `INSERT INTO quote_runs
		(timestamp, installation_type, material_type, service_type, zip_code,
		 linear_feet, overhang_feet, material_cost, labor_cost, discount_amount,
		 total_cost, tax_amount, final_total, volume_discount, repair_minimum)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().UnixMilli(), string(rec.Installation), string(rec.Material), string(rec.Service), rec.ZipCode,
		est.LinearFeet, est.OverhangFeet, est.MaterialCost, est.LaborCost, est.DiscountAmount,
		est.TotalCost, est.TaxAmount, est.FinalTotal,
		est.VolumeDiscountApplied, est.RepairMinimumApplied,
	)
	if err != nil {
		return fmt.Errorf("insert quote run: %w", err)
	}
	return nil
}

// CountQuoteRuns returns how many calculator runs are stored.
func (s *SQLiteStore) CountQuoteRuns(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quote_runs`).Scan(&n)
	return n, err
}

func (s *SQLiteStore) Create(ctx context.Context, sub domain.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `INSERT INTO submissions
		(id, created_at, client_ip, spam_score, first_name, last_name, email, phone,
		 contact_method, notes, linear_feet, overhang, installation_type,
		 material_type, service_type, zip_code, total_price)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		sub.ID, sub.CreatedAt.UnixMilli(), sub.ClientIP, sub.SpamScore,
		sub.FirstName, sub.LastName, sub.Email, sub.Phone,
		sub.ContactMethod, sub.Notes, sub.LinearFeet, sub.Overhang, sub.InstallationType,
		sub.MaterialType, sub.ServiceType, sub.ZipCode, sub.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert submission %s: %w", sub.ID, err)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context, limit int) ([]domain.Submission, error) {
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, created_at, client_ip, spam_score, first_name, last_name, email, phone,
		contact_method, notes, linear_feet, overhang, installation_type,
		material_type, service_type, zip_code, total_price
		FROM submissions ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var out []domain.Submission
	for rows.Next() {
		var sub domain.Submission
		var created int64
		if err := rows.Scan(
			&sub.ID, &created, &sub.ClientIP, &sub.SpamScore,
			&sub.FirstName, &sub.LastName, &sub.Email, &sub.Phone,
			&sub.ContactMethod, &sub.Notes, &sub.LinearFeet, &sub.Overhang, &sub.InstallationType,
			&sub.MaterialType, &sub.ServiceType, &sub.ZipCode, &sub.TotalPrice,
		); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		sub.CreatedAt = time.UnixMilli(created).UTC()
		out = append(out, sub)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM submissions WHERE created_at < ?`, cutoff.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("delete submissions: %w", err)
	}
	return res.RowsAffected()
}

func (s *SQLiteStore) Close() error {
	s.logger.Info("closing sqlite store")
	return s.db.Close()
}
