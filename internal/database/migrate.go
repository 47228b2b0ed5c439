package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"feedback-builder/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const migrationsTable = "schema_migrations"

// RunMigrations applies every *.up.sql file in dir that is not yet recorded in
// schema_migrations, in file name order. go-ora executes one statement per
// call, so each file is split on ';'.
func RunMigrations(ctx context.Context, db *sqlx.DB, dir string) error {
	if err := ensureMigrationsTable(ctx, db); err != nil {
		return err
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}

	var names []string
	for _, file := range files {
		if !file.IsDir() && strings.HasSuffix(file.Name(), ".up.sql") {
			names = append(names, file.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		version := strings.TrimSuffix(name, ".up.sql")

		var applied int
		if err := db.GetContext(ctx, &applied, `SELECT COUNT(*) FROM `+migrationsTable+` WHERE version = :1`, version); err != nil {
			return fmt.Errorf("could not check migration %s: %w", version, err)
		}
		if applied > 0 {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}

		for _, stmt := range SplitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO `+migrationsTable+` (version, applied_at) VALUES (:1, SYSTIMESTAMP)`, version); err != nil {
			return fmt.Errorf("could not record migration %s: %w", name, err)
		}

		logger.Get().Info("Executed migration", zap.String("file", name))
	}

	logger.Get().Info("Migrations completed successfully", zap.Int("files", len(names)))
	return nil
}

func ensureMigrationsTable(ctx context.Context, db *sqlx.DB) error {
	var count int
	err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM user_tables WHERE table_name = UPPER(:1)`, migrationsTable)
	if err != nil {
		return fmt.Errorf("could not look up %s: %w", migrationsTable, err)
	}
	if count > 0 {
		return nil
	}
	_, err = db.ExecContext(ctx, `CREATE TABLE `+migrationsTable+` (version VARCHAR2(255) PRIMARY KEY, applied_at TIMESTAMP NOT NULL)`)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", migrationsTable, err)
	}
	return nil
}

// SplitStatements splits a SQL script on ';', dropping blank statements and
// full-line "--" comments.
func SplitStatements(script string) []string {
	var lines []string
	for _, line := range strings.Split(script, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		lines = append(lines, line)
	}

	var stmts []string
	for _, part := range strings.Split(strings.Join(lines, "\n"), ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
