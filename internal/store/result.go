package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type resultRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *resultRepo) Save(ctx context.Context, res *Result) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	seq, err := r.seq.Next(ctx, tx)
	if err != nil {
		return err
	}
	id := res.ID
	if id == "" {
		id = uuid.New().String()
	}
	createdAt := res.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO results (id, sequence, created_at, language, category, difficulty, score, total, percentage, tier)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, seq, createdAt, res.Language, res.Category, res.Difficulty,
		res.Score, res.Total, res.Percentage, res.Tier,
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}

	for _, w := range res.Wrong {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO wrong_answers (result_id, ordinal, correct, selected, description, category, difficulty)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, w.Ordinal, w.Correct, w.Selected, w.Description, w.Category, w.Difficulty,
		)
		if err != nil {
			return fmt.Errorf("insert wrong answer %d: %w", w.Ordinal, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	res.ID, res.CreatedAt, res.Sequence = id, createdAt, seq
	return nil
}

const resultColumns = `id, sequence, created_at, language, category, difficulty, score, total, percentage, tier`

func scanResult(row interface{ Scan(...any) error }) (Result, error) {
	var res Result
	err := row.Scan(&res.ID, &res.Sequence, &res.CreatedAt, &res.Language, &res.Category,
		&res.Difficulty, &res.Score, &res.Total, &res.Percentage, &res.Tier)
	return res, err
}

func (r *resultRepo) Recent(ctx context.Context, limit int) ([]Result, error) {
	query := `SELECT ` + resultColumns + ` FROM results ORDER BY sequence DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return results, nil
}

func (r *resultRepo) Get(ctx context.Context, id string) (*Result, error) {
	res, err := scanResult(r.db.QueryRowContext(ctx,
		`SELECT `+resultColumns+` FROM results WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query result: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT ordinal, correct, selected, description, category, difficulty
		 FROM wrong_answers WHERE result_id = ? ORDER BY ordinal`, id)
	if err != nil {
		return nil, fmt.Errorf("query wrong answers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var w WrongAnswerData
		if err := rows.Scan(&w.Ordinal, &w.Correct, &w.Selected, &w.Description, &w.Category, &w.Difficulty); err != nil {
			return nil, fmt.Errorf("scan wrong answer: %w", err)
		}
		res.Wrong = append(res.Wrong, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wrong answers: %w", err)
	}
	return &res, nil
}

func (r *resultRepo) Totals(ctx context.Context) (Totals, error) {
	var t Totals
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total), 0), COALESCE(SUM(score), 0),
		        COALESCE(MAX(percentage), 0), COALESCE(AVG(percentage), 0)
		 FROM results`,
	).Scan(&t.Quizzes, &t.Questions, &t.Correct, &t.BestPercentage, &t.AvgPercentage)
	if err != nil {
		return Totals{}, fmt.Errorf("query totals: %w", err)
	}
	return t, nil
}

func (r *resultRepo) MostMissed(ctx context.Context, limit int) ([]MissedCommand, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT correct, MIN(category), COUNT(*) AS misses
		 FROM wrong_answers
		 GROUP BY correct
		 ORDER BY misses DESC, correct ASC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query missed commands: %w", err)
	}
	defer rows.Close()

	var out []MissedCommand
	for rows.Next() {
		var m MissedCommand
		if err := rows.Scan(&m.Command, &m.Category, &m.Misses); err != nil {
			return nil, fmt.Errorf("scan missed command: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *resultRepo) Reset(ctx context.Context) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM wrong_answers`); err != nil {
		return 0, fmt.Errorf("delete wrong answers: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM results`)
	if err != nil {
		return 0, fmt.Errorf("delete results: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return n, nil
}
