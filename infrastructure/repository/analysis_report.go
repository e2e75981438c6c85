package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
	"github.com/vfg2006/ads-autopilot-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	analysisReportsTable  = "analysis_reports"
	executionResultsTable = "execution_results"

	uniqueViolation = "23505"
)

var ErrDuplicateReport = errors.New("analysis report already exists")

type AnalysisReportRepository interface {
	Save(ctx context.Context, report *domain.AnalysisReport) error
	GetLatestByAccountID(ctx context.Context, accountID string) (*domain.AnalysisReport, error)
	SaveExecutionResults(ctx context.Context, reportID string, results []domain.ExecutionResult) error
}

type analysisReportRepository struct {
	conn postgres.Conn
}

func NewAnalysisReportRepository(conn postgres.Conn) AnalysisReportRepository {
	return &analysisReportRepository{
		conn: conn,
	}
}

func (r *analysisReportRepository) Save(ctx context.Context, report *domain.AnalysisReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("erro ao serializar relatório: %w", err)
	}

	query, args, err := squirrel.
		Insert(analysisReportsTable).
		Columns("id", "account_id", "date_range", "decisions_count", "alerts_count", "report", "created_at").
		Values(report.ID, report.AccountID, string(report.DateRange), len(report.Decisions), len(report.Alerts), payload, report.Timestamp).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", ErrDuplicateReport, report.ID)
		}
		return fmt.Errorf("erro ao salvar relatório: %w", err)
	}

	return nil
}

func (r *analysisReportRepository) GetLatestByAccountID(ctx context.Context, accountID string) (*domain.AnalysisReport, error) {
	query, args, err := squirrel.
		Select("report").
		From(analysisReportsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var payload []byte
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar relatório: %w", err)
	}

	var report domain.AnalysisReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("erro ao decodificar relatório: %w", err)
	}

	return &report, nil
}

// SaveExecutionResults grava o histórico de execução do relatório em uma única transação
func (r *analysisReportRepository) SaveExecutionResults(ctx context.Context, reportID string, results []domain.ExecutionResult) error {
	if len(results) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(executionResultsTable).
		Columns("id", "report_id", "entity_id", "action", "success", "error", "message", "proposed_daily_budget").
		PlaceholderFormat(squirrel.Dollar)

	for _, result := range results {
		id, err := utils.GenerateReportID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id: %w", err)
		}

		builder = builder.Values(
			id,
			reportID,
			result.EntityID,
			string(result.Action),
			result.Success,
			nullString(result.Error),
			nullString(result.Message),
			nullFloat(result.ProposedDailyBudget),
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao salvar resultados de execução: %w", err)
		}
		return nil
	})
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func nullFloat(value *float64) sql.NullFloat64 {
	if value == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *value, Valid: true}
}
