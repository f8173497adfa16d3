package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"estimator_backend/internal/catalog/domain"
)

// Repo implements the catalog provider on PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Provider.
var _ Provider = (*Repo)(nil)

// whereBuilder accumulates positional filter clauses.
type whereBuilder struct {
	clauses []string
	args    []interface{}
}

func (w *whereBuilder) add(clause string, arg interface{}) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, fmt.Sprintf(clause, len(w.args)))
}

func (w *whereBuilder) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.clauses, " AND ")
}

func searchPattern(search string) string {
	return "%" + strings.TrimSpace(search) + "%"
}

// ListToolHire lists hireable tools.
func (r *Repo) ListToolHire(ctx context.Context, filter domain.Filter) ([]domain.ToolHireItem, error) {
	var where whereBuilder
	if strings.TrimSpace(filter.Search) != "" {
		where.add("(name ILIKE $%[1]d OR tool_key ILIKE $%[1]d)", searchPattern(filter.Search))
	}
	if strings.TrimSpace(filter.Category) != "" {
		where.add("lower(category) = lower($%d)", strings.TrimSpace(filter.Category))
	}

	query := fmt.Sprintf(`
		SELECT id::text, tool_key, name, category, daily_rate::float8, weekly_rate::float8,
			weekend_rate::float8, purchase_price_range, source
		FROM tool_hire_items
		%s
		ORDER BY category, daily_rate, name`, where.String())

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("list tool hire items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.ToolHireItem, 0)
	for rows.Next() {
		var item domain.ToolHireItem
		var daily float64
		var weekly, weekend *float64
		if err := rows.Scan(
			&item.ID, &item.Key, &item.Name, &item.Category, &daily, &weekly, &weekend,
			&item.PurchasePriceRange, &item.Source,
		); err != nil {
			return nil, fmt.Errorf("scan tool hire item: %w", err)
		}
		item.Rates = map[domain.RatePeriod]float64{domain.RateDaily: daily}
		if weekly != nil {
			item.Rates[domain.RateWeekly] = *weekly
		}
		if weekend != nil {
			item.Rates[domain.RateWeekend] = *weekend
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tool hire items: %w", err)
	}
	return items, nil
}

// ListLaborCosts lists labor rates. Rows without a region apply everywhere;
// regional rows apply when the filter location names their region.
func (r *Repo) ListLaborCosts(ctx context.Context, filter domain.Filter) ([]domain.LaborCost, error) {
	var where whereBuilder
	if strings.TrimSpace(filter.Search) != "" {
		where.add("name ILIKE $%d", searchPattern(filter.Search))
	}
	if strings.TrimSpace(filter.Category) != "" {
		where.add("lower(category) = lower($%d)", strings.TrimSpace(filter.Category))
	}
	if strings.TrimSpace(filter.Region) != "" {
		where.add("(region IS NULL OR position(lower(region) in lower($%d)) > 0)", strings.TrimSpace(filter.Region))
	}

	query := fmt.Sprintf(`
		SELECT id::text, name, category, rate_type, base_rate::float8, complexity_basic::float8,
			complexity_standard::float8, complexity_complex::float8, COALESCE(region, ''), source
		FROM labor_costs
		%s
		ORDER BY category, name`, where.String())

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("list labor costs: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LaborCost, error) {
		var item domain.LaborCost
		var rateType string
		err := row.Scan(
			&item.ID, &item.Name, &item.Category, &rateType, &item.BaseRate, &item.ComplexityBasic,
			&item.ComplexityStandard, &item.ComplexityComplex, &item.Region, &item.Source,
		)
		item.RateType = domain.RateType(rateType)
		return item, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect labor costs: %w", err)
	}
	return items, nil
}

// ListMaterialCosts lists materials. A quality tier filter keeps only rows
// priced in that tier.
func (r *Repo) ListMaterialCosts(ctx context.Context, filter domain.Filter) ([]domain.MaterialCost, error) {
	var where whereBuilder
	if strings.TrimSpace(filter.Search) != "" {
		where.add("name ILIKE $%d", searchPattern(filter.Search))
	}
	if strings.TrimSpace(filter.Category) != "" {
		where.add("lower(category) = lower($%d)", strings.TrimSpace(filter.Category))
	}
	switch filter.QualityTier {
	case domain.QualityBudget:
		where.clauses = append(where.clauses, "price_budget IS NOT NULL")
	case domain.QualityMidRange:
		where.clauses = append(where.clauses, "price_mid_range IS NOT NULL")
	case domain.QualityPremium:
		where.clauses = append(where.clauses, "price_premium IS NOT NULL")
	}

	query := fmt.Sprintf(`
		SELECT id::text, name, category, unit, price_budget::float8, price_mid_range::float8,
			price_premium::float8, waste_factor::float8, source
		FROM material_costs
		%s
		ORDER BY category, name`, where.String())

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("list material costs: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MaterialCost, error) {
		var item domain.MaterialCost
		err := row.Scan(
			&item.ID, &item.Name, &item.Category, &item.Unit, &item.PriceBudget, &item.PriceMidRange,
			&item.PricePremium, &item.WasteFactor, &item.Source,
		)
		return item, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect material costs: %w", err)
	}
	return items, nil
}

// ListBuildingRegulations lists regulations. The search term matches the
// project type or the title.
func (r *Repo) ListBuildingRegulations(ctx context.Context, filter domain.Filter) ([]domain.BuildingRegulation, error) {
	var where whereBuilder
	if strings.TrimSpace(filter.Search) != "" {
		where.add("(project_type ILIKE $%[1]d OR title ILIKE $%[1]d)", searchPattern(filter.Search))
	}
	if strings.TrimSpace(filter.Category) != "" {
		where.add("lower(project_type) = lower($%d)", strings.TrimSpace(filter.Category))
	}

	query := fmt.Sprintf(`
		SELECT id::text, project_type, title, requires_building_control, requires_planning,
			typical_cost_min::float8, typical_cost_max::float8, notes, source
		FROM building_regulations
		%s
		ORDER BY requires_building_control DESC, title`, where.String())

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("list building regulations: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BuildingRegulation, error) {
		var item domain.BuildingRegulation
		err := row.Scan(
			&item.ID, &item.ProjectType, &item.Title, &item.RequiresBuildingControl, &item.RequiresPlanning,
			&item.TypicalCostMin, &item.TypicalCostMax, &item.Notes, &item.Source,
		)
		return item, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect building regulations: %w", err)
	}
	return items, nil
}

// ListRegionalMultipliers loads the region factor table keyed by lower-cased name.
func (r *Repo) ListRegionalMultipliers(ctx context.Context) (domain.RegionalMultipliers, error) {
	rows, err := r.pool.Query(ctx, `SELECT lower(region), multiplier::float8 FROM regional_multipliers`)
	if err != nil {
		return nil, fmt.Errorf("list regional multipliers: %w", err)
	}
	defer rows.Close()

	result := make(domain.RegionalMultipliers)
	for rows.Next() {
		var region string
		var multiplier float64
		if err := rows.Scan(&region, &multiplier); err != nil {
			return nil, fmt.Errorf("scan regional multiplier: %w", err)
		}
		result[region] = multiplier
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate regional multipliers: %w", err)
	}
	return result, nil
}
