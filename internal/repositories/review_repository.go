package repositories

import (
	"context"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"gorm.io/gorm"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	resp "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/response_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

const packageFacetLimit = 20

type ReviewCriteria struct {
	Page      int
	Limit     int
	Query     string
	Rating    int
	MinRating int
	PackageID string
	Status    string
	Sort      string
}

type ReviewSearchResult struct {
	Items   []resp.ReviewItem
	Total   int64
	Average float64
	Facets  resp.ReviewFacets
}

type ReviewRepository interface {
	CrudRepository[db_models.Review]
	Search(ctx context.Context, c ReviewCriteria) (*ReviewSearchResult, error)
}

type reviewRepository struct {
	*crudRepository[db_models.Review]
	qb *goqu.Database
}

func NewReviewRepository(db *gorm.DB, qb *goqu.Database) ReviewRepository {
	repo := newCrudRepository[db_models.Review](db, "created_at DESC, id DESC").
		withPreloads("User", "Package")
	return &reviewRepository{crudRepository: repo, qb: qb}
}

// Search runs the faceted review query. Facets, total and average are
// computed over the whole filtered set, items over the requested page.
func (r *reviewRepository) Search(ctx context.Context, c ReviewCriteria) (*ReviewSearchResult, error) {
	base := r.filtered(c)
	out := &ReviewSearchResult{}

	var agg struct {
		Total   int64   `db:"total"`
		Average float64 `db:"average"`
	}
	if _, err := base.Select(
		goqu.COUNT(goqu.Star()).As("total"),
		goqu.L("COALESCE(AVG(r.rating), 0)::float8").As("average"),
	).ScanStructContext(ctx, &agg); err != nil {
		return nil, err
	}
	out.Total, out.Average = agg.Total, agg.Average

	out.Items = []resp.ReviewItem{}
	if out.Total > 0 {
		err := base.Select(
			goqu.L("r.id::text").As("id"),
			goqu.L("r.package_id::text").As("package_id"),
			goqu.COALESCE(goqu.I("p.title"), "").As("package_title"),
			goqu.L("r.user_id::text").As("user_id"),
			goqu.COALESCE(goqu.I("u.name"), "").As("user_name"),
			goqu.COALESCE(goqu.I("u.email"), "").As("user_email"),
			goqu.L("r.booking_id::text").As("booking_id"),
			goqu.I("r.rating").As("rating"),
			goqu.I("r.title").As("title"),
			goqu.I("r.comment").As("comment"),
			goqu.I("r.status").As("status"),
			goqu.I("r.created_at").As("created_at"),
			goqu.I("r.updated_at").As("updated_at"),
		).
			Order(reviewOrder(c.Sort)...).
			Limit(uint(c.Limit)).
			Offset(uint(utils.Offset(c.Page, c.Limit))).
			ScanStructsContext(ctx, &out.Items)
		if err != nil {
			return nil, err
		}
	}

	out.Facets.Ratings = []resp.RatingFacet{}
	if err := base.Select(
		goqu.I("r.rating").As("rating"),
		goqu.COUNT(goqu.Star()).As("count"),
	).GroupBy(goqu.I("r.rating")).
		Order(goqu.I("r.rating").Desc()).
		ScanStructsContext(ctx, &out.Facets.Ratings); err != nil {
		return nil, err
	}

	out.Facets.Statuses = []resp.StatusFacet{}
	if err := base.Select(
		goqu.I("r.status").As("status"),
		goqu.COUNT(goqu.Star()).As("count"),
	).GroupBy(goqu.I("r.status")).
		Order(goqu.I("r.status").Asc()).
		ScanStructsContext(ctx, &out.Facets.Statuses); err != nil {
		return nil, err
	}

	out.Facets.Packages = []resp.PackageFacet{}
	if err := base.Select(
		goqu.L("r.package_id::text").As("package_id"),
		goqu.COALESCE(goqu.I("p.title"), "").As("title"),
		goqu.COUNT(goqu.Star()).As("count"),
	).GroupBy(goqu.I("r.package_id"), goqu.I("p.title")).
		Order(goqu.I("count").Desc(), goqu.I("title").Asc()).
		Limit(packageFacetLimit).
		ScanStructsContext(ctx, &out.Facets.Packages); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *reviewRepository) filtered(c ReviewCriteria) *goqu.SelectDataset {
	conds := []exp.Expression{goqu.I("r.deleted_at").IsNull()}

	if q := strings.TrimSpace(c.Query); q != "" {
		pattern := "%" + utils.EscapeLike(q) + "%"
		conds = append(conds, goqu.Or(
			goqu.I("r.title").ILike(pattern),
			goqu.I("r.comment").ILike(pattern),
			goqu.I("u.name").ILike(pattern),
			goqu.I("p.title").ILike(pattern),
		))
	}
	if c.Rating > 0 {
		conds = append(conds, goqu.I("r.rating").Eq(c.Rating))
	}
	if c.MinRating > 0 {
		conds = append(conds, goqu.I("r.rating").Gte(c.MinRating))
	}
	if c.PackageID != "" {
		conds = append(conds, goqu.I("r.package_id").Eq(c.PackageID))
	}
	if c.Status != "" {
		conds = append(conds, goqu.I("r.status").Eq(c.Status))
	}

	return r.qb.From(goqu.T("reviews").As("r")).
		LeftJoin(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("r.user_id")))).
		LeftJoin(goqu.T("packages").As("p"), goqu.On(goqu.I("p.id").Eq(goqu.I("r.package_id")))).
		Where(conds...)
}

func reviewOrder(sort string) []exp.OrderedExpression {
	switch sort {
	case "oldest":
		return []exp.OrderedExpression{goqu.I("r.created_at").Asc(), goqu.I("r.id").Asc()}
	case "rating_high":
		return []exp.OrderedExpression{goqu.I("r.rating").Desc(), goqu.I("r.created_at").Desc(), goqu.I("r.id").Desc()}
	case "rating_low":
		return []exp.OrderedExpression{goqu.I("r.rating").Asc(), goqu.I("r.created_at").Desc(), goqu.I("r.id").Desc()}
	default:
		return []exp.OrderedExpression{goqu.I("r.created_at").Desc(), goqu.I("r.id").Desc()}
	}
}
