package lookupsrp

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm/clause"

	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres"
	"github.com/opencarpark/parkapi/pkg/core/cerr"
	"github.com/opencarpark/parkapi/pkg/core/model"
)

func tableFor(k model.LookupKind) string {
	switch k {
	case model.BrandLookup:
		return "vehicle_brands"
	case model.ModelLookup:
		return "vehicle_models"
	case model.ColorLookup:
		return "vehicle_colors"
	case model.TypeLookup:
		return "vehicle_types"
	}
	panic("unknown lookup kind")
}

// gLookup is the scan target for all four tables. Columns which a
// table does not have (hex_code, description) simply stay nil.
type gLookup struct {
	ID          int64
	Name        string
	HexCode     *string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (gl *gLookup) Model() *model.Lookup {
	return &model.Lookup{
		ID:          gl.ID,
		Name:        gl.Name,
		HexCode:     gl.HexCode,
		Description: gl.Description,
		CreatedAt:   gl.CreatedAt,
		UpdatedAt:   gl.UpdatedAt,
	}
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, k model.LookupKind, nl model.NewLookup) (*model.Lookup, error) {
	entity := k.DisplayName()
	now := time.Now()
	cols := map[string]any{
		"name":       nl.Name,
		"created_at": now,
		"updated_at": now,
	}
	if k == model.ColorLookup && nl.HexCode != nil {
		cols["hex_code"] = *nl.HexCode
	}
	if k == model.TypeLookup && nl.Description != nil {
		cols["description"] = *nl.Description
	}
	if err := q.GORM(ctx).Table(tableFor(k)).Create(cols).Error; err != nil {
		return nil, postgres.WrapError(err, entity)
	}
	return getByName(ctx, q, k, nl.Name)
}

func List[Q postgres.Queryer](ctx context.Context, q Q, k model.LookupKind, f model.LookupFilter) ([]model.Lookup, error) {
	gdb := q.GORM(ctx).Table(tableFor(k))
	if f.Name != nil {
		gdb = gdb.Where("name ILIKE ?", contains(*f.Name))
	}
	if f.HexCode != nil && k == model.ColorLookup {
		gdb = gdb.Where("hex_code ILIKE ?", contains(*f.HexCode))
	}
	var gls []gLookup
	if err := gdb.Order("id").Find(&gls).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	lookups := make([]model.Lookup, 0, len(gls))
	for i := range gls {
		lookups = append(lookups, *gls[i].Model())
	}
	return lookups, nil
}

func GetByID[Q postgres.Queryer](ctx context.Context, q Q, k model.LookupKind, id int64) (*model.Lookup, error) {
	gl := &gLookup{}
	err := q.GORM(ctx).Table(tableFor(k)).Where("id = ?", id).Take(gl).Error
	if err != nil {
		return nil, postgres.WrapError(err, k.DisplayName())
	}
	return gl.Model(), nil
}

func getByName[Q postgres.Queryer](ctx context.Context, q Q, k model.LookupKind, name string) (*model.Lookup, error) {
	gl := &gLookup{}
	err := q.GORM(ctx).Table(tableFor(k)).Where("name = ?", name).Take(gl).Error
	if err != nil {
		return nil, postgres.WrapError(err, k.DisplayName())
	}
	return gl.Model(), nil
}

func Patch[Q postgres.Queryer](ctx context.Context, q Q, k model.LookupKind, id int64, p model.LookupPatch) (*model.Lookup, error) {
	entity := k.DisplayName()
	cols := make(map[string]any, 4)
	if p.Name.Set {
		cols["name"] = p.Name.Ptr()
	}
	if p.HexCode.Set && k == model.ColorLookup {
		cols["hex_code"] = p.HexCode.Ptr()
	}
	if p.Description.Set && k == model.TypeLookup {
		cols["description"] = p.Description.Ptr()
	}
	if len(cols) == 0 {
		return GetByID(ctx, q, k, id)
	}
	cols["updated_at"] = time.Now()
	res := q.GORM(ctx).Table(tableFor(k)).Where("id = ?", id).Updates(cols)
	if err := res.Error; err != nil {
		return nil, postgres.WrapError(err, entity)
	}
	if res.RowsAffected == 0 {
		return nil, cerr.NotFound(fmt.Errorf("%s não encontrado(a)", entity))
	}
	return GetByID(ctx, q, k, id)
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, k model.LookupKind, id int64) error {
	entity := k.DisplayName()
	res := q.GORM(ctx).Table(tableFor(k)).Where("id = ?", id).Delete(&gLookup{})
	if err := res.Error; err != nil {
		return postgres.WrapError(err, entity)
	}
	if res.RowsAffected == 0 {
		return cerr.NotFound(fmt.Errorf("%s não encontrado(a)", entity))
	}
	return nil
}

// FindOrCreate inserts name with ON CONFLICT DO NOTHING and reselects
// the row, so concurrent callers resolving the same name all converge
// on one id.
func FindOrCreate[Q postgres.Queryer](ctx context.Context, q Q, k model.LookupKind, name string) (*model.Lookup, error) {
	now := time.Now()
	cols := map[string]any{
		"name":       name,
		"created_at": now,
		"updated_at": now,
	}
	err := q.GORM(ctx).Table(tableFor(k)).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(cols).Error
	if err != nil {
		return nil, postgres.WrapError(err, k.DisplayName())
	}
	return getByName(ctx, q, k, name)
}

func contains(s string) string {
	return "%" + s + "%"
}

// The g* structs below only exist for schema migration; queries go
// through the shared gLookup scan target.

type gBrand struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:50;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (gBrand) TableName() string { return "vehicle_brands" }

type gModel struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:50;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (gModel) TableName() string { return "vehicle_models" }

type gColor struct {
	ID        int64   `gorm:"primaryKey"`
	Name      string  `gorm:"size:50;uniqueIndex;not null"`
	HexCode   *string `gorm:"size:7;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (gColor) TableName() string { return "vehicle_colors" }

type gType struct {
	ID          int64   `gorm:"primaryKey"`
	Name        string  `gorm:"size:50;uniqueIndex;not null"`
	Description *string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (gType) TableName() string { return "vehicle_types" }

// AutoMigrate creates or updates the four lookup tables. It is only
// called by the database initialization command.
func AutoMigrate[Q postgres.Queryer](ctx context.Context, q Q) error {
	return q.GORM(ctx).AutoMigrate(&gBrand{}, &gModel{}, &gColor{}, &gType{})
}
