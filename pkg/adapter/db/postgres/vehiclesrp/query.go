package vehiclesrp

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres"
	"github.com/opencarpark/parkapi/pkg/core/authz"
	"github.com/opencarpark/parkapi/pkg/core/cerr"
	"github.com/opencarpark/parkapi/pkg/core/model"
)

const entity = "Veículo"

type gVehicle struct {
	ID            int64   `gorm:"primaryKey"`
	OwnerID       *int64  `gorm:"uniqueIndex"`
	LicensePlate  string  `gorm:"size:10;uniqueIndex;not null"`
	VehicleTypeID *int64
	BrandID       *int64
	ModelID       *int64
	ColorID       *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Owner       *gOwnerRef `gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`
	VehicleType *gTypeRef  `gorm:"foreignKey:VehicleTypeID;constraint:OnDelete:RESTRICT"`
	Brand       *gBrandRef `gorm:"foreignKey:BrandID;constraint:OnDelete:RESTRICT"`
	Model       *gModelRef `gorm:"foreignKey:ModelID;constraint:OnDelete:RESTRICT"`
	Color       *gColorRef `gorm:"foreignKey:ColorID;constraint:OnDelete:RESTRICT"`
}

func (gv *gVehicle) TableName() string {
	return "vehicles"
}

// The *Ref structs only anchor the foreign key constraints during
// migration; the referenced tables are owned by their own packages.

type gOwnerRef struct {
	ID int64 `gorm:"primaryKey"`
}

func (gOwnerRef) TableName() string { return "users" }

type gBrandRef struct {
	ID int64 `gorm:"primaryKey"`
}

func (gBrandRef) TableName() string { return "vehicle_brands" }

type gModelRef struct {
	ID int64 `gorm:"primaryKey"`
}

func (gModelRef) TableName() string { return "vehicle_models" }

type gColorRef struct {
	ID int64 `gorm:"primaryKey"`
}

func (gColorRef) TableName() string { return "vehicle_colors" }

type gTypeRef struct {
	ID int64 `gorm:"primaryKey"`
}

func (gTypeRef) TableName() string { return "vehicle_types" }

// gVehicleRow is the joined scan target carrying the resolved lookup
// names.
type gVehicleRow struct {
	ID           int64
	OwnerID      *int64
	LicensePlate string
	VehicleType  *string
	Brand        *string
	Model        *string
	Color        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (gr *gVehicleRow) toModel() *model.Vehicle {
	return &model.Vehicle{
		ID:           gr.ID,
		Owner:        gr.OwnerID,
		LicensePlate: gr.LicensePlate,
		VehicleType:  gr.VehicleType,
		Brand:        gr.Brand,
		Model:        gr.Model,
		Color:        gr.Color,
		CreatedAt:    gr.CreatedAt,
		UpdatedAt:    gr.UpdatedAt,
	}
}

const joinedSelect = `vehicles.id, vehicles.owner_id, vehicles.license_plate,
vt.name AS vehicle_type, vb.name AS brand, vm.name AS model, vc.name AS color,
vehicles.created_at, vehicles.updated_at`

func joined[Q postgres.Queryer](ctx context.Context, q Q) *gorm.DB {
	return q.GORM(ctx).Table("vehicles").
		Select(joinedSelect).
		Joins("LEFT JOIN vehicle_types vt ON vt.id = vehicles.vehicle_type_id").
		Joins("LEFT JOIN vehicle_brands vb ON vb.id = vehicles.brand_id").
		Joins("LEFT JOIN vehicle_models vm ON vm.id = vehicles.model_id").
		Joins("LEFT JOIN vehicle_colors vc ON vc.id = vehicles.color_id")
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, nv model.NewVehicle) (*model.Vehicle, error) {
	gv := &gVehicle{
		OwnerID:       nv.Owner,
		LicensePlate:  nv.LicensePlate,
		VehicleTypeID: nv.VehicleType,
		BrandID:       nv.Brand,
		ModelID:       nv.Model,
		ColorID:       nv.Color,
	}
	if err := q.GORM(ctx).Create(gv).Error; err != nil {
		return nil, postgres.WrapError(err, entity)
	}
	return Get(ctx, q, gv.ID)
}

func List[Q postgres.Queryer](ctx context.Context, q Q, u *model.User, f model.VehicleFilter) ([]model.Vehicle, error) {
	gdb := joined(ctx, q)
	if !authz.IsInternal(u) {
		if u == nil {
			return []model.Vehicle{}, nil
		}
		gdb = gdb.Where("vehicles.owner_id = ?", u.ID)
	}
	if f.LicensePlate != nil {
		gdb = gdb.Where("vehicles.license_plate ILIKE ?", contains(*f.LicensePlate))
	}
	if f.Brand != nil {
		gdb = gdb.Where("vb.name ILIKE ?", contains(*f.Brand))
	}
	if f.Model != nil {
		gdb = gdb.Where("vm.name ILIKE ?", contains(*f.Model))
	}
	if f.Color != nil {
		gdb = gdb.Where("vc.name ILIKE ?", contains(*f.Color))
	}
	if f.VehicleType != nil {
		gdb = gdb.Where("vt.name ILIKE ?", contains(*f.VehicleType))
	}
	var grs []gVehicleRow
	if err := gdb.Order("vehicles.id").Find(&grs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	vehicles := make([]model.Vehicle, 0, len(grs))
	for i := range grs {
		vehicles = append(vehicles, *grs[i].toModel())
	}
	return vehicles, nil
}

func GetForOwner[Q postgres.Queryer](ctx context.Context, q Q, u *model.User, id int64) (*model.Vehicle, error) {
	gdb := joined(ctx, q).Where("vehicles.id = ?", id)
	if !authz.IsInternal(u) {
		if u == nil {
			return nil, cerr.NotFound(fmt.Errorf("%s não encontrado(a)", entity))
		}
		gdb = gdb.Where("vehicles.owner_id = ?", u.ID)
	}
	gr := &gVehicleRow{}
	if err := gdb.Take(gr).Error; err != nil {
		return nil, postgres.WrapError(err, entity)
	}
	return gr.toModel(), nil
}

func Get[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Vehicle, error) {
	gr := &gVehicleRow{}
	if err := joined(ctx, q).Where("vehicles.id = ?", id).Take(gr).Error; err != nil {
		return nil, postgres.WrapError(err, entity)
	}
	return gr.toModel(), nil
}

func Patch[Q postgres.Queryer](ctx context.Context, q Q, id int64, ch model.VehicleChanges) (*model.Vehicle, error) {
	cols := make(map[string]any, 6)
	if ch.LicensePlate.Set {
		cols["license_plate"] = ch.LicensePlate.Ptr()
	}
	if ch.Owner.Set {
		cols["owner_id"] = ch.Owner.Ptr()
	}
	if ch.VehicleType.Set {
		cols["vehicle_type_id"] = ch.VehicleType.Ptr()
	}
	if ch.Brand.Set {
		cols["brand_id"] = ch.Brand.Ptr()
	}
	if ch.Model.Set {
		cols["model_id"] = ch.Model.Ptr()
	}
	if ch.Color.Set {
		cols["color_id"] = ch.Color.Ptr()
	}
	if len(cols) == 0 {
		return Get(ctx, q, id)
	}
	res := q.GORM(ctx).Model(&gVehicle{}).Where("id = ?", id).Updates(cols)
	if err := res.Error; err != nil {
		return nil, postgres.WrapError(err, entity)
	}
	if res.RowsAffected == 0 {
		return nil, cerr.NotFound(fmt.Errorf("%s não encontrado(a)", entity))
	}
	return Get(ctx, q, id)
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, id int64) error {
	res := q.GORM(ctx).Delete(&gVehicle{}, id)
	if err := res.Error; err != nil {
		return postgres.WrapError(err, entity)
	}
	if res.RowsAffected == 0 {
		return cerr.NotFound(fmt.Errorf("%s não encontrado(a)", entity))
	}
	return nil
}

func UpdateRelationsByPlate[Q postgres.Queryer](ctx context.Context, q Q, plate string, brandID, modelID, colorID int64) (int64, error) {
	res := q.GORM(ctx).Model(&gVehicle{}).
		Where("license_plate = ?", plate).
		Updates(map[string]any{
			"brand_id": brandID,
			"model_id": modelID,
			"color_id": colorID,
		})
	if err := res.Error; err != nil {
		return 0, postgres.WrapError(err, entity)
	}
	return res.RowsAffected, nil
}

func contains(s string) string {
	return "%" + s + "%"
}

// AutoMigrate creates or updates the vehicles table. The lookup and
// users tables must already exist so the foreign keys can bind; the
// database initialization command migrates them first.
func AutoMigrate[Q postgres.Queryer](ctx context.Context, q Q) error {
	return q.GORM(ctx).AutoMigrate(&gVehicle{})
}
