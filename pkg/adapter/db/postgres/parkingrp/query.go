package parkingrp

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

const (
	spotEntity   = "Vaga de Estacionamento"
	recordEntity = "Registro de Estacionamento"
)

type gParkingSpot struct {
	ID         int64  `gorm:"primaryKey"`
	SpotNumber string `gorm:"size:10;uniqueIndex;not null"`
	IsOccupied bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (gs *gParkingSpot) TableName() string {
	return "parking_spots"
}

func (gs *gParkingSpot) Model() *model.ParkingSpot {
	return &model.ParkingSpot{
		ID:         gs.ID,
		SpotNumber: gs.SpotNumber,
		IsOccupied: gs.IsOccupied,
		CreatedAt:  gs.CreatedAt,
		UpdatedAt:  gs.UpdatedAt,
	}
}

type gParkingRecord struct {
	ID            int64     `gorm:"primaryKey"`
	VehicleID     int64     `gorm:"not null;index"`
	ParkingSpotID int64     `gorm:"not null;index"`
	EntryTime     time.Time `gorm:"not null"`
	ExitTime      *time.Time

	Vehicle *gVehicleRef `gorm:"foreignKey:VehicleID;constraint:OnDelete:RESTRICT"`
	Spot    *gSpotRef    `gorm:"foreignKey:ParkingSpotID;constraint:OnDelete:RESTRICT"`
}

func (gr *gParkingRecord) TableName() string {
	return "parking_records"
}

func (gr *gParkingRecord) Model() *model.ParkingRecord {
	return &model.ParkingRecord{
		ID:        gr.ID,
		Vehicle:   gr.VehicleID,
		Spot:      gr.ParkingSpotID,
		EntryTime: gr.EntryTime,
		ExitTime:  gr.ExitTime,
	}
}

// The *Ref structs only anchor the foreign key constraints during
// migration.

type gVehicleRef struct {
	ID int64 `gorm:"primaryKey"`
}

func (gVehicleRef) TableName() string { return "vehicles" }

type gSpotRef struct {
	ID int64 `gorm:"primaryKey"`
}

func (gSpotRef) TableName() string { return "parking_spots" }

func CreateSpot[Q postgres.Queryer](ctx context.Context, q Q, spotNumber string) (*model.ParkingSpot, error) {
	gs := &gParkingSpot{SpotNumber: spotNumber}
	if err := q.GORM(ctx).Create(gs).Error; err != nil {
		return nil, postgres.WrapError(err, spotEntity)
	}
	return gs.Model(), nil
}

func ListSpots[Q postgres.Queryer](ctx context.Context, q Q, f model.SpotFilter) ([]model.ParkingSpot, error) {
	gdb := q.GORM(ctx).Model(&gParkingSpot{})
	if f.SpotNumber != nil {
		gdb = gdb.Where("spot_number ILIKE ?", contains(*f.SpotNumber))
	}
	if f.IsOccupied != nil {
		gdb = gdb.Where("is_occupied = ?", *f.IsOccupied)
	}
	var gss []gParkingSpot
	if err := gdb.Order("id").Find(&gss).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	spots := make([]model.ParkingSpot, 0, len(gss))
	for i := range gss {
		spots = append(spots, *gss[i].Model())
	}
	return spots, nil
}

func GetSpot[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.ParkingSpot, error) {
	gs := &gParkingSpot{}
	if err := q.GORM(ctx).First(gs, id).Error; err != nil {
		return nil, postgres.WrapError(err, spotEntity)
	}
	return gs.Model(), nil
}

func PatchSpot[Q postgres.Queryer](ctx context.Context, q Q, id int64, p model.SpotPatch) (*model.ParkingSpot, error) {
	cols := make(map[string]any, 2)
	if p.SpotNumber.Set {
		cols["spot_number"] = p.SpotNumber.Ptr()
	}
	if p.IsOccupied.Set {
		cols["is_occupied"] = p.IsOccupied.Ptr()
	}
	if len(cols) == 0 {
		return GetSpot(ctx, q, id)
	}
	res := q.GORM(ctx).Model(&gParkingSpot{}).Where("id = ?", id).Updates(cols)
	if err := res.Error; err != nil {
		return nil, postgres.WrapError(err, spotEntity)
	}
	if res.RowsAffected == 0 {
		return nil, cerr.NotFound(fmt.Errorf("%s não encontrado(a)", spotEntity))
	}
	return GetSpot(ctx, q, id)
}

func DeleteSpot[Q postgres.Queryer](ctx context.Context, q Q, id int64) error {
	res := q.GORM(ctx).Delete(&gParkingSpot{}, id)
	if err := res.Error; err != nil {
		return postgres.WrapError(err, spotEntity)
	}
	if res.RowsAffected == 0 {
		return cerr.NotFound(fmt.Errorf("%s não encontrado(a)", spotEntity))
	}
	return nil
}

func SetSpotOccupied[Q postgres.Queryer](ctx context.Context, q Q, id int64, occupied bool) error {
	res := q.GORM(ctx).Model(&gParkingSpot{}).
		Where("id = ?", id).
		Update("is_occupied", occupied)
	if err := res.Error; err != nil {
		return postgres.WrapError(err, spotEntity)
	}
	if res.RowsAffected == 0 {
		return cerr.NotFound(fmt.Errorf("%s não encontrado(a)", spotEntity))
	}
	return nil
}

func CreateRecord[Q postgres.Queryer](ctx context.Context, q Q, nr model.NewRecord) (*model.ParkingRecord, error) {
	gr := &gParkingRecord{
		VehicleID:     nr.Vehicle,
		ParkingSpotID: nr.Spot,
		EntryTime:     time.Now(),
	}
	if err := q.GORM(ctx).Create(gr).Error; err != nil {
		return nil, postgres.WrapError(err, recordEntity)
	}
	return gr.Model(), nil
}

func recordScope[Q postgres.Queryer](ctx context.Context, q Q, u *model.User) (*gorm.DB, bool) {
	gdb := q.GORM(ctx).Model(&gParkingRecord{})
	if authz.IsInternal(u) {
		return gdb, true
	}
	if u == nil {
		return gdb, false
	}
	gdb = gdb.Joins("JOIN vehicles ON vehicles.id = parking_records.vehicle_id").
		Where("vehicles.owner_id = ?", u.ID)
	return gdb, true
}

func ListRecords[Q postgres.Queryer](ctx context.Context, q Q, u *model.User, f model.RecordFilter) ([]model.ParkingRecord, error) {
	gdb, visible := recordScope(ctx, q, u)
	if !visible {
		return []model.ParkingRecord{}, nil
	}
	if f.LicensePlate != nil {
		gdb = gdb.Joins("JOIN vehicles fv ON fv.id = parking_records.vehicle_id").
			Where("fv.license_plate ILIKE ?", contains(*f.LicensePlate))
	}
	if f.SpotNumber != nil {
		gdb = gdb.Joins("JOIN parking_spots fs ON fs.id = parking_records.parking_spot_id").
			Where("fs.spot_number ILIKE ?", contains(*f.SpotNumber))
	}
	if f.EntryTime != nil {
		gdb = gdb.Where("parking_records.entry_time = ?", *f.EntryTime)
	}
	if f.ExitTime != nil {
		gdb = gdb.Where("parking_records.exit_time = ?", *f.ExitTime)
	}
	var grs []gParkingRecord
	if err := gdb.Order("parking_records.id").Find(&grs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	records := make([]model.ParkingRecord, 0, len(grs))
	for i := range grs {
		records = append(records, *grs[i].Model())
	}
	return records, nil
}

func GetRecordForOwner[Q postgres.Queryer](ctx context.Context, q Q, u *model.User, id int64) (*model.ParkingRecord, error) {
	gdb, visible := recordScope(ctx, q, u)
	if !visible {
		return nil, cerr.NotFound(fmt.Errorf("%s não encontrado(a)", recordEntity))
	}
	gr := &gParkingRecord{}
	if err := gdb.Where("parking_records.id = ?", id).Take(gr).Error; err != nil {
		return nil, postgres.WrapError(err, recordEntity)
	}
	return gr.Model(), nil
}

func GetRecord[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.ParkingRecord, error) {
	gr := &gParkingRecord{}
	if err := q.GORM(ctx).First(gr, id).Error; err != nil {
		return nil, postgres.WrapError(err, recordEntity)
	}
	return gr.Model(), nil
}

func PatchRecord[Q postgres.Queryer](ctx context.Context, q Q, id int64, p model.RecordPatch) (*model.ParkingRecord, error) {
	cols := make(map[string]any, 3)
	if p.Vehicle.Set {
		cols["vehicle_id"] = p.Vehicle.Ptr()
	}
	if p.Spot.Set {
		cols["parking_spot_id"] = p.Spot.Ptr()
	}
	if p.ExitTime.Set {
		cols["exit_time"] = p.ExitTime.Ptr()
	}
	if len(cols) == 0 {
		return GetRecord(ctx, q, id)
	}
	res := q.GORM(ctx).Model(&gParkingRecord{}).Where("id = ?", id).Updates(cols)
	if err := res.Error; err != nil {
		return nil, postgres.WrapError(err, recordEntity)
	}
	if res.RowsAffected == 0 {
		return nil, cerr.NotFound(fmt.Errorf("%s não encontrado(a)", recordEntity))
	}
	return GetRecord(ctx, q, id)
}

func DeleteRecord[Q postgres.Queryer](ctx context.Context, q Q, id int64) error {
	res := q.GORM(ctx).Delete(&gParkingRecord{}, id)
	if err := res.Error; err != nil {
		return postgres.WrapError(err, recordEntity)
	}
	if res.RowsAffected == 0 {
		return cerr.NotFound(fmt.Errorf("%s não encontrado(a)", recordEntity))
	}
	return nil
}

func contains(s string) string {
	return "%" + s + "%"
}

// AutoMigrate creates or updates the parking tables. The vehicles
// table must already exist so the record foreign key can bind.
func AutoMigrate[Q postgres.Queryer](ctx context.Context, q Q) error {
	return q.GORM(ctx).AutoMigrate(&gParkingSpot{}, &gParkingRecord{})
}
