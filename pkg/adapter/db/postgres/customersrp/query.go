package customersrp

import (
	"context"
	"fmt"
	"time"

	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres"
	"github.com/opencarpark/parkapi/pkg/core/cerr"
	"github.com/opencarpark/parkapi/pkg/core/model"
)

const entity = "Cliente"

type gCustomer struct {
	ID        int64   `gorm:"primaryKey"`
	UserID    *int64  `gorm:"uniqueIndex"`
	Name      string  `gorm:"size:100;not null"`
	CPF       *string `gorm:"column:cpf;size:15"`
	Phone     *string `gorm:"size:15"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (gc *gCustomer) TableName() string {
	return "customers"
}

func (gc *gCustomer) Model() *model.Customer {
	return &model.Customer{
		ID:        gc.ID,
		User:      gc.UserID,
		Name:      gc.Name,
		CPF:       gc.CPF,
		Phone:     gc.Phone,
		CreatedAt: gc.CreatedAt,
		UpdatedAt: gc.UpdatedAt,
	}
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, nc model.NewCustomer) (*model.Customer, error) {
	gdb := q.GORM(ctx)
	gc := &gCustomer{
		UserID: nc.User,
		Name:   nc.Name,
		CPF:    nc.CPF,
		Phone:  nc.Phone,
	}
	if err := gdb.Create(gc).Error; err != nil {
		return nil, postgres.WrapError(err, entity)
	}
	return gc.Model(), nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q, f model.CustomerFilter) ([]model.Customer, error) {
	gdb := q.GORM(ctx).Model(&gCustomer{})
	if f.Name != nil {
		gdb = gdb.Where("name ILIKE ?", contains(*f.Name))
	}
	if f.CPF != nil {
		gdb = gdb.Where("cpf ILIKE ?", contains(*f.CPF))
	}
	if f.Phone != nil {
		gdb = gdb.Where("phone ILIKE ?", contains(*f.Phone))
	}
	var gcs []gCustomer
	if err := gdb.Order("id").Find(&gcs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	customers := make([]model.Customer, 0, len(gcs))
	for i := range gcs {
		customers = append(customers, *gcs[i].Model())
	}
	return customers, nil
}

func GetByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Customer, error) {
	gc := &gCustomer{}
	if err := q.GORM(ctx).First(gc, id).Error; err != nil {
		return nil, postgres.WrapError(err, entity)
	}
	return gc.Model(), nil
}

func Patch[Q postgres.Queryer](ctx context.Context, q Q, id int64, p model.CustomerPatch) (*model.Customer, error) {
	cols := make(map[string]any, 4)
	if p.User.Set {
		cols["user_id"] = p.User.Ptr()
	}
	if p.Name.Set {
		cols["name"] = p.Name.Ptr()
	}
	if p.CPF.Set {
		cols["cpf"] = p.CPF.Ptr()
	}
	if p.Phone.Set {
		cols["phone"] = p.Phone.Ptr()
	}
	if len(cols) == 0 {
		// an empty patch only re-reads the row
		return GetByID(ctx, q, id)
	}
	gdb := q.GORM(ctx).Model(&gCustomer{}).Where("id=?", id)
	res := gdb.Updates(cols)
	if err := res.Error; err != nil {
		return nil, postgres.WrapError(err, entity)
	}
	if res.RowsAffected == 0 {
		return nil, cerr.NotFound(fmt.Errorf("%s não encontrado(a)", entity))
	}
	return GetByID(ctx, q, id)
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, id int64) error {
	res := q.GORM(ctx).Delete(&gCustomer{}, id)
	if err := res.Error; err != nil {
		return postgres.WrapError(err, entity)
	}
	if res.RowsAffected == 0 {
		return cerr.NotFound(fmt.Errorf("%s não encontrado(a)", entity))
	}
	return nil
}

func contains(s string) string {
	return "%" + s + "%"
}

// AutoMigrate creates or updates the customers table. It is only
// called by the database initialization command.
func AutoMigrate[Q postgres.Queryer](ctx context.Context, q Q) error {
	return q.GORM(ctx).AutoMigrate(&gCustomer{})
}
