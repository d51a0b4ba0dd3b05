package usersrp

import (
	"context"
	"fmt"
	"time"

	"github.com/opencarpark/parkapi/pkg/adapter/db/postgres"
	"github.com/opencarpark/parkapi/pkg/core/model"
)

type gUser struct {
	ID          int64  `gorm:"primaryKey"`
	Username    string `gorm:"size:150;uniqueIndex;not null"`
	IsStaff     bool   `gorm:"not null;default:false"`
	IsSuperuser bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (gu *gUser) TableName() string {
	return "users"
}

func (gu *gUser) Model(perms []string) *model.User {
	return &model.User{
		ID:          gu.ID,
		Username:    gu.Username,
		IsStaff:     gu.IsStaff,
		IsSuperuser: gu.IsSuperuser,
		Perms:       perms,
	}
}

type gUserPermission struct {
	ID       int64  `gorm:"primaryKey"`
	UserID   int64  `gorm:"not null;uniqueIndex:uniq_user_perm,priority:1"`
	User     *gUser `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Codename string `gorm:"size:100;not null;uniqueIndex:uniq_user_perm,priority:2"`
}

func (gp *gUserPermission) TableName() string {
	return "user_permissions"
}

func GetByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.User, error) {
	gdb := q.GORM(ctx)
	gu := &gUser{}
	if err := gdb.First(gu, id).Error; err != nil {
		return nil, postgres.WrapError(err, "Usuário")
	}
	var perms []string
	err := gdb.Model(&gUserPermission{}).Where(
		"user_id=?", id,
	).Pluck("codename", &perms).Error
	if err != nil {
		return nil, fmt.Errorf("loading permissions: %w", err)
	}
	return gu.Model(perms), nil
}

// AutoMigrate creates or updates the users tables. It is only called
// by the database initialization command.
func AutoMigrate[Q postgres.Queryer](ctx context.Context, q Q) error {
	return q.GORM(ctx).AutoMigrate(&gUser{}, &gUserPermission{})
}
