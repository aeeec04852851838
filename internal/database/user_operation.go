package database

import (
	"context"
	"errors"
	. "github.com/half-nothing/flyleague-events/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

type UserOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewUserOperation(db *gorm.DB, queryTimeout time.Duration) *UserOperation {
	return &UserOperation{db: db, queryTimeout: queryTimeout}
}

func (userOperation *UserOperation) GetUserByUid(uid uint) (user *User, err error) {
	user = &User{}
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Where("id = ?", uid).
		First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrUserNotFound
	}
	return
}

func (userOperation *UserOperation) GetUserByUsername(username string) (user *User, err error) {
	user = &User{}
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Where("username = ?", username).
		First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrUserNotFound
	}
	return
}

func (userOperation *UserOperation) GetUsers() (users []*User, err error) {
	users = make([]*User, 0)
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).Order("id").Find(&users).Error
	return
}

func (userOperation *UserOperation) NewUser(username string, password string) (user *User) {
	return &User{
		Username: username,
		Password: password,
		IsAdmin:  false,
	}
}

func (userOperation *UserOperation) AddUser(user *User) error {
	return userOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).Transaction(func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
		defer cancel()

		var count int64
		if err := tx.WithContext(ctx).Model(&User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrUsernameTaken
		}

		err := tx.WithContext(ctx).Create(user).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return err
	})
}

// VerifyUserPassword 明文等值比较, 与原系统保持一致
func (userOperation *UserOperation) VerifyUserPassword(user *User, password string) bool {
	return user.Password == password
}

func (userOperation *UserOperation) CountAdmins() (total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).Model(&User{}).Where("is_admin = ?", true).Count(&total).Error
	return
}

func (userOperation *UserOperation) ToggleUserAdmin(user *User) error {
	return userOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).Transaction(func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
		defer cancel()

		if user.IsAdmin {
			var admins int64
			if err := tx.WithContext(ctx).Model(&User{}).Where("is_admin = ?", true).Count(&admins).Error; err != nil {
				return err
			}
			if admins <= 1 {
				return ErrLastAdmin
			}
		}

		user.IsAdmin = !user.IsAdmin
		return tx.WithContext(ctx).Model(user).Update("is_admin", user.IsAdmin).Error
	})
}

func (userOperation *UserOperation) DeleteUser(user *User) error {
	return userOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).Transaction(func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
		defer cancel()

		if user.IsAdmin {
			var admins int64
			if err := tx.WithContext(ctx).Model(&User{}).Where("is_admin = ?", true).Count(&admins).Error; err != nil {
				return err
			}
			if admins <= 1 {
				return ErrLastAdmin
			}
		}

		// 先级联删除报名记录, 再删除用户本身
		if err := tx.WithContext(ctx).Where("user_id = ?", user.ID).Delete(&Participant{}).Error; err != nil {
			return err
		}
		return tx.WithContext(ctx).Delete(user).Error
	})
}
