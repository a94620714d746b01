package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOther       Gender = "other"
)

type User struct {
	ID                uuid.UUID      `db:"id" json:"id"`
	Name              string         `db:"name" json:"name"`
	Email             string         `db:"email" json:"email"`
	Password          string         `db:"password" json:"-"`
	Role              Role           `db:"role" json:"role"`
	IsAccountVerified bool           `db:"is_account_verified" json:"is_account_verified"`
	VerifyOtp         string         `db:"verify_otp" json:"-"`
	VerifyOtpExpireAt *time.Time     `db:"verify_otp_expire_at" json:"-"`
	ResetOtp          string         `db:"reset_otp" json:"-"`
	ResetOtpExpireAt  *time.Time     `db:"reset_otp_expire_at" json:"-"`
	Phone             sql.NullString `db:"phone" json:"-"`
	Birthday          *time.Time     `db:"birthday" json:"-"`
	Gender            Gender         `db:"gender" json:"gender,omitempty"`
	Address           sql.NullString `db:"address" json:"-"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// OtpCode is a one time code and its expiry. The zero value means no code is issued.
type OtpCode struct {
	Code     string
	ExpireAt *time.Time
}

func (o OtpCode) IsIssued() bool {
	return o.Code != ""
}

func (o OtpCode) IsExpired(now time.Time) bool {
	return o.ExpireAt == nil || now.After(*o.ExpireAt)
}

func (u *User) VerifyCode() OtpCode {
	return OtpCode{Code: u.VerifyOtp, ExpireAt: u.VerifyOtpExpireAt}
}

func (u *User) ResetCode() OtpCode {
	return OtpCode{Code: u.ResetOtp, ExpireAt: u.ResetOtpExpireAt}
}

// UserProfile is the set of fields a user may change about themselves.
type UserProfile struct {
	Name     *string
	Phone    *string
	Birthday *time.Time
	Gender   *Gender
	Address  *string
}

func (u *User) ApplyProfile(p UserProfile) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = sql.NullString{String: *p.Phone, Valid: *p.Phone != ""}
	}
	if p.Birthday != nil {
		u.Birthday = p.Birthday
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.Address != nil {
		u.Address = sql.NullString{String: *p.Address, Valid: *p.Address != ""}
	}
}
