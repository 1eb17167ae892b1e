// Package model holds the GORM persistence models and their mapping to
// domain entities.
package model

import (
	"time"

	"github.com/google/uuid"

	"staffhub/internal/domain/entity"
)

// EmployeeModel mirrors the 'employees' table. Email carries a unique
// constraint because it doubles as the employee login identifier.
type EmployeeModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	JobTitle     string    `gorm:"type:varchar(100)"`
	PhoneNumber  string    `gorm:"type:varchar(32)"`
	Status       string    `gorm:"type:varchar(16);not null;default:'active'"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	PasswordSet  bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain maps the persistence model to a pure domain entity.
func (m *EmployeeModel) ToDomain() *entity.Employee {
	return &entity.Employee{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		JobTitle:     m.JobTitle,
		PhoneNumber:  m.PhoneNumber,
		Status:       entity.EmployeeStatus(m.Status),
		PasswordHash: m.PasswordHash,
		PasswordSet:  m.PasswordSet,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// EmployeeModelFromDomain maps a domain entity to the persistence model.
func EmployeeModelFromDomain(e *entity.Employee) *EmployeeModel {
	return &EmployeeModel{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		JobTitle:     e.JobTitle,
		PhoneNumber:  e.PhoneNumber,
		Status:       string(e.Status),
		PasswordHash: e.PasswordHash,
		PasswordSet:  e.PasswordSet,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
