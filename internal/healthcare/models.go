package healthcare

import (
	"github.com/lib/pq"
)

type HealthcareInfo struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	PatientName string         `gorm:"not null" json:"patient_name"`
	Diagnosis   string         `gorm:"type:text;not null" json:"diagnosis"`
	Treatment   string         `gorm:"type:text;not null" json:"treatment"`
	Medications pq.StringArray `gorm:"type:text[]" json:"medications"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
}

func (HealthcareInfo) TableName() string { return "app_records.healthcare_infos" }
