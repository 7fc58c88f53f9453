package models

import "gorm.io/datatypes"

// Doctor extends a User with clinical credentials. Exactly one user per
// doctor profile; the medical council id is globally unique.
type Doctor struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	UserID              uint           `gorm:"not null;uniqueIndex" json:"userId"`
	MedicalCouncilID    string         `gorm:"size:50;uniqueIndex;not null" json:"medicalCouncilId"`
	Specialization      string         `gorm:"size:100;not null" json:"specialization"`
	Qualifications      string         `gorm:"size:255;not null" json:"qualifications"`
	Experience          int            `json:"experience"`
	ConsultationFee     float64        `gorm:"type:decimal(10,2)" json:"consultationFee"`
	IsVerified          bool           `gorm:"default:false" json:"isVerified"`
	HospitalAffiliation string         `gorm:"size:255" json:"hospitalAffiliation,omitempty"`
	AvailableSlots      datatypes.JSON `json:"availableSlots,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
