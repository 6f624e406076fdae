package loan

import (
	"time"

	"agrifin-backend/internal/domain/apperror"
	"agrifin-backend/internal/domain/farmer"

	"gorm.io/gorm"
)

type Purpose string

const (
	PurposeSeeds       Purpose = "Seeds"
	PurposeFertilizers Purpose = "Fertilizers"
	PurposeEquipment   Purpose = "Equipment"
	PurposeIrrigation  Purpose = "Irrigation"
	PurposeLivestock   Purpose = "Livestock"
	PurposeOther       Purpose = "Other"
)

var Purposes = []Purpose{PurposeSeeds, PurposeFertilizers, PurposeEquipment, PurposeIrrigation, PurposeLivestock, PurposeOther}

const (
	MinLoanAmount   = 1000
	MinTenureMonths = 1
)

// Table: loans
type Loan struct {
	ID               string         `gorm:"primaryKey;size:32" json:"_id"`
	FarmerID         string         `gorm:"size:32;not null;index:idx_loans_farmer_status" json:"farmerId"`
	Farmer           *farmer.Farmer `gorm:"foreignKey:FarmerID;references:ID" json:"farmer,omitempty"`
	LoanAmount       float64        `gorm:"not null" json:"loanAmount"`
	InterestRate     float64        `gorm:"not null" json:"interestRate"`
	Tenure           int            `gorm:"not null" json:"tenure"`
	Purpose          Purpose        `gorm:"size:16;not null" json:"purpose"`
	Status           Status         `gorm:"size:16;not null;default:'Pending';index:idx_loans_farmer_status" json:"status"`
	AppliedDate      time.Time      `gorm:"not null" json:"appliedDate"`
	ApprovalDate     *time.Time     `json:"approvalDate,omitempty"`
	DisbursementDate *time.Time     `json:"disbursementDate,omitempty"`
	AIScore          int            `gorm:"column:ai_score;not null" json:"aiScore"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Loan) TableName() string { return "loans" }

func (l *Loan) Validate() error {
	v := &apperror.ValidationError{}
	if l.FarmerID == "" {
		v.Add("farmerId", "is required")
	}
	if l.LoanAmount < MinLoanAmount {
		v.Add("loanAmount", "Minimum loan amount is ₹1000")
	}
	if l.InterestRate < 0 || l.InterestRate > 100 {
		v.Add("interestRate", "must be between 0 and 100")
	}
	if l.Tenure < MinTenureMonths {
		v.Add("tenure", "Minimum tenure is 1 month")
	}
	if !ValidPurpose(l.Purpose) {
		v.Add("purpose", "`"+string(l.Purpose)+"` is not a valid purpose")
	}
	if !l.Status.Valid() {
		v.Add("status", "`"+string(l.Status)+"` is not a valid loan status")
	}
	if l.AIScore < 0 || l.AIScore > MaxScore {
		v.Add("aiScore", "must be between 0 and 100")
	}
	return v.OrNil()
}

func (l *Loan) BeforeSave(*gorm.DB) error {
	if l.Status == "" {
		l.Status = StatusPending
	}
	return l.Validate()
}

func ValidPurpose(p Purpose) bool {
	for _, x := range Purposes {
		if x == p {
			return true
		}
	}
	return false
}
