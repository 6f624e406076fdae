package farmer

import (
	"regexp"
	"strings"
	"time"

	"agrifin-backend/internal/domain/apperror"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CropType string

const (
	CropRice       CropType = "Rice"
	CropWheat      CropType = "Wheat"
	CropCotton     CropType = "Cotton"
	CropSugarcane  CropType = "Sugarcane"
	CropVegetables CropType = "Vegetables"
	CropFruits     CropType = "Fruits"
	CropOther      CropType = "Other"
)

var CropTypes = []CropType{CropRice, CropWheat, CropCotton, CropSugarcane, CropVegetables, CropFruits, CropOther}

// LoanStatus is the farmer's summary of its most recent loan application.
// Only the loan workflow writes it.
type LoanStatus string

const (
	LoanStatusNone     LoanStatus = "None"
	LoanStatusApplied  LoanStatus = "Applied"
	LoanStatusApproved LoanStatus = "Approved"
	LoanStatusRejected LoanStatus = "Rejected"
	LoanStatusActive   LoanStatus = "Active"
	LoanStatusClosed   LoanStatus = "Closed"
)

var LoanStatuses = []LoanStatus{LoanStatusNone, LoanStatusApplied, LoanStatusApproved, LoanStatusRejected, LoanStatusActive, LoanStatusClosed}

const (
	MinCreditScore     = 300
	MaxCreditScore     = 900
	DefaultCreditScore = 500
)

var (
	reEmail = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	rePhone = regexp.MustCompile(`^[0-9]{10}$`)
)

type Address struct {
	Village  string `gorm:"size:120" json:"village,omitempty"`
	District string `gorm:"size:120" json:"district,omitempty"`
	State    string `gorm:"size:120" json:"state,omitempty"`
	Pincode  string `gorm:"size:12" json:"pincode,omitempty"`
}

type Recommendation struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Table: farmers
type Farmer struct {
	ID                string                              `gorm:"primaryKey;size:32" json:"_id"`
	Name              string                              `gorm:"size:160;not null" json:"name"`
	Email             string                              `gorm:"size:191;not null;uniqueIndex:ux_farmers_email" json:"email"`
	Phone             string                              `gorm:"size:10;not null;uniqueIndex:ux_farmers_phone" json:"phone"`
	Address           Address                             `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	LandSize          float64                             `gorm:"not null" json:"landSize"`
	CropType          CropType                            `gorm:"size:16;not null;default:'Other'" json:"cropType"`
	LoanStatus        LoanStatus                          `gorm:"size:16;not null;default:'None'" json:"loanStatus"`
	CreditScore       int                                 `gorm:"not null;default:500" json:"creditScore"`
	AIRecommendations datatypes.JSONSlice[Recommendation] `gorm:"column:ai_recommendations" json:"aiRecommendations"`
	CreatedAt         time.Time                           `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time                           `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Farmer) TableName() string { return "farmers" }

// Normalize applies the trimming, lowercasing and defaults the store expects.
func (f *Farmer) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.Phone = strings.TrimSpace(f.Phone)
	if f.CropType == "" {
		f.CropType = CropOther
	}
	if f.LoanStatus == "" {
		f.LoanStatus = LoanStatusNone
	}
	if f.CreditScore == 0 {
		f.CreditScore = DefaultCreditScore
	}
	if f.AIRecommendations == nil {
		f.AIRecommendations = datatypes.JSONSlice[Recommendation]{}
	}
}

func (f *Farmer) Validate() error {
	v := &apperror.ValidationError{}
	if f.Name == "" {
		v.Add("name", "Farmer name is required")
	}
	switch {
	case f.Email == "":
		v.Add("email", "Email is required")
	case !reEmail.MatchString(f.Email):
		v.Add("email", "Please provide a valid email")
	}
	switch {
	case f.Phone == "":
		v.Add("phone", "Phone number is required")
	case !rePhone.MatchString(f.Phone):
		v.Add("phone", "Please provide a valid 10-digit phone number")
	}
	if f.LandSize < 0 {
		v.Add("landSize", "Land size cannot be negative")
	}
	if !ValidCropType(f.CropType) {
		v.Add("cropType", "`"+string(f.CropType)+"` is not a valid crop type")
	}
	if !ValidLoanStatus(f.LoanStatus) {
		v.Add("loanStatus", "`"+string(f.LoanStatus)+"` is not a valid loan status")
	}
	if f.CreditScore < MinCreditScore || f.CreditScore > MaxCreditScore {
		v.Add("creditScore", "must be between 300 and 900")
	}
	return v.OrNil()
}

// BeforeSave keeps the schema rules enforced on every insert and update.
func (f *Farmer) BeforeSave(*gorm.DB) error {
	f.Normalize()
	return f.Validate()
}

func ValidCropType(c CropType) bool {
	for _, x := range CropTypes {
		if x == c {
			return true
		}
	}
	return false
}

func ValidLoanStatus(s LoanStatus) bool {
	for _, x := range LoanStatuses {
		if x == s {
			return true
		}
	}
	return false
}
