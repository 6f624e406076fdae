package product

import (
	"regexp"
	"strings"
	"time"

	"agrifin-backend/internal/domain/apperror"
	"agrifin-backend/internal/domain/user"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category string

const (
	CategoryVegetables Category = "Vegetables"
	CategoryFruits     Category = "Fruits"
	CategoryGrains     Category = "Grains"
	CategoryDairy      Category = "Dairy"
	CategoryPulses     Category = "Pulses"
	CategorySpices     Category = "Spices"
	CategoryOilsSeeds  Category = "Oils & Seeds"
	CategoryOther      Category = "Other"
)

var Categories = []Category{CategoryVegetables, CategoryFruits, CategoryGrains, CategoryDairy, CategoryPulses, CategorySpices, CategoryOilsSeeds, CategoryOther}

type Unit string

var Units = []Unit{"kg", "quintal", "ton", "liter", "dozen", "piece"}

type DeliveryOption string

var DeliveryOptions = []DeliveryOption{"farm-pickup", "local-delivery", "regional-delivery", "nationwide"}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusSold     Status = "sold"
)

var Statuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusSold}

var rePincode = regexp.MustCompile(`^\d{6}$`)

// Table: products
type Product struct {
	ID               string                              `gorm:"primaryKey;size:32" json:"_id"`
	ProductName      string                              `gorm:"size:200;not null" json:"productName"`
	Category         Category                            `gorm:"size:32;not null;index:idx_products_category_status" json:"category"`
	Quantity         float64                             `gorm:"not null" json:"quantity"`
	Unit             Unit                                `gorm:"size:16;not null;default:'kg'" json:"unit"`
	Price            float64                             `gorm:"not null;index" json:"price"`
	Description      string                              `gorm:"type:text" json:"description,omitempty"`
	Location         string                              `gorm:"size:160;not null" json:"location"`
	District         string                              `gorm:"size:120;not null;index:idx_products_district_state" json:"district"`
	State            string                              `gorm:"size:120;not null;index:idx_products_district_state" json:"state"`
	Pincode          string                              `gorm:"size:6;not null" json:"pincode"`
	ContactName      string                              `gorm:"size:160;not null" json:"contactName"`
	ContactPhone     string                              `gorm:"size:20;not null" json:"contactPhone"`
	ContactEmail     string                              `gorm:"size:191" json:"contactEmail,omitempty"`
	DeliveryOptions  datatypes.JSONSlice[DeliveryOption] `json:"deliveryOptions"`
	OrganicCertified bool                                `gorm:"not null;default:false" json:"organicCertified"`
	Images           datatypes.JSONSlice[string]         `json:"images"`
	Status           Status                              `gorm:"size:16;not null;default:'pending';index:idx_products_category_status" json:"status"`
	SellerID         *string                             `gorm:"size:32;index" json:"sellerId,omitempty"`
	Seller           *user.User                          `gorm:"foreignKey:SellerID;references:ID" json:"seller,omitempty"`
	Views            int64                               `gorm:"not null;default:0" json:"views"`
	Inquiries        int64                               `gorm:"not null;default:0" json:"inquiries"`
	CreatedAt        time.Time                           `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt        time.Time                           `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Product) TableName() string { return "products" }

func (p *Product) Normalize() {
	p.ProductName = strings.TrimSpace(p.ProductName)
	p.Description = strings.TrimSpace(p.Description)
	p.Location = strings.TrimSpace(p.Location)
	p.District = strings.TrimSpace(p.District)
	p.State = strings.TrimSpace(p.State)
	p.ContactName = strings.TrimSpace(p.ContactName)
	p.ContactPhone = strings.TrimSpace(p.ContactPhone)
	p.ContactEmail = strings.ToLower(strings.TrimSpace(p.ContactEmail))
	if p.Unit == "" {
		p.Unit = "kg"
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	if p.DeliveryOptions == nil {
		p.DeliveryOptions = datatypes.JSONSlice[DeliveryOption]{}
	}
	if p.Images == nil {
		p.Images = datatypes.JSONSlice[string]{}
	}
}

func (p *Product) Validate() error {
	v := &apperror.ValidationError{}
	required := []struct{ field, val, msg string }{
		{"productName", p.ProductName, "Product name is required"},
		{"location", p.Location, "Location is required"},
		{"district", p.District, "District is required"},
		{"state", p.State, "State is required"},
		{"contactName", p.ContactName, "Contact name is required"},
		{"contactPhone", p.ContactPhone, "Contact phone is required"},
	}
	for _, r := range required {
		if r.val == "" {
			v.Add(r.field, r.msg)
		}
	}
	if !contains(Categories, p.Category) {
		v.Add("category", "`"+string(p.Category)+"` is not a valid category")
	}
	if p.Quantity < 0 {
		v.Add("quantity", "Quantity must be positive")
	}
	if !contains(Units, p.Unit) {
		v.Add("unit", "`"+string(p.Unit)+"` is not a valid unit")
	}
	if p.Price < 0 {
		v.Add("price", "Price must be positive")
	}
	if !rePincode.MatchString(p.Pincode) {
		v.Add("pincode", "Please provide a valid 6-digit pincode")
	}
	for _, d := range p.DeliveryOptions {
		if !contains(DeliveryOptions, d) {
			v.Add("deliveryOptions", "`"+string(d)+"` is not a valid delivery option")
		}
	}
	if !p.Status.Valid() {
		v.Add("status", "Invalid status")
	}
	return v.OrNil()
}

func (p *Product) BeforeSave(*gorm.DB) error {
	p.Normalize()
	return p.Validate()
}

func (s Status) Valid() bool { return contains(Statuses, s) }

func ValidCategory(c Category) bool { return contains(Categories, c) }

func contains[T comparable](set []T, v T) bool {
	for _, x := range set {
		if x == v {
			return true
		}
	}
	return false
}
