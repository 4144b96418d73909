package models

// Household is a sharing context for budgets. Membership is managed outside
// this service; the roster is read only here.
type Household struct {
	Base
	Name        string `gorm:"not null" json:"name"`
	CreatedByID string `gorm:"type:uuid;not null;index" json:"created_by_id"`

	// Relationships
	CreatedBy *User             `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Members   []HouseholdMember `gorm:"foreignKey:HouseholdID" json:"members,omitempty"`
}

// HouseholdMember links a user to a household. The creator has no row.
type HouseholdMember struct {
	Base
	HouseholdID string `gorm:"type:uuid;not null;uniqueIndex:idx_household_member" json:"household_id"`
	UserID      string `gorm:"type:uuid;not null;uniqueIndex:idx_household_member" json:"user_id"`
	DisplayName string `json:"display_name"`
	Role        string `gorm:"default:member" json:"role"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
