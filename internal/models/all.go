package models

// All returns every persisted model, in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Household{},
		&HouseholdMember{},
		&Category{},
		&PaymentRecord{},
		&MainBudget{},
		&WeekSlot{},
		&WeeklyBudget{},
		&CategoryLedgerEntry{},
		&PaymentSnapshot{},
		&AuditLog{},
	}
}
