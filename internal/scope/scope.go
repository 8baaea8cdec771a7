package scope

import "gorm.io/gorm"

// Owner restricts a query to rows belonging to one employee. Used by every
// "my-*" read path (my-attendance, my-leaves, my-payslips, my-documents).
func Owner(employeeID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("employee_id = ?", employeeID)
	}
}

// Status restricts a query to rows in one workflow status.
func Status(status string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", status)
	}
}
