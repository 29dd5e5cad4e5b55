package domain

import "time"

// Department is a (city, issueType) routing target in the directory. At most
// one active department per pair is resolvable; inactive duplicates may exist.
type Department struct {
	ID           string
	City         string
	IssueType    IssueType
	Name         string
	ContactEmail string
	ContactPhone string
	Address      string
	Website      string
	WorkingHours string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Contact returns the snapshot copied into complaints at filing time.
func (d *Department) Contact() DepartmentContact {
	return DepartmentContact{
		Name:         d.Name,
		ContactEmail: d.ContactEmail,
		ContactPhone: d.ContactPhone,
		Address:      d.Address,
		Website:      d.Website,
		WorkingHours: d.WorkingHours,
	}
}
