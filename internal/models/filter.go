package models

// Filter is the user's current selection on the jobs page.
// EmploymentTypes keeps the order in which tags were selected.
type Filter struct {
	EmploymentTypes []string `json:"employmentTypes"`
	MinimumPackage  int      `json:"minimumPackage"`
	Search          string   `json:"search"`
}

// ToggleEmploymentType adds tag when absent and removes it when present.
// Unknown tags are ignored and reported as false.
func (f *Filter) ToggleEmploymentType(tag string) bool {
	if !IsEmploymentType(tag) {
		return false
	}
	for i, t := range f.EmploymentTypes {
		if t == tag {
			f.EmploymentTypes = append(f.EmploymentTypes[:i:i], f.EmploymentTypes[i+1:]...)
			return true
		}
	}
	f.EmploymentTypes = append(f.EmploymentTypes, tag)
	return true
}

// SetMinimumPackage only accepts one of the enumerated salary ranges, anything else means no minimum.
func (f *Filter) SetMinimumPackage(v int) {
	if !IsSalaryRange(v) {
		v = NoMinimumPackage
	}
	f.MinimumPackage = v
}

func (f Filter) HasEmploymentType(tag string) bool {
	for _, t := range f.EmploymentTypes {
		if t == tag {
			return true
		}
	}
	return false
}

func (f Filter) Clone() Filter {
	out := f
	if f.EmploymentTypes != nil {
		out.EmploymentTypes = append([]string(nil), f.EmploymentTypes...)
	}
	return out
}
