package entity

// DepartmentCount is one group of the department distribution.
type DepartmentCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// MonthlyHires is one bucket of the hiring-trend series.
type MonthlyHires struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// DashboardStats is derived from the record collection; it is never mutated
// directly, only recomputed.
type DashboardStats struct {
	TotalEmployees         int               `json:"totalEmployees"`
	OnboardingProgress     float64           `json:"onboardingProgress"`
	DepartmentDistribution []DepartmentCount `json:"departmentDistribution"`
	HiringTrends           []MonthlyHires    `json:"hiringTrends"`
}
