package contract

// UserSettingsUpdate is the body of PUT /user/settings (spec §3 policy
// mutation, added per SPEC_FULL.md's UserSettings supplement).
type UserSettingsUpdate struct {
	DailyEnergyBudget int
	MaxDailyTasks     int
}

// UserSettingsResponse is the response of GET/PUT /user/settings.
type UserSettingsResponse struct {
	DailyEnergyBudget int
	MaxDailyTasks     int
}
