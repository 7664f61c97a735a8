package models

import "time"

// RecipeView is an append-only record of a single recipe page view.
// Rows are only ever inserted and counted; there is no update lifecycle.
type RecipeView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RecipeID  uint      `gorm:"not null;index" json:"recipe_id"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// Visitor is an append-only record of a site visit.
type Visitor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	IPAddress string    `gorm:"not null" json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// CategoryCount is one row of the recipes-per-category breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// RecipeViewCount is one row of the most-viewed-recipes ranking.
type RecipeViewCount struct {
	RecipeID uint   `json:"recipe_id"`
	Title    string `json:"title"`
	Views    int64  `json:"views"`
}

// DailyCount is one day of a time series, with Day formatted YYYY-MM-DD.
type DailyCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// UserStats is the admin user-statistics payload: totals broken down by
// role and active status, plus recent signup counts.
type UserStats struct {
	Total              int64 `json:"total"`
	Admins             int64 `json:"admins"`
	RegularUsers       int64 `json:"regular_users"`
	Active             int64 `json:"active"`
	Inactive           int64 `json:"inactive"`
	NewUsersLast7Days  int64 `json:"new_users_last_7_days"`
	NewUsersLast30Days int64 `json:"new_users_last_30_days"`
}

// DashboardStats is the admin statistics dashboard payload.
type DashboardStats struct {
	TotalRecipes      int64             `json:"total_recipes"`
	RecipesByCategory []CategoryCount   `json:"recipes_by_category"`
	TotalViews        int64             `json:"total_views"`
	ViewsLast7Days    int64             `json:"views_last_7_days"`
	ViewsLast30Days   int64             `json:"views_last_30_days"`
	TopRecipes        []RecipeViewCount `json:"top_recipes"`
	TotalVisitors     int64             `json:"total_visitors"`
	UniqueVisitors    int64             `json:"unique_visitors"`
	VisitorsLast7Days int64             `json:"visitors_last_7_days"`
	DailyVisitors     []DailyCount      `json:"daily_visitors"`
}
