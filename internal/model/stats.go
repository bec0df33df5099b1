package model

type SystemStats struct {
	BusinessUsers        int64
	DataScienceUsers     int64
	TotalTeams           int64
	TotalDashboards      int64
	PendingIssues        int64
	InProgressIssues     int64
	CompletedIssues      int64
	PendingAdminRequests int64
}

type DashboardProgress struct {
	DashboardID      int64
	DashboardName    string
	TeamName         *string
	TotalIssues      int64
	PendingIssues    int64
	InProgressIssues int64
	CompletedIssues  int64
}
