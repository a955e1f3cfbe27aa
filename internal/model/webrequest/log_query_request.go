package webrequest

type LogQueryRequest struct {
	Service   string `form:"service"`
	Level     string `form:"level"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Limit     int    `form:"limit,default=100"`
}
