package model

import "time"

// ErrorLog records a caught failure together with the request that caused
// it. Rows are append-only; nothing in the API reads them back.
type ErrorLog struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Timestamp     time.Time `json:"timestamp" gorm:"index"`
	Message       string    `json:"message" gorm:"type:text"`
	StackTrace    string    `json:"stack_trace" gorm:"type:text"`
	RequestPath   string    `json:"request_path" gorm:"size:2048"`
	RequestMethod string    `json:"request_method" gorm:"size:10"`
	RequestBody   string    `json:"request_body" gorm:"type:text"`
	Origin        string    `json:"origin" gorm:"size:255"`
}
