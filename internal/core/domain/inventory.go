package domain

import (
	"errors"
	"time"
)

var ErrVehicleNotFound = errors.New("vehicle not found")
var ErrClassificationNotFound = errors.New("classification not found")
var ErrClassificationExists = errors.New("classification already exists")

// Classification groups vehicles into browsable categories (SUV, Sedan, ...).
// The classification list also drives the site navigation bar.
type Classification struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Vehicle is a single inventory record.
type Vehicle struct {
	ID               string    `json:"id"`
	ClassificationID string    `json:"classification_id"`
	Make             string    `json:"make"`
	Model            string    `json:"model"`
	Year             int       `json:"year"`
	Description      string    `json:"description"`
	Image            string    `json:"image"`
	Thumbnail        string    `json:"thumbnail"`
	Price            float64   `json:"price"`
	Miles            int       `json:"miles"`
	Color            string    `json:"color"`
	CreatedAt        time.Time `json:"created_at"`
}
