package dto

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/savioruz/courtside/internal/domains/bookings/validator"
)

// CourtDetail is the court as answered by the booking backend.
type CourtDetail struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Address      string      `json:"address"`
	OpenTime     string      `json:"openTime"`
	CloseTime    string      `json:"closeTime"`
	PricePerHour json.Number `json:"pricePerHour"`
	CourtCount   int         `json:"courtCount"`
}

// Price parses the price per hour, rounding fractional amounts to the nearest unit.
func (c CourtDetail) Price() (int64, error) {
	if c.PricePerHour == "" {
		return 0, nil
	}

	if i, err := c.PricePerHour.Int64(); err == nil {
		return i, nil
	}

	f, err := c.PricePerHour.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid price per hour %q", c.PricePerHour.String())
	}

	return int64(math.Round(f)), nil
}

// Window builds a fresh availability window from the court detail.
func (c CourtDetail) Window() (validator.Window, error) {
	price, err := c.Price()
	if err != nil {
		return validator.Window{}, err
	}

	return validator.NewWindow(c.OpenTime, c.CloseTime, price)
}

type CourtResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address,omitempty"`
	OpenTime     string `json:"open_time"`
	CloseTime    string `json:"close_time"`
	PricePerHour int64  `json:"price_per_hour"`
	CourtCount   int    `json:"court_count"`
}

func (c CourtResponse) FromDetail(detail CourtDetail, window validator.Window) CourtResponse {
	return CourtResponse{
		ID:           detail.ID,
		Name:         detail.Name,
		Address:      detail.Address,
		OpenTime:     window.Open.String(),
		CloseTime:    window.Close.String(),
		PricePerHour: window.PricePerHour,
		CourtCount:   detail.CourtCount,
	}
}

func (c CourtResponse) String() string {
	return c.Name + " #" + strconv.FormatInt(c.ID, 10)
}
