package dto

import (
	"time"

	"github.com/GlebRadaev/railtickets/internal/domain"
)

type RouteResponseDTO struct {
	ID               string  `json:"id" example:"9b2f6d0c-8c1e-4a6f-bb0e-0c7c8f2d1a10"`
	DepartureStation string  `json:"departure_station" example:"Kazansky"`
	DepartureCity    string  `json:"departure_city" example:"Moscow"`
	ArrivalStation   string  `json:"arrival_station" example:"Kazan-Passenger"`
	ArrivalCity      string  `json:"arrival_city" example:"Kazan"`
	TrainNumber      string  `json:"train_number" example:"002G"`
	DepartureTime    string  `json:"departure_time" example:"2024-05-01T21:00:00Z"`
	ArrivalTime      string  `json:"arrival_time" example:"2024-05-02T08:30:00Z"`
	Price            float64 `json:"price" example:"1000"`
	AvailableSeats   int     `json:"available_seats" example:"12"`
}

func NewRouteResponse(s domain.RouteSummary) RouteResponseDTO {
	return RouteResponseDTO{
		ID:               s.ID,
		DepartureStation: s.DepartureStation,
		DepartureCity:    s.DepartureCity,
		ArrivalStation:   s.ArrivalStation,
		ArrivalCity:      s.ArrivalCity,
		TrainNumber:      s.TrainNumber,
		DepartureTime:    s.DepartureTime.Format(time.RFC3339),
		ArrivalTime:      s.ArrivalTime.Format(time.RFC3339),
		Price:            s.Price,
		AvailableSeats:   s.AvailableSeats,
	}
}

type SeatResponseDTO struct {
	ID              string  `json:"id"`
	WagonID         string  `json:"wagon_id"`
	Number          int     `json:"number" example:"14"`
	PriceMultiplier float64 `json:"price_multiplier" example:"1.5"`
}
