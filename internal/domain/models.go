package domain

import "time"

type User struct {
	ID       string `db:"id"`
	Surname  string `db:"surname"`
	Name     string `db:"name"`
	Phone    string `db:"phone"`
	Email    string `db:"email"`
	Password string `db:"password_hash"`
}

type Station struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	City    string `db:"city"`
	Address string `db:"address"`
}

type Train struct {
	ID         string `db:"id"`
	Number     string `db:"number"`
	Type       string `db:"type"`
	WagonCount int    `db:"wagon_count"`
}

type Route struct {
	ID                 string    `db:"id"`
	DepartureStationID string    `db:"departure_station_id"`
	ArrivalStationID   string    `db:"arrival_station_id"`
	TrainID            string    `db:"train_id"`
	DepartureTime      time.Time `db:"departure_time"`
	ArrivalTime        time.Time `db:"arrival_time"`
	BasePrice          float64   `db:"base_price"`
}

type Wagon struct {
	ID        string `db:"id"`
	TrainID   string `db:"train_id"`
	Number    int    `db:"number"`
	Type      string `db:"type"`
	SeatCount int    `db:"seat_count"`
}

type Seat struct {
	ID              string  `db:"id"`
	WagonID         string  `db:"wagon_id"`
	Number          int     `db:"number"`
	Available       bool    `db:"available"`
	PriceMultiplier float64 `db:"price_multiplier"`
}

type Ticket struct {
	ID       string       `db:"id"`
	UserID   string       `db:"user_id"`
	RouteID  string       `db:"route_id"`
	SeatID   string       `db:"seat_id"`
	BookedAt time.Time    `db:"booked_at"`
	Status   TicketStatus `db:"status"`
	Price    float64      `db:"price"`
}

type Transaction struct {
	ID            string    `db:"id"`
	TicketID      string    `db:"ticket_id"`
	Amount        float64   `db:"amount"`
	PaymentMethod string    `db:"payment_method"`
	CreatedAt     time.Time `db:"created_at"`
}

// RouteSummary is the joined read model returned by route search and used
// for ticket listings.
type RouteSummary struct {
	ID               string    `json:"id"`
	DepartureStation string    `json:"departure_station"`
	DepartureCity    string    `json:"departure_city"`
	ArrivalStation   string    `json:"arrival_station"`
	ArrivalCity      string    `json:"arrival_city"`
	TrainNumber      string    `json:"train_number"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	Price            float64   `json:"price"`
	AvailableSeats   int       `json:"available_seats"`
}

// SameDay reports whether t falls on the calendar date of day, ignoring the
// time of day. Both values are compared in UTC.
func SameDay(t, day time.Time) bool {
	ty, tm, td := t.UTC().Date()
	dy, dm, dd := day.UTC().Date()
	return ty == dy && tm == dm && td == dd
}

// IDGenerator produces identifiers for newly created entities.
type IDGenerator func() string
