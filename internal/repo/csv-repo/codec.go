package csvrepo

import (
	"fmt"
	"strconv"
	"time"

	"github.com/GlebRadaev/railtickets/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// fieldDecoder collects the first parse error so decoders stay linear.
type fieldDecoder struct {
	record []string
	err    error
}

func (d *fieldDecoder) text(i int) string {
	return d.record[i]
}

func (d *fieldDecoder) integer(i int) int {
	v, err := strconv.Atoi(d.record[i])
	d.fail(i, err)
	return v
}

func (d *fieldDecoder) number(i int) float64 {
	v, err := strconv.ParseFloat(d.record[i], 64)
	d.fail(i, err)
	return v
}

func (d *fieldDecoder) flag(i int) bool {
	v, err := strconv.ParseBool(d.record[i])
	d.fail(i, err)
	return v
}

func (d *fieldDecoder) timestamp(i int) time.Time {
	v, err := time.ParseInLocation(timeLayout, d.record[i], time.UTC)
	d.fail(i, err)
	return v
}

func (d *fieldDecoder) fail(i int, err error) {
	if err != nil && d.err == nil {
		d.err = fmt.Errorf("field %d: %w", i, err)
	}
}

var usersTable = table[domain.User]{
	file:   "users.csv",
	fields: 6,
	id:     func(u *domain.User) string { return u.ID },
	encode: func(u *domain.User) []string {
		return []string{u.ID, u.Surname, u.Name, u.Phone, u.Email, u.Password}
	},
	decode: func(rec []string) (domain.User, error) {
		return domain.User{ID: rec[0], Surname: rec[1], Name: rec[2], Phone: rec[3], Email: rec[4], Password: rec[5]}, nil
	},
}

var stationsTable = table[domain.Station]{
	file:   "stations.csv",
	fields: 4,
	id:     func(s *domain.Station) string { return s.ID },
	encode: func(s *domain.Station) []string {
		return []string{s.ID, s.Name, s.City, s.Address}
	},
	decode: func(rec []string) (domain.Station, error) {
		return domain.Station{ID: rec[0], Name: rec[1], City: rec[2], Address: rec[3]}, nil
	},
}

var trainsTable = table[domain.Train]{
	file:   "trains.csv",
	fields: 4,
	id:     func(t *domain.Train) string { return t.ID },
	encode: func(t *domain.Train) []string {
		return []string{t.ID, t.Number, t.Type, strconv.Itoa(t.WagonCount)}
	},
	decode: func(rec []string) (domain.Train, error) {
		d := fieldDecoder{record: rec}
		t := domain.Train{ID: d.text(0), Number: d.text(1), Type: d.text(2), WagonCount: d.integer(3)}
		return t, d.err
	},
}

var routesTable = table[domain.Route]{
	file:   "routes.csv",
	fields: 7,
	id:     func(r *domain.Route) string { return r.ID },
	encode: func(r *domain.Route) []string {
		return []string{
			r.ID, r.DepartureStationID, r.ArrivalStationID, r.TrainID,
			formatTime(r.DepartureTime), formatTime(r.ArrivalTime), formatFloat(r.BasePrice),
		}
	},
	decode: func(rec []string) (domain.Route, error) {
		d := fieldDecoder{record: rec}
		r := domain.Route{
			ID:                 d.text(0),
			DepartureStationID: d.text(1),
			ArrivalStationID:   d.text(2),
			TrainID:            d.text(3),
			DepartureTime:      d.timestamp(4),
			ArrivalTime:        d.timestamp(5),
			BasePrice:          d.number(6),
		}
		return r, d.err
	},
}

var wagonsTable = table[domain.Wagon]{
	file:   "wagons.csv",
	fields: 5,
	id:     func(w *domain.Wagon) string { return w.ID },
	encode: func(w *domain.Wagon) []string {
		return []string{w.ID, w.TrainID, strconv.Itoa(w.Number), w.Type, strconv.Itoa(w.SeatCount)}
	},
	decode: func(rec []string) (domain.Wagon, error) {
		d := fieldDecoder{record: rec}
		w := domain.Wagon{ID: d.text(0), TrainID: d.text(1), Number: d.integer(2), Type: d.text(3), SeatCount: d.integer(4)}
		return w, d.err
	},
}

var seatsTable = table[domain.Seat]{
	file:   "seats.csv",
	fields: 5,
	id:     func(s *domain.Seat) string { return s.ID },
	encode: func(s *domain.Seat) []string {
		return []string{s.ID, s.WagonID, strconv.Itoa(s.Number), strconv.FormatBool(s.Available), formatFloat(s.PriceMultiplier)}
	},
	decode: func(rec []string) (domain.Seat, error) {
		d := fieldDecoder{record: rec}
		s := domain.Seat{ID: d.text(0), WagonID: d.text(1), Number: d.integer(2), Available: d.flag(3), PriceMultiplier: d.number(4)}
		return s, d.err
	},
}

// Rows put status before price, the column order of existing tickets.csv files.
var ticketsTable = table[domain.Ticket]{
	file:   "tickets.csv",
	fields: 7,
	id:     func(t *domain.Ticket) string { return t.ID },
	encode: func(t *domain.Ticket) []string {
		return []string{t.ID, t.UserID, t.RouteID, t.SeatID, formatTime(t.BookedAt), string(t.Status), formatFloat(t.Price)}
	},
	decode: func(rec []string) (domain.Ticket, error) {
		d := fieldDecoder{record: rec}
		t := domain.Ticket{
			ID:       d.text(0),
			UserID:   d.text(1),
			RouteID:  d.text(2),
			SeatID:   d.text(3),
			BookedAt: d.timestamp(4),
			Price:    d.number(6),
		}
		if d.err != nil {
			return t, d.err
		}
		status, err := domain.ParseTicketStatus(d.text(5))
		if err != nil {
			return t, err
		}
		t.Status = status
		return t, nil
	},
}

var transactionsTable = table[domain.Transaction]{
	file:   "transactions.csv",
	fields: 5,
	id:     func(tx *domain.Transaction) string { return tx.ID },
	encode: func(tx *domain.Transaction) []string {
		return []string{tx.ID, tx.TicketID, formatFloat(tx.Amount), tx.PaymentMethod, formatTime(tx.CreatedAt)}
	},
	decode: func(rec []string) (domain.Transaction, error) {
		d := fieldDecoder{record: rec}
		tx := domain.Transaction{
			ID:            d.text(0),
			TicketID:      d.text(1),
			Amount:        d.number(2),
			PaymentMethod: d.text(3),
			CreatedAt:     d.timestamp(4),
		}
		return tx, d.err
	},
}
