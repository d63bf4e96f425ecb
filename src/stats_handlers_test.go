package main

import (
	"net/http"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func (s *TestSuite) TestDashboardStats() {
	s.Mock.ExpectBegin()
	s.Mock.ExpectQuery(`SELECT count\(\*\) FROM "venues"`).
		WillReturnRows(countRows(10))
	s.Mock.ExpectQuery(`SELECT count\(\*\) FROM "events"`).
		WillReturnRows(countRows(15))
	s.Mock.ExpectQuery(`SELECT count\(\*\) FROM "tickets"`).
		WillReturnRows(countRows(6))
	s.Mock.ExpectQuery(`SELECT COALESCE\(SUM\(price\), 0\) FROM "tickets" WHERE status <> \$1`).
		WithArgs("cancelled").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(24500.0))
	s.Mock.ExpectQuery(`SELECT \* FROM "tickets" ORDER BY purchase_date desc LIMIT \$1`).
		WillReturnRows(ticketRows().
			AddRow(1, 1, "James Ochieng", "james.ochieng@email.co.ke", "VIP", "2500.00", "A1B2C3D4E5F60718", time.Now(), "confirmed"))
	s.Mock.ExpectQuery(`SELECT \* FROM "events" WHERE event_date >= \$1 ORDER BY event_date asc LIMIT \$2`).
		WillReturnRows(eventRows().
			AddRow(7, 5, "Sol Fest 2025 - Sauti Sol Reunion", nil, "Concert",
				time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC),
				time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC),
				nil, time.Now()))
	s.Mock.ExpectQuery(`SELECT count\(\*\) FROM "tickets" WHERE status = \$1`).
		WithArgs("confirmed").
		WillReturnRows(countRows(5))
	s.Mock.ExpectQuery(`SELECT count\(\*\) FROM "tickets" WHERE status = \$1`).
		WithArgs("cancelled").
		WillReturnRows(countRows(1))
	s.Mock.ExpectCommit()

	w := s.Serve("GET", "/stats/dashboard", "")

	assert.Equal(s.T(), http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(s.T(), int64(10), gjson.Get(body, "total_venues").Int())
	assert.Equal(s.T(), int64(15), gjson.Get(body, "total_events").Int())
	assert.Equal(s.T(), int64(6), gjson.Get(body, "total_tickets").Int())
	assert.Equal(s.T(), 24500.0, gjson.Get(body, "total_revenue").Float())
	assert.Equal(s.T(), int64(5), gjson.Get(body, "confirmed_tickets").Int())
	assert.Equal(s.T(), int64(1), gjson.Get(body, "cancelled_tickets").Int())
	assert.Equal(s.T(), int64(1), gjson.Get(body, "recent_tickets.#").Int())
	assert.Equal(s.T(), "A1B2C3D4E5F60718", gjson.Get(body, "recent_tickets.0.confirmation_code").String())
	assert.Equal(s.T(), "2025-12-21", gjson.Get(body, "upcoming_events.0.event_date").String())
	assert.Equal(s.T(), "18:00", gjson.Get(body, "upcoming_events.0.event_time").String())
	assert.NoError(s.T(), s.Mock.ExpectationsWereMet())
}
