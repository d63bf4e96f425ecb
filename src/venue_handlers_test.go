package main

import (
	"net/http"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"ttu/src/models"
	"ttu/src/types"
)

func venueRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "address", "city", "capacity", "image_url", "created_at"})
}

func (s *TestSuite) TestListVenues() {
	s.Mock.ExpectQuery(`SELECT \* FROM "venues"`).
		WillReturnRows(venueRows().
			AddRow(1, "Kasarani Stadium", "Thika Road", "Nairobi", 60000, nil, time.Now()).
			AddRow(2, "The Carnivore", "Langata Road", "Nairobi", 10000, nil, time.Now()))

	w := s.Serve("GET", "/venues", "")

	assert.Equal(s.T(), http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(s.T(), int64(2), gjson.Get(body, "#").Int())
	assert.Equal(s.T(), "Kasarani Stadium", gjson.Get(body, "0.name").String())
	assert.NoError(s.T(), s.Mock.ExpectationsWereMet())
}

func (s *TestSuite) TestListVenuesWithFilters() {
	s.Mock.ExpectQuery(`SELECT \* FROM "venues" WHERE name ILIKE \$1 AND city = \$2`).
		WithArgs("%Stadium%", "Nairobi", 100).
		WillReturnRows(venueRows().
			AddRow(1, "Kasarani Stadium", "Thika Road", "Nairobi", 60000, nil, time.Now()))

	w := s.Serve("GET", "/venues?search=Stadium&city=Nairobi", "")

	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), int64(1), gjson.Get(w.Body.String(), "#").Int())
	assert.NoError(s.T(), s.Mock.ExpectationsWereMet())
}

func (s *TestSuite) TestGetVenueWithEvents() {
	s.Mock.ExpectQuery(`SELECT \* FROM "venues" WHERE id = \$1`).
		WillReturnRows(venueRows().
			AddRow(5, "KICC", "Harambee Avenue", "Nairobi", 4000, nil, time.Now()))
	s.Mock.ExpectQuery(`SELECT \* FROM "events" WHERE "events"\."venue_id" = \$1`).
		WillReturnRows(eventRows().
			AddRow(7, 5, "Churchill Show Live Recording", nil, "Comedy", "2025-05-03", "19:30", nil, time.Now()))

	w := s.Serve("GET", "/venues/5", "")

	assert.Equal(s.T(), http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(s.T(), int64(5), gjson.Get(body, "id").Int())
	assert.Equal(s.T(), int64(1), gjson.Get(body, "events.#").Int())
	assert.Equal(s.T(), "Churchill Show Live Recording", gjson.Get(body, "events.0.title").String())
	assert.Equal(s.T(), "2025-05-03", gjson.Get(body, "events.0.event_date").String())
	assert.NoError(s.T(), s.Mock.ExpectationsWereMet())
}

func (s *TestSuite) TestGetVenueNotFound() {
	s.Mock.ExpectQuery(`SELECT \* FROM "venues" WHERE id = \$1`).
		WillReturnRows(venueRows())

	w := s.Serve("GET", "/venues/99", "")

	assert.Equal(s.T(), http.StatusNotFound, w.Code)
	assert.Equal(s.T(), "Venue not found", gjson.Get(w.Body.String(), "error").String())
}

func (s *TestSuite) TestCreateVenue() {
	s.Mock.ExpectBegin()
	s.Mock.ExpectQuery(`INSERT INTO "venues"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	s.Mock.ExpectCommit()

	w := s.Serve("POST", "/venues", `{"name":"Test Hall","address":"1 Main St","city":"Nairobi","capacity":100}`)

	assert.Equal(s.T(), http.StatusCreated, w.Code)
	body := w.Body.String()
	assert.Equal(s.T(), int64(1), gjson.Get(body, "id").Int())
	assert.Equal(s.T(), int64(100), gjson.Get(body, "capacity").Int())
	assert.True(s.T(), gjson.Get(body, "created_at").Exists())
	assert.NoError(s.T(), s.Mock.ExpectationsWereMet())
}

func (s *TestSuite) TestCreateVenueRejectsBadCapacity() {
	w := s.Serve("POST", "/venues", `{"name":"Test Hall","address":"1 Main St","city":"Nairobi","capacity":0}`)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	w = s.Serve("POST", "/venues", `{"name":"Test Hall","address":"1 Main St","city":"Nairobi","capacity":-5}`)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	// No statement may reach the store on validation failure.
	assert.NoError(s.T(), s.Mock.ExpectationsWereMet())
}

func (s *TestSuite) TestCreateVenueRejectsMissingName() {
	w := s.Serve("POST", "/venues", `{"address":"1 Main St","city":"Nairobi","capacity":100}`)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestUpdateVenuePartial() {
	s.Mock.ExpectBegin()
	s.Mock.ExpectQuery(`SELECT \* FROM "venues" WHERE id = \$1`).
		WillReturnRows(venueRows().
			AddRow(3, "Nyayo National Stadium", "Mombasa Road", "Nairobi", 30000, nil, time.Now()))
	s.Mock.ExpectExec(`UPDATE "venues" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.Mock.ExpectCommit()

	w := s.Serve("PUT", "/venues/3", `{"city":"Mombasa"}`)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(s.T(), "Mombasa", gjson.Get(body, "city").String())
	assert.Equal(s.T(), "Nyayo National Stadium", gjson.Get(body, "name").String())
	assert.Equal(s.T(), int64(30000), gjson.Get(body, "capacity").Int())
	assert.NoError(s.T(), s.Mock.ExpectationsWereMet())
}

func (s *TestSuite) TestUpdateVenueNotFound() {
	s.Mock.ExpectBegin()
	s.Mock.ExpectQuery(`SELECT \* FROM "venues" WHERE id = \$1`).
		WillReturnRows(venueRows())
	s.Mock.ExpectRollback()

	w := s.Serve("PUT", "/venues/99", `{"city":"Mombasa"}`)

	assert.Equal(s.T(), http.StatusNotFound, w.Code)
	assert.NoError(s.T(), s.Mock.ExpectationsWereMet())
}

func (s *TestSuite) TestDeleteVenue() {
	s.Mock.ExpectBegin()
	s.Mock.ExpectQuery(`SELECT \* FROM "venues" WHERE id = \$1`).
		WillReturnRows(venueRows().
			AddRow(3, "Nyayo National Stadium", "Mombasa Road", "Nairobi", 30000, nil, time.Now()))
	s.Mock.ExpectExec(`DELETE FROM "venues"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.Mock.ExpectCommit()

	w := s.Serve("DELETE", "/venues/3", "")

	assert.Equal(s.T(), http.StatusNoContent, w.Code)
	assert.Empty(s.T(), w.Body.String())
	assert.NoError(s.T(), s.Mock.ExpectationsWereMet())
}

func (s *TestSuite) TestDeleteVenueNotFound() {
	s.Mock.ExpectBegin()
	s.Mock.ExpectQuery(`SELECT \* FROM "venues" WHERE id = \$1`).
		WillReturnRows(venueRows())
	s.Mock.ExpectRollback()

	w := s.Serve("DELETE", "/venues/99", "")

	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *TestSuite) TestListVenueEventsRawShape() {
	s.Mock.ExpectQuery(`SELECT \* FROM "venues" WHERE id = \$1`).
		WillReturnRows(venueRows().
			AddRow(2, "The Carnivore", "Langata Road", "Nairobi", 10000, nil, time.Now()))
	s.Mock.ExpectQuery(`SELECT \* FROM "events" WHERE venue_id = \$1`).
		WillReturnRows(eventRows().
			AddRow(4, 2, "Nyashinski Live at Carnivore", "Live show", "Concert",
				time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC),
				time.Date(0, 1, 1, 19, 0, 0, 0, time.UTC),
				nil, time.Now()))

	w := s.Serve("GET", "/venues/2/events", "")

	assert.Equal(s.T(), http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(s.T(), "2025-08-16", gjson.Get(body, "0.event_date").String())
	assert.Equal(s.T(), "19:00", gjson.Get(body, "0.event_time").String())
	assert.NoError(s.T(), s.Mock.ExpectationsWereMet())
}

func (s *TestSuite) TestApplyVenueUpdateMergesOnlyPresentFields() {
	img := "https://example.com/venue.jpg"
	venue := models.Venue{ID: 1, Name: "Old", Address: "Addr", City: "Nairobi", Capacity: 100, ImageURL: &img}
	city := "Eldoret"
	applyVenueUpdate(&venue, &types.UpdateVenueRequestBody{City: &city})

	assert.Equal(s.T(), "Old", venue.Name)
	assert.Equal(s.T(), "Addr", venue.Address)
	assert.Equal(s.T(), "Eldoret", venue.City)
	assert.Equal(s.T(), 100, venue.Capacity)
	assert.Equal(s.T(), &img, venue.ImageURL)
}
