package book

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/author"
)

func TestDateUnmarshal(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"1945-08-17"`), &d))
	assert.Equal(t, 1945, d.Year())
	assert.Equal(t, time.August, d.Month())
	assert.Equal(t, 17, d.Day())
}

func TestDateUnmarshalRFC3339(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"1945-08-17T00:00:00Z"`), &d))
	assert.Equal(t, 1945, d.Year())
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"17/08/1945"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`12345`), &d))
}

func TestDateMarshalDayPrecision(t *testing.T) {
	d := NewDate(1949, time.June, 8)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1949-06-08"`, string(b))
}

func validRequest() CreateBookRequest {
	return CreateBookRequest{
		Title:           "Nineteen Eighty-Four",
		Description:     "A dystopian novel.",
		Author:          author.CreateAuthorRequest{Name: "George Orwell"},
		PublicationDate: NewDate(1949, time.June, 8),
		ISBN:            "9780451524935",
		NumPages:        328,
		Genre:           "Dystopian fiction",
	}
}

func TestCreateBookRequestValidate(t *testing.T) {
	assert.NoError(t, validRequest().Validate())
}

func TestCreateBookRequestValidate_ISBNTooLong(t *testing.T) {
	req := validRequest()
	req.ISBN = "97804515249351234"
	assert.Error(t, req.Validate())
}

func TestCreateBookRequestValidate_MissingDate(t *testing.T) {
	req := validRequest()
	req.PublicationDate = Date{}
	assert.Error(t, req.Validate())
}

func TestCreateBookRequestValidate_MissingAuthorName(t *testing.T) {
	req := validRequest()
	req.Author.Name = ""
	assert.Error(t, req.Validate())
}

func TestUpdateBookRequestValidate_EmptyTitlePointer(t *testing.T) {
	empty := ""
	req := UpdateBookRequest{Title: &empty}
	assert.Error(t, req.Validate())
}

func TestUpdateBookRequestValidate_NilFieldsPass(t *testing.T) {
	assert.NoError(t, UpdateBookRequest{}.Validate())
}
