// internals/features/holidays/service/holiday_service_test.go
package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kantinku_backend/internals/configs"
	helper "kantinku_backend/internals/helpers"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<response>
  <header><resultCode>00</resultCode></header>
  <body>
    <items>
      <item>
        <dateKind>01</dateKind>
        <dateName>Tahun Baru</dateName>
        <locdate>20250101</locdate>
      </item>
      <item>
        <dateKind>01</dateKind>
        <dateName>Hari Kemerdekaan</dateName>
        <locdate>20250817</locdate>
      </item>
    </items>
  </body>
</response>`

func TestParseHolidayFeed(t *testing.T) {
	items, err := ParseHolidayFeed([]byte(sampleFeed))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Tahun Baru", items[0].Name)
	assert.Equal(t, "20250101", items[0].LocDate)
	assert.Equal(t, "Hari Kemerdekaan", items[1].Name)
}

func TestParseHolidayFeed_EmptyItems(t *testing.T) {
	items, err := ParseHolidayFeed([]byte(`<response><body><items></items></body></response>`))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestParseHolidayFeed_InvalidXML(t *testing.T) {
	_, err := ParseHolidayFeed([]byte(`{"bukan":"xml"}`))
	assert.Error(t, err)
}

func TestParseHolidayFeed_WrongRoot(t *testing.T) {
	_, err := ParseHolidayFeed([]byte(`<error><message>boom</message></error>`))
	assert.Error(t, err)
}

func TestCallAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("serviceKey"))
		assert.Equal(t, "2025", r.URL.Query().Get("solYear"))
		assert.Equal(t, "01", r.URL.Query().Get("solMonth"))
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	configs.HolidayAPIKey = "test-key"
	configs.HolidayAPIURL = srv.URL

	svc := NewHolidayService(nil)
	items, err := svc.callAPI(2025, 1)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCallAPI_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	configs.HolidayAPIKey = "test-key"
	configs.HolidayAPIURL = srv.URL

	svc := NewHolidayService(nil)
	_, err := svc.callAPI(2025, 1)
	assert.ErrorIs(t, err, helper.ErrHolidayAPI)
}

func TestCallAPI_MissingKey(t *testing.T) {
	configs.HolidayAPIKey = ""

	svc := NewHolidayService(nil)
	_, err := svc.callAPI(2025, 1)
	assert.ErrorIs(t, err, helper.ErrHolidayAPI)
}
